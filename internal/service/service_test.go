package service

import (
	"context"
	"sync"
	"time"

	"github.com/PratikDhanave/event-registration-service/internal/models"
)

// memRepo is an in-memory stand-in for the Postgres store, implementing all
// three repository interfaces. WithTx holds the mutex for the duration of fn,
// which mirrors the row lock the real store takes: transactional call
// sequences serialize, so the concurrent registration tests exercise the
// same atomicity contract. Methods themselves do not lock; tests outside
// WithTx run sequentially.
type memRepo struct {
	mu        sync.Mutex
	nextEvent int64
	nextAtt   int64
	events    map[int64]models.Event
	attendees map[int64]models.Attendee
}

func newMemRepo() *memRepo {
	return &memRepo{
		events:    map[int64]models.Event{},
		attendees: map[int64]models.Attendee{},
	}
}

func (m *memRepo) addEvent(ev models.Event) models.Event {
	m.nextEvent++
	ev.ID = m.nextEvent
	m.events[ev.ID] = ev
	return ev
}

func (m *memRepo) addAttendee(a models.Attendee) models.Attendee {
	m.nextAtt++
	a.ID = m.nextAtt
	m.attendees[a.ID] = a
	return a
}

func (m *memRepo) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

func (m *memRepo) CreateEvent(_ context.Context, ev models.Event) (models.Event, error) {
	return m.addEvent(ev), nil
}

func (m *memRepo) GetEvent(_ context.Context, id int64) (models.Event, error) {
	ev, ok := m.events[id]
	if !ok {
		return models.Event{}, models.ErrEventNotFound
	}
	return ev, nil
}

func (m *memRepo) GetEventForUpdate(ctx context.Context, id int64) (models.Event, error) {
	return m.GetEvent(ctx, id)
}

func (m *memRepo) ListEvents(_ context.Context, f EventFilter) ([]models.Event, error) {
	var out []models.Event
	for id := int64(1); id <= m.nextEvent; id++ {
		ev, ok := m.events[id]
		if !ok {
			continue
		}
		if f.Status != "" && ev.Status != f.Status {
			continue
		}
		if f.Location != "" && ev.Location != f.Location {
			continue
		}
		if !f.StartFrom.IsZero() && ev.StartTime.Before(f.StartFrom) {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

func (m *memRepo) UpdateEvent(_ context.Context, ev models.Event) error {
	if _, ok := m.events[ev.ID]; !ok {
		return models.ErrEventNotFound
	}
	m.events[ev.ID] = ev
	return nil
}

func (m *memRepo) DeleteEvent(_ context.Context, id int64) error {
	if _, ok := m.events[id]; !ok {
		return models.ErrEventNotFound
	}
	delete(m.events, id)
	for aid, a := range m.attendees {
		if a.EventID == id {
			delete(m.attendees, aid)
		}
	}
	return nil
}

func (m *memRepo) CompleteElapsed(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for id, ev := range m.events {
		if ev.EndTime.Before(now) && ev.Status != models.StatusCompleted {
			ev.Status = models.StatusCompleted
			m.events[id] = ev
			n++
		}
	}
	return n, nil
}

func (m *memRepo) CountAttendees(_ context.Context, eventID int64) (int, error) {
	count := 0
	for _, a := range m.attendees {
		if a.EventID == eventID {
			count++
		}
	}
	return count, nil
}

func (m *memRepo) CreateAttendee(_ context.Context, a models.Attendee) (models.Attendee, error) {
	for _, existing := range m.attendees {
		if existing.Email == a.Email {
			return models.Attendee{}, models.ErrDuplicateEmail
		}
	}
	return m.addAttendee(a), nil
}

func (m *memRepo) ListAttendees(_ context.Context, eventID int64) ([]models.Attendee, error) {
	out := []models.Attendee{}
	for id := int64(1); id <= m.nextAtt; id++ {
		a, ok := m.attendees[id]
		if !ok || a.EventID != eventID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *memRepo) SetCheckInStatus(_ context.Context, attendeeID int64, status bool) error {
	a, ok := m.attendees[attendeeID]
	if !ok {
		return models.ErrAttendeeNotFound
	}
	a.CheckInStatus = status
	m.attendees[attendeeID] = a
	return nil
}

func (m *memRepo) CheckInAll(_ context.Context, ids []int64) (int, error) {
	matched := map[int64]bool{}
	for _, id := range ids {
		a, ok := m.attendees[id]
		if !ok {
			continue
		}
		a.CheckInStatus = true
		m.attendees[id] = a
		matched[id] = true
	}
	return len(matched), nil
}
