package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PratikDhanave/event-registration-service/internal/clock"
	"github.com/PratikDhanave/event-registration-service/internal/models"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newEventService(repo *memRepo) *EventService {
	return NewEventService(repo, clock.NewFixed(testNow))
}

func validCreateInput() CreateEventInput {
	return CreateEventInput{
		Name:         "Tech Conference",
		Description:  "A test event",
		StartTime:    testNow.Add(24 * time.Hour),
		EndTime:      testNow.Add(48 * time.Hour),
		Location:     "New York",
		MaxAttendees: 100,
	}
}

func TestEventService_Create(t *testing.T) {
	t.Run("defaults status to scheduled", func(t *testing.T) {
		svc := newEventService(newMemRepo())

		ev, err := svc.Create(context.Background(), validCreateInput())
		require.NoError(t, err)

		assert.Equal(t, int64(1), ev.ID)
		assert.Equal(t, models.StatusScheduled, ev.Status)
	})

	t.Run("rejects end time not after start time", func(t *testing.T) {
		svc := newEventService(newMemRepo())

		in := validCreateInput()
		in.EndTime = in.StartTime
		_, err := svc.Create(context.Background(), in)
		assert.ErrorIs(t, err, models.ErrInvalidTimeRange)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		svc := newEventService(newMemRepo())

		in := validCreateInput()
		in.Status = "postponed"
		_, err := svc.Create(context.Background(), in)
		assert.ErrorIs(t, err, models.ErrInvalidStatus)
	})
}

func TestEventService_List(t *testing.T) {
	t.Run("sweep completes elapsed events", func(t *testing.T) {
		repo := newMemRepo()
		elapsed := repo.addEvent(models.Event{
			Name:      "Past Meetup",
			StartTime: testNow.Add(-48 * time.Hour),
			EndTime:   testNow.Add(-24 * time.Hour),
			Status:    models.StatusScheduled,
		})
		upcoming := repo.addEvent(models.Event{
			Name:      "Future Meetup",
			StartTime: testNow.Add(24 * time.Hour),
			EndTime:   testNow.Add(48 * time.Hour),
			Status:    models.StatusScheduled,
		})

		svc := newEventService(repo)
		events, err := svc.List(context.Background(), EventFilter{})
		require.NoError(t, err)
		require.Len(t, events, 2)

		assert.Equal(t, models.StatusCompleted, repo.events[elapsed.ID].Status)
		assert.Equal(t, models.StatusScheduled, repo.events[upcoming.ID].Status)
	})

	t.Run("sweep covers events the filter excludes", func(t *testing.T) {
		repo := newMemRepo()
		elapsed := repo.addEvent(models.Event{
			Name:      "Past Meetup",
			Location:  "Berlin",
			StartTime: testNow.Add(-48 * time.Hour),
			EndTime:   testNow.Add(-24 * time.Hour),
			Status:    models.StatusScheduled,
		})

		svc := newEventService(repo)
		events, err := svc.List(context.Background(), EventFilter{Location: "Tokyo"})
		require.NoError(t, err)
		assert.Empty(t, events)

		assert.Equal(t, models.StatusCompleted, repo.events[elapsed.ID].Status)
	})

	t.Run("filters are ANDed", func(t *testing.T) {
		repo := newMemRepo()
		repo.addEvent(models.Event{
			Name:      "A",
			Location:  "Berlin",
			StartTime: testNow.Add(24 * time.Hour),
			EndTime:   testNow.Add(48 * time.Hour),
			Status:    models.StatusScheduled,
		})
		match := repo.addEvent(models.Event{
			Name:      "B",
			Location:  "Tokyo",
			StartTime: testNow.Add(72 * time.Hour),
			EndTime:   testNow.Add(96 * time.Hour),
			Status:    models.StatusScheduled,
		})
		repo.addEvent(models.Event{
			Name:      "C",
			Location:  "Tokyo",
			StartTime: testNow.Add(-48 * time.Hour),
			EndTime:   testNow.Add(-24 * time.Hour),
			Status:    models.StatusScheduled,
		})

		svc := newEventService(repo)
		events, err := svc.List(context.Background(), EventFilter{
			Status:    models.StatusScheduled,
			Location:  "Tokyo",
			StartFrom: testNow,
		})
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, match.ID, events[0].ID)
	})
}

func TestEventService_Update(t *testing.T) {
	t.Run("partial update keeps unspecified fields", func(t *testing.T) {
		repo := newMemRepo()
		original := repo.addEvent(models.Event{
			Name:         "Tech Conference",
			Description:  "A test event",
			StartTime:    testNow.Add(24 * time.Hour),
			EndTime:      testNow.Add(48 * time.Hour),
			Location:     "New York",
			MaxAttendees: 100,
			Status:       models.StatusScheduled,
		})

		svc := newEventService(repo)
		location := "Boston"
		updated, err := svc.Update(context.Background(), original.ID, UpdateEventPatch{Location: &location})
		require.NoError(t, err)

		assert.Equal(t, "Boston", updated.Location)
		assert.Equal(t, original.Name, updated.Name)
		assert.Equal(t, original.StartTime, updated.StartTime)
		assert.Equal(t, original.EndTime, updated.EndTime)
		assert.Equal(t, original.MaxAttendees, updated.MaxAttendees)
		assert.Equal(t, original.Status, updated.Status)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := newEventService(newMemRepo())

		name := "X"
		_, err := svc.Update(context.Background(), 42, UpdateEventPatch{Name: &name})
		assert.ErrorIs(t, err, models.ErrEventNotFound)
	})

	t.Run("rejects merged window where end precedes start", func(t *testing.T) {
		repo := newMemRepo()
		ev := repo.addEvent(models.Event{
			Name:      "Tech Conference",
			StartTime: testNow.Add(24 * time.Hour),
			EndTime:   testNow.Add(48 * time.Hour),
			Status:    models.StatusScheduled,
		})

		svc := newEventService(repo)
		end := testNow.Add(12 * time.Hour)
		_, err := svc.Update(context.Background(), ev.ID, UpdateEventPatch{EndTime: &end})
		assert.ErrorIs(t, err, models.ErrInvalidTimeRange)
	})

	t.Run("rejects unknown status value", func(t *testing.T) {
		repo := newMemRepo()
		ev := repo.addEvent(models.Event{
			Name:      "Tech Conference",
			StartTime: testNow.Add(24 * time.Hour),
			EndTime:   testNow.Add(48 * time.Hour),
			Status:    models.StatusScheduled,
		})

		svc := newEventService(repo)
		status := "archived"
		_, err := svc.Update(context.Background(), ev.ID, UpdateEventPatch{Status: &status})
		assert.ErrorIs(t, err, models.ErrInvalidStatus)
	})
}

func TestEventService_Delete(t *testing.T) {
	t.Run("removes event and its attendees", func(t *testing.T) {
		repo := newMemRepo()
		ev := repo.addEvent(models.Event{
			Name:         "Tech Conference",
			StartTime:    testNow.Add(24 * time.Hour),
			EndTime:      testNow.Add(48 * time.Hour),
			MaxAttendees: 10,
			Status:       models.StatusScheduled,
		})
		repo.addAttendee(models.Attendee{FirstName: "John", LastName: "Doe", Email: "john@example.com", EventID: ev.ID})
		repo.addAttendee(models.Attendee{FirstName: "Jane", LastName: "Smith", Email: "jane@example.com", EventID: ev.ID})

		svc := newEventService(repo)
		require.NoError(t, svc.Delete(context.Background(), ev.ID))

		assert.Empty(t, repo.events)
		assert.Empty(t, repo.attendees, "cascade should leave no orphan attendees")
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := newEventService(newMemRepo())
		err := svc.Delete(context.Background(), 42)
		assert.ErrorIs(t, err, models.ErrEventNotFound)
	})
}
