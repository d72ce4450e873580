package service

import (
	"context"
	"strings"
	"time"

	"github.com/PratikDhanave/event-registration-service/internal/clock"
	"github.com/PratikDhanave/event-registration-service/internal/models"
)

// EventRepository is the persistence surface the event service needs.
type EventRepository interface {
	CreateEvent(ctx context.Context, ev models.Event) (models.Event, error)
	GetEvent(ctx context.Context, id int64) (models.Event, error)
	ListEvents(ctx context.Context, f EventFilter) ([]models.Event, error)
	UpdateEvent(ctx context.Context, ev models.Event) error
	DeleteEvent(ctx context.Context, id int64) error
	// CompleteElapsed marks every event whose end time precedes now and whose
	// status is not yet "completed" as completed, across the whole table.
	CompleteElapsed(ctx context.Context, now time.Time) (int64, error)
}

// EventFilter narrows List results. Zero values mean "no constraint";
// conditions are ANDed.
type EventFilter struct {
	Status    string
	Location  string
	StartFrom time.Time
}

// CreateEventInput carries a validated-enough create request into the service.
type CreateEventInput struct {
	Name         string
	Description  string
	StartTime    time.Time
	EndTime      time.Time
	Location     string
	MaxAttendees int
	Status       string
}

// UpdateEventPatch holds only the fields present in an update request.
type UpdateEventPatch struct {
	Name         *string
	Description  *string
	StartTime    *time.Time
	EndTime      *time.Time
	Location     *string
	MaxAttendees *int
	Status       *string
}

// EventService owns the event lifecycle: create, list (with the lazy
// completion sweep), partial update, and delete.
type EventService struct {
	repo  EventRepository
	clock clock.Clock
}

func NewEventService(repo EventRepository, clk clock.Clock) *EventService {
	return &EventService{repo: repo, clock: clk}
}

func (s *EventService) Create(ctx context.Context, in CreateEventInput) (models.Event, error) {
	status := in.Status
	if status == "" {
		status = models.StatusScheduled
	}
	if !models.ValidStatus(status) {
		return models.Event{}, models.ErrInvalidStatus
	}
	if !in.EndTime.After(in.StartTime) {
		return models.Event{}, models.ErrInvalidTimeRange
	}

	ev := models.Event{
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		StartTime:    in.StartTime.UTC(),
		EndTime:      in.EndTime.UTC(),
		Location:     strings.TrimSpace(in.Location),
		MaxAttendees: in.MaxAttendees,
		Status:       status,
	}
	return s.repo.CreateEvent(ctx, ev)
}

// List runs the completion sweep before querying, so events whose end time has
// passed always come back as "completed". The sweep covers the whole table,
// not just the rows the filter matches, and is idempotent.
func (s *EventService) List(ctx context.Context, f EventFilter) ([]models.Event, error) {
	if _, err := s.repo.CompleteElapsed(ctx, s.clock.Now()); err != nil {
		return nil, err
	}
	return s.repo.ListEvents(ctx, f)
}

// Update applies only the fields present in the patch; everything else keeps
// its stored value. The merged time window must still be valid.
func (s *EventService) Update(ctx context.Context, id int64, patch UpdateEventPatch) (models.Event, error) {
	ev, err := s.repo.GetEvent(ctx, id)
	if err != nil {
		return models.Event{}, err
	}

	if patch.Name != nil {
		ev.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		ev.Description = *patch.Description
	}
	if patch.StartTime != nil {
		ev.StartTime = patch.StartTime.UTC()
	}
	if patch.EndTime != nil {
		ev.EndTime = patch.EndTime.UTC()
	}
	if patch.Location != nil {
		ev.Location = strings.TrimSpace(*patch.Location)
	}
	if patch.MaxAttendees != nil {
		ev.MaxAttendees = *patch.MaxAttendees
	}
	if patch.Status != nil {
		if !models.ValidStatus(*patch.Status) {
			return models.Event{}, models.ErrInvalidStatus
		}
		ev.Status = *patch.Status
	}

	if !ev.EndTime.After(ev.StartTime) {
		return models.Event{}, models.ErrInvalidTimeRange
	}

	if err := s.repo.UpdateEvent(ctx, ev); err != nil {
		return models.Event{}, err
	}
	return ev, nil
}

// Delete removes the event; the store cascades to its attendees.
func (s *EventService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteEvent(ctx, id)
}
