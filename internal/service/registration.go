package service

import (
	"context"

	"github.com/PratikDhanave/event-registration-service/internal/models"
)

// RegistrationRepository is the persistence surface for attendee
// registration. WithTx runs fn inside one transaction; GetEventForUpdate must
// lock the event row for the duration of that transaction so the
// count-then-insert pair behaves as a single atomic unit.
type RegistrationRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetEventForUpdate(ctx context.Context, eventID int64) (models.Event, error)
	CountAttendees(ctx context.Context, eventID int64) (int, error)
	CreateAttendee(ctx context.Context, a models.Attendee) (models.Attendee, error)
	ListAttendees(ctx context.Context, eventID int64) ([]models.Attendee, error)
}

// RegisterInput carries attendee fields into a registration.
type RegisterInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
}

// RegistrationService enforces the capacity invariant: the number of
// attendees of an event never exceeds its max_attendees, including under
// concurrent registration.
type RegistrationService struct {
	repo RegistrationRepository
}

func NewRegistrationService(repo RegistrationRepository) *RegistrationService {
	return &RegistrationService{repo: repo}
}

// Register creates an attendee bound to eventID. The capacity check and the
// insert run in one transaction holding the event row lock, so concurrent
// registrations serialize per event and first-committed wins near the limit.
func (s *RegistrationService) Register(ctx context.Context, eventID int64, in RegisterInput) (models.Attendee, error) {
	var created models.Attendee

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		ev, err := s.repo.GetEventForUpdate(txCtx, eventID)
		if err != nil {
			return err
		}

		count, err := s.repo.CountAttendees(txCtx, eventID)
		if err != nil {
			return err
		}
		if count >= ev.MaxAttendees {
			return models.ErrEventFull
		}

		created, err = s.repo.CreateAttendee(txCtx, models.Attendee{
			FirstName:   in.FirstName,
			LastName:    in.LastName,
			Email:       in.Email,
			PhoneNumber: in.PhoneNumber,
			EventID:     eventID,
		})
		return err
	})
	if err != nil {
		return models.Attendee{}, err
	}
	return created, nil
}

// List returns all attendees of the event. No existence check: an unknown
// event yields an empty slice, matching the read path's tolerance.
func (s *RegistrationService) List(ctx context.Context, eventID int64) ([]models.Attendee, error) {
	return s.repo.ListAttendees(ctx, eventID)
}
