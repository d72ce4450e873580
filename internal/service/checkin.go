package service

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/PratikDhanave/event-registration-service/internal/models"
)

// CheckinRepository is the persistence surface for check-in transitions.
type CheckinRepository interface {
	// SetCheckInStatus flips one attendee's flag; models.ErrAttendeeNotFound
	// when the id is unknown.
	SetCheckInStatus(ctx context.Context, attendeeID int64, status bool) error
	// CheckInAll marks every listed attendee as checked in, in one batch, and
	// returns how many ids matched stored attendees.
	CheckInAll(ctx context.Context, ids []int64) (int, error)
}

// CheckinService handles single and bulk check-in.
type CheckinService struct {
	repo CheckinRepository
}

func NewCheckinService(repo CheckinRepository) *CheckinService {
	return &CheckinService{repo: repo}
}

// CheckIn sets the attendee's flag to status. Setting the same value twice is
// a no-op, so retries are harmless.
func (s *CheckinService) CheckIn(ctx context.Context, attendeeID int64, status bool) error {
	return s.repo.SetCheckInStatus(ctx, attendeeID, status)
}

// BulkCheckIn reads CSV rows from r, takes the first field of each row as an
// attendee id, and checks in every matching attendee in one batch. Rows whose
// first field is not an integer are skipped, not reported; ids with no stored
// attendee are ignored the same way. Returns the number of attendees matched,
// or models.ErrNoAttendeesMatched when that number is zero.
func (s *CheckinService) BulkCheckIn(ctx context.Context, r io.Reader) (int, error) {
	ids, err := parseAttendeeIDs(r)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, models.ErrNoAttendeesMatched
	}

	n, err := s.repo.CheckInAll(ctx, ids)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, models.ErrNoAttendeesMatched
	}
	return n, nil
}

// parseAttendeeIDs extracts integer ids from the first column. Duplicate ids
// are kept; check-in is idempotent so repeats are harmless.
func parseAttendeeIDs(r io.Reader) ([]int64, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var ids []int64
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			return nil, err
		}
		if len(row) == 0 {
			continue
		}
		id, err := strconv.ParseInt(strings.TrimSpace(row[0]), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
