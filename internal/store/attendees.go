package store

import (
	"context"
	"fmt"

	"github.com/PratikDhanave/event-registration-service/internal/models"
)

func (p *PostgresStore) CreateAttendee(ctx context.Context, a models.Attendee) (models.Attendee, error) {
	const stmt = `
		INSERT INTO attendees (first_name, last_name, email, phone_number, event_id, check_in_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING attendee_id`

	err := p.queryRow(ctx, stmt,
		a.FirstName,
		a.LastName,
		a.Email,
		a.PhoneNumber,
		a.EventID,
		a.CheckInStatus,
	).Scan(&a.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Attendee{}, models.ErrDuplicateEmail
		}
		return models.Attendee{}, fmt.Errorf("create attendee: %w", err)
	}
	return a, nil
}

func (p *PostgresStore) CountAttendees(ctx context.Context, eventID int64) (int, error) {
	var count int
	err := p.queryRow(ctx, `SELECT COUNT(*) FROM attendees WHERE event_id = $1`, eventID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count attendees: %w", err)
	}
	return count, nil
}

func (p *PostgresStore) ListAttendees(ctx context.Context, eventID int64) ([]models.Attendee, error) {
	const query = `
		SELECT attendee_id, first_name, last_name, email, phone_number, event_id, check_in_status
		FROM attendees
		WHERE event_id = $1
		ORDER BY attendee_id`

	rows, err := p.query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	defer rows.Close()

	attendees := []models.Attendee{}
	for rows.Next() {
		var a models.Attendee
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.PhoneNumber, &a.EventID, &a.CheckInStatus); err != nil {
			return nil, fmt.Errorf("scan attendee: %w", err)
		}
		attendees = append(attendees, a)
	}
	return attendees, rows.Err()
}

func (p *PostgresStore) SetCheckInStatus(ctx context.Context, attendeeID int64, status bool) error {
	tag, err := p.exec(ctx,
		`UPDATE attendees SET check_in_status = $2 WHERE attendee_id = $1`,
		attendeeID, status,
	)
	if err != nil {
		return fmt.Errorf("set check-in status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrAttendeeNotFound
	}
	return nil
}

// CheckInAll marks every listed attendee as checked in with one statement.
// RowsAffected counts the ids that matched stored attendees; unknown ids and
// already-checked-in attendees are both covered by it, which is exactly the
// bulk contract.
func (p *PostgresStore) CheckInAll(ctx context.Context, ids []int64) (int, error) {
	tag, err := p.exec(ctx,
		`UPDATE attendees SET check_in_status = TRUE WHERE attendee_id = ANY($1)`,
		ids,
	)
	if err != nil {
		return 0, fmt.Errorf("bulk check-in: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
