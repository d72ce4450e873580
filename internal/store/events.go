package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/PratikDhanave/event-registration-service/internal/models"
	"github.com/PratikDhanave/event-registration-service/internal/service"
)

func (p *PostgresStore) CreateEvent(ctx context.Context, ev models.Event) (models.Event, error) {
	const stmt = `
		INSERT INTO events (name, description, start_time, end_time, location, max_attendees, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING event_id`

	err := p.queryRow(ctx, stmt,
		ev.Name,
		ev.Description,
		ev.StartTime,
		ev.EndTime,
		ev.Location,
		ev.MaxAttendees,
		ev.Status,
	).Scan(&ev.ID)
	if err != nil {
		return models.Event{}, fmt.Errorf("create event: %w", err)
	}
	return ev, nil
}

func (p *PostgresStore) GetEvent(ctx context.Context, id int64) (models.Event, error) {
	const query = `
		SELECT event_id, name, description, start_time, end_time, location, max_attendees, status
		FROM events
		WHERE event_id = $1`

	return p.scanEvent(p.queryRow(ctx, query, id))
}

// GetEventForUpdate locks the event row until the enclosing transaction ends.
// Registration relies on this lock to serialize the count-then-insert pair
// per event.
func (p *PostgresStore) GetEventForUpdate(ctx context.Context, id int64) (models.Event, error) {
	const query = `
		SELECT event_id, name, description, start_time, end_time, location, max_attendees, status
		FROM events
		WHERE event_id = $1
		FOR UPDATE`

	return p.scanEvent(p.queryRow(ctx, query, id))
}

func (p *PostgresStore) scanEvent(row pgx.Row) (models.Event, error) {
	var ev models.Event
	err := row.Scan(&ev.ID, &ev.Name, &ev.Description, &ev.StartTime, &ev.EndTime, &ev.Location, &ev.MaxAttendees, &ev.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Event{}, models.ErrEventNotFound
		}
		return models.Event{}, fmt.Errorf("get event: %w", err)
	}
	return ev, nil
}

// ListEvents applies only the filters that are set; conditions are ANDed.
func (p *PostgresStore) ListEvents(ctx context.Context, f service.EventFilter) ([]models.Event, error) {
	query := `
		SELECT event_id, name, description, start_time, end_time, location, max_attendees, status
		FROM events
		WHERE 1=1`
	var args []any

	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.Location != "" {
		args = append(args, f.Location)
		query += fmt.Sprintf(" AND location = $%d", len(args))
	}
	if !f.StartFrom.IsZero() {
		args = append(args, f.StartFrom)
		query += fmt.Sprintf(" AND start_time >= $%d", len(args))
	}
	query += " ORDER BY event_id"

	rows, err := p.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var ev models.Event
		if err := rows.Scan(&ev.ID, &ev.Name, &ev.Description, &ev.StartTime, &ev.EndTime, &ev.Location, &ev.MaxAttendees, &ev.Status); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (p *PostgresStore) UpdateEvent(ctx context.Context, ev models.Event) error {
	const stmt = `
		UPDATE events
		SET name = $2, description = $3, start_time = $4, end_time = $5, location = $6, max_attendees = $7, status = $8
		WHERE event_id = $1`

	tag, err := p.exec(ctx, stmt,
		ev.ID,
		ev.Name,
		ev.Description,
		ev.StartTime,
		ev.EndTime,
		ev.Location,
		ev.MaxAttendees,
		ev.Status,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrEventNotFound
	}
	return nil
}

// DeleteEvent removes the event; the foreign key cascades to its attendees.
func (p *PostgresStore) DeleteEvent(ctx context.Context, id int64) error {
	tag, err := p.exec(ctx, `DELETE FROM events WHERE event_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrEventNotFound
	}
	return nil
}

// CompleteElapsed is the lazy completion sweep: scheduled events whose end
// time has passed become completed. Monotonic and safe to run repeatedly.
func (p *PostgresStore) CompleteElapsed(ctx context.Context, now time.Time) (int64, error) {
	tag, err := p.exec(ctx,
		`UPDATE events SET status = $1 WHERE end_time < $2 AND status <> $1`,
		models.StatusCompleted, now,
	)
	if err != nil {
		return 0, fmt.Errorf("complete elapsed events: %w", err)
	}
	return tag.RowsAffected(), nil
}
