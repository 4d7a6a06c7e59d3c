package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// eventRepo implements EventRepo on the completion_events table.
type eventRepo struct {
	db *sqlx.DB
}

type completionEventRow struct {
	ID        int64     `db:"id"`
	EventID   string    `db:"event_id"`
	UnitID    string    `db:"unit_id"`
	UnitKind  string    `db:"unit_kind"`
	Points    int       `db:"points"`
	Items     string    `db:"items"`
	Percent   *int      `db:"percent"`
	CreatedAt time.Time `db:"created_at"`
}

func (r *eventRepo) AppendCompletion(ctx context.Context, data CompletionEventData) error {
	items, err := json.Marshal(data.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}

	row := completionEventRow{
		EventID:   uuid.New().String(),
		UnitID:    data.UnitID,
		UnitKind:  data.UnitKind,
		Points:    data.Points,
		Items:     string(items),
		Percent:   data.Percent,
		CreatedAt: time.Now().UTC(),
	}
	_, err = r.db.NamedExecContext(ctx, `
		INSERT INTO completion_events (event_id, unit_id, unit_kind, points, items, percent, created_at)
		VALUES (:event_id, :unit_id, :unit_kind, :points, :items, :percent, :created_at)`,
		row)
	if err != nil {
		return fmt.Errorf("save completion event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryCompletions(ctx context.Context, opts QueryOpts) ([]CompletionEventRecord, error) {
	query := `SELECT id, event_id, unit_id, unit_kind, points, items, percent, created_at
		FROM completion_events WHERE 1=1`
	var args []any
	if opts.After > 0 {
		query += " AND id > ?"
		args = append(args, opts.After)
	}
	if opts.Before > 0 {
		query += " AND id < ?"
		args = append(args, opts.Before)
	}
	query += " ORDER BY id DESC"
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	var rows []completionEventRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query completion events: %w", err)
	}

	records := make([]CompletionEventRecord, len(rows))
	for i, row := range rows {
		var items map[string]int
		if err := json.Unmarshal([]byte(row.Items), &items); err != nil {
			return nil, fmt.Errorf("unmarshal items for event %s: %w", row.EventID, err)
		}
		records[i] = CompletionEventRecord{
			EventID:   row.EventID,
			UnitID:    row.UnitID,
			UnitKind:  row.UnitKind,
			Points:    row.Points,
			Items:     items,
			Percent:   row.Percent,
			Sequence:  row.ID,
			Timestamp: row.CreatedAt,
		}
	}
	return records, nil
}

func (r *eventRepo) CompletionCounts(ctx context.Context) (map[string]int, int, error) {
	var rows []struct {
		UnitKind string `db:"unit_kind"`
		Count    int    `db:"count"`
	}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT unit_kind, COUNT(*) AS count
		FROM completion_events
		GROUP BY unit_kind`)
	if err != nil {
		return nil, 0, fmt.Errorf("query completion counts: %w", err)
	}

	byKind := make(map[string]int, len(rows))
	total := 0
	for _, row := range rows {
		byKind[row.UnitKind] = row.Count
		total += row.Count
	}
	return byKind, total, nil
}
