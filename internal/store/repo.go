package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int   // max results (0 = unlimited)
	After  int64 // sequence > After
	Before int64 // sequence < Before
}

// SnapshotData captures the full learner state at a point in time.
// The growth stage is intentionally absent: it is derived from the
// inventory and recomputed on load, never stored independently.
type SnapshotData struct {
	Version     int                  `json:"version"`
	Completed   map[string][]string  `json:"completed"` // unit kind -> completed unit ids
	Grants      map[string]GrantData `json:"grants"`    // unit id -> recorded grant
	Inventory   map[string]int       `json:"inventory"` // item -> cumulative count
	TotalPoints int                  `json:"totalPoints"`
}

// GrantData is the persisted form of a reward grant.
type GrantData struct {
	Points int            `json:"points"`
	Items  map[string]int `json:"items,omitempty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// CompletionEventData captures the data for a single completion event.
type CompletionEventData struct {
	UnitID   string
	UnitKind string
	Points   int
	Items    map[string]int
	Percent  *int // scored units only
}

// CompletionEventRecord is a completion event read back from the log.
type CompletionEventRecord struct {
	EventID   string
	UnitID    string
	UnitKind  string
	Points    int
	Items     map[string]int
	Percent   *int
	Sequence  int64
	Timestamp time.Time
}

// EventRepo provides append and query access to the completion event log.
type EventRepo interface {
	// AppendCompletion records a unit completion and its grant.
	AppendCompletion(ctx context.Context, data CompletionEventData) error

	// QueryCompletions returns completion events, most recent first.
	QueryCompletions(ctx context.Context, opts QueryOpts) ([]CompletionEventRecord, error)

	// CompletionCounts returns the number of completions by unit kind and in total.
	CompletionCounts(ctx context.Context) (map[string]int, int, error)
}
