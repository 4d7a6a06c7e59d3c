package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdantapp/verdant/internal/app"
	"github.com/verdantapp/verdant/internal/catalog"
	"github.com/verdantapp/verdant/internal/ledger"
	"github.com/verdantapp/verdant/internal/store"
)

// openServices opens the store and builds the ledger service from the
// latest snapshot. The caller must Close the returned store.
func openServices(ctx context.Context) (*store.Store, *catalog.Graph, *ledger.Service, error) {
	graph, err := loadGraph()
	if err != nil {
		return nil, nil, nil, err
	}

	dbPath, err := resolveDBPath()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open store: %w", err)
	}

	snap, err := st.SnapshotRepo().Latest(ctx)
	if err != nil {
		st.Close()
		return nil, nil, nil, fmt.Errorf("load snapshot: %w", err)
	}
	var data *store.SnapshotData
	if snap != nil {
		data = &snap.Data
	}

	service := ledger.NewService(graph, newResolver(graph), data, st.EventRepo())
	return st, graph, service, nil
}

// snapshotsToKeep bounds the snapshot history retained after each save.
const snapshotsToKeep = 20

// saveSnapshot persists the current ledger state and prunes old snapshots.
func saveSnapshot(ctx context.Context, st *store.Store, service *ledger.Service) error {
	data := service.SnapshotData()
	repo := st.SnapshotRepo()
	if err := repo.Save(ctx, &store.Snapshot{Data: data}); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := repo.Prune(ctx, snapshotsToKeep); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	st, graph, service, err := openServices(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(app.Options{Graph: graph, Service: service})
}
