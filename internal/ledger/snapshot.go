package ledger

import (
	"github.com/verdantapp/verdant/internal/catalog"
	"github.com/verdantapp/verdant/internal/growth"
	"github.com/verdantapp/verdant/internal/reward"
	"github.com/verdantapp/verdant/internal/store"
)

// snapshotVersion is bumped when the snapshot layout changes.
const snapshotVersion = 1

// ToSnapshot converts a ledger to its persisted form. The stage is derived,
// so it is not written.
func ToSnapshot(l *Ledger) store.SnapshotData {
	data := store.SnapshotData{
		Version:     snapshotVersion,
		Completed:   make(map[string][]string),
		Grants:      make(map[string]store.GrantData, len(l.grants)),
		Inventory:   make(map[string]int, len(l.inventory)),
		TotalPoints: l.totalPoints,
	}
	for _, kind := range catalog.AllUnitKinds() {
		if ids := l.CompletedIDs(kind); len(ids) > 0 {
			data.Completed[string(kind)] = ids
		}
	}
	for id, g := range l.grants {
		gd := store.GrantData{Points: g.Points}
		if len(g.Items) > 0 {
			gd.Items = make(map[string]int, len(g.Items))
			for t, n := range g.Items {
				gd.Items[string(t)] = n
			}
		}
		data.Grants[id] = gd
	}
	for t, n := range l.inventory {
		data.Inventory[string(t)] = n
	}
	return data
}

// FromSnapshot restores a ledger from its persisted form. A nil snapshot
// yields an empty ledger. The stage is re-evaluated from the inventory.
func FromSnapshot(data *store.SnapshotData) *Ledger {
	l := New()
	if data == nil {
		return l
	}
	for kind, ids := range data.Completed {
		set := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			set[id] = struct{}{}
		}
		l.completed[catalog.UnitKind(kind)] = set
	}
	for id, gd := range data.Grants {
		g := reward.Grant{Points: gd.Points, Items: reward.NewBundle()}
		for t, n := range gd.Items {
			g.Items.AddItem(reward.ItemType(t), n)
		}
		l.grants[id] = g
	}
	for t, n := range data.Inventory {
		l.inventory.AddItem(reward.ItemType(t), n)
	}
	l.totalPoints = data.TotalPoints
	l.stage = growth.Evaluate(l.inventory)
	return l
}
