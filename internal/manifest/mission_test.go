// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package manifest

import (
	"testing"

	"github.com/jeranaias/edcargo-tui/internal/journal"
)

func intPtr(v int) *int { return &v }

func acceptEvent(id int64, name, commodity string, count *int) *journal.MissionAccepted {
	return &journal.MissionAccepted{
		MissionID: id,
		Name:      name,
		Commodity: commodity,
		Count:     count,
	}
}

func TestLedgerAccept(t *testing.T) {
	tests := []struct {
		name          string
		ev            *journal.MissionAccepted
		wantInserted  bool
		wantAllocated bool
		wantStolen    bool
	}{
		{
			name:         "collect mission",
			ev:           acceptEvent(1, "Mission_Collect", "$gold_name;", intPtr(10)),
			wantInserted: true,
		},
		{
			name:          "delivery mission sources from allocation",
			ev:            acceptEvent(2, "Mission_Delivery_Boom", "$silver_name;", intPtr(4)),
			wantInserted:  true,
			wantAllocated: true,
		},
		{
			name:         "rescue mission wants stolen goods",
			ev:           acceptEvent(3, "Mission_Rescue", "$gold_name;", intPtr(2)),
			wantInserted: true,
			wantStolen:   true,
		},
		{
			name:         "salvage mission wants stolen goods",
			ev:           acceptEvent(4, "Mission_Salvage_Planet", "$gold_name;", intPtr(2)),
			wantInserted: true,
			wantStolen:   true,
		},
		{
			name: "on-foot mission rejected",
			ev:   acceptEvent(5, "Mission_OnFoot_Collect", "$gold_name;", intPtr(3)),
		},
		{
			name: "sightseeing mission rejected",
			ev:   acceptEvent(6, "Mission_Sightseeing_Criminal", "$gold_name;", intPtr(3)),
		},
		{
			name: "no commodity rejected",
			ev:   acceptEvent(7, "Mission_Courier", "", intPtr(3)),
		},
		{
			name: "no count rejected",
			ev:   acceptEvent(8, "Mission_Collect", "$gold_name;", nil),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLedger()
			got := l.Accept(tc.ev)
			if got != tc.wantInserted {
				t.Fatalf("Accept() = %v, want %v", got, tc.wantInserted)
			}
			if !tc.wantInserted {
				if l.Len() != 0 {
					t.Fatalf("rejected mission still inserted, len = %d", l.Len())
				}
				return
			}
			m := l.Get(tc.ev.MissionID)
			if m == nil {
				t.Fatal("inserted mission not retrievable")
			}
			if m.Allocated != tc.wantAllocated {
				t.Errorf("Allocated = %v, want %v", m.Allocated, tc.wantAllocated)
			}
			if m.Stolen != tc.wantStolen {
				t.Errorf("Stolen = %v, want %v", m.Stolen, tc.wantStolen)
			}
			if m.Remaining != m.Total {
				t.Errorf("Remaining = %d, want Total %d on accept", m.Remaining, m.Total)
			}
		})
	}
}

func TestLedgerAcceptCanonicalizesCommodity(t *testing.T) {
	l := NewLedger()
	l.Accept(&journal.MissionAccepted{
		MissionID:          1,
		Name:               "Mission_Collect",
		Commodity:          "$Gold_name;",
		CommodityLocalised: "Gold",
		Count:              intPtr(5),
	})
	m := l.Get(1)
	if m == nil {
		t.Fatal("mission not inserted")
	}
	if m.Name != "gold" {
		t.Errorf("Name = %q, want %q", m.Name, "gold")
	}
	if m.DisplayName != "Gold" {
		t.Errorf("DisplayName = %q, want %q", m.DisplayName, "Gold")
	}
}

func TestLedgerRemove(t *testing.T) {
	l := NewLedger()
	l.Accept(acceptEvent(1, "Mission_Collect", "$gold_name;", intPtr(1)))
	l.Accept(acceptEvent(2, "Mission_Collect", "$silver_name;", intPtr(1)))

	if !l.Remove(1) {
		t.Error("Remove(1) = false, want true")
	}
	if l.Remove(1) {
		t.Error("second Remove(1) = true, want false")
	}
	if l.Remove(99) {
		t.Error("Remove of unknown id = true, want false")
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
	if l.Get(2) == nil {
		t.Error("unrelated mission removed")
	}
}

func TestLedgerOrderPreserved(t *testing.T) {
	l := NewLedger()
	for id := int64(1); id <= 4; id++ {
		l.Accept(acceptEvent(id, "Mission_Collect", "$gold_name;", intPtr(1)))
	}
	l.Remove(2)
	// Re-accepting an existing id keeps its slot in the allocation order.
	l.Accept(acceptEvent(3, "Mission_Delivery", "$gold_name;", intPtr(9)))

	var got []int64
	l.Each(func(id int64, _ *Mission) bool {
		got = append(got, id)
		return true
	})
	want := []int64{1, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	if m := l.Get(3); m.Total != 9 || !m.Allocated {
		t.Errorf("re-accept did not replace record: %+v", m)
	}
}

func TestLedgerEachEarlyStop(t *testing.T) {
	l := NewLedger()
	for id := int64(1); id <= 5; id++ {
		l.Accept(acceptEvent(id, "Mission_Collect", "$gold_name;", intPtr(1)))
	}
	n := 0
	l.Each(func(int64, *Mission) bool {
		n++
		return n < 2
	})
	if n != 2 {
		t.Errorf("walk visited %d missions, want 2", n)
	}
}

func TestLedgerReconcileActive(t *testing.T) {
	l := NewLedger()
	for id := int64(1); id <= 3; id++ {
		l.Accept(acceptEvent(id, "Mission_Collect", "$gold_name;", intPtr(1)))
	}

	if changed := l.ReconcileActive([]int64{1, 3}); !changed {
		t.Error("ReconcileActive dropping a mission reported no change")
	}
	if l.Get(2) != nil {
		t.Error("mission 2 should have been dropped")
	}
	if l.Get(1) == nil || l.Get(3) == nil {
		t.Error("active missions dropped")
	}

	if changed := l.ReconcileActive([]int64{1, 3}); changed {
		t.Error("ReconcileActive with no drops reported a change")
	}
}

func TestLedgerDepotUpdateKnownMission(t *testing.T) {
	l := NewLedger()
	l.Accept(acceptEvent(1, "Mission_Delivery", "$gold_name;", intPtr(10)))

	l.OnDepotUpdate(&journal.CargoDepot{
		MissionID:           1,
		TotalItemsToDeliver: 10,
		ItemsDelivered:      4,
	})

	m := l.Get(1)
	if m.Remaining != 6 {
		t.Errorf("Remaining = %d, want 6", m.Remaining)
	}
	if !m.Allocated {
		t.Error("depot update clobbered the Allocated flag")
	}
}

func TestLedgerDepotUpdateUnknownMission(t *testing.T) {
	l := NewLedger()
	l.OnDepotUpdate(&journal.CargoDepot{
		MissionID:           42,
		CargoType:           "$gold_name;",
		CargoTypeLocalised:  "Gold",
		TotalItemsToDeliver: 12,
		ItemsDelivered:      5,
		ItemsCollected:      3,
	})

	m := l.Get(42)
	if m == nil {
		t.Fatal("depot update for unknown mission did not synthesize a record")
	}
	if m.Name != "gold" || m.DisplayName != "Gold" {
		t.Errorf("name = %q/%q, want gold/Gold", m.Name, m.DisplayName)
	}
	if m.Total != 12 || m.Remaining != 7 {
		t.Errorf("Total/Remaining = %d/%d, want 12/7", m.Total, m.Remaining)
	}
	if !m.Allocated {
		t.Error("ItemsCollected > 0 should mark the mission allocated")
	}
	if m.Stolen {
		t.Error("synthesized record must not guess stolen")
	}
}

func TestLedgerDepotUpdateClampsRemaining(t *testing.T) {
	l := NewLedger()
	l.OnDepotUpdate(&journal.CargoDepot{
		MissionID:           7,
		CargoType:           "gold",
		TotalItemsToDeliver: 3,
		ItemsDelivered:      5,
	})
	if m := l.Get(7); m.Remaining != 0 {
		t.Errorf("Remaining = %d, want 0", m.Remaining)
	}
}
