package roster

import (
	"reflect"
	"testing"
)

func TestSplit_BenchExcludesStarters(t *testing.T) {
	t.Parallel()

	item := Roster{
		Players:  []string{"p1", "p2", "p3", "p2", "p4", "p5", "p5"},
		Starters: []string{"p2", "p4", "p4"},
		Taxi:     []string{"t1", "t1"},
	}

	got := Split(item)
	if want := []string{"p1", "p3", "p5", "p5"}; !reflect.DeepEqual(got.Bench, want) {
		t.Fatalf("unexpected bench: got=%v want=%v", got.Bench, want)
	}
	if want := []string{"p2", "p4", "p4"}; !reflect.DeepEqual(got.Starters, want) {
		t.Fatalf("unexpected starters: got=%v want=%v", got.Starters, want)
	}
	if want := []string{"t1", "t1"}; !reflect.DeepEqual(got.Taxi, want) {
		t.Fatalf("unexpected taxi: got=%v want=%v", got.Taxi, want)
	}

	starterSet := map[string]struct{}{}
	for _, id := range got.Starters {
		starterSet[id] = struct{}{}
	}
	covered := map[string]struct{}{}
	for _, id := range got.Bench {
		if _, ok := starterSet[id]; ok {
			t.Fatalf("starter %s leaked into bench", id)
		}
		covered[id] = struct{}{}
	}
	for id := range starterSet {
		covered[id] = struct{}{}
	}
	for _, id := range item.Players {
		if _, ok := covered[id]; !ok {
			t.Fatalf("player %s missing from bench and starters", id)
		}
	}
}

func TestSplit_EmptyRoster(t *testing.T) {
	t.Parallel()

	got := Split(Roster{})
	if len(got.Starters) != 0 || len(got.Bench) != 0 || len(got.Taxi) != 0 {
		t.Fatalf("expected empty sections, got=%+v", got)
	}
}

func TestSections_PlayerIDs(t *testing.T) {
	t.Parallel()

	sections := Sections{
		Starters: []string{"a", "b"},
		Bench:    []string{"c", "a"},
		Taxi:     []string{"d", "c"},
	}
	if want := []string{"a", "b", "c", "d"}; !reflect.DeepEqual(sections.PlayerIDs(), want) {
		t.Fatalf("unexpected ids: got=%v want=%v", sections.PlayerIDs(), want)
	}
}
