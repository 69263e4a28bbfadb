package commerce

import "testing"

func testCategories() []Category {
	return []Category{
		{ID: 1, Name: "Albums"},
		{ID: 2, Name: "Vinyls"},
		{ID: 3, Name: "Merchandising"},
	}
}

func TestSnapshotResolve(t *testing.T) {
	snapshot := NewSnapshot(testCategories())

	tests := []struct {
		name   string
		input  string
		wantID int
		wantOK bool
	}{
		{"exact match", "Albums", 1, true},
		{"case insensitive", "vinyls", 2, true},
		{"mixed case", "MERCHANDISING", 3, true},
		{"surrounding whitespace", "  Albums  ", 1, true},
		{"unknown category", "Shoes", 0, false},
		{"empty input", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := snapshot.Resolve(tt.input)
			if ok != tt.wantOK || id != tt.wantID {
				t.Errorf("Resolve(%q) = (%d, %v), want (%d, %v)", tt.input, id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestSnapshotNamesPreserveOrder(t *testing.T) {
	snapshot := NewSnapshot(testCategories())

	names := snapshot.Names()
	want := []string{"Albums", "Vinyls", "Merchandising"}
	if len(names) != len(want) {
		t.Fatalf("Names() returned %d entries, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	// The returned slice is a copy, mutating it must not touch the snapshot
	names[0] = "mutated"
	if snapshot.Names()[0] != "Albums" {
		t.Error("mutating the returned slice changed the snapshot")
	}
}

func TestEmptySnapshotFailsClosed(t *testing.T) {
	snapshot := EmptySnapshot()

	if snapshot.Len() != 0 {
		t.Errorf("EmptySnapshot().Len() = %d, want 0", snapshot.Len())
	}
	if len(snapshot.Names()) != 0 {
		t.Error("EmptySnapshot().Names() is not empty")
	}
	if _, ok := snapshot.Resolve("Albums"); ok {
		t.Error("EmptySnapshot() resolved a category")
	}
}
