package commerce

import (
	"context"
	"strings"
)

// Snapshot is the immutable category list fetched once at startup. An empty
// snapshot resolves nothing, so a failed startup fetch fails closed.
type Snapshot struct {
	names []string
	ids   map[string]int
}

// NewSnapshot builds a snapshot from fetched categories, preserving fetch order
func NewSnapshot(categories []Category) *Snapshot {
	snapshot := &Snapshot{
		names: make([]string, 0, len(categories)),
		ids:   make(map[string]int, len(categories)),
	}
	for _, category := range categories {
		snapshot.names = append(snapshot.names, category.Name)
		snapshot.ids[strings.ToLower(category.Name)] = category.ID
	}
	return snapshot
}

// EmptySnapshot is the fail-closed snapshot used when the startup fetch failed
func EmptySnapshot() *Snapshot {
	return NewSnapshot(nil)
}

// Names returns the category names in fetch order, for display
func (s *Snapshot) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// Resolve maps a user-typed category name to its id, case-insensitively
func (s *Snapshot) Resolve(name string) (int, bool) {
	id, ok := s.ids[strings.ToLower(strings.TrimSpace(name))]
	return id, ok
}

// Len returns the number of categories in the snapshot
func (s *Snapshot) Len() int {
	return len(s.names)
}

// LoadSnapshot issues the single startup category fetch. There is no retry:
// the caller keeps the empty snapshot on error.
func LoadSnapshot(ctx context.Context, client *Client) (*Snapshot, error) {
	categories, err := client.ListCategories(ctx)
	if err != nil {
		return EmptySnapshot(), err
	}
	return NewSnapshot(categories), nil
}
