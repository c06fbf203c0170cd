package gallery

import (
	"sync"

	"go.uber.org/zap"
)

// FilterAll shows every portfolio item regardless of category.
const FilterAll = "all"

// Item is one portfolio entry.
type Item struct {
	ID       string
	Category string
}

// Surface receives the visible-item set after a filter change.
type Surface interface {
	SetVisibleItems(ids []string)
	SetActiveFilter(category string)
}

// Filter computes which portfolio items a category filter shows. Items keep
// their original order in the visible set.
type Filter struct {
	surface Surface
	log     *zap.Logger

	mu     sync.Mutex
	items  []Item
	active string
}

func NewFilter(items []Item, surface Surface, log *zap.Logger) *Filter {
	return &Filter{
		surface: surface,
		log:     log,
		items:   items,
		active:  FilterAll,
	}
}

// Apply activates a category filter and pushes the resulting visible set.
// Reapplying the active filter is a no-op.
func (f *Filter) Apply(category string) {
	if category == "" {
		category = FilterAll
	}

	f.mu.Lock()
	if category == f.active {
		f.mu.Unlock()
		return
	}
	f.active = category
	visible := f.visibleLocked()
	f.mu.Unlock()

	f.log.Debug("portfolio filter applied",
		zap.String("category", category),
		zap.Int("visible", len(visible)),
	)
	f.surface.SetActiveFilter(category)
	f.surface.SetVisibleItems(visible)
}

// Active returns the current filter category.
func (f *Filter) Active() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active
}

// Visible returns the ids the current filter shows.
func (f *Filter) Visible() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.visibleLocked()
}

func (f *Filter) visibleLocked() []string {
	ids := make([]string, 0, len(f.items))
	for _, item := range f.items {
		if f.active == FilterAll || item.Category == f.active {
			ids = append(ids, item.ID)
		}
	}
	return ids
}
