package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"studiosite/internal/config"
	"studiosite/internal/events"
	"studiosite/internal/modules/gallery"
	"studiosite/internal/modules/nav"
)

type recordingSurface struct {
	mu       sync.Mutex
	statuses []string
	filters  []string
	pages    []int
	menuOpen bool
	revealed []string
}

func (r *recordingSurface) ShowStatus(text string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, text)
}
func (r *recordingSurface) ClearStatus() {}
func (r *recordingSurface) ResetFields() {}

func (r *recordingSurface) SetTrackOffset(string, float64) {}
func (r *recordingSurface) SetActivePage(_ string, index int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pages = append(r.pages, index)
}
func (r *recordingSurface) RebuildIndicators(string, int) {}

func (r *recordingSurface) SetVisibleItems(ids []string) {}
func (r *recordingSurface) SetActiveFilter(category string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filters = append(r.filters, category)
}

func (r *recordingSurface) SetMenuOpen(open bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.menuOpen = open
}
func (r *recordingSurface) FocusFirstLink() {}
func (r *recordingSurface) FocusToggle()    {}

func (r *recordingSurface) Reveal(ids []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.revealed = append(r.revealed, ids...)
}

type countSource map[string]int

func (s countSource) ItemCount(id string) int { return s[id] }

func newTestApp(t *testing.T, surface *recordingSurface) *App {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.AutoAdvance = 0 // no auto-advance in tests
	cfg.SubmitDelay = 10 * time.Millisecond
	cfg.ResizeDebounce = 10 * time.Millisecond

	return New(cfg, zap.NewNop(), Surfaces{
		Form:     surface,
		Carousel: surface,
		Gallery:  surface,
		Menu:     surface,
		Reveal:   surface,
	}, Content{
		PortfolioItems: []gallery.Item{{ID: "w1", Category: "weddings"}, {ID: "p1", Category: "portraits"}},
		CarouselItems:  countSource{"weddings": 7},
		RevealElements: []nav.Element{{ID: "hero", Top: 0}},
		ViewportWidth:  1024,
	})
}

func TestApp_RoutesEventsToFeatures(t *testing.T) {
	surface := &recordingSurface{}
	a := newTestApp(t, surface)
	defer a.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a.Run(ctx)

	a.Bus().Publish(events.Event{Topic: events.TopicCategoryChange, Payload: "weddings"})
	a.Bus().Publish(events.Event{Topic: events.TopicFilterChange, Payload: "portraits"})
	a.Bus().Publish(events.Event{Topic: events.TopicMenuToggle})
	a.Bus().Publish(events.Event{Topic: events.TopicScroll, Payload: nav.ScrollPayload{Y: 0, ViewportHeight: 800}})
	a.Bus().Publish(events.Event{Topic: events.TopicFormSubmit, Payload: map[string]string{"firstName": "Ava"}})

	assert.Eventually(t, func() bool {
		surface.mu.Lock()
		defer surface.mu.Unlock()
		return len(surface.pages) > 0 &&
			len(surface.filters) == 1 &&
			surface.menuOpen &&
			len(surface.revealed) == 1 &&
			len(surface.statuses) == 1
	}, time.Second, 10*time.Millisecond)

	surface.mu.Lock()
	defer surface.mu.Unlock()
	assert.Equal(t, "portraits", surface.filters[0])
	assert.Equal(t, []string{"hero"}, surface.revealed)
	// Incomplete form input surfaces the missing-field message.
	assert.Equal(t, "Please fill in all required fields.", surface.statuses[0])
}

func TestApp_CarouselResizeViaBus(t *testing.T) {
	surface := &recordingSurface{}
	a := newTestApp(t, surface)
	defer a.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a.Run(ctx)

	a.Bus().Publish(events.Event{Topic: events.TopicCategoryChange, Payload: "weddings"})
	a.Bus().Publish(events.Event{Topic: events.TopicResize, Payload: 480})

	// After debounce the pager runs with one item per page: 7 pages.
	assert.Eventually(t, func() bool {
		return a.CarouselPageCount() == 7
	}, time.Second, 10*time.Millisecond)
}

func TestApp_BrokenFeatureDoesNotBlockOthers(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	surface := &recordingSurface{}
	// Nil carousel item source makes carousel init panic; the rest must
	// still come up.
	a := New(cfg, zap.NewNop(), Surfaces{
		Form:     surface,
		Carousel: surface,
		Gallery:  surface,
		Menu:     surface,
		Reveal:   surface,
	}, Content{
		PortfolioItems: []gallery.Item{{ID: "w1", Category: "weddings"}},
		CarouselItems:  nil,
		ViewportWidth:  1024,
	})
	defer a.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a.Run(ctx)

	a.Bus().Publish(events.Event{Topic: events.TopicFilterChange, Payload: "weddings"})
	assert.Eventually(t, func() bool {
		surface.mu.Lock()
		defer surface.mu.Unlock()
		return len(surface.filters) == 1
	}, time.Second, 10*time.Millisecond)
}
