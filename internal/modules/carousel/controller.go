package carousel

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"studiosite/internal/timing"
)

// Config holds the responsive and timing knobs of the carousel.
type Config struct {
	Breakpoint  int
	ItemsWide   int
	ItemsNarrow int
	AutoAdvance time.Duration
}

// Controller holds the paging state of the active category: switching
// categories replaces it, resizing rebuilds it. Auto-advance runs on one
// ticker that hover pauses and pointer-exit resumes; the ticker handle is
// reused, never duplicated.
type Controller struct {
	cfg     Config
	surface Surface
	items   ItemSource
	log     *zap.Logger

	mu            sync.Mutex
	categoryID    string
	itemCount     int
	itemsPerPage  int
	pageIndex     int
	viewportWidth int
	hovered       bool

	ticker *timing.Ticker
}

// NewController panics on a nil item source: a carousel without content is
// a wiring mistake that should surface at startup, not on first use.
func NewController(cfg Config, surface Surface, items ItemSource, log *zap.Logger, viewportWidth int) *Controller {
	if items == nil {
		panic("carousel: nil item source")
	}
	c := &Controller{
		cfg:           cfg,
		surface:       surface,
		items:         items,
		log:           log,
		viewportWidth: viewportWidth,
	}
	c.itemsPerPage = ItemsPerPage(viewportWidth, cfg.Breakpoint, cfg.ItemsWide, cfg.ItemsNarrow)
	c.ticker = timing.NewTicker(cfg.AutoAdvance, c.autoAdvance)
	return c
}

// SelectCategory makes a category active, resetting the page to 0 and
// rebuilding the indicators for its page count.
func (c *Controller) SelectCategory(categoryID string) {
	count := c.items.ItemCount(categoryID)

	c.mu.Lock()
	c.categoryID = categoryID
	c.itemCount = count
	c.pageIndex = 0
	c.itemsPerPage = ItemsPerPage(c.viewportWidth, c.cfg.Breakpoint, c.cfg.ItemsWide, c.cfg.ItemsNarrow)
	hovered := c.hovered
	c.mu.Unlock()

	c.log.Debug("carousel category selected",
		zap.String("category", categoryID),
		zap.Int("items", count),
	)
	c.rebuild()
	if !hovered {
		c.ticker.Resume()
	}
}

// Resize re-evaluates the breakpoint and rebuilds the active category's
// paging from page 0.
func (c *Controller) Resize(viewportWidth int) {
	c.mu.Lock()
	c.viewportWidth = viewportWidth
	c.itemsPerPage = ItemsPerPage(viewportWidth, c.cfg.Breakpoint, c.cfg.ItemsWide, c.cfg.ItemsNarrow)
	c.pageIndex = 0
	active := c.categoryID != ""
	c.mu.Unlock()

	if active {
		c.rebuild()
	}
}

// Advance moves to the next page, wrapping after the last one.
func (c *Controller) Advance() {
	c.mu.Lock()
	if c.categoryID == "" {
		c.mu.Unlock()
		return
	}
	c.pageIndex = Advance(c.pageIndex, PageCount(c.itemCount, c.itemsPerPage))
	c.mu.Unlock()
	c.apply()
}

// GoTo jumps to a page (indicator dot click), clamped to the valid range.
func (c *Controller) GoTo(index int) {
	c.mu.Lock()
	if c.categoryID == "" {
		c.mu.Unlock()
		return
	}
	c.pageIndex = ClampPage(index, PageCount(c.itemCount, c.itemsPerPage))
	c.mu.Unlock()
	c.apply()
}

// HoverStart suspends auto-advance while the pointer is over the carousel.
func (c *Controller) HoverStart() {
	c.mu.Lock()
	c.hovered = true
	c.mu.Unlock()
	c.ticker.Pause()
}

// HoverEnd resumes auto-advance. The paused ticker is resumed, not
// replaced, so repeated hover cycles cannot stack intervals.
func (c *Controller) HoverEnd() {
	c.mu.Lock()
	c.hovered = false
	active := c.categoryID != ""
	c.mu.Unlock()
	if active {
		c.ticker.Resume()
	}
}

// PageIndex returns the current page of the active category.
func (c *Controller) PageIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pageIndex
}

// PageCount returns the page count for the active category at the current
// viewport width.
func (c *Controller) PageCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return PageCount(c.itemCount, c.itemsPerPage)
}

// Close stops auto-advance.
func (c *Controller) Close() {
	c.ticker.Stop()
}

func (c *Controller) autoAdvance() {
	c.Advance()
}

// rebuild pushes indicators and position for the (re)built state.
func (c *Controller) rebuild() {
	c.mu.Lock()
	id := c.categoryID
	count := PageCount(c.itemCount, c.itemsPerPage)
	c.mu.Unlock()

	c.surface.RebuildIndicators(id, count)
	c.apply()
}

func (c *Controller) apply() {
	c.mu.Lock()
	id := c.categoryID
	index := c.pageIndex
	per := c.itemsPerPage
	c.mu.Unlock()

	c.surface.SetTrackOffset(id, OffsetPercent(index, per))
	c.surface.SetActivePage(id, index)
}
