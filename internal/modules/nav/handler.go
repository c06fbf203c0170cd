package nav

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"studiosite/internal/events"
	"studiosite/internal/timing"
)

// ScrollPayload carries the viewport position for scroll events.
type ScrollPayload struct {
	Y              int
	ViewportHeight int
}

// Handler wires menu toggling and scroll-reveal to the router. Scroll
// events are throttled here; the reveal logic sees the latest position at
// most once per interval.
type Handler struct {
	menu   *Menu
	reveal *Reveal
	log    *zap.Logger

	mu            sync.Mutex
	lastScroll    ScrollPayload
	scrollTrigger func()
}

func NewHandler(menu *Menu, reveal *Reveal, throttle time.Duration, log *zap.Logger) *Handler {
	h := &Handler{menu: menu, reveal: reveal, log: log}
	h.scrollTrigger = timing.Throttle(throttle, h.processScroll)
	return h
}

func (h *Handler) Register(bus *events.Bus) {
	bus.Subscribe(events.TopicMenuToggle, h.onMenuToggle)
	bus.Subscribe(events.TopicScroll, h.onScroll)
}

func (h *Handler) onMenuToggle(events.Event) {
	open := h.menu.Toggle()
	h.log.Debug("menu toggled", zap.Bool("open", open))
}

func (h *Handler) onScroll(e events.Event) {
	p, ok := e.Payload.(ScrollPayload)
	if !ok {
		return
	}
	h.mu.Lock()
	h.lastScroll = p
	h.mu.Unlock()
	h.scrollTrigger()
}

func (h *Handler) processScroll() {
	h.mu.Lock()
	p := h.lastScroll
	h.mu.Unlock()
	h.reveal.OnScroll(p.Y, p.ViewportHeight)
}
