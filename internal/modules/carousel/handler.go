package carousel

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"studiosite/internal/events"
	"studiosite/internal/timing"
)

// HoverPayload reports pointer enter/exit over the carousel region.
type HoverPayload struct {
	Entered bool
}

// Handler wires the controller to the event router. Resize events are
// debounced so a drag-resize rebuilds the carousel once, at the final
// width.
type Handler struct {
	ctrl *Controller
	log  *zap.Logger

	mu            sync.Mutex
	lastWidth     int
	resizeTrigger func()
}

func NewHandler(ctrl *Controller, resizeDebounce time.Duration, log *zap.Logger) *Handler {
	h := &Handler{ctrl: ctrl, log: log}
	h.resizeTrigger = timing.Debounce(resizeDebounce, h.processResize)
	return h
}

func (h *Handler) Register(bus *events.Bus) {
	bus.Subscribe(events.TopicCategoryChange, h.onCategoryChange)
	bus.Subscribe(events.TopicResize, h.onResize)
	bus.Subscribe(events.TopicCarouselHover, h.onHover)
}

func (h *Handler) onCategoryChange(e events.Event) {
	id, ok := e.Payload.(string)
	if !ok {
		h.log.Warn("category-change event with unexpected payload")
		return
	}
	h.ctrl.SelectCategory(id)
}

func (h *Handler) onResize(e events.Event) {
	width, ok := e.Payload.(int)
	if !ok {
		return
	}
	h.mu.Lock()
	h.lastWidth = width
	h.mu.Unlock()
	h.resizeTrigger()
}

func (h *Handler) processResize() {
	h.mu.Lock()
	width := h.lastWidth
	h.mu.Unlock()
	h.ctrl.Resize(width)
}

func (h *Handler) onHover(e events.Event) {
	p, ok := e.Payload.(HoverPayload)
	if !ok {
		return
	}
	if p.Entered {
		h.ctrl.HoverStart()
	} else {
		h.ctrl.HoverEnd()
	}
}
