package gallery

import (
	"go.uber.org/zap"

	"studiosite/internal/events"
)

// Handler wires the filter to filter-change events.
type Handler struct {
	filter *Filter
	log    *zap.Logger
}

func NewHandler(filter *Filter, log *zap.Logger) *Handler {
	return &Handler{filter: filter, log: log}
}

func (h *Handler) Register(bus *events.Bus) {
	bus.Subscribe(events.TopicFilterChange, h.onFilterChange)
}

func (h *Handler) onFilterChange(e events.Event) {
	category, ok := e.Payload.(string)
	if !ok {
		h.log.Warn("filter-change event with unexpected payload")
		return
	}
	h.filter.Apply(category)
}
