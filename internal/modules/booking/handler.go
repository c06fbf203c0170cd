package booking

import (
	"errors"

	"go.uber.org/zap"

	"studiosite/internal/events"
)

// Handler wires the sequencer to the event router: form-submit events carry
// the raw field values, field-edit events drive the status auto-clear.
type Handler struct {
	seq           *Sequencer
	honeypotField string
	log           *zap.Logger
}

func NewHandler(seq *Sequencer, honeypotField string, log *zap.Logger) *Handler {
	return &Handler{seq: seq, honeypotField: honeypotField, log: log}
}

func (h *Handler) Register(bus *events.Bus) {
	bus.Subscribe(events.TopicFormSubmit, h.onSubmit)
	bus.Subscribe(events.TopicFieldEdit, h.onFieldEdit)
}

func (h *Handler) onSubmit(e events.Event) {
	values, ok := e.Payload.(map[string]string)
	if !ok {
		h.log.Warn("form-submit event with unexpected payload")
		return
	}
	if err := h.seq.Submit(FromValues(values, h.honeypotField)); err != nil {
		if errors.Is(err, ErrSubmitInFlight) {
			h.log.Debug("submit ignored, send in flight")
			return
		}
		h.log.Error("submit failed", zap.Error(err))
	}
}

func (h *Handler) onFieldEdit(events.Event) {
	h.seq.FieldEdited()
}
