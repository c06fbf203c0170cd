package booking

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"studiosite/internal/timing"
)

// State of the submission sequencer.
type State string

const (
	StateIdle    State = "idle"
	StateSending State = "sending"
	StateSent    State = "sent"
)

// SequencerConfig carries the booking-flow timings and options.
type SequencerConfig struct {
	SubmitDelay  time.Duration // simulated network latency
	StatusTTL    time.Duration // how long the success status stays up
	EditDebounce time.Duration // quiet period before an edit clears an error
	PhoneRegion  string
}

// Sequencer drives a submission through Idle -> Sending -> Sent -> Idle.
// Invalid input shows an error immediately and stays Idle; the error clears
// once the visitor edits a field (debounced). Valid input simulates a send
// after a fixed delay, then shows success, resets the form and auto-clears.
type Sequencer struct {
	validator  *Validator
	dispatcher Dispatcher
	surface    FormSurface
	log        *zap.Logger
	cfg        SequencerConfig

	mu          sync.Mutex
	state       State
	errorShown  bool
	sendTimer   timing.Timer
	clearTimer  timing.Timer
	editTrigger func()
}

func NewSequencer(v *Validator, d Dispatcher, surface FormSurface, log *zap.Logger, cfg SequencerConfig) *Sequencer {
	s := &Sequencer{
		validator:  v,
		dispatcher: d,
		surface:    surface,
		log:        log,
		cfg:        cfg,
		state:      StateIdle,
	}
	s.editTrigger = timing.Debounce(cfg.EditDebounce, s.clearEditedStatus)
	return s
}

// State returns the current sequencer state.
func (s *Sequencer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Submit validates the input and either surfaces the first violation or
// starts the simulated send. Submits while a send is in flight are refused.
func (s *Sequencer) Submit(in FormInput) error {
	s.mu.Lock()
	if s.state != StateIdle {
		s.mu.Unlock()
		return ErrSubmitInFlight
	}

	res := s.validator.Validate(in)
	if !res.Valid {
		s.errorShown = true
		s.mu.Unlock()
		s.log.Debug("booking form rejected",
			zap.String("reason", string(res.Reason)),
			zap.String("field", res.Field),
		)
		// Errors display with no delay.
		s.surface.ShowStatus(statusText(res), false)
		return nil
	}

	s.state = StateSending
	s.errorShown = false
	s.mu.Unlock()

	s.surface.ShowStatus("Sending your request...", true)
	s.sendTimer.Schedule(s.cfg.SubmitDelay, func() { s.complete(in) })
	return nil
}

func (s *Sequencer) complete(in FormInput) {
	inq := NewInquiry(in, s.cfg.PhoneRegion)
	if err := s.dispatcher.Dispatch(context.Background(), inq); err != nil {
		// The simulated path cannot fail; log and carry on if a real one does.
		s.log.Error("inquiry dispatch failed", zap.Error(err), zap.String("inquiry_id", inq.ID))
	}

	s.mu.Lock()
	s.state = StateSent
	s.mu.Unlock()

	s.surface.ResetFields()
	s.surface.ShowStatus("Thank you! We will get back to you within one business day.", true)
	s.clearTimer.Schedule(s.cfg.StatusTTL, s.expireStatus)
}

func (s *Sequencer) expireStatus() {
	s.mu.Lock()
	s.state = StateIdle
	s.mu.Unlock()
	s.surface.ClearStatus()
}

// FieldEdited notes that the visitor changed a field. A visible error is
// cleared after the debounce window; send/sent statuses are untouched.
func (s *Sequencer) FieldEdited() {
	s.mu.Lock()
	pending := s.state == StateIdle && s.errorShown
	s.mu.Unlock()
	if pending {
		s.editTrigger()
	}
}

func (s *Sequencer) clearEditedStatus() {
	s.mu.Lock()
	if s.state != StateIdle || !s.errorShown {
		s.mu.Unlock()
		return
	}
	s.errorShown = false
	s.mu.Unlock()
	s.surface.ClearStatus()
}

// Close cancels pending timers. Safe to call at shutdown regardless of state.
func (s *Sequencer) Close() {
	s.sendTimer.Stop()
	s.clearTimer.Stop()
}

func statusText(res Result) string {
	switch res.Reason {
	case ReasonSpam:
		return "Your submission could not be processed."
	case ReasonMissingField:
		return "Please fill in all required fields."
	case ReasonBadEmail:
		return "Please enter a valid email address."
	case ReasonBadPhone:
		return "Please enter a valid phone number."
	case ReasonPastDate:
		return "Please choose a date that is not in the past."
	default:
		return "Please check the form and try again."
	}
}
