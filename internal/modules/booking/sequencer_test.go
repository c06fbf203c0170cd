package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSurface struct {
	mu       sync.Mutex
	status   string
	ok       bool
	clears   int
	resets   int
	statuses []string
}

func (f *fakeSurface) ShowStatus(text string, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = text
	f.ok = ok
	f.statuses = append(f.statuses, text)
}

func (f *fakeSurface) ClearStatus() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = ""
	f.clears++
}

func (f *fakeSurface) ResetFields() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resets++
}

func (f *fakeSurface) snapshot() fakeSurface {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fakeSurface{status: f.status, ok: f.ok, clears: f.clears, resets: f.resets, statuses: append([]string(nil), f.statuses...)}
}

type recordingDispatcher struct {
	mu        sync.Mutex
	inquiries []Inquiry
}

func (d *recordingDispatcher) Dispatch(_ context.Context, inq Inquiry) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.inquiries = append(d.inquiries, inq)
	return nil
}

func (d *recordingDispatcher) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.inquiries)
}

func newTestSequencer(surface *fakeSurface, dispatcher Dispatcher) *Sequencer {
	return NewSequencer(NewValidator(false), dispatcher, surface, zap.NewNop(), SequencerConfig{
		SubmitDelay:  20 * time.Millisecond,
		StatusTTL:    30 * time.Millisecond,
		EditDebounce: 15 * time.Millisecond,
		PhoneRegion:  "US",
	})
}

func TestSequencer_InvalidShowsErrorImmediately(t *testing.T) {
	surface := &fakeSurface{}
	dispatcher := &recordingDispatcher{}
	seq := newTestSequencer(surface, dispatcher)
	defer seq.Close()

	in := validInput(t)
	in.Email = "nope"
	require.NoError(t, seq.Submit(in))

	// No delay on the error path.
	snap := surface.snapshot()
	assert.Equal(t, "Please enter a valid email address.", snap.status)
	assert.False(t, snap.ok)
	assert.Equal(t, StateIdle, seq.State())
	assert.Zero(t, dispatcher.count())
}

func TestSequencer_FullCycle(t *testing.T) {
	surface := &fakeSurface{}
	dispatcher := &recordingDispatcher{}
	seq := newTestSequencer(surface, dispatcher)
	defer seq.Close()

	require.NoError(t, seq.Submit(validInput(t)))
	assert.Equal(t, StateSending, seq.State())
	assert.Equal(t, "Sending your request...", surface.snapshot().status)

	assert.Eventually(t, func() bool { return seq.State() == StateSent }, time.Second, 5*time.Millisecond)
	snap := surface.snapshot()
	assert.Equal(t, 1, snap.resets)
	assert.True(t, snap.ok)
	assert.Contains(t, snap.status, "Thank you")
	assert.Equal(t, 1, dispatcher.count())

	// Success status expires back to Idle on its own.
	assert.Eventually(t, func() bool { return seq.State() == StateIdle }, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return surface.snapshot().clears == 1 }, time.Second, 5*time.Millisecond)
}

func TestSequencer_SubmitWhileSendingRefused(t *testing.T) {
	surface := &fakeSurface{}
	dispatcher := &recordingDispatcher{}
	seq := newTestSequencer(surface, dispatcher)
	defer seq.Close()

	require.NoError(t, seq.Submit(validInput(t)))
	assert.ErrorIs(t, seq.Submit(validInput(t)), ErrSubmitInFlight)

	assert.Eventually(t, func() bool { return seq.State() == StateIdle }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, dispatcher.count())
}

func TestSequencer_EditClearsErrorAfterDebounce(t *testing.T) {
	surface := &fakeSurface{}
	seq := newTestSequencer(surface, &recordingDispatcher{})
	defer seq.Close()

	in := validInput(t)
	in.Phone = "12345"
	require.NoError(t, seq.Submit(in))
	assert.NotEmpty(t, surface.snapshot().status)

	seq.FieldEdited()
	seq.FieldEdited()
	seq.FieldEdited()

	assert.Eventually(t, func() bool { return surface.snapshot().clears == 1 }, time.Second, 5*time.Millisecond)
	assert.Empty(t, surface.snapshot().status)

	// Further edits with no error showing do nothing.
	seq.FieldEdited()
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, 1, surface.snapshot().clears)
}

func TestSequencer_EditDoesNotTouchSendingStatus(t *testing.T) {
	surface := &fakeSurface{}
	seq := newTestSequencer(surface, &recordingDispatcher{})
	defer seq.Close()

	require.NoError(t, seq.Submit(validInput(t)))
	seq.FieldEdited()

	time.Sleep(18 * time.Millisecond)
	assert.NotEmpty(t, surface.snapshot().status)
}
