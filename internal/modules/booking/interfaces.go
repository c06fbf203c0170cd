package booking

import "context"

// FormSurface is the slice of UI the booking flow writes to: a status line,
// and the form fields it clears after a successful send.
type FormSurface interface {
	ShowStatus(text string, ok bool)
	ClearStatus()
	ResetFields()
}

// Dispatcher receives the finished inquiry. The engine ships a logging
// simulation; a real transport plugs in here.
type Dispatcher interface {
	Dispatch(ctx context.Context, inq Inquiry) error
}
