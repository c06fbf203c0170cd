package nav

import "sync"

// MenuSurface is the visual side of the mobile menu.
type MenuSurface interface {
	SetMenuOpen(open bool)
	FocusFirstLink()
	FocusToggle()
}

// Menu holds the open/closed state of the navigation menu with the basic
// focus handling the page does: first link on open, back to the toggle
// button on close.
type Menu struct {
	surface MenuSurface

	mu   sync.Mutex
	open bool
}

func NewMenu(surface MenuSurface) *Menu {
	return &Menu{surface: surface}
}

// Toggle flips the menu and returns the new open state.
func (m *Menu) Toggle() bool {
	m.mu.Lock()
	m.open = !m.open
	open := m.open
	m.mu.Unlock()

	m.surface.SetMenuOpen(open)
	if open {
		m.surface.FocusFirstLink()
	} else {
		m.surface.FocusToggle()
	}
	return open
}

// Close closes the menu if open (nav-link click, escape).
func (m *Menu) Close() {
	m.mu.Lock()
	if !m.open {
		m.mu.Unlock()
		return
	}
	m.open = false
	m.mu.Unlock()

	m.surface.SetMenuOpen(false)
	m.surface.FocusToggle()
}

// IsOpen reports the current state.
func (m *Menu) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}
