package nav

import "sync"

// RevealSurface receives elements whose fade-in should start.
type RevealSurface interface {
	Reveal(ids []string)
}

// Element is a revealable page element at a fixed vertical offset.
type Element struct {
	ID  string
	Top int
}

// Reveal implements fade-in-on-view: an element is revealed once its top
// rises above the bottom of the viewport minus a threshold. Revealing is
// monotonic; scrolling back up never hides an element again.
type Reveal struct {
	surface   RevealSurface
	threshold int

	mu       sync.Mutex
	elements []Element
	revealed map[string]bool
}

func NewReveal(elements []Element, threshold int, surface RevealSurface) *Reveal {
	return &Reveal{
		surface:   surface,
		threshold: threshold,
		elements:  elements,
		revealed:  make(map[string]bool, len(elements)),
	}
}

// OnScroll checks the viewport against element offsets and reveals whatever
// newly entered view.
func (r *Reveal) OnScroll(scrollY, viewportHeight int) {
	limit := scrollY + viewportHeight - r.threshold

	r.mu.Lock()
	var fresh []string
	for _, el := range r.elements {
		if r.revealed[el.ID] || el.Top >= limit {
			continue
		}
		r.revealed[el.ID] = true
		fresh = append(fresh, el.ID)
	}
	r.mu.Unlock()

	if len(fresh) > 0 {
		r.surface.Reveal(fresh)
	}
}

// RevealedCount reports how many elements have been revealed so far.
func (r *Reveal) RevealedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.revealed)
}
