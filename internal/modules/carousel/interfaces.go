package carousel

// Surface is the visual side of the carousel: the track transform and the
// page-indicator dots.
type Surface interface {
	SetTrackOffset(categoryID string, percent float64)
	SetActivePage(categoryID string, index int)
	RebuildIndicators(categoryID string, pageCount int)
}

// ItemSource reports how many items a category holds. The page layer owns
// the actual item markup; the pager only needs counts.
type ItemSource interface {
	ItemCount(categoryID string) int
}
