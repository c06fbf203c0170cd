package carousel

// Pure paging math. The controller owns state; everything here is a
// function of its arguments.

// ItemsPerPage returns how many items one page shows at the given viewport
// width: wide pages at or above the breakpoint, narrow pages below it.
func ItemsPerPage(viewportWidth, breakpoint, wide, narrow int) int {
	if viewportWidth >= breakpoint {
		return wide
	}
	return narrow
}

// PageCount is ceil(itemCount/itemsPerPage), never less than 1 so an empty
// category still renders one (empty) page.
func PageCount(itemCount, itemsPerPage int) int {
	if itemsPerPage < 1 {
		itemsPerPage = 1
	}
	count := (itemCount + itemsPerPage - 1) / itemsPerPage
	if count < 1 {
		return 1
	}
	return count
}

// ClampPage forces index into [0, pageCount-1].
func ClampPage(index, pageCount int) int {
	if pageCount < 1 {
		return 0
	}
	if index < 0 {
		return 0
	}
	if index >= pageCount {
		return pageCount - 1
	}
	return index
}

// Advance moves one page forward, wrapping past the last page to 0.
func Advance(index, pageCount int) int {
	if pageCount < 1 {
		return 0
	}
	return (index + 1) % pageCount
}

// OffsetPercent is the horizontal track translation for a page, as a
// percentage of track width: -index * (100 / itemsPerPage).
func OffsetPercent(index, itemsPerPage int) float64 {
	if itemsPerPage < 1 {
		itemsPerPage = 1
	}
	return -float64(index) * (100.0 / float64(itemsPerPage))
}
