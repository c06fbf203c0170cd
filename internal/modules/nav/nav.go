package nav

import "time"

// FooterYear returns the year the footer copyright line shows.
func FooterYear(now func() time.Time) int {
	return now().Year()
}

// ScrollTarget resolves a nav anchor to its scroll offset. Unknown anchors
// resolve to the top of the page.
func ScrollTarget(anchors map[string]int, id string) int {
	if offset, ok := anchors[id]; ok {
		return offset
	}
	return 0
}
