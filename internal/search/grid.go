package search

// GridColumns is the listing page's grid density. Toggling cycles
// 3 -> 2 -> 1 -> 3 columns, independent of any filtering.
type GridColumns int

// DefaultGridColumns is the initial grid density.
const DefaultGridColumns GridColumns = 3

// Next returns the following density in the cycle.
func (g GridColumns) Next() GridColumns {
	switch g {
	case 3:
		return 2
	case 2:
		return 1
	default:
		return 3
	}
}
