package search

// Salary slider bounds, matching the UI's two-handle slider.
const (
	SalaryFloor   int64 = 0
	SalaryCeiling int64 = 200000
)

// SalaryRange is the two-handle salary slider. The handles are coupled:
// dragging one past the other drags the other along, so Min <= Max holds
// after every update instead of the drag being rejected.
type SalaryRange struct {
	Min int64
	Max int64
}

// NewSalaryRange returns a range spanning the full slider bounds.
func NewSalaryRange() SalaryRange {
	return SalaryRange{Min: SalaryFloor, Max: SalaryCeiling}
}

func clamp(v int64) int64 {
	if v < SalaryFloor {
		return SalaryFloor
	}
	if v > SalaryCeiling {
		return SalaryCeiling
	}
	return v
}

// SetMin moves the min handle. Moving it above the current max raises
// the max to match.
func (r *SalaryRange) SetMin(v int64) {
	r.Min = clamp(v)
	if r.Min > r.Max {
		r.Max = r.Min
	}
}

// SetMax moves the max handle. Moving it below the current min lowers
// the min to match.
func (r *SalaryRange) SetMax(v int64) {
	r.Max = clamp(v)
	if r.Max < r.Min {
		r.Min = r.Max
	}
}

// Contains reports whether amount falls inside the range, inclusive.
func (r SalaryRange) Contains(amount int64) bool {
	return amount >= r.Min && amount <= r.Max
}
