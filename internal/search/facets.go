package search

import (
	"github.com/jonathan/jobboard/internal/db"
)

// Facets holds the listing page's filter state: one checkbox per
// employment type, one per tag (category name), and the salary range.
type Facets struct {
	FullTime  bool
	PartTime  bool
	Contract  bool
	Temporary bool

	Tags map[string]bool

	Salary SalaryRange
}

// NewFacets returns a cleared filter state with the salary range at its
// full bounds.
func NewFacets() Facets {
	return Facets{
		Tags:   map[string]bool{},
		Salary: NewSalaryRange(),
	}
}

// Clear resets every checkbox; the salary range snaps back to its bounds.
func (f *Facets) Clear() {
	f.FullTime = false
	f.PartTime = false
	f.Contract = false
	f.Temporary = false
	f.Tags = map[string]bool{}
	f.Salary = NewSalaryRange()
}

func (f *Facets) anyChecked() bool {
	if f.FullTime || f.PartTime || f.Contract || f.Temporary {
		return true
	}
	for _, on := range f.Tags {
		if on {
			return true
		}
	}
	return false
}

func (f *Facets) matchesType(employmentType string) bool {
	switch employmentType {
	case db.EmploymentFullTime:
		return f.FullTime
	case db.EmploymentPartTime:
		return f.PartTime
	case db.EmploymentContract:
		return f.Contract
	case db.EmploymentTemporary:
		return f.Temporary
	}
	return false
}

// Matches reports whether a job passes the checkbox facets. With no box
// checked every job passes. Otherwise a job passes when it matches ANY
// checked employment type OR ANY checked tag: the filter is a union
// across all checked boxes, not an intersection per group. Selecting
// "full-time" and "chef" shows full-time jobs of every tag alongside
// chef jobs of every type.
func (f *Facets) Matches(job *db.Job) bool {
	if !f.anyChecked() {
		return true
	}
	return f.matchesType(job.EmploymentType) || f.Tags[job.Category]
}

// Apply computes the display set: the checkbox union above, then the
// salary range as an independent conjunct.
func (f *Facets) Apply(jobs []db.Job) []db.Job {
	out := []db.Job{}
	for i := range jobs {
		if f.Matches(&jobs[i]) && f.Salary.Contains(jobs[i].SalaryAmount) {
			out = append(out, jobs[i])
		}
	}
	return out
}
