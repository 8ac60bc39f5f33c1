package stats

import "github.com/jonathan/jobboard/internal/db"

// Overview is the headline figures block of the dashboard.
type Overview struct {
	TotalUsers           int `json:"total_users"`
	JobSeekers           int `json:"job_seekers"`
	Employers            int `json:"employers"`
	TotalJobs            int `json:"total_jobs"`
	ActiveJobs           int `json:"active_jobs"`
	TotalApplications    int `json:"total_applications"`
	PendingApplications  int `json:"pending_applications"`
	AcceptedApplications int `json:"accepted_applications"`

	// Integer percentages. Zero when the denominator is zero.
	AcceptanceRate int `json:"acceptance_rate"`
	ActiveJobRate  int `json:"active_job_rate"`
	EmployerShare  int `json:"employer_share"`
}

// ComputeOverview derives the headline figures from a snapshot.
func ComputeOverview(snap *Snapshot) Overview {
	var o Overview

	o.TotalUsers = len(snap.Profiles)
	for _, p := range snap.Profiles {
		switch p.Role {
		case db.RoleEmployer:
			o.Employers++
		case db.RoleJobSeeker:
			o.JobSeekers++
		}
	}

	o.TotalJobs = len(snap.Jobs)
	for _, j := range snap.Jobs {
		if j.IsActive {
			o.ActiveJobs++
		}
	}

	o.TotalApplications = len(snap.Applications)
	for _, a := range snap.Applications {
		switch a.Status {
		case db.ApplicationPending:
			o.PendingApplications++
		case db.ApplicationAccepted:
			o.AcceptedApplications++
		}
	}

	o.AcceptanceRate = percent(o.AcceptedApplications, o.TotalApplications)
	o.ActiveJobRate = percent(o.ActiveJobs, o.TotalJobs)
	o.EmployerShare = percent(o.Employers, o.TotalUsers)
	return o
}

// JobBreakdown counts jobs per employment type.
func JobBreakdown(jobs []db.Job) map[string]int {
	out := make(map[string]int)
	for _, j := range jobs {
		out[j.EmploymentType]++
	}
	return out
}

// UserBreakdown counts profiles per role.
func UserBreakdown(profiles []db.Profile) map[string]int {
	out := make(map[string]int)
	for _, p := range profiles {
		out[p.Role]++
	}
	return out
}
