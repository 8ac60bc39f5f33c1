package stats

import (
	"sort"

	"github.com/google/uuid"

	"github.com/jonathan/jobboard/internal/db"
)

// Display fallbacks for employers missing a name or company.
const (
	fallbackName    = "Нэр байхгүй"
	fallbackCompany = "Компани байхгүй"
)

// ActiveEmployer is one row of the most-active-employers table.
type ActiveEmployer struct {
	UserID               uuid.UUID `json:"user_id"`
	Name                 string    `json:"name"`
	Company              string    `json:"company"`
	JobsPosted           int       `json:"jobs_posted"`
	ApplicationsReceived int       `json:"applications_received"`
}

// ActiveEmployers ranks employer profiles by combined activity, the sum
// of jobs posted and applications received, and returns the top n rows.
func ActiveEmployers(snap *Snapshot, n int) []ActiveEmployer {
	names := make(map[uuid.UUID]string, len(snap.Users))
	for _, u := range snap.Users {
		names[u.ID] = u.Name
	}

	posted := make(map[uuid.UUID]int)
	for _, j := range snap.Jobs {
		posted[j.PostedBy]++
	}
	received := make(map[uuid.UUID]int)
	for _, a := range snap.Applications {
		received[a.EmployerID]++
	}

	rows := make([]ActiveEmployer, 0)
	for _, p := range snap.Profiles {
		if p.Role != db.RoleEmployer {
			continue
		}

		name := names[p.UserID]
		if name == "" {
			name = fallbackName
		}
		company := p.Company
		if company == "" {
			company = fallbackCompany
		}

		rows = append(rows, ActiveEmployer{
			UserID:               p.UserID,
			Name:                 name,
			Company:              company,
			JobsPosted:           posted[p.UserID],
			ApplicationsReceived: received[p.UserID],
		})
	}

	sort.SliceStable(rows, func(i, k int) bool {
		return rows[i].JobsPosted+rows[i].ApplicationsReceived >
			rows[k].JobsPosted+rows[k].ApplicationsReceived
	})

	if n > 0 && len(rows) > n {
		rows = rows[:n]
	}
	return rows
}
