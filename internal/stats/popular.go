package stats

import (
	"sort"

	"github.com/google/uuid"

	"github.com/jonathan/jobboard/internal/db"
)

// PopularJob is one row of the most-applied-to jobs table.
type PopularJob struct {
	JobID            uuid.UUID `json:"job_id"`
	Title            string    `json:"title"`
	Company          string    `json:"company"`
	ApplicationCount int       `json:"application_count"`
	ViewCount        int64     `json:"view_count"`
}

// PopularJobs ranks jobs by application count, descending, and returns
// the top n rows. Jobs with zero applications still rank; applications
// whose job has been deleted are dropped.
func PopularJobs(jobs []db.Job, apps []db.Application, n int) []PopularJob {
	counts := make(map[uuid.UUID]int, len(jobs))
	for _, a := range apps {
		counts[a.JobID]++
	}

	rows := make([]PopularJob, 0, len(jobs))
	for _, j := range jobs {
		rows = append(rows, PopularJob{
			JobID:            j.ID,
			Title:            j.Title,
			Company:          j.Company,
			ApplicationCount: counts[j.ID],
			ViewCount:        j.ViewCount,
		})
	}

	sort.SliceStable(rows, func(i, k int) bool {
		return rows[i].ApplicationCount > rows[k].ApplicationCount
	})

	if n > 0 && len(rows) > n {
		rows = rows[:n]
	}
	return rows
}
