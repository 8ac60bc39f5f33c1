package server

import (
	"context"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobboard/internal/db"
	"github.com/jonathan/jobboard/internal/types"
)

// fakeJobStore is an in-memory JobStore for unit tests.
type fakeJobStore struct {
	jobs map[uuid.UUID]*db.Job
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{jobs: make(map[uuid.UUID]*db.Job)}
}

func (f *fakeJobStore) CreateJob(_ context.Context, input *db.JobCreateInput) (uuid.UUID, error) {
	id := uuid.New()
	status := input.Status
	if status == "" {
		status = db.JobStatusActive
	}
	f.jobs[id] = &db.Job{
		ID:             id,
		Title:          input.Title,
		Company:        input.Company,
		Location:       input.Location,
		SalaryAmount:   input.SalaryAmount,
		SalaryPeriod:   input.SalaryPeriod,
		Description:    input.Description,
		Requirements:   input.Requirements,
		EmploymentType: input.EmploymentType,
		Category:       input.Category,
		PostedBy:       input.PostedBy,
		IsActive:       input.IsActive,
		Status:         status,
	}
	return id, nil
}

func (f *fakeJobStore) GetAllJobs(_ context.Context) ([]db.Job, error) {
	out := []db.Job{}
	for _, j := range f.jobs {
		if j.IsActive {
			out = append(out, *j)
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].Title < out[k].Title })
	return out, nil
}

func (f *fakeJobStore) GetJobByID(_ context.Context, id uuid.UUID) (*db.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, nil
	}
	copied := *j
	return &copied, nil
}

func (f *fakeJobStore) UpdateJob(_ context.Context, id uuid.UUID, updates *db.JobUpdate) error {
	j, ok := f.jobs[id]
	if !ok {
		return nil
	}
	if updates.Title != nil {
		j.Title = *updates.Title
	}
	if updates.SalaryAmount != nil {
		j.SalaryAmount = *updates.SalaryAmount
	}
	if updates.IsActive != nil {
		j.IsActive = *updates.IsActive
	}
	if updates.Status != nil {
		j.Status = *updates.Status
	}
	return nil
}

func (f *fakeJobStore) DeleteJob(_ context.Context, id uuid.UUID) error {
	delete(f.jobs, id)
	return nil
}

func (f *fakeJobStore) ListJobsByOwner(_ context.Context, userID uuid.UUID) ([]db.Job, error) {
	out := []db.Job{}
	for _, j := range f.jobs {
		if j.PostedBy == userID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (f *fakeJobStore) ListActiveJobs(_ context.Context, category string) ([]db.Job, error) {
	out := []db.Job{}
	for _, j := range f.jobs {
		if !j.IsActive {
			continue
		}
		if category != "" && j.Category != category {
			continue
		}
		out = append(out, *j)
	}
	return out, nil
}

func (f *fakeJobStore) IncrementViewCount(_ context.Context, id uuid.UUID) error {
	if j, ok := f.jobs[id]; ok {
		j.ViewCount++
	}
	return nil
}

func validJobRequest() *types.CreateJobRequest {
	return &types.CreateJobRequest{
		Title:          "Тогооч",
		Company:        "Khan Foods",
		Location:       "Ulaanbaatar",
		SalaryAmount:   45000,
		SalaryPeriod:   db.SalaryMonthly,
		Description:    "Run the kitchen",
		Requirements:   []string{"3 years experience"},
		EmploymentType: db.EmploymentFullTime,
		Category:       "chef",
	}
}

func TestJobService_Create(t *testing.T) {
	store := newFakeJobStore()
	svc := NewJobService(store)

	owner := uuid.New()
	job, err := svc.Create(context.Background(), owner, validJobRequest())
	require.NoError(t, err)
	assert.Equal(t, owner, job.PostedBy)
	assert.True(t, job.IsActive, "new listings are active immediately")
	assert.Equal(t, db.JobStatusActive, job.Status)
}

func TestJobService_GetBumpsViewCount(t *testing.T) {
	store := newFakeJobStore()
	svc := NewJobService(store)

	created, err := svc.Create(context.Background(), uuid.New(), validJobRequest())
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	_, err = svc.Get(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(2), store.jobs[created.ID].ViewCount)
}

func TestJobService_GetUnknown(t *testing.T) {
	svc := NewJobService(newFakeJobStore())

	_, err := svc.Get(context.Background(), uuid.New())
	require.Error(t, err)
	assert.IsType(t, &ErrJobNotFound{}, err)
}

func TestJobService_UpdateOwnerOnly(t *testing.T) {
	store := newFakeJobStore()
	svc := NewJobService(store)

	owner := uuid.New()
	created, err := svc.Create(context.Background(), owner, validJobRequest())
	require.NoError(t, err)

	newTitle := "Ахлах тогооч"
	_, err = svc.Update(context.Background(), uuid.New(), created.ID, &types.UpdateJobRequest{Title: &newTitle})
	require.Error(t, err)
	assert.IsType(t, &ErrForbidden{}, err)

	job, err := svc.Update(context.Background(), owner, created.ID, &types.UpdateJobRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, newTitle, job.Title)
}

func TestJobService_DeleteOwnerOnly(t *testing.T) {
	store := newFakeJobStore()
	svc := NewJobService(store)

	owner := uuid.New()
	created, err := svc.Create(context.Background(), owner, validJobRequest())
	require.NoError(t, err)

	err = svc.Delete(context.Background(), uuid.New(), created.ID)
	require.Error(t, err)
	assert.IsType(t, &ErrForbidden{}, err)

	require.NoError(t, svc.Delete(context.Background(), owner, created.ID))
	assert.NotContains(t, store.jobs, created.ID)
}

func TestJobService_ListSwitchesToSearch(t *testing.T) {
	store := newFakeJobStore()
	svc := NewJobService(store)

	owner := uuid.New()
	_, err := svc.Create(context.Background(), owner, validJobRequest())
	require.NoError(t, err)

	driver := validJobRequest()
	driver.Title = "Жолооч"
	driver.Category = "driver"
	driver.Description = "Deliver orders downtown"
	_, err = svc.Create(context.Background(), owner, driver)
	require.NoError(t, err)

	all, err := svc.List(context.Background(), "", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	matched, err := svc.List(context.Background(), "тогооч", "")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Тогооч", matched[0].Title)

	matched, err = svc.List(context.Background(), "", "driver")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Жолооч", matched[0].Title)
}
