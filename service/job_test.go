package service

import (
	"context"
	"testing"
	"time"

	"github.com/HoangPhanDev98/jobhunt-backend/db"
	"github.com/HoangPhanDev98/jobhunt-backend/forms"
	"github.com/HoangPhanDev98/jobhunt-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// fakeJobStore is the minimal JobStore used by job service tests.
type fakeJobStore struct {
	jobs map[bson.ObjectID]models.Job
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{jobs: make(map[bson.ObjectID]models.Job)}
}

func (s *fakeJobStore) Create(_ context.Context, job models.Job) (models.Job, error) {
	job.ID = bson.NewObjectID()
	job.CreatedAt = time.Now().UTC()
	s.jobs[job.ID] = job
	return job, nil
}

func (s *fakeJobStore) FindByID(_ context.Context, id bson.ObjectID) (models.Job, error) {
	job, ok := s.jobs[id]
	if !ok || job.IsDeleted {
		return models.Job{}, db.ErrNotFound
	}
	return job, nil
}

func (s *fakeJobStore) Find(_ context.Context, q db.Query) ([]models.Job, int64, error) {
	var out []models.Job
	for _, j := range s.jobs {
		if !j.IsDeleted {
			out = append(out, j)
		}
	}
	return out, int64(len(out)), nil
}

func (s *fakeJobStore) Update(_ context.Context, job models.Job) error {
	if _, ok := s.jobs[job.ID]; !ok {
		return db.ErrNotFound
	}
	s.jobs[job.ID] = job
	return nil
}

func (s *fakeJobStore) SoftDelete(_ context.Context, id bson.ObjectID, by models.Stamp) error {
	job, ok := s.jobs[id]
	if !ok || job.IsDeleted {
		return db.ErrNotFound
	}
	job.IsDeleted = true
	job.DeletedBy = &by
	s.jobs[id] = job
	return nil
}

func (s *fakeJobStore) Restore(_ context.Context, id bson.ObjectID) error {
	job, ok := s.jobs[id]
	if !ok || !job.IsDeleted {
		return db.ErrNotFound
	}
	job.IsDeleted = false
	job.DeletedBy = nil
	s.jobs[id] = job
	return nil
}

func jobForm(start, end time.Time) forms.JobForm {
	active := true
	return forms.JobForm{
		Name:        "Backend Engineer",
		Skills:      []string{"go", "mongodb"},
		Company:     forms.CompanyRefForm{ID: bson.NewObjectID().Hex(), Name: "Acme"},
		Location:    "Hanoi",
		Salary:      2000,
		Quantity:    3,
		Level:       "senior",
		Description: "Build the job board",
		StartDate:   start,
		EndDate:     end,
		IsActive:    &active,
	}
}

func TestJobService_Create(t *testing.T) {
	t.Parallel()

	store := newFakeJobStore()
	svc := NewJobService(store)
	ctx := context.Background()
	now := time.Now()

	job, err := svc.Create(ctx, jobForm(now, now.AddDate(0, 1, 0)), testIdentity())
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", job.Name)
	assert.True(t, job.IsActive)
	require.NotNil(t, job.CreatedBy)
}

func TestJobService_Create_RejectsBackwardsDates(t *testing.T) {
	t.Parallel()

	store := newFakeJobStore()
	svc := NewJobService(store)
	ctx := context.Background()
	now := time.Now()

	_, err := svc.Create(ctx, jobForm(now, now.Add(-24*time.Hour)), testIdentity())
	require.ErrorIs(t, err, ErrInvalidDateRange)
	assert.Empty(t, store.jobs)

	// Equal start and end is allowed.
	_, err = svc.Create(ctx, jobForm(now, now), testIdentity())
	require.NoError(t, err)
}

func TestJobService_Update_KeepsProvenance(t *testing.T) {
	t.Parallel()

	store := newFakeJobStore()
	svc := NewJobService(store)
	ctx := context.Background()
	now := time.Now()

	creator := testIdentity()
	job, err := svc.Create(ctx, jobForm(now, now.AddDate(0, 1, 0)), creator)
	require.NoError(t, err)

	editor := testIdentity()
	form := jobForm(now, now.AddDate(0, 2, 0))
	form.Salary = 2500
	require.NoError(t, svc.Update(ctx, job.ID, form, editor))

	updated, err := svc.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, 2500, updated.Salary)
	require.NotNil(t, updated.CreatedBy)
	assert.Equal(t, creator.ID, updated.CreatedBy.ID)
	require.NotNil(t, updated.UpdatedBy)
	assert.Equal(t, editor.ID, updated.UpdatedBy.ID)

	// The date rule applies to updates too.
	bad := jobForm(now, now.Add(-time.Hour))
	require.ErrorIs(t, svc.Update(ctx, job.ID, bad, editor), ErrInvalidDateRange)
}
