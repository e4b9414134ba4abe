package service

import (
	"context"
	"errors"

	"github.com/HoangPhanDev98/jobhunt-backend/db"
	"github.com/HoangPhanDev98/jobhunt-backend/forms"
	"github.com/HoangPhanDev98/jobhunt-backend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ErrInvalidDateRange is returned when a job posting ends before it
// starts.
var ErrInvalidDateRange = errors.New("end date can't be before start date")

// JobService implements job-posting CRUD with audit stamping and soft
// delete.
type JobService struct {
	jobs db.JobStore
}

func NewJobService(jobs db.JobStore) *JobService {
	return &JobService{jobs: jobs}
}

func (s *JobService) Create(ctx context.Context, form forms.JobForm, by models.Identity) (models.Job, error) {
	job, err := jobFromForm(form)
	if err != nil {
		return models.Job{}, err
	}

	stamp := by.Stamp()
	job.CreatedBy = &stamp
	return s.jobs.Create(ctx, job)
}

func (s *JobService) List(ctx context.Context, q db.Query) (models.List[models.Job], error) {
	jobs, total, err := s.jobs.Find(ctx, q)
	if err != nil {
		return models.List[models.Job]{}, err
	}
	return models.NewList(jobs, q.Current, q.PageSize, total), nil
}

func (s *JobService) Get(ctx context.Context, id bson.ObjectID) (models.Job, error) {
	return s.jobs.FindByID(ctx, id)
}

func (s *JobService) Update(ctx context.Context, id bson.ObjectID, form forms.JobForm, by models.Identity) error {
	next, err := jobFromForm(form)
	if err != nil {
		return err
	}

	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return err
	}

	stamp := by.Stamp()
	next.ID = job.ID
	next.CreatedBy = job.CreatedBy
	next.CreatedAt = job.CreatedAt
	next.UpdatedBy = &stamp

	return s.jobs.Update(ctx, next)
}

func (s *JobService) Remove(ctx context.Context, id bson.ObjectID, by models.Identity) error {
	return s.jobs.SoftDelete(ctx, id, by.Stamp())
}

func (s *JobService) Restore(ctx context.Context, id bson.ObjectID) error {
	return s.jobs.Restore(ctx, id)
}

func jobFromForm(form forms.JobForm) (models.Job, error) {
	if form.EndDate.Before(form.StartDate) {
		return models.Job{}, ErrInvalidDateRange
	}

	companyID, err := bson.ObjectIDFromHex(form.Company.ID)
	if err != nil {
		return models.Job{}, err
	}

	return models.Job{
		Name:        form.Name,
		Skills:      form.Skills,
		Company:     models.CompanyRef{ID: companyID, Name: form.Company.Name},
		Location:    form.Location,
		Salary:      form.Salary,
		Quantity:    form.Quantity,
		Level:       form.Level,
		Description: form.Description,
		StartDate:   form.StartDate,
		EndDate:     form.EndDate,
		IsActive:    *form.IsActive,
	}, nil
}
