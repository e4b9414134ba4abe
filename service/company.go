package service

import (
	"context"

	"github.com/HoangPhanDev98/jobhunt-backend/db"
	"github.com/HoangPhanDev98/jobhunt-backend/forms"
	"github.com/HoangPhanDev98/jobhunt-backend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// CompanyService implements company CRUD with audit stamping and soft
// delete.
type CompanyService struct {
	companies db.CompanyStore
}

func NewCompanyService(companies db.CompanyStore) *CompanyService {
	return &CompanyService{companies: companies}
}

func (s *CompanyService) Create(ctx context.Context, form forms.CompanyForm, by models.Identity) (models.Company, error) {
	stamp := by.Stamp()
	return s.companies.Create(ctx, models.Company{
		Name:        form.Name,
		Address:     form.Address,
		Description: form.Description,
		Logo:        form.Logo,
		CreatedBy:   &stamp,
	})
}

func (s *CompanyService) List(ctx context.Context, q db.Query) (models.List[models.Company], error) {
	companies, total, err := s.companies.Find(ctx, q)
	if err != nil {
		return models.List[models.Company]{}, err
	}
	return models.NewList(companies, q.Current, q.PageSize, total), nil
}

func (s *CompanyService) Get(ctx context.Context, id bson.ObjectID) (models.Company, error) {
	return s.companies.FindByID(ctx, id)
}

func (s *CompanyService) Update(ctx context.Context, id bson.ObjectID, form forms.CompanyForm, by models.Identity) error {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return err
	}

	stamp := by.Stamp()
	company.Name = form.Name
	company.Address = form.Address
	company.Description = form.Description
	company.Logo = form.Logo
	company.UpdatedBy = &stamp

	return s.companies.Update(ctx, company)
}

func (s *CompanyService) Remove(ctx context.Context, id bson.ObjectID, by models.Identity) error {
	return s.companies.SoftDelete(ctx, id, by.Stamp())
}

func (s *CompanyService) Restore(ctx context.Context, id bson.ObjectID) error {
	return s.companies.Restore(ctx, id)
}
