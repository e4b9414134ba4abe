package db

import (
	"context"
	"time"

	"github.com/HoangPhanDev98/jobhunt-backend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

var _ CompanyStore = (*MongoCompanyStore)(nil)

type MongoCompanyStore struct {
	coll *mongo.Collection
}

func (s *MongoCompanyStore) Create(ctx context.Context, company models.Company) (models.Company, error) {
	now := time.Now().UTC()
	company.ID = bson.NewObjectID()
	company.CreatedAt = now
	company.UpdatedAt = now

	if _, err := s.coll.InsertOne(ctx, company); err != nil {
		return models.Company{}, err
	}
	return company, nil
}

func (s *MongoCompanyStore) FindByID(ctx context.Context, id bson.ObjectID) (company models.Company, err error) {
	err = s.coll.FindOne(ctx, byID(id)).Decode(&company)
	return company, mapNoDocuments(err)
}

func (s *MongoCompanyStore) Find(ctx context.Context, q Query) ([]models.Company, int64, error) {
	return findPage[models.Company](ctx, s.coll, q)
}

func (s *MongoCompanyStore) Update(ctx context.Context, company models.Company) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: company.Name},
		{Key: "address", Value: company.Address},
		{Key: "description", Value: company.Description},
		{Key: "logo", Value: company.Logo},
		{Key: "updatedBy", Value: company.UpdatedBy},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}}}

	res, err := s.coll.UpdateOne(ctx, byID(company.ID), update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoCompanyStore) SoftDelete(ctx context.Context, id bson.ObjectID, by models.Stamp) error {
	return softDelete(ctx, s.coll, id, by)
}

func (s *MongoCompanyStore) Restore(ctx context.Context, id bson.ObjectID) error {
	return restore(ctx, s.coll, id)
}
