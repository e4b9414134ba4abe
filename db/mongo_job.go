package db

import (
	"context"
	"time"

	"github.com/HoangPhanDev98/jobhunt-backend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

var _ JobStore = (*MongoJobStore)(nil)

type MongoJobStore struct {
	coll *mongo.Collection
}

func (s *MongoJobStore) Create(ctx context.Context, job models.Job) (models.Job, error) {
	now := time.Now().UTC()
	job.ID = bson.NewObjectID()
	job.CreatedAt = now
	job.UpdatedAt = now

	if _, err := s.coll.InsertOne(ctx, job); err != nil {
		return models.Job{}, err
	}
	return job, nil
}

func (s *MongoJobStore) FindByID(ctx context.Context, id bson.ObjectID) (job models.Job, err error) {
	err = s.coll.FindOne(ctx, byID(id)).Decode(&job)
	return job, mapNoDocuments(err)
}

func (s *MongoJobStore) Find(ctx context.Context, q Query) ([]models.Job, int64, error) {
	return findPage[models.Job](ctx, s.coll, q)
}

func (s *MongoJobStore) Update(ctx context.Context, job models.Job) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: job.Name},
		{Key: "skills", Value: job.Skills},
		{Key: "company", Value: job.Company},
		{Key: "location", Value: job.Location},
		{Key: "salary", Value: job.Salary},
		{Key: "quantity", Value: job.Quantity},
		{Key: "level", Value: job.Level},
		{Key: "description", Value: job.Description},
		{Key: "startDate", Value: job.StartDate},
		{Key: "endDate", Value: job.EndDate},
		{Key: "isActive", Value: job.IsActive},
		{Key: "updatedBy", Value: job.UpdatedBy},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}}}

	res, err := s.coll.UpdateOne(ctx, byID(job.ID), update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoJobStore) SoftDelete(ctx context.Context, id bson.ObjectID, by models.Stamp) error {
	return softDelete(ctx, s.coll, id, by)
}

func (s *MongoJobStore) Restore(ctx context.Context, id bson.ObjectID) error {
	return restore(ctx, s.coll, id)
}
