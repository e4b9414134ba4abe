package db

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/HoangPhanDev98/jobhunt-backend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var _ UserStore = (*MongoUserStore)(nil)

type MongoUserStore struct {
	coll *mongo.Collection
}

func (s *MongoUserStore) Create(ctx context.Context, user models.User) (models.User, error) {
	now := time.Now().UTC()
	user.ID = bson.NewObjectID()
	user.Email = normalizeEmail(user.Email)
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := s.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *MongoUserStore) FindByID(ctx context.Context, id bson.ObjectID) (user models.User, err error) {
	err = s.coll.FindOne(ctx, byID(id)).Decode(&user)
	return user, mapNoDocuments(err)
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (user models.User, err error) {
	filter := append(notDeleted(), bson.E{Key: "email", Value: normalizeEmail(email)})
	err = s.coll.FindOne(ctx, filter).Decode(&user)
	return user, mapNoDocuments(err)
}

func (s *MongoUserStore) Find(ctx context.Context, q Query) ([]models.User, int64, error) {
	return findPage[models.User](ctx, s.coll, q)
}

func (s *MongoUserStore) Update(ctx context.Context, user models.User) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: user.Name},
		{Key: "email", Value: normalizeEmail(user.Email)},
		{Key: "age", Value: user.Age},
		{Key: "gender", Value: user.Gender},
		{Key: "address", Value: user.Address},
		{Key: "role", Value: user.Role},
		{Key: "company", Value: user.Company},
		{Key: "updatedBy", Value: user.UpdatedBy},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}}}

	res, err := s.coll.UpdateOne(ctx, byID(user.ID), update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoUserStore) SoftDelete(ctx context.Context, id bson.ObjectID, by models.Stamp) error {
	return softDelete(ctx, s.coll, id, by)
}

func (s *MongoUserStore) Restore(ctx context.Context, id bson.ObjectID) error {
	return restore(ctx, s.coll, id)
}

func (s *MongoUserStore) SetRefreshToken(ctx context.Context, id bson.ObjectID, token string) error {
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "refreshToken", Value: token}}}}
	res, err := s.coll.UpdateOne(ctx, byID(id), update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoUserStore) RotateRefreshToken(ctx context.Context, id bson.ObjectID, old, next string) error {
	// Conditional on the old value: of two concurrent refreshes with the
	// same token, exactly one matches.
	filter := append(byID(id), bson.E{Key: "refreshToken", Value: old})
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "refreshToken", Value: next}}}}

	res, err := s.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoUserStore) FindByRefreshToken(ctx context.Context, token string) (user models.User, err error) {
	filter := append(notDeleted(), bson.E{Key: "refreshToken", Value: token})
	err = s.coll.FindOne(ctx, filter).Decode(&user)
	return user, mapNoDocuments(err)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func mapNoDocuments(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// findPage runs the shared count+find pair behind every listing endpoint.
func findPage[T any](ctx context.Context, coll *mongo.Collection, q Query) ([]T, int64, error) {
	filter := buildFilter(q)

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSkip(q.Offset()).
		SetLimit(q.Limit()).
		SetSort(buildSort(q))

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}

	result := make([]T, 0, q.PageSize)
	if err := cursor.All(ctx, &result); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func softDelete(ctx context.Context, coll *mongo.Collection, id bson.ObjectID, by models.Stamp) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "isDeleted", Value: true},
		{Key: "deletedAt", Value: time.Now().UTC()},
		{Key: "deletedBy", Value: by},
	}}}

	res, err := coll.UpdateOne(ctx, byID(id), update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func restore(ctx context.Context, coll *mongo.Collection, id bson.ObjectID) error {
	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "isDeleted", Value: true},
	}
	update := bson.D{
		{Key: "$set", Value: bson.D{{Key: "isDeleted", Value: false}}},
		{Key: "$unset", Value: bson.D{{Key: "deletedAt", Value: ""}, {Key: "deletedBy", Value: ""}}},
	}

	res, err := coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
