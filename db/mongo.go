package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	userColl    = "users"
	companyColl = "companies"
	jobColl     = "jobs"
)

// Mongo bundles the three collection stores over a single client.
type Mongo struct {
	client *mongo.Client
	db     string

	Users     *MongoUserStore
	Companies *MongoCompanyStore
	Jobs      *MongoJobStore
}

// ConnectMongo connects, verifies the connection and prepares indexes.
func ConnectMongo(ctx context.Context, uri, db string) (*Mongo, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, err
	}

	m := &Mongo{client: client, db: db}
	m.Users = &MongoUserStore{coll: m.collection(userColl)}
	m.Companies = &MongoCompanyStore{coll: m.collection(companyColl)}
	m.Jobs = &MongoJobStore{coll: m.collection(jobColl)}

	if err := m.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Ping reports whether the database still answers; the health endpoint
// uses it as its readiness signal.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *Mongo) collection(name string) *mongo.Collection {
	return m.client.Database(m.db).Collection(name)
}

func (m *Mongo) ensureIndexes(ctx context.Context) error {
	_, err := m.collection(userColl).Indexes().CreateMany(ctx, userIndexes())
	return err
}

// userIndexes defines the users collection indexes. Email uniqueness holds
// among non-deleted users only, so a deleted user releases the address for
// re-registration. Partial-index filters only allow the equality form, and
// every write path stores isDeleted explicitly, so matching on false covers
// all live documents.
func userIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.D{{Key: "isDeleted", Value: false}}),
		},
		{Keys: bson.D{{Key: "refreshToken", Value: 1}}},
	}
}

// byID is the common single-document predicate: exact id among non-deleted
// documents.
func byID(id bson.ObjectID) bson.D {
	return append(notDeleted(), bson.E{Key: "_id", Value: id})
}
