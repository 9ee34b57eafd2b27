// internal/db/mongo.go
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/Marga-Ghale/portfolio-api/internal/logger"
	"github.com/Marga-Ghale/portfolio-api/internal/repository"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// MongoStore keeps one collection per record kind in a single database.
type MongoStore struct {
	client   *mongo.Client
	database *mongo.Database
	now      func() time.Time
}

func NewMongoStore(ctx context.Context, uri, databaseName string) (*MongoStore, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(25)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	logger.Log.Infof("[DB] ✅ Connected to MongoDB database %q", databaseName)
	return &MongoStore{
		client:   client,
		database: client.Database(databaseName),
		now:      time.Now,
	}, nil
}

func (s *MongoStore) CreateDocument(ctx context.Context, collection string, doc repository.Document) (string, error) {
	if err := repository.CheckCollection(collection); err != nil {
		return "", err
	}
	repository.StampTimestamps(doc, s.now())

	res, err := s.database.Collection(collection).InsertOne(ctx, bson.M(doc))
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	return repository.Document{repository.IDField: res.InsertedID}.ID(), nil
}

func (s *MongoStore) GetDocuments(ctx context.Context, collection string, filter repository.Filter) ([]repository.Document, error) {
	if err := repository.CheckCollection(collection); err != nil {
		return nil, err
	}
	cur, err := s.database.Collection(collection).Find(ctx, toBSONFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	var raw []bson.M
	if err := cur.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", collection, err)
	}

	docs := make([]repository.Document, 0, len(raw))
	for _, m := range raw {
		docs = append(docs, fromBSON(m))
	}
	return docs, nil
}

func (s *MongoStore) CountDocuments(ctx context.Context, collection string, filter repository.Filter) (int64, error) {
	if err := repository.CheckCollection(collection); err != nil {
		return 0, err
	}
	n, err := s.database.Collection(collection).CountDocuments(ctx, toBSONFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}

func (s *MongoStore) ListCollections(ctx context.Context) ([]string, error) {
	return s.database.ListCollectionNames(ctx, bson.D{})
}

func (s *MongoStore) Name() string {
	return s.database.Name()
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	logger.Log.Info("[DB] MongoDB connection closed")
	return s.client.Disconnect(ctx)
}

func toBSONFilter(filter repository.Filter) bson.M {
	if filter == nil {
		return bson.M{}
	}
	return bson.M(filter)
}

// fromBSON turns driver-specific containers into plain Go values so the
// repository layer never sees bson types other than the raw _id.
func fromBSON(m bson.M) repository.Document {
	doc := make(repository.Document, len(m))
	for k, v := range m {
		doc[k] = normalizeBSON(v)
	}
	return doc
}

func normalizeBSON(v any) any {
	switch val := v.(type) {
	case bson.A:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeBSON(item)
		}
		return out
	case bson.D:
		out := make(map[string]any, len(val))
		for _, e := range val {
			out[e.Key] = normalizeBSON(e.Value)
		}
		return out
	case bson.M:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalizeBSON(item)
		}
		return out
	case bson.DateTime:
		return val.Time().UTC()
	default:
		return v
	}
}
