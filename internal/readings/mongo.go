package readings

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const DefaultMongoCollection = "moisture_levels"

type NewMongoOpts struct {
	Database   *mongo.Database
	Collection string
}

func NewMongo(opts NewMongoOpts) (*Mongo, error) {
	if opts.Database == nil {
		return nil, fmt.Errorf("failed to receive a mongo database")
	}
	collection := opts.Collection
	if collection == "" {
		collection = DefaultMongoCollection
	}
	return &Mongo{collection: opts.Database.Collection(collection)}, nil
}

// Mongo stores one document per reading, the document shape matches
// what the sensor dashboard has always written so existing data stays
// readable
type Mongo struct {
	collection *mongo.Collection
}

func (m *Mongo) Append(ctx context.Context, reading Reading) error {
	if err := validateReading(reading); err != nil {
		return err
	}
	if _, err := m.collection.InsertOne(ctx, reading); err != nil {
		return storageError("insert reading", err)
	}
	return nil
}

func (m *Mongo) ListByUser(ctx context.Context, username string) ([]HistoryEntry, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: 1}, {Key: "_id", Value: 1}}).
		SetProjection(bson.M{"_id": 0, "timestamp": 1, "moisture_value": 1})
	cursor, err := m.collection.Find(ctx, bson.M{"username": username}, findOptions)
	if err != nil {
		return nil, storageError("find readings", err)
	}
	defer cursor.Close(ctx)

	output := []HistoryEntry{}
	if err := cursor.All(ctx, &output); err != nil {
		return nil, storageError("decode readings", err)
	}
	return output, nil
}
