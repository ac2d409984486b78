package store

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"triply/internal/trip"
)

// ========== MongoDB ==========

const connectTimeout = 10 * time.Second

// MongoStore keeps trips and chat messages in two collections keyed by the
// trip's string id.
type MongoStore struct {
	client   *mongo.Client
	trips    *mongo.Collection
	messages *mongo.Collection
	logger   *zap.Logger
}

func NewMongoStore(ctx context.Context, uri, database string, logger *zap.Logger) (*MongoStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "mongo connect")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "mongo ping")
	}

	db := client.Database(database)
	s := &MongoStore{
		client:   client,
		trips:    db.Collection("trips"),
		messages: db.Collection("messages"),
		logger:   logger,
	}
	if _, err := s.messages.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "trip_id", Value: 1}, {Key: "timestamp", Value: 1}},
	}); err != nil {
		logger.Warn("could not create messages index", zap.Error(err))
	}
	logger.Info("MongoDB connected", zap.String("database", database))
	return s, nil
}

func (s *MongoStore) ListTrips(ctx context.Context) ([]trip.Trip, error) {
	cursor, err := s.trips.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "find trips")
	}
	defer cursor.Close(ctx)

	out := []trip.Trip{}
	for cursor.Next(ctx) {
		var t trip.Trip
		if err := cursor.Decode(&t); err != nil {
			s.logger.Warn("skipping undecodable trip", zap.Error(err))
			continue
		}
		out = append(out, t)
	}
	return out, errors.Wrap(cursor.Err(), "iterate trips")
}

func (s *MongoStore) GetTrip(ctx context.Context, id string) (*trip.Trip, error) {
	var t trip.Trip
	err := s.trips.FindOne(ctx, bson.M{"id": id}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.Wrapf(ErrTripNotFound, "trip %s", id)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "find trip %s", id)
	}
	return &t, nil
}

func (s *MongoStore) CreateTrip(ctx context.Context, t *trip.Trip) error {
	now := time.Now().UTC()
	t.ID = uuid.NewString()
	t.CreatedAt = now
	t.UpdatedAt = now

	if _, err := s.trips.InsertOne(ctx, t); err != nil {
		return errors.Wrap(err, "insert trip")
	}
	return nil
}

// UpdateTrip replaces the whole document. Concurrent updates to the same trip
// are last-writer-wins.
func (s *MongoStore) UpdateTrip(ctx context.Context, id string, fn func(*trip.Trip) error) (*trip.Trip, error) {
	current, err := s.GetTrip(ctx, id)
	if err != nil {
		return nil, err
	}
	createdAt := current.CreatedAt
	if err := fn(current); err != nil {
		return nil, err
	}
	current.ID = id
	current.CreatedAt = createdAt
	current.UpdatedAt = time.Now().UTC()

	result, err := s.trips.ReplaceOne(ctx, bson.M{"id": id}, current)
	if err != nil {
		return nil, errors.Wrapf(err, "replace trip %s", id)
	}
	if result.MatchedCount == 0 {
		return nil, errors.Wrapf(ErrTripNotFound, "trip %s", id)
	}
	return current, nil
}

func (s *MongoStore) DeleteTrip(ctx context.Context, id string) error {
	result, err := s.trips.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return errors.Wrapf(err, "delete trip %s", id)
	}
	if result.DeletedCount == 0 {
		return errors.Wrapf(ErrTripNotFound, "trip %s", id)
	}
	if _, err := s.messages.DeleteMany(ctx, bson.M{"trip_id": id}); err != nil {
		return errors.Wrapf(err, "delete messages of trip %s", id)
	}
	return nil
}

func (s *MongoStore) AppendMessages(ctx context.Context, tripID string, msgs ...trip.ChatMessage) error {
	if len(msgs) == 0 {
		return nil
	}
	count, err := s.trips.CountDocuments(ctx, bson.M{"id": tripID})
	if err != nil {
		return errors.Wrapf(err, "count trip %s", tripID)
	}
	if count == 0 {
		return errors.Wrapf(ErrTripNotFound, "trip %s", tripID)
	}

	docs := make([]interface{}, 0, len(msgs))
	for _, m := range msgs {
		m.TripID = tripID
		docs = append(docs, m)
	}
	if _, err := s.messages.InsertMany(ctx, docs); err != nil {
		return errors.Wrap(err, "insert messages")
	}
	return nil
}

func (s *MongoStore) Messages(ctx context.Context, tripID string, limit int) ([]trip.ChatMessage, error) {
	if _, err := s.GetTrip(ctx, tripID); err != nil {
		return nil, err
	}

	// Newest first so the limit keeps the latest turns, then flipped back.
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cursor, err := s.messages.Find(ctx, bson.M{"trip_id": tripID}, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "find messages of trip %s", tripID)
	}
	defer cursor.Close(ctx)

	out := []trip.ChatMessage{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, errors.Wrap(err, "decode messages")
	}
	slices.Reverse(out)
	return out, nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
