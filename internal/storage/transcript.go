package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/Ananth-NQI/eduguide-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TranscriptArchive keeps a secondary, append-only copy of chat transcripts
type TranscriptArchive interface {
	Archive(ctx context.Context, msg *models.ChatMessage) error
	History(ctx context.Context, sessionID string) ([]*models.ChatMessage, error)
}

// MongoTranscriptArchive stores chat messages in a MongoDB collection
type MongoTranscriptArchive struct {
	collection *mongo.Collection
}

// NewMongoTranscriptArchive wraps the given collection
func NewMongoTranscriptArchive(coll *mongo.Collection) *MongoTranscriptArchive {
	return &MongoTranscriptArchive{collection: coll}
}

// EnsureIndexes creates the session lookup index
func (a *MongoTranscriptArchive) EnsureIndexes(ctx context.Context) error {
	_, err := a.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "session_id", Value: 1}, {Key: "created_at", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("mongo create index failed: %w", err)
	}
	return nil
}

func (a *MongoTranscriptArchive) Archive(ctx context.Context, msg *models.ChatMessage) error {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	if _, err := a.collection.InsertOne(ctx, msg); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("chat message %s: %w", msg.ID, ErrConflict)
		}
		return fmt.Errorf("mongo insert failed: %w", err)
	}
	return nil
}

func (a *MongoTranscriptArchive) History(ctx context.Context, sessionID string) ([]*models.ChatMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := a.collection.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo find failed: %w", err)
	}
	defer cursor.Close(ctx)

	var msgs []*models.ChatMessage
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, fmt.Errorf("mongo decode failed: %w", err)
	}
	return msgs, nil
}
