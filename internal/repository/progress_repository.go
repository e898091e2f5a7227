package repository

import (
	"context"
	"time"

	"soulconnect-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProgressRepository stores recorded study sessions for analytics.
type ProgressRepository struct {
	Col *mongo.Collection
}

func NewProgressRepository(db *mongo.Database) *ProgressRepository {
	return &ProgressRepository{Col: db.Collection("study_progress")}
}

func (r *ProgressRepository) Create(ctx context.Context, progress *models.StudyProgress) error {
	res, err := r.Col.InsertOne(ctx, progress)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		progress.ID = oid.Hex()
	}
	return nil
}

// FindByUserSince returns sessions recorded on or after the cutoff, newest
// first. A zero cutoff returns everything.
func (r *ProgressRepository) FindByUserSince(ctx context.Context, userID string, since time.Time) ([]models.StudyProgress, error) {
	filter := bson.M{"user_id": userID}
	if !since.IsZero() {
		filter["created_at"] = bson.M{"$gte": since}
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.StudyProgress
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
