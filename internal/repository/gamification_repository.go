package repository

import (
	"context"

	"soulconnect-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GamificationRepository stores per-user points, streaks and achievements.
type GamificationRepository struct {
	Col *mongo.Collection
}

func NewGamificationRepository(db *mongo.Database) *GamificationRepository {
	return &GamificationRepository{Col: db.Collection("user_gamification")}
}

func (r *GamificationRepository) FindByUser(ctx context.Context, userID string) (*models.UserStats, error) {
	var stats models.UserStats
	err := r.Col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&stats)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *GamificationRepository) Upsert(ctx context.Context, stats *models.UserStats) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.Col.ReplaceOne(ctx, bson.M{"user_id": stats.UserID}, stats, opts)
	return err
}
