package repository

import (
	"context"

	"soulconnect-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ScheduleRepository stores the latest generated schedule per user.
// Last write wins.
type ScheduleRepository struct {
	Col *mongo.Collection
}

func NewScheduleRepository(db *mongo.Database) *ScheduleRepository {
	return &ScheduleRepository{Col: db.Collection("schedules")}
}

func (r *ScheduleRepository) Save(ctx context.Context, userID string, schedule *models.Schedule) error {
	schedule.UserID = userID
	opts := options.Replace().SetUpsert(true)
	_, err := r.Col.ReplaceOne(ctx, bson.M{"user_id": userID}, schedule, opts)
	return err
}

func (r *ScheduleRepository) FindByUser(ctx context.Context, userID string) (*models.Schedule, error) {
	var schedule models.Schedule
	err := r.Col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&schedule)
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}
