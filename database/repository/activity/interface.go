// File: database/repository/activity/interface.go
package activityRepo

import (
	"context"

	"slotify/database"
	"slotify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ActivityRepository interface {
	ListByEvent(ctx context.Context, eventID string) ([]models.Activity, error)
	GetByAID(ctx context.Context, activityID string) (*models.Activity, error)
	GetByEventAndAuthor(ctx context.Context, eventID, uid string) (*models.Activity, error)
	Upsert(ctx context.Context, activity models.Activity) error
	Delete(ctx context.Context, activityID string) error
	DeleteByEvent(ctx context.Context, eventID string) error
}

type mongoActivityRepo struct {
	coll *mongo.Collection
}

// NewMongoActivityRepo constructs a new MongoDB ActivityRepository.
func NewMongoActivityRepo() ActivityRepository {
	return &mongoActivityRepo{
		coll: database.DB().Collection("activities"),
	}
}
