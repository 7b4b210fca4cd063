// File: database/repository/event/interface.go
package eventRepo

import (
	"context"

	"slotify/database"
	"slotify/models"
	"slotify/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type EventRepository interface {
	GetByID(ctx context.Context, eventID string) (*models.Event, error)
	ListByDay(ctx context.Context, dayID string) ([]models.Event, error)
	ListByDayAndRegion(ctx context.Context, dayID, regionID string) ([]models.Event, error)
	ListByMonth(ctx context.Context, monthID string) ([]models.Event, error)
	Create(ctx context.Context, event models.Event) error
	Update(ctx context.Context, event models.Event) error
	Delete(ctx context.Context, eventID string) error
}

type mongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo constructs a new MongoDB EventRepository.
func NewMongoEventRepo() EventRepository {
	repo := &mongoEventRepo{
		coll: database.DB().Collection("events"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("event repo: index creation failed", zap.Error(err))
	}
	return repo
}
