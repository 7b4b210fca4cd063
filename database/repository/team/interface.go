// File: database/repository/team/interface.go
package teamRepo

import (
	"context"

	"slotify/database"
	"slotify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type TeamRepository interface {
	GetByID(ctx context.Context, teamID string) (*models.Team, error)
	List(ctx context.Context) ([]models.Team, error)
}

type mongoTeamRepo struct {
	coll *mongo.Collection
}

// NewMongoTeamRepo constructs a new MongoDB TeamRepository.
func NewMongoTeamRepo() TeamRepository {
	return &mongoTeamRepo{
		coll: database.DB().Collection("teams"),
	}
}
