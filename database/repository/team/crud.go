// File: database/repository/team/crud.go
package teamRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"slotify/models"
)

func (r *mongoTeamRepo) GetByID(ctx context.Context, teamID string) (*models.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var team models.Team
	if err := r.coll.FindOne(ctx, bson.M{"id": teamID}).Decode(&team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *mongoTeamRepo) List(ctx context.Context) ([]models.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var teams []models.Team
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}
