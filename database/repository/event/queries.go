// File: database/repository/event/queries.go
package eventRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"slotify/models"
)

func (r *mongoEventRepo) list(ctx context.Context, filter bson.M) ([]models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.M{"datetime": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *mongoEventRepo) ListByDay(ctx context.Context, dayID string) ([]models.Event, error) {
	return r.list(ctx, bson.M{"did": dayID})
}

// ListByDayAndRegion returns the pre-filtered booking set the conflict
// detector works against: only events sharing day and region can overlap.
func (r *mongoEventRepo) ListByDayAndRegion(ctx context.Context, dayID, regionID string) ([]models.Event, error) {
	return r.list(ctx, bson.M{"did": dayID, "region": regionID})
}

func (r *mongoEventRepo) ListByMonth(ctx context.Context, monthID string) ([]models.Event, error) {
	return r.list(ctx, bson.M{"mid": monthID})
}
