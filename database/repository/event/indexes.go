// File: database/repository/event/indexes.go
package eventRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates the indexes the availability and calendar queries
// depend on. Safe to call on every startup.
func (r *mongoEventRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on event ID.
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Compound index for day + region (conflict-detection query pattern).
		{
			Keys:    bson.D{{Key: "did", Value: 1}, {Key: "region", Value: 1}},
			Options: options.Index().SetName("did_region_idx"),
		},
		// Month index for calendar views.
		{
			Keys:    bson.D{{Key: "mid", Value: 1}},
			Options: options.Index().SetName("mid_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create event indexes: %w", err)
	}
	return nil
}
