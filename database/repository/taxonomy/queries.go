// File: database/repository/taxonomy/queries.go
package taxonomyRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"slotify/models"
)

func listAll[T any](ctx context.Context, coll *mongo.Collection) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []T
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoTaxonomyRepo) ListRegions(ctx context.Context) ([]models.Region, error) {
	return listAll[models.Region](ctx, r.regions)
}

func (r *mongoTaxonomyRepo) GetRegionByID(ctx context.Context, regionID string) (*models.Region, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var region models.Region
	if err := r.regions.FindOne(ctx, bson.M{"id": regionID}).Decode(&region); err != nil {
		return nil, err
	}
	return &region, nil
}

func (r *mongoTaxonomyRepo) ListPlatforms(ctx context.Context) ([]models.Platform, error) {
	return listAll[models.Platform](ctx, r.platforms)
}

func (r *mongoTaxonomyRepo) ListBrands(ctx context.Context) ([]models.Brand, error) {
	return listAll[models.Brand](ctx, r.brands)
}
