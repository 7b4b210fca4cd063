// File: database/repository/taxonomy/interface.go
package taxonomyRepo

import (
	"context"

	"slotify/database"
	"slotify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// TaxonomyRepository serves the read-only lookup collections backing the
// booking form: regions, platforms and brands.
type TaxonomyRepository interface {
	ListRegions(ctx context.Context) ([]models.Region, error)
	GetRegionByID(ctx context.Context, regionID string) (*models.Region, error)
	ListPlatforms(ctx context.Context) ([]models.Platform, error)
	ListBrands(ctx context.Context) ([]models.Brand, error)
}

type mongoTaxonomyRepo struct {
	regions   *mongo.Collection
	platforms *mongo.Collection
	brands    *mongo.Collection
}

// NewMongoTaxonomyRepo constructs a new MongoDB TaxonomyRepository.
func NewMongoTaxonomyRepo() TaxonomyRepository {
	db := database.DB()
	return &mongoTaxonomyRepo{
		regions:   db.Collection("regions"),
		platforms: db.Collection("platforms"),
		brands:    db.Collection("brands"),
	}
}
