// File: database/repository/activity/crud.go
package activityRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"slotify/models"
)

func (r *mongoActivityRepo) ListByEvent(ctx context.Context, eventID string) ([]models.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"id": eventID}, options.Find().SetSort(bson.M{"datetime": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *mongoActivityRepo) GetByAID(ctx context.Context, activityID string) (*models.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var activity models.Activity
	err := r.coll.FindOne(ctx, bson.M{"aid": activityID}).Decode(&activity)
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *mongoActivityRepo) GetByEventAndAuthor(ctx context.Context, eventID, uid string) (*models.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var activity models.Activity
	err := r.coll.FindOne(ctx, bson.M{"id": eventID, "uid": uid}).Decode(&activity)
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// Upsert inserts a note or replaces the author's existing note on the event.
func (r *mongoActivityRepo) Upsert(ctx context.Context, activity models.Activity) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": activity.ID, "uid": activity.UID}
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, filter, activity, opts)
	return err
}

func (r *mongoActivityRepo) Delete(ctx context.Context, activityID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"aid": activityID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteByEvent removes every note attached to an event, used when the event
// itself is deleted.
func (r *mongoActivityRepo) DeleteByEvent(ctx context.Context, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.DeleteMany(ctx, bson.M{"id": eventID})
	return err
}
