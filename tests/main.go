// Seeds a local database with a realistic booking-form dataset: taxonomy
// collections, a handful of teams with operating hours, and a week of
// events. Intended for manual testing against a dev Mongo instance.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"slotify/config"
	"slotify/database"
	"slotify/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func main() {
	config.LoadConfig()
	database.InitDB()
	db := database.DB()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Clear existing data.
	for _, name := range []string{"teams", "regions", "platforms", "brands", "events", "activities"} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", name, err)
		}
	}

	regions := []interface{}{
		models.Region{ID: "emea", Name: "EMEA", Platforms: []string{"zoom", "meet"}},
		models.Region{ID: "amer", Name: "Americas", Platforms: []string{"zoom"}},
		models.Region{ID: "apac", Name: "APAC", Platforms: []string{"meet"}},
	}
	platforms := []interface{}{
		models.Platform{ID: "zoom", Name: "Zoom"},
		models.Platform{ID: "meet", Name: "Google Meet"},
	}
	brands := []interface{}{
		models.Brand{ID: "acme", Name: "Acme", Teams: []string{"alpha", "bravo"}, Access: models.RoleGuest},
		models.Brand{ID: "initech", Name: "Initech", Teams: []string{"bravo"}, Access: models.RoleUser},
	}

	weekdays := []string{"monday", "tuesday", "wednesday", "thursday", "friday"}
	times := make([]models.TeamTime, 0, len(weekdays))
	for _, day := range weekdays {
		times = append(times, models.TeamTime{ID: day, TimeStart: "09:00", TimeEnd: "17:00"})
	}
	durations := []models.TeamDuration{
		{Label: "Quick sync", Value: 20},
		{Label: "Session", Value: 50},
	}
	teams := []interface{}{
		models.Team{ID: "alpha", Access: models.RoleGuest, Name: "Team Alpha",
			Brands: []string{"acme"}, Platforms: []string{"zoom"}, Durations: durations, Times: times},
		models.Team{ID: "bravo", Access: models.RoleGuest, Name: "Team Bravo",
			Brands: []string{"acme", "initech"}, Platforms: []string{"meet"}, Durations: durations, Times: times},
	}

	if _, err := db.Collection("regions").InsertMany(ctx, regions); err != nil {
		log.Fatalf("Failed to seed regions: %v", err)
	}
	if _, err := db.Collection("platforms").InsertMany(ctx, platforms); err != nil {
		log.Fatalf("Failed to seed platforms: %v", err)
	}
	if _, err := db.Collection("brands").InsertMany(ctx, brands); err != nil {
		log.Fatalf("Failed to seed brands: %v", err)
	}
	if _, err := db.Collection("teams").InsertMany(ctx, teams); err != nil {
		log.Fatalf("Failed to seed teams: %v", err)
	}

	// A week of events: a few random morning bookings per day.
	var events []interface{}
	today := time.Now()
	for i := 1; i <= 7; i++ {
		day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local).AddDate(0, 0, i)
		for _, hour := range []int{9, 10, 11} {
			if rand.Intn(2) == 0 {
				continue
			}
			dt := day.Add(time.Duration(hour) * time.Hour)
			events = append(events, models.Event{
				UID:      "seed-user",
				ID:       uuid.New().String(),
				YearID:   dt.Format("2006"),
				MonthID:  dt.Format("2006-01"),
				DayID:    dt.Format("2006-01-02"),
				Access:   models.RoleGuest,
				Name:     fmt.Sprintf("Seeded session %s %02d:00", dt.Format("Mon"), hour),
				Creator:  "Seeder",
				Team:     "alpha",
				Region:   "emea",
				Platform: "zoom",
				Datetime: dt,
				Duration: 20,
			})
		}
	}
	if len(events) > 0 {
		if _, err := db.Collection("events").InsertMany(ctx, events); err != nil {
			log.Fatalf("Failed to seed events: %v", err)
		}
	}

	fmt.Printf("Seeded %d regions, %d teams, %d events\n", len(regions), len(teams), len(events))
}
