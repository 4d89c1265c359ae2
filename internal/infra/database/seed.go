package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/plotvista/plotvista/internal/entity"
	"github.com/plotvista/plotvista/internal/usecase"
)

// Seed loads a demo dataset for local development. It is skipped
// entirely when the admin account already exists.
func Seed(ctx context.Context, store *Store, hasher usecase.PasswordHasher) error {
	_, err := store.Users().FindByEmail(ctx, "admin@example.com")
	if err == nil {
		log.Println("Admin user already exists. Skipping seed.")
		log.Println("Login with: admin@example.com / password123")
		return nil
	}
	if !errors.Is(err, entity.ErrNotFound) && !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	log.Println("Seeding database with initial data...")

	hash, err := hasher.Hash("password123")
	if err != nil {
		return err
	}

	return store.WithinTx(ctx, func(r usecase.Repositories) error {
		admin := entity.NewUser("Admin User", "admin@example.com", hash, entity.RoleAdmin, "9876543210")
		if err := r.Users().Create(ctx, admin); err != nil {
			return err
		}

		salesperson := entity.NewUser("John Sales", "sales@example.com", hash, entity.RoleSalesperson, "9876543211")
		if err := r.Users().Create(ctx, salesperson); err != nil {
			return err
		}

		project := entity.NewProject("Green Valley Plots", "Bangalore, Karnataka", 50,
			"Premium residential plots with all modern amenities")
		if err := r.Projects().Create(ctx, project); err != nil {
			return err
		}

		facings := []string{"East", "West", "North", "South"}
		for i := 1; i <= 20; i++ {
			status := entity.PlotStatusAvailable
			if i > 18 {
				status = entity.PlotStatusSold
			} else if i > 15 {
				status = entity.PlotStatusBooked
			}
			plot := entity.NewPlot(
				project.ID,
				fmt.Sprintf("A-%03d", i),
				fmt.Sprintf("%d sq.ft", 1000+i*50),
				int64(2000000+i*100000),
				facings[i%4],
				status,
				"",
			)
			if err := r.Plots().Create(ctx, plot); err != nil {
				return err
			}
		}

		tomorrow := time.Now().Add(24 * time.Hour)
		today := time.Now()

		leads := []*entity.Lead{
			seedLead("Rajesh Kumar", "rajesh@example.com", "9876543212", entity.LeadSourceWebsite,
				entity.LeadStatusNew, entity.LeadRatingUrgent, "", nil, "Interested in east-facing plots"),
			seedLead("Priya Sharma", "priya@example.com", "9876543213", entity.LeadSourceReferral,
				entity.LeadStatusContacted, entity.LeadRatingHigh, salesperson.ID, nil, "Looking for 1500+ sq.ft plots"),
			seedLead("Amit Patel", "", "9876543214", entity.LeadSourceFacebook,
				entity.LeadStatusInterested, entity.LeadRatingUrgent, salesperson.ID, &tomorrow, "Budget 25-30 lakhs"),
			seedLead("Sneha Reddy", "sneha@example.com", "9876543215", entity.LeadSourceGoogleAds,
				entity.LeadStatusSiteVisit, entity.LeadRatingUrgent, salesperson.ID, &today, "Scheduled site visit for tomorrow"),
			seedLead("Vikram Singh", "", "9876543216", entity.LeadSourceWalkIn,
				entity.LeadStatusBooked, entity.LeadRatingUrgent, salesperson.ID, nil, "Booked plot A-016"),
		}
		for _, lead := range leads {
			if err := r.Leads().Create(ctx, lead); err != nil {
				return err
			}
		}

		log.Println("Database seeded successfully!")
		log.Println("Admin login: admin@example.com / password123")
		log.Println("Salesperson login: sales@example.com / password123")
		return nil
	})
}

func seedLead(name, email, phone string, source entity.LeadSource, status entity.LeadStatus,
	rating entity.LeadRating, assignedTo string, followUp *time.Time, notes string) *entity.Lead {
	lead := entity.NewLead(name, email, phone, source, status, rating)
	lead.AssignedTo = assignedTo
	lead.FollowUpDate = followUp
	lead.Notes = notes
	return lead
}
