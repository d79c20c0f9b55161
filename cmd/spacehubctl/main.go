package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"spacehub/internal/database"
	"spacehub/internal/domain"
	"spacehub/internal/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "spacehubctl",
		Short: "Operational tooling for the spacehub backend",
	}

	root.AddCommand(migrateCmd(), seedCmd(), teardownCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func connect() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}
	return database.Connect(dsn)
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()

			db, err := connect()
			if err != nil {
				return err
			}
			if err := db.AutoMigrate(domain.AllModels()...); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			log.Info("migrations applied")
			return nil
		},
	}
}

func teardownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "teardown",
		Short: "Delete all rows from every table",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()

			db, err := connect()
			if err != nil {
				return err
			}
			for _, table := range domain.TeardownOrder {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					return fmt.Errorf("teardown %s: %w", table, err)
				}
			}
			log.Info("all tables emptied")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load demo fixtures: a tenant with users, properties, units and bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()

			db, err := connect()
			if err != nil {
				return err
			}
			if err := db.AutoMigrate(domain.AllModels()...); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			for _, table := range domain.TeardownOrder {
				db.Exec("DELETE FROM " + table)
			}

			tenant := domain.Tenant{
				Name:   "Acme Spaces",
				Domain: "acme.spacehub.dev",
				Type:   domain.TenantMixed,
				Status: domain.TenantActive,
			}
			if err := db.Create(&tenant).Error; err != nil {
				return err
			}

			users := map[string]domain.Role{
				"admin@acme.dev":   domain.RoleAdmin,
				"manager@acme.dev": domain.RoleManager,
				"member@acme.dev":  domain.RoleMember,
			}
			var memberID uuid.UUID
			for email, role := range users {
				hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
				u := domain.User{
					TenantID:     tenant.ID,
					Email:        email,
					PasswordHash: string(hash),
					Name:         string(role) + " user",
					Role:         role,
				}
				if err := db.Create(&u).Error; err != nil {
					return err
				}
				if role == domain.RoleMember {
					memberID = u.ID
				}
				log.WithField("email", email).Info("user created, password: password123")
			}

			hub := domain.Property{
				TenantID:     tenant.ID,
				Name:         "Downtown Hub",
				Slug:         slug.Make("Downtown Hub"),
				PropertyType: domain.PropertyCoworkingHub,
				Status:       domain.PropertyActive,
				AddressLine:  "1 Main St",
				City:         "Austin",
				State:        "TX",
				CountryCode:  "US",
			}
			tower := domain.Property{
				TenantID:     tenant.ID,
				Name:         "Riverside Tower",
				Slug:         slug.Make("Riverside Tower"),
				PropertyType: domain.PropertyResidential,
				Status:       domain.PropertyActive,
				AddressLine:  "42 River Rd",
				City:         "Austin",
				State:        "TX",
				CountryCode:  "US",
			}
			for _, p := range []*domain.Property{&hub, &tower} {
				if err := db.Create(p).Error; err != nil {
					return err
				}
			}

			wifi := domain.Amenity{TenantID: tenant.ID, Name: "WiFi", Icon: "wifi"}
			parking := domain.Amenity{TenantID: tenant.ID, Name: "Parking", Icon: "car"}
			for _, a := range []*domain.Amenity{&wifi, &parking} {
				if err := db.Create(a).Error; err != nil {
					return err
				}
			}

			meetingRoom := domain.Unit{
				TenantID:   tenant.ID,
				PropertyID: hub.ID,
				Name:       "Meeting Room A",
				Category:   domain.UnitMeetingRoom,
				Capacity:   8,
				Status:     domain.UnitAvailable,
			}
			desk := domain.Unit{
				TenantID:   tenant.ID,
				PropertyID: hub.ID,
				Name:       "Hot Desk 12",
				Category:   domain.UnitDesk,
				Capacity:   1,
				Status:     domain.UnitAvailable,
			}
			apartment := domain.Unit{
				TenantID:   tenant.ID,
				PropertyID: tower.ID,
				Name:       "Apartment 3B",
				Category:   domain.UnitApartment,
				Capacity:   4,
				SizeSqft:   900,
				Status:     domain.UnitAvailable,
			}
			for _, u := range []*domain.Unit{&meetingRoom, &desk, &apartment} {
				if err := db.Create(u).Error; err != nil {
					return err
				}
			}

			pricing := []domain.UnitPricing{
				{UnitID: meetingRoom.ID, Model: domain.PricingHourly, Price: 40, Currency: "USD"},
				{UnitID: desk.ID, Model: domain.PricingHourly, Price: 6, Currency: "USD"},
				{UnitID: desk.ID, Model: domain.PricingDaily, Price: 35, Currency: "USD"},
				{UnitID: apartment.ID, Model: domain.PricingMonthly, Price: 2400, Currency: "USD"},
			}
			for i := range pricing {
				if err := db.Create(&pricing[i]).Error; err != nil {
					return err
				}
			}

			if err := db.Create(&domain.CoworkingDetail{
				UnitID: meetingRoom.ID, DeskCount: 0, HasProjector: true, HasWhiteboard: true,
			}).Error; err != nil {
				return err
			}
			if err := db.Create(&domain.RealEstateDetail{
				UnitID: apartment.ID, Bedrooms: 2, Bathrooms: 1, Floor: 3, YearBuilt: 2018, Furnished: true,
			}).Error; err != nil {
				return err
			}

			for _, u := range []*domain.Unit{&meetingRoom, &desk} {
				if err := db.Model(u).Association("Amenities").Append(&wifi, &parking); err != nil {
					return err
				}
			}

			tomorrow := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1)
			bookings := []domain.Booking{
				{
					TenantID: tenant.ID, UnitID: meetingRoom.ID, UserID: memberID,
					StartAt: tomorrow.Add(10 * time.Hour), EndAt: tomorrow.Add(12 * time.Hour),
					Status: domain.BookingConfirmed, TotalPrice: 80, Currency: "USD",
					PricingModel: domain.PricingHourly, PaymentStatus: domain.BookingPaid,
				},
				{
					TenantID: tenant.ID, UnitID: desk.ID, UserID: memberID,
					StartAt: tomorrow.Add(9 * time.Hour), EndAt: tomorrow.Add(18 * time.Hour),
					Status: domain.BookingPending, TotalPrice: 35, Currency: "USD",
					PricingModel: domain.PricingDaily, PaymentStatus: domain.BookingUnpaid,
				},
			}
			for i := range bookings {
				if err := db.Create(&bookings[i]).Error; err != nil {
					return err
				}
			}

			leads := []domain.Lead{
				{
					TenantID: tenant.ID, PropertyID: &hub.ID, UnitID: &desk.ID,
					Name: "Jordan Lee", Email: "jordan@example.com",
					Message: "Interested in a monthly desk", Source: "website",
					Status: domain.LeadNew,
				},
				{
					TenantID: tenant.ID, PropertyID: &tower.ID,
					Name: "Sam Rivera", Phone: "+1 512 555 0142",
					Message: "Looking for a 2-bedroom", Source: "widget",
					Status: domain.LeadContacted,
				},
			}
			for i := range leads {
				if err := db.Create(&leads[i]).Error; err != nil {
					return err
				}
			}

			log.WithField("tenant_id", tenant.ID).Info("seed completed")
			return nil
		},
	}
}
