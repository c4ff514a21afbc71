package main

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"tourism/internal/config"
	"tourism/internal/database"
	"tourism/internal/domain"
	"tourism/internal/repository"
)

func main() {
	cfg := config.MustLoad()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	ctx := context.Background()

	users := repository.NewUserRepository(db)
	companies := repository.NewCompanyRepository(db)
	languages := repository.NewLanguageRepository(db)
	entTypes := repository.NewEntertainmentTypeRepository(db)
	placeCategories := repository.NewPlaceCategoryRepository(db)
	places := repository.NewPlaceRepository(db)
	drivers := repository.NewDriverRepository(db)

	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := &domain.User{
		Username:     "admin",
		Email:        "admin@tourism.kz",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal("seed admin failed:", err)
	}
	log.Println("Admin created: admin@tourism.kz / admin123")

	clientEmails := []string{"asel@mail.kz", "bekzat@gmail.com", "dina@yandex.kz"}
	for i, email := range clientEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("client123"), bcrypt.DefaultCost)
		client := &domain.User{
			Username:     fmt.Sprintf("client%d", i+1),
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleClient,
		}
		if err := users.Create(ctx, client); err != nil {
			log.Fatal("seed client failed:", err)
		}
	}

	log.Println("Creating lookup tables...")

	companyIDs := make([]int64, 0, 2)
	for _, name := range []string{"Silk Road Tours", "Nomad Travel"} {
		c := &domain.Company{Name: name}
		if err := companies.Create(ctx, c); err != nil {
			log.Fatal("seed company failed:", err)
		}
		companyIDs = append(companyIDs, c.ID)
	}

	languageIDs := make([]int64, 0, 3)
	for _, name := range []string{"Kazakh", "Russian", "English"} {
		l := &domain.Language{Name: name}
		if err := languages.Create(ctx, l); err != nil {
			log.Fatal("seed language failed:", err)
		}
		languageIDs = append(languageIDs, l.ID)
	}

	entTypeIDs := make([]int64, 0, 3)
	for _, name := range []string{"Hiking", "Museum", "Lake Trip"} {
		e := &domain.EntertainmentType{Name: name}
		if err := entTypes.Create(ctx, e); err != nil {
			log.Fatal("seed entertainment type failed:", err)
		}
		entTypeIDs = append(entTypeIDs, e.ID)
	}

	categoryIDs := make([]int64, 0, 2)
	for _, name := range []string{"Nature", "Culture"} {
		pc := &domain.PlaceCategory{Name: name}
		if err := placeCategories.Create(ctx, pc); err != nil {
			log.Fatal("seed place category failed:", err)
		}
		categoryIDs = append(categoryIDs, pc.ID)
	}

	log.Println("Creating places...")

	placeSeeds := []struct {
		name     string
		location string
		price    float64
		category int
	}{
		{"Charyn Canyon", "Almaty Region", 150, 0},
		{"Big Almaty Lake", "Almaty", 90, 0},
		{"Kolsai Lakes", "Almaty Region", 200, 0},
		{"Central State Museum", "Almaty", 40, 1},
	}
	for i, ps := range placeSeeds {
		p := &domain.Place{
			Name:                ps.name,
			Location:            ps.location,
			Rating:              4,
			DefaultPrice:        ps.price,
			EntertainmentTypeID: entTypeIDs[i%len(entTypeIDs)],
			CategoryID:          categoryIDs[ps.category],
		}
		if err := places.Create(ctx, p); err != nil {
			log.Fatal("seed place failed:", err)
		}
	}

	log.Println("Creating drivers...")

	driverSeeds := []struct {
		name    string
		surname string
		age     int
	}{
		{"Arman", "Bekov", 35},
		{"Serik", "Aliyev", 42},
		{"Dauren", "Musin", 28},
	}
	for i, ds := range driverSeeds {
		d := &domain.Driver{
			CompanyID:  companyIDs[i%len(companyIDs)],
			LanguageID: languageIDs[i%len(languageIDs)],
			Name:       ds.name,
			Surname:    ds.surname,
			Age:        ds.age,
			Status:     domain.DriverAvailable,
		}
		if err := drivers.Create(ctx, d); err != nil {
			log.Fatal("seed driver failed:", err)
		}
	}

	log.Println("Seed completed")
}
