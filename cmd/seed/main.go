package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"epicare/internal/config"
	"epicare/internal/db"
	"epicare/internal/model"
	"epicare/internal/repository"
)

type seedUser struct {
	Email     string
	Password  string
	FirstName string
	Surname   string
	Phone     string
	Role      string
	PushToken string
}

var demoUsers = []seedUser{
	{Email: "alma@example.com", Password: "password1", FirstName: "Alma", Surname: "Lindqvist", Phone: "+46701234567", Role: model.RoleMonitored},
	{Email: "bojan@example.com", Password: "password2", FirstName: "Bojan", Surname: "Petrov", Phone: "+46707654321", Role: model.RoleSupport, PushToken: "ExponentPushToken[demo-bojan]"},
	{Email: "clara@example.com", Password: "password3", FirstName: "Clara", Surname: "Nilsen", Phone: "+46709876543", Role: model.RoleSupport},
}

// Demo support relations as (monitored email, support email) pairs.
var demoRelations = [][2]string{
	{"alma@example.com", "bojan@example.com"},
	{"alma@example.com", "clara@example.com"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.SupportRelation{}, &model.Seizure{}, &model.Medication{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	relationRepo := repository.NewRelationRepository(gormDB)

	usersByEmail := make(map[string]*model.User, len(demoUsers))
	created := 0
	for _, seed := range demoUsers {
		existing, err := userRepo.FindByEmail(ctx, seed.Email)
		if err == nil {
			usersByEmail[seed.Email] = existing
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to look up %s: %v", seed.Email, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", seed.Email, err)
		}

		user := &model.User{
			Email:        seed.Email,
			PasswordHash: string(hash),
			FirstName:    seed.FirstName,
			Surname:      seed.Surname,
			Phone:        seed.Phone,
			Role:         seed.Role,
			PushToken:    seed.PushToken,
			IsAvailable:  true,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create %s: %v", seed.Email, err)
		}
		usersByEmail[seed.Email] = user
		created++
	}
	log.Printf("Seeded %d new users (%d already present)", created, len(demoUsers)-created)

	linked := 0
	for _, pair := range demoRelations {
		monitored := usersByEmail[pair[0]]
		supporter := usersByEmail[pair[1]]
		relation := &model.SupportRelation{
			MonitoredUserID: monitored.ID,
			SupportUserID:   supporter.ID,
		}
		wasCreated, err := relationRepo.CreateIfAbsent(ctx, relation)
		if err != nil {
			log.Fatalf("Failed to link %s -> %s: %v", pair[0], pair[1], err)
		}
		if wasCreated {
			linked++
		}
	}
	log.Printf("Seeded %d new support relations", linked)
	log.Println("Seed complete")
}
