package main

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"forumhub/internal/config"
	"forumhub/internal/db"
	"forumhub/internal/model"
	"forumhub/internal/repository"
)

const seedPassword = "password123"

type seedUser struct {
	username string
	email    string
	points   int
	role     string
}

var seedUsers = []seedUser{
	{username: "admin", email: "admin@example.com", points: 5200, role: model.RoleAdmin},
	{username: "veteran", email: "veteran@example.com", points: 2400, role: model.RoleMember},
	{username: "regular", email: "regular@example.com", points: 150, role: model.RoleMember},
	{username: "newcomer", email: "newcomer@example.com", points: 3, role: model.RoleMember},
}

type seedPost struct {
	author   string
	category string
	title    string
	content  string
	status   string
	views    int
}

var seedPosts = []seedPost{
	{author: "admin", category: "announcements", title: "Welcome to the forum", content: "House rules and how moderation works.", status: model.StatusApproved, views: 310},
	{author: "veteran", category: "general", title: "Introduce yourself", content: "Tell us who you are and what you build.", status: model.StatusApproved, views: 122},
	{author: "regular", category: "help", title: "Upload size limits?", content: "Is there a cap on attachment size?", status: model.StatusPendingReview, views: 0},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Post{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), 10)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	userIDs := make(map[string]uint, len(seedUsers))
	created, skipped := 0, 0
	for _, su := range seedUsers {
		user := &model.User{
			Username:     su.username,
			Email:        su.email,
			PasswordHash: string(hash),
			Points:       su.points,
			Role:         su.role,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				existing, err := userRepo.FindByUsername(ctx, su.username)
				if err != nil {
					log.Fatalf("Failed to look up existing user %s: %v", su.username, err)
				}
				userIDs[su.username] = existing.ID
				skipped++
				continue
			}
			log.Fatalf("Failed to create user %s: %v", su.username, err)
		}
		userIDs[su.username] = user.ID
		created++
	}
	log.Printf("Users: %d created, %d already present", created, skipped)

	var postCount int64
	if err := gormDB.Model(&model.Post{}).Count(&postCount).Error; err != nil {
		log.Fatalf("Failed to count posts: %v", err)
	}
	if postCount > 0 {
		log.Printf("Posts already present (%d), skipping post seed", postCount)
		log.Println("Seed completed")
		return
	}

	created = 0
	for _, sp := range seedPosts {
		post := &model.Post{
			AuthorID: userIDs[sp.author],
			Category: sp.category,
			Title:    sp.title,
			Content:  sp.content,
			Status:   sp.status,
			Views:    sp.views,
		}
		if err := postRepo.Create(ctx, post); err != nil {
			log.Fatalf("Failed to create post %q: %v", sp.title, err)
		}
		created++
	}
	log.Printf("Posts: %d created", created)

	log.Println("Seed completed")
}
