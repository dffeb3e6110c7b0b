package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"forumhub/docs"
	"forumhub/internal/auth"
	"forumhub/internal/cache"
	"forumhub/internal/config"
	"forumhub/internal/db"
	"forumhub/internal/handler"
	"forumhub/internal/model"
	"forumhub/internal/repository"
	"forumhub/internal/router"
	"forumhub/internal/service"
	"forumhub/internal/storage"
)

// @title Forum API
// @version 1.0
// @description Forum backend with registration, login, post submission, member directory, and file uploads.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Post{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	var blobStore storage.Store
	if cfg.UploadDir != "" {
		fsStore, err := storage.NewFileSystem(cfg.UploadDir, "/r2-assets")
		if err != nil {
			log.Fatalf("storage init: %v", err)
		}
		blobStore = fsStore
	} else {
		log.Println("UPLOAD_DIR not set, uploads disabled")
	}

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)
	gate := auth.NewGate(userRepo)

	// Services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	postService := service.NewPostService(postRepo)
	memberService := service.NewMemberService(userRepo)
	uploadService := service.NewUploadService(blobStore)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	memberHandler := handler.NewMemberHandler(memberService)
	uploadHandler := handler.NewUploadHandler(uploadService)

	router.Register(
		e,
		cfg,
		gate,
		authHandler,
		postHandler,
		memberHandler,
		uploadHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
