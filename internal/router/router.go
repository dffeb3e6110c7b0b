package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"forumhub/internal/auth"
	"forumhub/internal/config"
	"forumhub/internal/errors"
	"forumhub/internal/handler"
)

// Register wires middleware and the route table. API routes live under /api;
// anything else falls through to the static file layer.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	gate *auth.Gate,
	authHandler *handler.AuthHandler,
	postHandler *handler.PostHandler,
	memberHandler *handler.MemberHandler,
	uploadHandler *handler.UploadHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.HTTPErrorHandler = errors.HTTPErrorHandler
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/posts", postHandler.ListPosts)
	api.GET("/members", memberHandler.ListMembers)

	// Secured routes: echo-jwt rejects missing or malformed credentials,
	// the gate resolves the surviving claims to a fresh user record. The
	// middleware is attached per route rather than on a sub-group, so
	// unmatched /api paths still fall through to the not-found envelope.
	jwtMW := echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		},
	})

	api.POST("/posts", postHandler.CreatePost, jwtMW, gate.Middleware())
	api.POST("/upload", uploadHandler.Upload, jwtMW, gate.Middleware())

	// Static delegation for everything outside /api.
	if cfg.UploadDir != "" {
		e.Static("/r2-assets", cfg.UploadDir)
	}
	if cfg.PublicDir != "" {
		e.Static("/", cfg.PublicDir)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
