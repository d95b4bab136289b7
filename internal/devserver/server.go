// Package devserver is a development stand-in for the external SeedToServe
// backend. It implements the same endpoint table the production API exposes,
// backed by an embedded sqlite database, so the client and its tests can run
// without any external services. It is not the production backend.
package devserver

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type Server struct {
	DB        *gorm.DB
	JWTSecret []byte
	Log       *slog.Logger
}

// New opens (or creates) the sqlite database and migrates the schema.
func New(dbFile string, jwtSecret []byte, log *slog.Logger) (*Server, error) {
	db, err := gorm.Open(sqlite.Open(dbFile), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(&User{}, &Category{}, &Product{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Server{DB: db, JWTSecret: jwtSecret, Log: log}, nil
}

// Routes registers the endpoint table on e.
func (s *Server) Routes(e *echo.Echo) {
	auth := e.Group("/api/auth")
	auth.POST("/register", s.Register)
	auth.POST("/login", s.Login)

	farmer := e.Group("/api/farmer", s.requireAuth)
	farmer.GET("/categories/show/categories", s.ListCategories)
	farmer.POST("/categories/add/category", s.AddCategory)
	farmer.PUT("/categories/update/category/:name", s.UpdateCategory)
	farmer.DELETE("/categories/delete/category/:name", s.DeleteCategory)
	farmer.GET("/products/show/products", s.ListProducts)
	farmer.POST("/products/add/product", s.AddProduct)
	farmer.PUT("/products/update/product/:name", s.UpdateProduct)
	farmer.DELETE("/products/delete/product/:name", s.DeleteProduct)
}

// messageResponse is the `{message}` envelope the API contract promises on
// every error and on register.
func messageResponse(c echo.Context, code int, message string) error {
	return c.JSON(code, map[string]string{"message": message})
}

// requireAuth checks the bearer token on every farmer endpoint.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			return messageResponse(c, http.StatusUnauthorized, "missing bearer token")
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return s.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			return messageResponse(c, http.StatusUnauthorized, "invalid or expired token")
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if email, ok := claims["email"].(string); ok {
				c.Set("email", email)
			}
		}
		return next(c)
	}
}
