package devserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	msgUserExists         = "user with this email already exists"
	msgInvalidCredentials = "invalid email or password"
	msgUserCreated        = "User created successfully. You can now log in."
	msgLoginSuccess       = "Login successful"
)

func (s *Server) Register(c echo.Context) error {
	var req struct {
		RegistrationType string `json:"registrationType"`
		FirstName        string `json:"firstName"`
		LastName         string `json:"lastName"`
		Email            string `json:"email"`
		Password         string `json:"password"`
		ConfirmPassword  string `json:"confirmPassword"`
	}
	if err := c.Bind(&req); err != nil {
		return messageResponse(c, http.StatusBadRequest, "invalid input")
	}
	if req.Email == "" || req.Password == "" {
		return messageResponse(c, http.StatusBadRequest, "email and password are required")
	}
	if req.Password != req.ConfirmPassword {
		return messageResponse(c, http.StatusBadRequest, "passwords do not match")
	}

	var existing User
	err := s.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return messageResponse(c, http.StatusBadRequest, msgUserExists)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.Log.Error("register: user lookup", "error", err)
		return messageResponse(c, http.StatusInternalServerError, "internal server error")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return messageResponse(c, http.StatusInternalServerError, "failed to hash password")
	}

	user := User{
		ID:           uuid.NewString(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.RegistrationType,
	}
	if user.Role == "" {
		user.Role = "Buyer"
	}
	if err := s.DB.Create(&user).Error; err != nil {
		s.Log.Error("register: create user", "error", err)
		return messageResponse(c, http.StatusInternalServerError, "internal server error")
	}

	return messageResponse(c, http.StatusCreated, msgUserCreated)
}

func (s *Server) Login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return messageResponse(c, http.StatusBadRequest, "invalid input")
	}

	var user User
	if err := s.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return messageResponse(c, http.StatusUnauthorized, msgInvalidCredentials)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return messageResponse(c, http.StatusUnauthorized, msgInvalidCredentials)
	}

	role := strings.ToUpper(user.Role)
	claims := jwt.MapClaims{
		"sub":       user.ID,
		"email":     user.Email,
		"role":      role,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.JWTSecret)
	if err != nil {
		s.Log.Error("login: sign token", "error", err)
		return messageResponse(c, http.StatusInternalServerError, "failed to generate token")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"token":   token,
		"role":    role,
		"message": msgLoginSuccess,
	})
}
