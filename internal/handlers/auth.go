package handlers

import (
	"net/http"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/instashare/backend/internal/models"
	"github.com/instashare/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenValidity = 5 * time.Hour
	// The cookie outlives the token it carries; holders of a live cookie
	// with a lapsed token still have to log in again.
	cookieValidity = 3 * 24 * time.Hour
)

// AuthHandler handles signup and login
type AuthHandler struct {
	userRepository    repositories.UserRepository
	profileRepository repositories.ProfileRepository
	jwtSecret         string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, profileRepo repositories.ProfileRepository, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		userRepository:    userRepo,
		profileRepository: profileRepo,
		jwtSecret:         jwtSecret,
	}
}

// RegisterAuthRoutes registers the public authentication routes
func (h *AuthHandler) RegisterAuthRoutes(e *echo.Echo) {
	e.POST("/signup", h.Signup)
	e.POST("/login", h.Login)
}

// Signup registers a new user. A blank profile is created first, then the
// user referencing it, then the profile is back-linked to the user — three
// sequential writes with no compensation on partial failure.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Please fill all required fields", err)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Please fill all required fields", err)
	}

	ctx := c.Request().Context()

	_, err := h.userRepository.GetUserByUserName(ctx, req.UserName)
	if err == nil {
		return fail(c, http.StatusConflict, "User already exists! Please login.", nil)
	}
	if err != repositories.ErrNotFound {
		return fail(c, http.StatusInternalServerError, "Error occurred during sign up", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Error occurred during sign up", err)
	}

	profile := &models.Profile{}
	if err := h.profileRepository.CreateProfile(ctx, profile); err != nil {
		return fail(c, http.StatusInternalServerError, "Error occurred during sign up", err)
	}

	user := &models.User{
		UserName: req.UserName,
		FullName: req.FullName,
		Email:    req.Email,
		Password: string(hashedPassword),
		Profile:  profile.ID,
		Image:    "https://api.dicebear.com/7.x/initials/svg?seed=" + url.QueryEscape(req.FullName),
	}
	if err := h.userRepository.CreateUser(ctx, user); err != nil {
		return fail(c, http.StatusInternalServerError, "Error occurred during sign up", err)
	}

	if err := h.profileRepository.LinkUser(ctx, profile.ID, user.ID); err != nil {
		return fail(c, http.StatusInternalServerError, "Error occurred during sign up", err)
	}

	return ok(c, http.StatusCreated, "User registered successfully", user)
}

// Login authenticates a user and issues the signed credential, both in the
// response body and as an HTTP-only cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Please provide both username and password", err)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Please provide both username and password", err)
	}

	ctx := c.Request().Context()

	user, err := h.userRepository.GetUserByUserName(ctx, req.UserName)
	if err != nil {
		if err == repositories.ErrNotFound {
			return fail(c, http.StatusNotFound, "User not found! Please sign up first", nil)
		}
		return fail(c, http.StatusInternalServerError, "Error occurred during login", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return fail(c, http.StatusForbidden, "Invalid password", nil)
	}

	claims := &models.JwtCustomClaims{
		Username: user.UserName,
		UserID:   user.ID.Hex(),
		Profile:  user.Profile.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenValidity)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Error occurred during login", err)
	}

	c.SetCookie(&http.Cookie{
		Name:     "token",
		Value:    signed,
		Expires:  time.Now().Add(cookieValidity),
		HttpOnly: true,
		Path:     "/",
	})

	return ok(c, http.StatusOK, "User logged in successfully", echo.Map{
		"token": signed,
		"user":  user,
	})
}
