package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"login-app/internal/domain"
	"login-app/internal/service"
)

const (
	serverErrorMessage = "Server error. Please try again later."
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	accounts service.AccountService
	logger   *logrus.Logger
}

func NewHandler(accounts service.AccountService, logger *logrus.Logger) *Handler {
	return &Handler{
		accounts: accounts,
		logger:   logger,
	}
}

// RegisterRoutes mounts the API under /api and, when staticDir is set,
// serves the frontend for any non-API path.
func (h *Handler) RegisterRoutes(router *gin.Engine, staticDir string) {
	router.Use(corsMiddleware())
	router.Use(requestLogger(h.logger))

	api := router.Group("/api")
	{
		api.POST("/signup", h.signup)
		api.POST("/login", h.login)
		api.GET("/users", h.listUsers)
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})
	}

	if staticDir != "" {
		router.NoRoute(gin.WrapH(http.FileServer(http.Dir(staticDir))))
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Writer.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start),
		}).Info("request handled")
	}
}

type signupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Phone           string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	CreatedAt string  `json:"created_at"`
}

func (h *Handler) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request payload"})
		return
	}

	account, err := h.accounts.Register(c.Request.Context(), service.RegistrationInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Phone:           req.Phone,
	})
	if err != nil {
		h.writeRegisterError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Account created successfully! Welcome, " + account.Name + "!",
		"userId":  account.ID,
	})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request payload"})
		return
	}

	account, err := h.accounts.Authenticate(c.Request.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeLoginError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Welcome back! Logged in as " + account.Email,
		"userId":  account.ID,
		"name":    account.Name,
		"phone":   account.Phone,
	})
}

func (h *Handler) listUsers(c *gin.Context) {
	accounts, err := h.accounts.ListAccounts(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("list accounts")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	users := make([]UserResponse, len(accounts))
	for i := range accounts {
		users[i] = accountToResponse(accounts[i])
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}

func (h *Handler) writeRegisterError(c *gin.Context, err error) {
	switch {
	case service.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email already registered"})
	default:
		h.logger.WithError(err).Error("signup")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": serverErrorMessage})
	}
}

func (h *Handler) writeLoginError(c *gin.Context, err error) {
	switch {
	case service.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
	default:
		h.logger.WithError(err).Error("login")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": serverErrorMessage})
	}
}

func accountToResponse(account domain.Account) UserResponse {
	return UserResponse{
		ID:        account.ID,
		Name:      account.Name,
		Email:     account.Email,
		Phone:     account.Phone,
		CreatedAt: account.CreatedAt.Format(time.RFC3339),
	}
}
