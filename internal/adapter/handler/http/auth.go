package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sm8ta/registration_microservice/internal/core/domain"
	"github.com/sm8ta/registration_microservice/internal/core/ports"
)

const tokenCookie = "token"

type LoginResponse struct {
	Message string    `json:"message" example:"Login successful"`
	User    LoginUser `json:"user"`
}

type LoginUser struct {
	UserID string   `json:"userId" example:"665f1c2e9b1d4a7f3c2b1a09"`
	Roles  []string `json:"roles" example:"user"`
}

type LoginRequest struct {
	LoginMethod string `json:"loginMethod" binding:"required,oneof=email secretKey" enums:"email,secretKey" example:"email"`
	Email       string `json:"email,omitempty" example:"a@b.com"`
	Password    string `json:"password,omitempty" example:"secret1"`
	SecretKey   string `json:"secretKey,omitempty" example:"01j0c7w2m1x4r9q8e5t6y3u2i1"`
}

// credentials maps the body onto a login variant. An unknown method is a
// bad request (400 "Invalid request") rather than the 500 the previous
// service produced when it fell through without a user.
func (r LoginRequest) credentials() (domain.Credentials, error) {
	switch domain.LoginMethod(r.LoginMethod) {
	case domain.LoginByEmail:
		return domain.EmailCredentials{Email: r.Email, Password: r.Password}, nil
	case domain.LoginBySecretKey:
		return domain.SecretKeyCredentials{SecretKey: r.SecretKey}, nil
	default:
		return nil, domain.ErrInvalidLoginMethod
	}
}

type AuthHandler struct {
	authService   ports.AuthService
	logger        ports.LoggerPort
	metrics       ports.MetricsPort
	tokenLifetime time.Duration
}

// NewAuthHandler sets the cookie Max-Age from tokenLifetime; zero leaves
// the cookie without an expiry, matching a token without exp.
func NewAuthHandler(
	authService ports.AuthService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
	tokenLifetime time.Duration,
) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		logger:        logger,
		metrics:       metrics,
		tokenLifetime: tokenLifetime,
	}
}

// @Summary Log in
// @Description Authenticates by email and password or by secret key and sets the token cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse "Login successful, token cookie set"
// @Failure 400 {object} messageResponse "User not found, invalid password or invalid secret key"
// @Failure 500 {object} errorResponse "Internal Server Error"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	start := time.Now()
	method, result := "unknown", "error"
	defer func() {
		h.metrics.IncrementCounter(ports.MetricLoginAttempts, map[string]string{
			"method": method,
			"result": result,
		})
		h.metrics.RecordMetrics(c, start)
	}()

	var req LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in login", map[string]interface{}{
			"error": err.Error(),
		})
		result = "invalid_request"
		c.AbortWithStatusJSON(http.StatusBadRequest, messageResponse{Message: "Invalid request"})
		return
	}

	credentials, err := req.credentials()
	if err != nil {
		result = "invalid_request"
		c.AbortWithStatusJSON(http.StatusBadRequest, messageResponse{Message: "Invalid request"})
		return
	}
	method = string(credentials.Method())

	token, user, err := h.authService.Login(c.Request.Context(), credentials)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			result = "user_not_found"
			c.AbortWithStatusJSON(http.StatusBadRequest, messageResponse{Message: "User not found"})
		case errors.Is(err, domain.ErrInvalidPassword):
			result = "invalid_password"
			c.AbortWithStatusJSON(http.StatusBadRequest, messageResponse{Message: "Invalid password"})
		case errors.Is(err, domain.ErrInvalidSecretKey):
			result = "invalid_secret_key"
			c.AbortWithStatusJSON(http.StatusBadRequest, messageResponse{Message: "Invalid secret key"})
		default:
			h.logger.Error("Login failed", map[string]interface{}{
				"method": method,
				"error":  err.Error(),
			})
			newErrorResponse(c, http.StatusInternalServerError, internalServerError)
		}
		return
	}

	h.logger.Info("User logged in successfully", map[string]interface{}{
		"method":  method,
		"user_id": user.ID.Hex(),
	})

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(tokenCookie, token, int(h.tokenLifetime.Seconds()), "/", "", true, true)

	result = "success"
	c.JSON(http.StatusOK, LoginResponse{
		Message: "Login successful",
		User: LoginUser{
			UserID: user.ID.Hex(),
			Roles:  user.Roles,
		},
	})
}
