package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-openapi/strfmt"

	"github.com/sm8ta/registration_microservice/internal/core/domain"
	"github.com/sm8ta/registration_microservice/internal/core/ports"
	"github.com/sm8ta/registration_microservice/internal/core/validation"
)

const (
	registerFailed  = "Error registering user."
	registerSuccess = "User registered successfully!"
	invalidDOB      = "Invalid date of birth"
)

type UserHandler struct {
	userService ports.UserService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

type RegisterRequest struct {
	FirstName    string   `json:"firstName" example:"A"`
	LastName     string   `json:"lastName" example:"B"`
	Email        string   `json:"email" example:"a@b.com"`
	Password     string   `json:"password" example:"secret1"`
	PhoneNumbers []string `json:"phoneNumbers" example:"555"`
	DOB          string   `json:"dob" example:"1990-01-01"`
	Gender       string   `json:"gender" enums:"Male,Female" example:"Male"`
}

// toRegistration converts the body. A dob that is present but unparseable
// is left zero and returned as an error.
func (r RegisterRequest) toRegistration() (domain.Registration, error) {
	reg := domain.Registration{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		Password:     r.Password,
		PhoneNumbers: r.PhoneNumbers,
		Gender:       domain.Gender(r.Gender),
	}

	if strings.TrimSpace(r.DOB) == "" {
		return reg, nil
	}
	dob, err := parseDOB(strings.TrimSpace(r.DOB))
	if err != nil {
		return reg, err
	}
	reg.DateOfBirth = dob
	return reg, nil
}

func parseDOB(s string) (time.Time, error) {
	if d, err := time.Parse(strfmt.RFC3339FullDate, s); err == nil {
		return d, nil
	}
	dt, err := strfmt.ParseDateTime(s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Time(dt).UTC(), nil
}

func NewUserHandler(
	userService ports.UserService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
		metrics:     metrics,
	}
}

// @Summary Register a user
// @Description Validates the form, hashes the password and stores a new user record
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration form"
// @Success 200 {object} messageResponse "User registered"
// @Failure 400 {object} errorResponse "Validation failure or store rejection"
// @Failure 500 {object} errorResponse "Internal Server Error"
// @Router /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	start := time.Now()
	result := "error"
	defer func() {
		h.metrics.IncrementCounter(ports.MetricRegistrations, map[string]string{"result": result})
		h.metrics.RecordMetrics(c, start)
	}()

	var req RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in registration", map[string]interface{}{
			"error": err.Error(),
		})
		result = "invalid_request"
		newErrorResponse(c, http.StatusBadRequest, registerFailed)
		return
	}

	reg, dobErr := req.toRegistration()
	if dobErr != nil {
		// Report the bad date together with every other form violation.
		fieldErrs := validation.ValidateRegistration(reg, time.Now())
		fieldErrs.Add("dob", invalidDOB)
		result = "invalid_form"
		newValidationErrorResponse(c, http.StatusBadRequest, registerFailed, fieldErrs)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), reg)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.Is(err, domain.ErrStoreRejected):
			h.logger.Info("Registration rejected by store", map[string]interface{}{
				"error": err.Error(),
			})
			result = "rejected"
			newErrorResponse(c, http.StatusBadRequest, registerFailed)
		case errors.As(err, &verr):
			result = "invalid_form"
			newValidationErrorResponse(c, http.StatusBadRequest, registerFailed, verr.Fields)
		default:
			h.logger.Error("Failed to register user", map[string]interface{}{
				"error": err.Error(),
			})
			newErrorResponse(c, http.StatusInternalServerError, internalServerError)
		}
		return
	}

	h.logger.Info("User created successfully", map[string]interface{}{
		"user_id": user.ID.Hex(),
	})

	result = "success"
	newMessageResponse(c, http.StatusOK, registerSuccess)
}
