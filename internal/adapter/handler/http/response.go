package http

import (
	"github.com/gin-gonic/gin"
)

const internalServerError = "Internal Server Error"

type errorResponse struct {
	Error   string            `json:"error" example:"Error registering user."`
	Details map[string]string `json:"details,omitempty"`
}

type messageResponse struct {
	Message string `json:"message" example:"User registered successfully!"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errorResponse{
		Error: message,
	})
}

func newValidationErrorResponse(c *gin.Context, statusCode int, message string, details map[string]string) {
	c.AbortWithStatusJSON(statusCode, errorResponse{
		Error:   message,
		Details: details,
	})
}

func newMessageResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, messageResponse{
		Message: message,
	})
}
