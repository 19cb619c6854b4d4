package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Meta struct {
	Count int    `json:"count,omitempty"`
	Query string `json:"query,omitempty"`
}

// NewListMeta describes an unpaginated list result.
func NewListMeta(count int, query string) *Meta {
	return &Meta{Count: count, Query: query}
}

type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Meta    *Meta  `json:"meta,omitempty"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

func Success(c *gin.Context, status int, data any, meta *Meta) {
	c.JSON(status, Envelope{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

// SuccessWithMessage is Success plus a human readable message.
func SuccessWithMessage(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Error(c *gin.Context, status int, errorCode string, message string, details any) {
	c.JSON(status, Envelope{
		Success: false,
		Message: message,
		Code:    errorCode,
		Details: details,
	})
}
