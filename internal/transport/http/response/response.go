package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body is the error envelope every failing endpoint returns.
type Body struct {
	Message string `json:"message"`
}

// Default messages per status, used when a handler has nothing more
// specific to say.
var statusText = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusUnauthorized:        "Unauthorized",
	http.StatusForbidden:           "Forbidden",
	http.StatusNotFound:            "Not Found",
	http.StatusMethodNotAllowed:    "Method Not Allowed",
	http.StatusInternalServerError: "Internal Server Error",
}

// OK writes data as-is with a 200.
func OK(c *gin.Context, data any) { c.JSON(http.StatusOK, data) }

// Created writes data as-is with a 201.
func Created(c *gin.Context, data any) { c.JSON(http.StatusCreated, data) }

// Error writes the {"message": ...} envelope with the given status.
func Error(c *gin.Context, status int, msg string) {
	if msg == "" {
		msg = statusText[status]
	}
	c.JSON(status, Body{Message: msg})
}

// AbortError is Error plus aborting the gin handler chain.
func AbortError(c *gin.Context, status int, msg string) {
	if msg == "" {
		msg = statusText[status]
	}
	c.AbortWithStatusJSON(status, Body{Message: msg})
}
