package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the data part of the success envelope.
type Response map[string]interface{}

// Business codes carried next to the HTTP status.
const (
	CodeOK           = 0
	CodeInvalidParam = 40001
	CodeAuth         = 40101
	CodeNotFound     = 40401
	CodeServerErr    = 50001
)

// Success writes the uniform success envelope.
func Success(c *gin.Context, data Response) {
	c.JSON(http.StatusOK, gin.H{
		"code": CodeOK,
		"data": data,
	})
}

// Error writes the uniform error envelope.
func Error(c *gin.Context, httpStatus int, code int, msg string) {
	c.JSON(httpStatus, gin.H{
		"code":    code,
		"message": msg,
	})
}

// ErrorDetails writes the error envelope with per-constraint messages,
// used for validation failures where every violation is reported.
func ErrorDetails(c *gin.Context, httpStatus int, code int, msg string, details []string) {
	c.JSON(httpStatus, gin.H{
		"code":    code,
		"message": msg,
		"errors":  details,
	})
}
