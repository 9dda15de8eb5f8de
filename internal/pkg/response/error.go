package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paksr/MiniProject-Shoseki/internal/pkg/apperror"
)

// ErrorResponse defines the JSON structure for error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error sends a JSON error response.
// Validation failures arrive as AppError values carrying their own
// status; anything else is a store/system fault and collapses into a
// generic 500 so callers can tell "fix your input" from "try again".
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
