package server

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/edostudy/internal/content"
	"github.com/abhisek/edostudy/internal/evaluate"
)

// Error codes carried in the error envelope.
const (
	CodeNotFound           = "not_found"
	CodeInvalidRequest     = "invalid_request"
	CodeModelUnconfigured  = "model_unconfigured"
	CodeEvaluationFailed   = "evaluation_failed"
	CodeContentUnavailable = "content_unavailable"
	CodeInternal           = "internal"
)

// unconfiguredMessage tells the operator how to enable grading.
const unconfiguredMessage = "MODEL_API_KEY is not set. Please set it as an environment variable to use Explain mode."

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func respondError(c *gin.Context, status int, code string, msg string) {
	c.AbortWithStatusJSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func respondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// writeError maps domain errors onto HTTP statuses. It is the only place
// that does so.
func writeError(c *gin.Context, err error) {
	var corrupt *content.CorruptError
	switch {
	case errors.Is(err, content.ErrNotFound):
		respondError(c, http.StatusNotFound, CodeNotFound, err.Error())
	case errors.Is(err, evaluate.ErrUnconfigured):
		respondError(c, http.StatusServiceUnavailable, CodeModelUnconfigured, unconfiguredMessage)
	case errors.Is(err, evaluate.ErrEvaluationFailed):
		respondError(c, http.StatusInternalServerError, CodeEvaluationFailed, err.Error())
	case errors.As(err, &corrupt), errors.Is(err, fs.ErrNotExist):
		respondError(c, http.StatusInternalServerError, CodeContentUnavailable, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, CodeInternal, err.Error())
	}
	_ = c.Error(err)
}
