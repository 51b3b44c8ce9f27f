package services

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"interviewhub/models"
)

const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeEvaluationFailed  = "EVALUATION_FAILED"
	CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	CodeAPIKeyError       = "API_KEY_ERROR"
	CodeMethodNotAllowed  = "METHOD_NOT_ALLOWED"
)

// EvaluationError is a failure that maps directly onto an HTTP status and the
// {code, message, details} error body.
type EvaluationError struct {
	Code    string
	Status  int
	Message string
	Details string
	Err     error
}

func (e *EvaluationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *EvaluationError) Unwrap() error { return e.Err }

func (e *EvaluationError) Body() *models.ErrorBody {
	return &models.ErrorBody{Code: e.Code, Message: e.Message, Details: e.Details}
}

func NewInvalidRequestError(err error) *EvaluationError {
	return &EvaluationError{
		Code:    CodeInvalidRequest,
		Status:  http.StatusBadRequest,
		Message: "Missing required fields",
		Details: "question, user_answer, role, and experience_level are required",
		Err:     err,
	}
}

func NewParseError(err error) *EvaluationError {
	return &EvaluationError{
		Code:    CodeEvaluationFailed,
		Status:  http.StatusInternalServerError,
		Message: "Unable to parse evaluation results",
		Details: "AI response format error",
		Err:     err,
	}
}

// NewMethodNotAllowedError reports an unsupported method. details names the
// method the endpoint does accept.
func NewMethodNotAllowedError(method, details string) *EvaluationError {
	return &EvaluationError{
		Code:    CodeMethodNotAllowed,
		Status:  http.StatusMethodNotAllowed,
		Message: fmt.Sprintf("%s method not supported", method),
		Details: details,
	}
}

func NewInternalError(err error) *EvaluationError {
	return &EvaluationError{
		Code:    CodeEvaluationFailed,
		Status:  http.StatusInternalServerError,
		Message: "Unable to evaluate the answer at this time",
		Details: "Internal server error",
		Err:     err,
	}
}

// ClassifyGenerationError maps a failure of the text generation call itself.
// Rate limiting is checked before credential problems.
func ClassifyGenerationError(provider string, err error) *EvaluationError {
	msg := err.Error()
	switch {
	case errors.Is(err, ErrRateLimited) || strings.Contains(msg, "rate limit"):
		return &EvaluationError{
			Code:    CodeRateLimitExceeded,
			Status:  http.StatusTooManyRequests,
			Message: fmt.Sprintf("%s API rate limit exceeded", provider),
			Details: "Please try again in a few moments",
			Err:     err,
		}
	case errors.Is(err, ErrInvalidAPIKey) || strings.Contains(msg, "API key"):
		return &EvaluationError{
			Code:    CodeAPIKeyError,
			Status:  http.StatusUnauthorized,
			Message: fmt.Sprintf("%s API key configuration error", provider),
			Details: "Please check your API key configuration",
			Err:     err,
		}
	default:
		details := msg
		if details == "" {
			details = "Internal server error"
		}
		return &EvaluationError{
			Code:    CodeEvaluationFailed,
			Status:  http.StatusInternalServerError,
			Message: "Unable to evaluate the answer at this time",
			Details: details,
			Err:     err,
		}
	}
}
