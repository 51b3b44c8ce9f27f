package routes

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"interviewhub/metrics"
	"interviewhub/models"
	"interviewhub/services"
)

const outcomeOK = "OK"

// EvaluateRouteHandler grades the candidate answer in the request body
func EvaluateRouteHandler(evaluator *services.Evaluator) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			metrics.EvaluationDuration.Observe(time.Since(start).Seconds())
		}()

		var req models.EvaluationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondEvaluationError(c, services.NewInvalidRequestError(err))
			return
		}

		evaluation, err := evaluator.Evaluate(c.Request.Context(), req)
		if err != nil {
			var evalErr *services.EvaluationError
			if !errors.As(err, &evalErr) {
				evalErr = services.ClassifyGenerationError("Text generation", err)
			}
			respondEvaluationError(c, evalErr)
			return
		}

		metrics.EvaluationsTotal.WithLabelValues(outcomeOK).Inc()
		c.JSON(http.StatusOK, models.EvaluationResponse{Success: true, Evaluation: evaluation})
	}
}

var methodHints = map[string]string{
	"/api/evaluate": "Use POST to submit evaluation requests",
	"/api/health":   "Use GET to check service health",
	"/metrics":      "Use GET to scrape metrics",
	"/":             "Use GET to open the demo page",
	"/demo":         "Use POST to run the demo evaluation",
}

// MethodNotAllowedHandler answers any unsupported method with the error shape
func MethodNotAllowedHandler(c *gin.Context) {
	hint, ok := methodHints[c.Request.URL.Path]
	if !ok {
		hint = "Method not supported for this endpoint"
	}
	respondError(c, services.NewMethodNotAllowedError(c.Request.Method, hint))
}

// recoveryHandler turns a panic into the EVALUATION_FAILED error body.
func recoveryHandler(log *zap.Logger) gin.RecoveryFunc {
	return func(c *gin.Context, recovered any) {
		log.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.Stack("stack"),
		)
		respondError(c, services.NewInternalError(fmt.Errorf("panic: %v", recovered)))
	}
}

func respondEvaluationError(c *gin.Context, evalErr *services.EvaluationError) {
	metrics.EvaluationsTotal.WithLabelValues(evalErr.Code).Inc()
	respondError(c, evalErr)
}

func respondError(c *gin.Context, evalErr *services.EvaluationError) {
	if evalErr.Err != nil {
		_ = c.Error(evalErr)
	}
	c.AbortWithStatusJSON(evalErr.Status, models.EvaluationResponse{
		Success: false,
		Error:   evalErr.Body(),
	})
}
