package services

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"interviewhub/metrics"
	"interviewhub/models"
)

const DefaultEvaluationTimeout = 30 * time.Second

var tracer = otel.Tracer("interviewhub/services")

// Evaluator grades a candidate answer with a TextGenerator. It holds no
// per-request state and is safe for concurrent use.
type Evaluator struct {
	generator TextGenerator
	log       *zap.Logger
	timeout   time.Duration
}

func NewEvaluator(generator TextGenerator, log *zap.Logger, timeout time.Duration) *Evaluator {
	if log == nil {
		log = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = DefaultEvaluationTimeout
	}
	return &Evaluator{generator: generator, log: log, timeout: timeout}
}

// Evaluate runs one evaluation. Any returned error is an *EvaluationError.
func (e *Evaluator) Evaluate(ctx context.Context, req models.EvaluationRequest) (*models.Evaluation, error) {
	if req.Question == nil || req.UserAnswer == "" || req.Role == "" || req.ExperienceLevel == "" {
		return nil, NewInvalidRequestError(nil)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	reply, err := e.generate(ctx, BuildEvaluationPrompt(req))
	if err != nil {
		e.log.Error("text generation failed",
			zap.String("provider", e.generator.Name()),
			zap.Error(err))
		return nil, ClassifyGenerationError(e.generator.Name(), err)
	}

	parsed, err := ParseModelEvaluation(reply)
	if err != nil {
		e.log.Error("failed to parse AI response", zap.Error(err), zap.String("reply", reply))
		return nil, NewParseError(err)
	}

	overallScore := parsed.Breakdown.Total()
	xp := CalculateXP(overallScore)
	metrics.XPAwarded.Add(float64(xp))

	expertReference := req.Question.Answer
	if expertReference == nil {
		expertReference = []string{}
	}

	return &models.Evaluation{
		OverallScore:    overallScore,
		Breakdown:       parsed.Breakdown,
		Feedback:        parsed.Feedback,
		ExpertReference: expertReference,
		XPEarned:        xp,
	}, nil
}

func (e *Evaluator) generate(ctx context.Context, prompt string) (string, error) {
	provider := e.generator.Name()
	ctx, span := tracer.Start(ctx, "llm.generate")
	span.SetAttributes(
		attribute.String("llm.provider", provider),
		attribute.Int("llm.prompt_length", len(prompt)),
	)
	defer span.End()

	start := time.Now()
	reply, err := e.generator.Generate(ctx, prompt)
	metrics.GenerationDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	span.SetAttributes(attribute.Int("llm.reply_length", len(reply)))
	return reply, nil
}
