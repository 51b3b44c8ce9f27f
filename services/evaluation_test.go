package services

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"interviewhub/models"
)

type fakeGenerator struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []string
}

func (f *fakeGenerator) Name() string { return "Fake" }

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

type blockingGenerator struct{}

func (blockingGenerator) Name() string { return "Blocking" }

func (blockingGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func sampleRequest() models.EvaluationRequest {
	return models.EvaluationRequest{
		Question: &models.QuestionData{
			Question: "Multiple failed logins from one IP. What do you do?",
			Answer:   []string{"Review SIEM logs", "Block the IP if malicious", "Reset passwords"},
			Category: "scenario",
		},
		UserAnswer:      "Check the logs and block the IP.",
		Role:            "SOC Analyst",
		ExperienceLevel: "entry_level",
	}
}

const goodReply = "```json\n" + `{
  "coverage_score": 20,
  "technical_accuracy": 22,
  "communication_quality": 18,
  "additional_insights": 5,
  "strengths": ["Identifies log review"],
  "improvements": ["Mention correlation with successful logins"],
  "specific_suggestions": ["Practice SIEM queries"]
}` + "\n```"

func newTestEvaluator(t *testing.T, gen TextGenerator) *Evaluator {
	return NewEvaluator(gen, zaptest.NewLogger(t), time.Second)
}

func TestEvaluator_Evaluate_Success(t *testing.T) {
	gen := &fakeGenerator{reply: goodReply}
	req := sampleRequest()

	evaluation, err := newTestEvaluator(t, gen).Evaluate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 65.0, evaluation.OverallScore)
	assert.Equal(t, 20, evaluation.XPEarned)
	assert.Equal(t, models.ScoreBreakdown{
		CoverageScore:        20,
		TechnicalAccuracy:    22,
		CommunicationQuality: 18,
		AdditionalInsights:   5,
	}, evaluation.Breakdown)
	assert.Equal(t, []string{"Identifies log review"}, evaluation.Feedback.Strengths)
	assert.Equal(t, req.Question.Answer, evaluation.ExpertReference)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "1. Review SIEM logs\n2. Block the IP if malicious\n3. Reset passwords")
	assert.Contains(t, gen.prompts[0], "Check the logs and block the IP.")
}

func TestEvaluator_Evaluate_NoClamping(t *testing.T) {
	gen := &fakeGenerator{reply: `{"coverage_score": 40, "technical_accuracy": 35, "communication_quality": -5, "additional_insights": 20}`}

	evaluation, err := newTestEvaluator(t, gen).Evaluate(context.Background(), sampleRequest())
	require.NoError(t, err)

	assert.Equal(t, 90.0, evaluation.OverallScore)
	assert.Equal(t, evaluation.Breakdown.Total(), evaluation.OverallScore)
	assert.Equal(t, 35, evaluation.XPEarned)
	assert.Equal(t, []string{}, evaluation.Feedback.Strengths)
	assert.Equal(t, []string{}, evaluation.Feedback.Improvements)
	assert.Equal(t, []string{}, evaluation.Feedback.SpecificSuggestions)
}

func TestEvaluator_Evaluate_NilExpertAnswer(t *testing.T) {
	req := sampleRequest()
	req.Question.Answer = nil

	evaluation, err := newTestEvaluator(t, &fakeGenerator{reply: goodReply}).Evaluate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{}, evaluation.ExpertReference)
}

func TestEvaluator_Evaluate_Failures(t *testing.T) {
	tests := []struct {
		name       string
		generator  TextGenerator
		mutate     func(*models.EvaluationRequest)
		wantCode   string
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "missing question",
			generator:  &fakeGenerator{reply: goodReply},
			mutate:     func(r *models.EvaluationRequest) { r.Question = nil },
			wantCode:   CodeInvalidRequest,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Missing required fields",
		},
		{
			name:       "empty role",
			generator:  &fakeGenerator{reply: goodReply},
			mutate:     func(r *models.EvaluationRequest) { r.Role = "" },
			wantCode:   CodeInvalidRequest,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Missing required fields",
		},
		{
			name:       "reply without json",
			generator:  &fakeGenerator{reply: "I'm sorry, I can't help with that."},
			wantCode:   CodeEvaluationFailed,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Unable to parse evaluation results",
		},
		{
			name:       "reply with missing score",
			generator:  &fakeGenerator{reply: `{"coverage_score": 10}`},
			wantCode:   CodeEvaluationFailed,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Unable to parse evaluation results",
		},
		{
			name:       "rate limited",
			generator:  &fakeGenerator{err: errors.New("rate limit reached for requests")},
			wantCode:   CodeRateLimitExceeded,
			wantStatus: http.StatusTooManyRequests,
			wantMsg:    "Fake API rate limit exceeded",
		},
		{
			name:       "bad credential",
			generator:  &fakeGenerator{err: errors.New("Incorrect API key provided")},
			wantCode:   CodeAPIKeyError,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Fake API key configuration error",
		},
		{
			name:       "other upstream failure",
			generator:  &fakeGenerator{err: errors.New("upstream exploded")},
			wantCode:   CodeEvaluationFailed,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Unable to evaluate the answer at this time",
		},
		{
			name:       "deadline exceeded",
			generator:  blockingGenerator{},
			wantCode:   CodeEvaluationFailed,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Unable to evaluate the answer at this time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := sampleRequest()
			if tt.mutate != nil {
				tt.mutate(&req)
			}
			evaluator := NewEvaluator(tt.generator, zaptest.NewLogger(t), 50*time.Millisecond)

			evaluation, err := evaluator.Evaluate(context.Background(), req)
			require.Error(t, err)
			assert.Nil(t, evaluation)

			var evalErr *EvaluationError
			require.ErrorAs(t, err, &evalErr)
			assert.Equal(t, tt.wantCode, evalErr.Code)
			assert.Equal(t, tt.wantStatus, evalErr.Status)
			assert.Equal(t, tt.wantMsg, evalErr.Message)
		})
	}
}

func TestEvaluator_Evaluate_InvalidRequestSkipsGeneration(t *testing.T) {
	gen := &fakeGenerator{reply: goodReply}
	req := sampleRequest()
	req.UserAnswer = ""

	_, err := newTestEvaluator(t, gen).Evaluate(context.Background(), req)
	require.Error(t, err)
	assert.Empty(t, gen.prompts)
}

func TestEvaluator_Evaluate_LenientFeedback(t *testing.T) {
	gen := &fakeGenerator{reply: `{
  "coverage_score": 20,
  "technical_accuracy": 20,
  "communication_quality": 15,
  "additional_insights": 5,
  "strengths": [{"point": "Good log review"}],
  "improvements": "Mention correlation"
}`}

	evaluation, err := newTestEvaluator(t, gen).Evaluate(context.Background(), sampleRequest())
	require.NoError(t, err)

	assert.Equal(t, 60.0, evaluation.OverallScore)
	assert.Equal(t, 20, evaluation.XPEarned)
	assert.Equal(t, []string{`{"point":"Good log review"}`}, evaluation.Feedback.Strengths)
	assert.Equal(t, []string{"Mention correlation"}, evaluation.Feedback.Improvements)
	assert.Equal(t, []string{}, evaluation.Feedback.SpecificSuggestions)
}
