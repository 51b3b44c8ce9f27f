package models

// QuestionData is an interview question with the expert's talking points.
type QuestionData struct {
	Question string   `json:"question"`
	Answer   []string `json:"answer"`
	Category string   `json:"category"`
}

// EvaluationRequest is the payload accepted by POST /api/evaluate
type EvaluationRequest struct {
	Question        *QuestionData `json:"question" binding:"required"`
	UserAnswer      string        `json:"user_answer" binding:"required"`
	Role            string        `json:"role" binding:"required"`
	ExperienceLevel string        `json:"experience_level" binding:"required"`
}

// ScoreBreakdown holds the four sub-scores exactly as the model returned them.
// Nominal ranges are 0-30, 0-30, 0-25 and 0-15; values are never clamped.
type ScoreBreakdown struct {
	CoverageScore        float64 `json:"coverage_score"`
	TechnicalAccuracy    float64 `json:"technical_accuracy"`
	CommunicationQuality float64 `json:"communication_quality"`
	AdditionalInsights   float64 `json:"additional_insights"`
}

// Total sums the four sub-scores.
func (b ScoreBreakdown) Total() float64 {
	return b.CoverageScore + b.TechnicalAccuracy + b.CommunicationQuality + b.AdditionalInsights
}

type Feedback struct {
	Strengths           []string `json:"strengths"`
	Improvements        []string `json:"improvements"`
	SpecificSuggestions []string `json:"specific_suggestions"`
}

type Evaluation struct {
	OverallScore    float64        `json:"overall_score"`
	Breakdown       ScoreBreakdown `json:"breakdown"`
	Feedback        Feedback       `json:"feedback"`
	ExpertReference []string       `json:"expert_reference"`
	XPEarned        int            `json:"xp_earned"`
}

// ErrorBody is the uniform error shape returned by every endpoint.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
}

// EvaluationResponse covers both the success and the error shape.
type EvaluationResponse struct {
	Success    bool        `json:"success"`
	Evaluation *Evaluation `json:"evaluation,omitempty"`
	Error      *ErrorBody  `json:"error,omitempty"`
}

// HealthResponse is returned by GET /api/health
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Version   string `json:"version"`
}
