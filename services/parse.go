package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"interviewhub/models"
)

// Greedy on purpose: spans from the first '{' to the last '}' in the reply.
var jsonObjectPattern = regexp.MustCompile(`\{[\s\S]*\}`)

var errNoJSONObject = errors.New("no JSON found in AI response")

const modelReplySchema = `{
  "type": "object",
  "required": ["coverage_score", "technical_accuracy", "communication_quality", "additional_insights"],
  "properties": {
    "coverage_score":        {"type": "number"},
    "technical_accuracy":    {"type": "number"},
    "communication_quality": {"type": "number"},
    "additional_insights":   {"type": "number"},
    "strengths":             {},
    "improvements":          {},
    "specific_suggestions":  {}
  }
}`

var replySchema = mustSchema(modelReplySchema)

func mustSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic("invalid model reply schema: " + err.Error())
	}
	return schema
}

// ModelEvaluation is the model's reply after extraction and decoding.
type ModelEvaluation struct {
	Breakdown models.ScoreBreakdown
	Feedback  models.Feedback
}

type modelReply struct {
	CoverageScore        float64 `json:"coverage_score"`
	TechnicalAccuracy    float64 `json:"technical_accuracy"`
	CommunicationQuality float64 `json:"communication_quality"`
	AdditionalInsights   float64 `json:"additional_insights"`
	Strengths            any     `json:"strengths"`
	Improvements         any     `json:"improvements"`
	SpecificSuggestions  any     `json:"specific_suggestions"`
}

// ExtractJSON returns the first-'{'-to-last-'}' span of the reply.
func ExtractJSON(reply string) (string, bool) {
	match := jsonObjectPattern.FindString(reply)
	return match, match != ""
}

// ParseModelEvaluation extracts and decodes the model reply. The four scores
// must be present and numeric. Feedback lists are read leniently and default
// to empty.
func ParseModelEvaluation(reply string) (*ModelEvaluation, error) {
	raw, ok := ExtractJSON(reply)
	if !ok {
		return nil, errNoJSONObject
	}

	result, err := replySchema.Validate(gojsonschema.NewStringLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON in AI response: %w", err)
	}
	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return nil, fmt.Errorf("AI response does not match the expected format: %s", strings.Join(problems, "; "))
	}

	var parsed modelReply
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode AI response: %w", err)
	}

	return &ModelEvaluation{
		Breakdown: models.ScoreBreakdown{
			CoverageScore:        parsed.CoverageScore,
			TechnicalAccuracy:    parsed.TechnicalAccuracy,
			CommunicationQuality: parsed.CommunicationQuality,
			AdditionalInsights:   parsed.AdditionalInsights,
		},
		Feedback: models.Feedback{
			Strengths:           feedbackList(parsed.Strengths),
			Improvements:        feedbackList(parsed.Improvements),
			SpecificSuggestions: feedbackList(parsed.SpecificSuggestions),
		},
	}, nil
}

// feedbackList never fails: string items are kept, null items dropped, and
// any other item is kept as its JSON text. A bare value becomes a one-item list.
func feedbackList(value any) []string {
	switch v := value.(type) {
	case nil:
		return []string{}
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			if item == nil {
				continue
			}
			items = append(items, feedbackItem(item))
		}
		return items
	case string:
		if strings.TrimSpace(v) == "" {
			return []string{}
		}
		return []string{v}
	default:
		return []string{feedbackItem(v)}
	}
}

func feedbackItem(item any) string {
	if s, ok := item.(string); ok {
		return s
	}
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Sprint(item)
	}
	return string(data)
}
