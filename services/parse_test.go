package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	t.Run("object wrapped in prose and a code fence", func(t *testing.T) {
		reply := "Here is my assessment:\n```json\n{\"coverage_score\": 10}\n```\nGood luck!"
		raw, ok := ExtractJSON(reply)
		require.True(t, ok)
		assert.Equal(t, `{"coverage_score": 10}`, raw)
	})

	t.Run("greedy from first to last brace", func(t *testing.T) {
		raw, ok := ExtractJSON(`first {"a": 1} then {"b": 2} done`)
		require.True(t, ok)
		assert.Equal(t, `{"a": 1} then {"b": 2}`, raw)
	})

	t.Run("spans newlines", func(t *testing.T) {
		raw, ok := ExtractJSON("{\n  \"a\": 1\n}")
		require.True(t, ok)
		assert.Equal(t, "{\n  \"a\": 1\n}", raw)
	})

	t.Run("no braces", func(t *testing.T) {
		_, ok := ExtractJSON("I cannot evaluate this answer.")
		assert.False(t, ok)
	})

	t.Run("closing brace before opening brace", func(t *testing.T) {
		_, ok := ExtractJSON("} nothing here {")
		assert.False(t, ok)
	})
}

func TestParseModelEvaluation(t *testing.T) {
	t.Run("full reply", func(t *testing.T) {
		reply := `Sure! {
  "coverage_score": 18,
  "technical_accuracy": 20,
  "communication_quality": 17,
  "additional_insights": 5,
  "strengths": ["Mentions log review"],
  "improvements": ["No SIEM correlation"],
  "specific_suggestions": ["Study credential stuffing patterns"]
}`
		parsed, err := ParseModelEvaluation(reply)
		require.NoError(t, err)
		assert.Equal(t, 18.0, parsed.Breakdown.CoverageScore)
		assert.Equal(t, 20.0, parsed.Breakdown.TechnicalAccuracy)
		assert.Equal(t, 17.0, parsed.Breakdown.CommunicationQuality)
		assert.Equal(t, 5.0, parsed.Breakdown.AdditionalInsights)
		assert.Equal(t, []string{"Mentions log review"}, parsed.Feedback.Strengths)
		assert.Equal(t, []string{"No SIEM correlation"}, parsed.Feedback.Improvements)
		assert.Equal(t, []string{"Study credential stuffing patterns"}, parsed.Feedback.SpecificSuggestions)
	})

	t.Run("feedback lists default to empty", func(t *testing.T) {
		reply := `{"coverage_score": 1, "technical_accuracy": 2, "communication_quality": 3, "additional_insights": 4, "strengths": null}`
		parsed, err := ParseModelEvaluation(reply)
		require.NoError(t, err)
		assert.NotNil(t, parsed.Feedback.Strengths)
		assert.Empty(t, parsed.Feedback.Strengths)
		assert.NotNil(t, parsed.Feedback.Improvements)
		assert.Empty(t, parsed.Feedback.Improvements)
		assert.NotNil(t, parsed.Feedback.SpecificSuggestions)
		assert.Empty(t, parsed.Feedback.SpecificSuggestions)
	})

	t.Run("fractional and out of range scores pass through", func(t *testing.T) {
		reply := `{"coverage_score": 45.5, "technical_accuracy": -3, "communication_quality": 99, "additional_insights": 0}`
		parsed, err := ParseModelEvaluation(reply)
		require.NoError(t, err)
		assert.Equal(t, 45.5, parsed.Breakdown.CoverageScore)
		assert.Equal(t, -3.0, parsed.Breakdown.TechnicalAccuracy)
		assert.Equal(t, 99.0, parsed.Breakdown.CommunicationQuality)
	})

	t.Run("odd feedback shapes are kept", func(t *testing.T) {
		tests := []struct {
			name     string
			feedback string
			want     []string
		}{
			{"object items", `[{"point": "Good log review"}]`, []string{`{"point":"Good log review"}`}},
			{"mixed items", `["Blocks the IP", 3, null, true]`, []string{"Blocks the IP", "3", "true"}},
			{"bare string", `"Mention correlation"`, []string{"Mention correlation"}},
			{"blank string", `"  "`, []string{}},
			{"bare number", `7`, []string{"7"}},
			{"bare object", `{"tip": "Use a SIEM"}`, []string{`{"tip":"Use a SIEM"}`}},
			{"empty array", `[]`, []string{}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				reply := `{"coverage_score": 10, "technical_accuracy": 20, "communication_quality": 15, "additional_insights": 5, ` +
					`"strengths": ` + tt.feedback + `, "improvements": ` + tt.feedback + `, "specific_suggestions": ` + tt.feedback + `}`
				parsed, err := ParseModelEvaluation(reply)
				require.NoError(t, err)
				assert.Equal(t, 50.0, parsed.Breakdown.Total())
				assert.Equal(t, tt.want, parsed.Feedback.Strengths)
				assert.Equal(t, tt.want, parsed.Feedback.Improvements)
				assert.Equal(t, tt.want, parsed.Feedback.SpecificSuggestions)
			})
		}
	})

	failures := map[string]string{
		"no object":         "The candidate did well.",
		"malformed object":  "{coverage_score: twenty}",
		"missing score":     `{"coverage_score": 1, "technical_accuracy": 2, "communication_quality": 3}`,
		"non numeric score": `{"coverage_score": "high", "technical_accuracy": 2, "communication_quality": 3, "additional_insights": 4}`,
		"two objects":       `{"coverage_score": 1} and also {"technical_accuracy": 2}`,
	}
	for name, reply := range failures {
		t.Run(name, func(t *testing.T) {
			parsed, err := ParseModelEvaluation(reply)
			assert.Error(t, err)
			assert.Nil(t, parsed)
		})
	}
}
