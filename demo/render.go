package demo

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"interviewhub/models"
)

//go:generate go run github.com/a-h/templ/cmd/templ@v0.2.476 generate

// RenderText writes a terminal-friendly view of the result.
func RenderText(w io.Writer, result *Result) error {
	var sb strings.Builder
	resp := result.Response

	if !resp.Success || resp.Evaluation == nil {
		errBody := resp.Error
		if errBody == nil {
			errBody = &models.ErrorBody{Code: "UNKNOWN", Message: "Empty response"}
		}
		sb.WriteString("Evaluation failed")
		if result.StatusCode != 0 {
			fmt.Fprintf(&sb, " (HTTP %d)", result.StatusCode)
		}
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "  code:    %s\n", errBody.Code)
		fmt.Fprintf(&sb, "  message: %s\n", errBody.Message)
		if errBody.Details != "" {
			fmt.Fprintf(&sb, "  details: %s\n", errBody.Details)
		}
		_, err := io.WriteString(w, sb.String())
		return err
	}

	eval := resp.Evaluation
	fmt.Fprintf(&sb, "Overall score: %s/100   XP earned: +%d\n\n", FormatScore(eval.OverallScore), eval.XPEarned)

	sb.WriteString("Breakdown\n")
	for _, row := range BreakdownRows(eval.Breakdown) {
		fmt.Fprintf(&sb, "  %-22s %s/%d\n", row.Label, FormatScore(row.Score), row.Max)
	}

	writeList(&sb, "Strengths", eval.Feedback.Strengths)
	writeList(&sb, "Improvements", eval.Feedback.Improvements)
	writeList(&sb, "Suggestions", eval.Feedback.SpecificSuggestions)
	writeList(&sb, "Expert reference", eval.ExpertReference)

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeList(sb *strings.Builder, title string, items []string) {
	fmt.Fprintf(sb, "\n%s\n", title)
	if len(items) == 0 {
		sb.WriteString("  (none)\n")
		return
	}
	for _, item := range items {
		fmt.Fprintf(sb, "  - %s\n", item)
	}
}

type BreakdownRow struct {
	Label string
	Score float64
	Max   int
}

func BreakdownRows(b models.ScoreBreakdown) []BreakdownRow {
	return []BreakdownRow{
		{"Coverage", b.CoverageScore, 30},
		{"Technical accuracy", b.TechnicalAccuracy, 30},
		{"Communication quality", b.CommunicationQuality, 25},
		{"Additional insights", b.AdditionalInsights, 15},
	}
}

func FormatXP(xp int) string {
	return "+" + strconv.Itoa(xp) + " XP"
}

func FormatMax(limit int) string {
	return strconv.Itoa(limit)
}

// FormatScore prints whole scores without a fractional part.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}
