package services

import (
	"fmt"
	"strings"

	"interviewhub/models"
)

// FormatExpertAnswer renders the expert talking points as a 1-based numbered list.
func FormatExpertAnswer(points []string) string {
	lines := make([]string, len(points))
	for i, point := range points {
		lines[i] = fmt.Sprintf("%d. %s", i+1, point)
	}
	return strings.Join(lines, "\n")
}

// BuildEvaluationPrompt constructs the grading prompt. Field names and maximum
// scores in the requested JSON are what ParseModelEvaluation expects back.
func BuildEvaluationPrompt(req models.EvaluationRequest) string {
	var question models.QuestionData
	if req.Question != nil {
		question = *req.Question
	}

	return fmt.Sprintf(`
You are an expert cybersecurity interviewer evaluating a candidate's response for a %s position at %s level.

QUESTION: %s
CATEGORY: %s

EXPERT ANSWER (Reference):
%s

CANDIDATE'S ANSWER:
%s

Please evaluate the candidate's answer and provide a detailed assessment. Consider:

1. COVERAGE SCORE (0-30): How many key points from the expert answer were covered?
2. TECHNICAL ACCURACY (0-30): How technically correct and precise is the information?
3. COMMUNICATION QUALITY (0-25): How clear, structured, and professional is the response?
4. ADDITIONAL INSIGHTS (0-15): Any extra knowledge, best practices, or tools mentioned beyond the basic requirements?

Provide your response in the following JSON format:
{
  "coverage_score": <number 0-30>,
  "technical_accuracy": <number 0-30>,
  "communication_quality": <number 0-25>,
  "additional_insights": <number 0-15>,
  "strengths": [<array of specific strengths found in the answer>],
  "improvements": [<array of specific areas for improvement>],
  "specific_suggestions": [<array of actionable learning suggestions>]
}

Be specific and constructive in your feedback. Focus on cybersecurity best practices and industry standards.
`,
		req.Role, req.ExperienceLevel,
		question.Question, question.Category,
		FormatExpertAnswer(question.Answer),
		req.UserAnswer,
	)
}
