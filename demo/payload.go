package demo

import "interviewhub/models"

// SamplePayload is the fixed request the demo sends: an entry-level SOC analyst
// answering a brute-force triage scenario.
func SamplePayload() models.EvaluationRequest {
	return models.EvaluationRequest{
		Question: &models.QuestionData{
			Question: "Multiple failed login attempts detected from the same IP address. What steps do you take?",
			Answer: []string{
				"Review SIEM logs for frequency, source IP, and targeted accounts",
				"Check for correlation with successful logins that follow failed attempts",
				"Determine if attempts follow a brute-force pattern or credential stuffing",
				"Investigate whether it's isolated or widespread across the network",
				"Block or monitor the IP address if determined to be malicious",
				"Notify affected users and enforce password resets if necessary",
				"Implement or tune detection rules for future monitoring",
			},
			Category: "scenario",
		},
		UserAnswer:      "I would first check the logs to see how many failed attempts there were. Then I would block the IP address if it looks suspicious and maybe reset passwords for affected users.",
		Role:            "SOC Analyst",
		ExperienceLevel: "entry_level",
	}
}
