package relay

import "cloudadvisor/prompt"

// Routes returns the static table of relay endpoints. Each entry is mounted
// at POST /api/ai/<name>.
func Routes() []Route {
	return []Route{
		{
			Name:           "insights",
			RequiredFields: []string{"csvSummary"},
			Build:          prompt.Insights,
			OutputKey:      "insights",
			Echo: func(payload map[string]any) map[string]any {
				summary, _ := payload["csvSummary"].(map[string]any)
				return summary
			},
		},
		{
			Name:           "estimate",
			RequiredFields: []string{"resourceType", "size", "region", "duration"},
			Build:          prompt.Estimate,
			OutputKey:      "estimate",
		},
		{
			Name:           "chat",
			RequiredFields: []string{"userQuestion"},
			Build:          prompt.Chat,
			OutputKey:      "answer",
		},
		{
			Name:           "recommendation",
			RequiredFields: []string{"promptContext"},
			Build:          prompt.Recommendation,
			OutputKey:      "recommendation",
		},
		{
			Name:           "explain-anomaly",
			RequiredFields: []string{"promptContext"},
			Build:          prompt.ExplainAnomaly,
			OutputKey:      "explanation",
		},
		{
			Name:           "resource-optimization",
			RequiredFields: []string{"promptContext"},
			Build:          prompt.ResourceOptimization,
			OutputKey:      "optimizationPlan",
		},
		{
			Name:           "troubleshoot",
			RequiredFields: []string{"promptContext"},
			Build:          prompt.Troubleshoot,
			OutputKey:      "troubleshootResponse",
		},
		{
			Name:           "architecture-assistant",
			RequiredFields: []string{"promptContext"},
			Build:          prompt.ArchitectureAssist,
			OutputKey:      "architectureGuidance",
		},
		{
			Name:           "security-compliance",
			RequiredFields: []string{"promptContext"},
			Build:          prompt.SecurityCompliance,
			OutputKey:      "securityComplianceResponse",
		},
		{
			Name:           "generate-playbook",
			RequiredFields: []string{"promptContext"},
			Build:          prompt.GeneratePlaybook,
			OutputKey:      "playbook",
		},
		{
			Name:           "iam-simplifier",
			RequiredFields: []string{"promptContext"},
			Build:          prompt.IAMSimplifier,
			OutputKey:      "iamGuidance",
		},
		{
			Name:           "dr-planner",
			RequiredFields: []string{"promptContext"},
			Build:          prompt.DRPlanner,
			OutputKey:      "drPlan",
		},
		{
			Name:           "explain-cloud",
			RequiredFields: []string{"promptContext"},
			Build:          prompt.ExplainCloud,
			OutputKey:      "explanation",
		},
		{
			Name:           "teach-me-setup",
			RequiredFields: []string{"promptContext"},
			Build:          prompt.TeachMeSetup,
			OutputKey:      "learningContent",
		},
		{
			Name:           "service-decision",
			RequiredFields: []string{"promptContext"},
			Build:          prompt.ServiceDecision,
			OutputKey:      "serviceDecision",
		},
		{
			Name:           "security-policy-explainer",
			RequiredFields: []string{"promptContext"},
			Build:          prompt.PolicyExplainer,
			OutputKey:      "policyExplanation",
		},
		{
			Name:           "generate-cloud-course",
			RequiredFields: []string{"promptContext"},
			Build:          prompt.GenerateCloudCourse,
			OutputKey:      "courseContent",
		},
		{
			Name:           "interactive-cloud-lab",
			RequiredFields: []string{"promptContext"},
			Build:          prompt.InteractiveCloudLab,
			OutputKey:      "labContent",
		},
		{
			Name:           "flashcards-quizzes",
			RequiredFields: []string{"promptContext"},
			Build:          prompt.FlashcardsQuizzes,
			OutputKey:      "learningContent",
		},
		{
			Name:           "cloud-career-guide",
			RequiredFields: []string{"promptContext"},
			Build:          prompt.CloudCareerGuide,
			OutputKey:      "careerGuideContent",
		},
	}
}
