package prompt

import (
	"encoding/json"
	"fmt"
)

// contextBuilder returns a Builder that wraps the payload's promptContext
// field in a fixed template. Most routes are exactly this.
func contextBuilder(template string, maxTokens int, temperature *float64) Builder {
	return func(payload map[string]any) Spec {
		return Spec{
			Parts:           []string{fmt.Sprintf(template, stringField(payload, "promptContext"))},
			MaxOutputTokens: maxTokens,
			Temperature:     temperature,
		}
	}
}

var (
	Recommendation       = contextBuilder(recommendationTemplate, 50, temp(0.2))
	ExplainAnomaly       = contextBuilder(explainAnomalyTemplate, 100, temp(0.4))
	ResourceOptimization = contextBuilder(resourceOptimizationTemplate, 200, temp(0.3))
	Troubleshoot         = contextBuilder(troubleshootTemplate, 250, temp(0.4))
	ArchitectureAssist   = contextBuilder(architectureAssistantTemplate, 400, temp(0.7))
	SecurityCompliance   = contextBuilder(securityComplianceTemplate, 200, temp(0.3))
	GeneratePlaybook     = contextBuilder(generatePlaybookTemplate, 600, temp(0.6))
	IAMSimplifier        = contextBuilder(iamSimplifierTemplate, 500, temp(0.4))
	DRPlanner            = contextBuilder(drPlannerTemplate, 500, temp(0.6))
	ExplainCloud         = contextBuilder(explainCloudTemplate, 500, temp(0.5))
	TeachMeSetup         = contextBuilder(teachMeSetupTemplate, 800, temp(0.5))
	ServiceDecision      = contextBuilder(serviceDecisionTemplate, 600, temp(0.5))
	GenerateCloudCourse  = contextBuilder(generateCloudCourseTemplate, 800, temp(0.6))
	InteractiveCloudLab  = contextBuilder(interactiveCloudLabTemplate, 700, temp(0.6))
	FlashcardsQuizzes    = contextBuilder(flashcardsQuizzesTemplate, 700, temp(0.6))
	CloudCareerGuide     = contextBuilder(cloudCareerGuideTemplate, 800, temp(0.7))
)

// Estimate interpolates the four resource fields into the pricing template.
// Temperature is left at the provider default.
func Estimate(payload map[string]any) Spec {
	return Spec{
		Parts: []string{fmt.Sprintf(estimateTemplate,
			stringField(payload, "resourceType"),
			stringField(payload, "size"),
			stringField(payload, "region"),
			stringField(payload, "duration"),
		)},
		MaxOutputTokens: 150,
	}
}

// Chat builds a one- or two-part prompt: when csvContext is present the
// billing summary goes in a separate leading part.
func Chat(payload map[string]any) Spec {
	question := fmt.Sprintf(chatQuestionTemplate, stringField(payload, "userQuestion"))
	parts := []string{question}
	if ctx := contextAsText(payload["csvContext"]); ctx != "" {
		parts = []string{fmt.Sprintf(chatContextPreamble, ctx), question}
	}
	return Spec{
		Parts:           parts,
		MaxOutputTokens: 300,
		Temperature:     temp(0.5),
	}
}

// PolicyExplainer sniffs the input: anything that parses as JSON is treated
// as an existing policy document to explain, everything else as a request to
// generate a new policy. A bare number or empty object still counts as a
// policy document.
func PolicyExplainer(payload map[string]any) Spec {
	input := stringField(payload, "promptContext")
	template := policyGenerateTemplate
	if json.Valid([]byte(input)) {
		template = policyExplainTemplate
	}
	return Spec{
		Parts:           []string{fmt.Sprintf(template, input)},
		MaxOutputTokens: 700,
		Temperature:     temp(0.4),
	}
}

// contextAsText renders an optional context value: strings pass through,
// structured values are serialized to JSON.
func contextAsText(v any) string {
	switch ctx := v.(type) {
	case nil:
		return ""
	case string:
		return ctx
	default:
		encoded, err := json.Marshal(ctx)
		if err != nil {
			return fmt.Sprintf("%v", ctx)
		}
		return string(encoded)
	}
}
