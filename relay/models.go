package relay

import (
	"context"

	"cloudadvisor/prompt"
)

// Generator is the model call behind every route. *gemini.Client implements
// it; tests substitute stubs.
type Generator interface {
	Generate(ctx context.Context, spec prompt.Spec) (string, error)
}

// Route describes one relay endpoint: what must be present in the body, how
// to build the prompt, and how to shape the success envelope.
type Route struct {
	// Name is the path slug mounted under /api/ai/.
	Name string
	// RequiredFields must all be present and non-empty before the prompt is
	// built.
	RequiredFields []string
	// Build maps the validated payload to a prompt spec.
	Build prompt.Builder
	// OutputKey is the JSON key carrying the model text on success.
	OutputKey string
	// Echo, when set, returns extra fields merged into the success envelope.
	Echo func(payload map[string]any) map[string]any
}
