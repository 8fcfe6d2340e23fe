package relay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteTableIsComplete(t *testing.T) {
	routes := Routes()
	require.Len(t, routes, 20)

	seen := map[string]bool{}
	for _, route := range routes {
		assert.NotEmpty(t, route.Name)
		assert.NotEmpty(t, route.RequiredFields, route.Name)
		assert.NotNil(t, route.Build, route.Name)
		assert.NotEmpty(t, route.OutputKey, route.Name)
		assert.False(t, seen[route.Name], "duplicate route %s", route.Name)
		seen[route.Name] = true
	}
}

func TestRouteGenerationOptions(t *testing.T) {
	cases := map[string]struct {
		payload   map[string]any
		maxTokens int
		temp      float64
		defTemp   bool
	}{
		"insights":                  {map[string]any{"csvSummary": map[string]any{"totalCost": 1.0}}, 200, 0, true},
		"estimate":                  {map[string]any{"resourceType": "a", "size": "b", "region": "c", "duration": "d"}, 150, 0, true},
		"chat":                      {map[string]any{"userQuestion": "q"}, 300, 0.5, false},
		"recommendation":            {map[string]any{"promptContext": "x"}, 50, 0.2, false},
		"explain-anomaly":           {map[string]any{"promptContext": "x"}, 100, 0.4, false},
		"resource-optimization":     {map[string]any{"promptContext": "x"}, 200, 0.3, false},
		"troubleshoot":              {map[string]any{"promptContext": "x"}, 250, 0.4, false},
		"architecture-assistant":    {map[string]any{"promptContext": "x"}, 400, 0.7, false},
		"security-compliance":       {map[string]any{"promptContext": "x"}, 200, 0.3, false},
		"generate-playbook":         {map[string]any{"promptContext": "x"}, 600, 0.6, false},
		"iam-simplifier":            {map[string]any{"promptContext": "x"}, 500, 0.4, false},
		"dr-planner":                {map[string]any{"promptContext": "x"}, 500, 0.6, false},
		"explain-cloud":             {map[string]any{"promptContext": "x"}, 500, 0.5, false},
		"teach-me-setup":            {map[string]any{"promptContext": "x"}, 800, 0.5, false},
		"service-decision":          {map[string]any{"promptContext": "x"}, 600, 0.5, false},
		"security-policy-explainer": {map[string]any{"promptContext": "x"}, 700, 0.4, false},
		"generate-cloud-course":     {map[string]any{"promptContext": "x"}, 800, 0.6, false},
		"interactive-cloud-lab":     {map[string]any{"promptContext": "x"}, 700, 0.6, false},
		"flashcards-quizzes":        {map[string]any{"promptContext": "x"}, 700, 0.6, false},
		"cloud-career-guide":        {map[string]any{"promptContext": "x"}, 800, 0.7, false},
	}

	for _, route := range Routes() {
		tc, ok := cases[route.Name]
		require.True(t, ok, "no expectation for route %s", route.Name)

		spec := route.Build(tc.payload)
		assert.Equal(t, tc.maxTokens, spec.MaxOutputTokens, route.Name)
		if tc.defTemp {
			assert.Nil(t, spec.Temperature, route.Name)
		} else {
			require.NotNil(t, spec.Temperature, route.Name)
			assert.InDelta(t, tc.temp, *spec.Temperature, 1e-9, route.Name)
		}
	}
}
