package prompt

import (
	"encoding/json"
	"fmt"
	"strings"
)

const insightsHeader = `You are a cloud cost analyst. Analyze the following billing summary and produce 3-5 concise insights: notable spend drivers, anomalies, and concrete savings opportunities.`

const insightsTruncationNote = `Note: the uploaded billing data was truncated before summarization; treat totals as lower bounds.`

// Insights renders the billing summary section by section, skipping any
// section whose field is absent or empty.
func Insights(payload map[string]any) Spec {
	summary, _ := payload["csvSummary"].(map[string]any)

	var b strings.Builder
	b.WriteString(insightsHeader)

	if total, ok := summary["totalCost"].(float64); ok {
		fmt.Fprintf(&b, "\n\nTotal spend: $%.2f", total)
	}

	if costs, ok := summary["serviceCosts"].([]any); ok && len(costs) > 0 {
		b.WriteString("\n\nTop 5 Services by Cost:")
		for _, entry := range costs {
			if pair, ok := entry.([]any); ok && len(pair) == 2 {
				name, _ := pair[0].(string)
				cost, _ := pair[1].(float64)
				fmt.Fprintf(&b, "\n- %s: $%.2f", name, cost)
			}
		}
	}

	if resources, ok := summary["topExpensiveResources"].([]any); ok && len(resources) > 0 {
		b.WriteString("\n\nMost Expensive Resources:")
		writeItems(&b, resources)
	}

	if idle, ok := summary["idleResources"].([]any); ok && len(idle) > 0 {
		b.WriteString("\n\nIdle or Underused Resources:")
		writeItems(&b, idle)
	}

	if truncated, _ := summary["dataTruncated"].(bool); truncated {
		b.WriteString("\n\n" + insightsTruncationNote)
	}

	return Spec{
		Parts:           []string{b.String()},
		MaxOutputTokens: 200,
	}
}

func writeItems(b *strings.Builder, items []any) {
	for _, item := range items {
		switch v := item.(type) {
		case string:
			fmt.Fprintf(b, "\n- %s", v)
		default:
			encoded, err := json.Marshal(v)
			if err != nil {
				fmt.Fprintf(b, "\n- %v", v)
				continue
			}
			fmt.Fprintf(b, "\n- %s", encoded)
		}
	}
}
