package prompt

// Spec is a fully built prompt: the text parts sent to the model plus the
// generation options for the call. Immutable once built.
type Spec struct {
	Parts           []string
	MaxOutputTokens int
	// Temperature of nil leaves the provider default in place.
	Temperature *float64
}

// Builder maps a validated request payload to a Spec. Builders are pure and
// never see payloads missing their route's required fields.
type Builder func(payload map[string]any) Spec

func temp(v float64) *float64 {
	return &v
}

func stringField(payload map[string]any, key string) string {
	s, _ := payload[key].(string)
	return s
}
