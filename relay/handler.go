package relay

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"cloudadvisor/gemini"
)

// Handler is the generic executor every route shares: decode, validate,
// build the prompt, call the model, shape exactly one envelope.
type Handler struct {
	Route     Route
	Generator Generator
}

// NewHandler creates a Handler for the given route descriptor.
func NewHandler(route Route, gen Generator) *Handler {
	return &Handler{Route: route, Generator: gen}
}

// ServeHTTP implements the http.Handler interface for Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid JSON body"})
		return
	}

	if missing := missingFields(payload, h.Route.RequiredFields); len(missing) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": requiredMessage(missing)})
		return
	}

	spec := h.Route.Build(payload)
	text, err := h.Generator.Generate(r.Context(), spec)
	if err != nil {
		log.Errorf("route %s: model call failed: %v", h.Route.Name, err)
		writeJSON(w, http.StatusInternalServerError, errorEnvelope(err))
		return
	}

	envelope := map[string]any{h.Route.OutputKey: text}
	if h.Route.Echo != nil {
		for key, value := range h.Route.Echo(payload) {
			if key == h.Route.OutputKey {
				continue
			}
			envelope[key] = value
		}
	}
	writeJSON(w, http.StatusOK, envelope)
}

// missingFields returns the required fields that are absent or empty.
func missingFields(payload map[string]any, required []string) []string {
	var missing []string
	for _, field := range required {
		if !fieldPresent(payload[field]) {
			missing = append(missing, field)
		}
	}
	return missing
}

func fieldPresent(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(value) != ""
	case map[string]any:
		return len(value) > 0
	case []any:
		return len(value) > 0
	default:
		return true
	}
}

func requiredMessage(missing []string) string {
	if len(missing) == 1 {
		return missing[0] + " is required"
	}
	return strings.Join(missing, ", ") + " are required"
}

// errorEnvelope maps a model failure to the 500 body. The provider's block
// or finish diagnostic rides along when present.
func errorEnvelope(err error) map[string]any {
	envelope := map[string]any{
		"error":   "Failed to generate response from Gemini",
		"details": err.Error(),
	}
	var apiErr *gemini.APIError
	if errors.As(err, &apiErr) {
		envelope["details"] = apiErr.Message
		if apiErr.Detail != "" {
			envelope["geminiErrorDetail"] = apiErr.Detail
		}
	}
	return envelope
}

func writeJSON(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Errorf("failed to write response: %v", err)
	}
}
