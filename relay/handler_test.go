package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloudadvisor/gemini"
	"cloudadvisor/prompt"
)

type stubGenerator struct {
	text     string
	err      error
	lastSpec prompt.Spec
	calls    int
}

func (s *stubGenerator) Generate(_ context.Context, spec prompt.Spec) (string, error) {
	s.calls++
	s.lastSpec = spec
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

// validPayloads holds a passing body for every route.
func validPayloads() map[string]string {
	payloads := map[string]string{
		"insights": `{"csvSummary":{"totalCost":10.0,"serviceCosts":[["EC2",10.0]]}}`,
		"estimate": `{"resourceType":"EC2","size":"t3.micro","region":"us-east-1","duration":"1 month"}`,
		"chat":     `{"userQuestion":"how much did I spend?"}`,
	}
	for _, route := range Routes() {
		if _, ok := payloads[route.Name]; !ok {
			payloads[route.Name] = `{"promptContext":"some context"}`
		}
	}
	return payloads
}

func TestEveryRouteRejectsMissingFields(t *testing.T) {
	for _, route := range Routes() {
		t.Run(route.Name, func(t *testing.T) {
			gen := &stubGenerator{text: "X"}
			rr := post(t, NewHandler(route, gen), `{}`)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			body := decodeBody(t, rr)
			assert.Contains(t, body, "error")
			assert.NotContains(t, body, route.OutputKey)
			assert.Zero(t, gen.calls)
		})
	}
}

func TestEveryRouteRelaysModelText(t *testing.T) {
	payloads := validPayloads()
	for _, route := range Routes() {
		t.Run(route.Name, func(t *testing.T) {
			gen := &stubGenerator{text: "X"}
			rr := post(t, NewHandler(route, gen), payloads[route.Name])

			assert.Equal(t, http.StatusOK, rr.Code)
			body := decodeBody(t, rr)
			assert.Equal(t, "X", body[route.OutputKey])
			assert.Equal(t, 1, gen.calls)
		})
	}
}

func TestEveryRouteSurfacesModelFailure(t *testing.T) {
	payloads := validPayloads()
	for _, route := range Routes() {
		t.Run(route.Name, func(t *testing.T) {
			gen := &stubGenerator{err: errors.New("connection refused")}
			rr := post(t, NewHandler(route, gen), payloads[route.Name])

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			body := decodeBody(t, rr)
			assert.Contains(t, body, "error")
			assert.Equal(t, "connection refused", body["details"])
		})
	}
}

func TestModelFailureCarriesGeminiDetail(t *testing.T) {
	route := Routes()[0]
	gen := &stubGenerator{err: &gemini.APIError{
		Message: "prompt was blocked by Gemini safety filters",
		Detail:  "SAFETY",
	}}
	rr := post(t, NewHandler(route, gen), validPayloads()[route.Name])

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "prompt was blocked by Gemini safety filters", body["details"])
	assert.Equal(t, "SAFETY", body["geminiErrorDetail"])
}

func TestInvalidJSONBodyIsRejected(t *testing.T) {
	route := Routes()[0]
	rr := post(t, NewHandler(route, &stubGenerator{text: "X"}), `{not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeBody(t, rr), "error")
}

func TestValidationMessageNamesFields(t *testing.T) {
	estimate := routeByName(t, "estimate")
	rr := post(t, NewHandler(estimate, &stubGenerator{text: "X"}),
		`{"resourceType":"EC2","duration":"1 month"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "size, region are required", body["error"])
}

func TestEmptyStringFieldFailsValidation(t *testing.T) {
	route := routeByName(t, "recommendation")
	rr := post(t, NewHandler(route, &stubGenerator{text: "X"}), `{"promptContext":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "promptContext is required", decodeBody(t, rr)["error"])
}

func TestInsightsEchoesSummaryFields(t *testing.T) {
	route := routeByName(t, "insights")
	gen := &stubGenerator{text: "spend is dominated by EC2"}
	rr := post(t, NewHandler(route, gen),
		`{"csvSummary":{"totalCost":55.5,"rowCount":120,"insights":"should not win"}}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "spend is dominated by EC2", body["insights"])
	assert.Equal(t, 55.5, body["totalCost"])
	assert.Equal(t, float64(120), body["rowCount"])
}

func TestIdenticalRequestsYieldIdenticalEnvelopes(t *testing.T) {
	route := routeByName(t, "chat")
	gen := &stubGenerator{text: "the same answer"}
	payload := `{"userQuestion":"q","csvContext":{"totalCost":1}}`

	first := post(t, NewHandler(route, gen), payload)
	second := post(t, NewHandler(route, gen), payload)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.True(t, bytes.Equal(first.Body.Bytes(), second.Body.Bytes()))
}

func routeByName(t *testing.T, name string) Route {
	t.Helper()
	for _, route := range Routes() {
		if route.Name == name {
			return route
		}
	}
	t.Fatalf("no route named %s", name)
	return Route{}
}
