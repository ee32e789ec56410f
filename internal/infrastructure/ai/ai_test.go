package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/productividad-api/internal/application/dto"
	"github.com/jhoicas/productividad-api/pkg/config"
)

var testToday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func sampleMetrics() *dto.DashboardDTO {
	return &dto.DashboardDTO{
		Period:      "2025-01-01 al 2025-03-10",
		Technicians: []dto.TechnicianTotalDTO{{Name: "Juan Perez", Total: 4}},
		Trends:      []dto.TrendPointDTO{{Date: "2025-01", Count: 3}, {Date: "2025-02", Count: 1}},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Gemini
// ──────────────────────────────────────────────────────────────────────────────

func geminiServer(t *testing.T, status int, reply string, inspect func(r *http.Request, body geminiRequest)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var req geminiRequest
		require.NoError(t, json.Unmarshal(raw, &req))
		if inspect != nil {
			inspect(r, req)
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
}

func geminiReply(text string) string {
	b, _ := json.Marshal(map[string]any{
		"candidates": []any{map[string]any{"content": map[string]any{"parts": []any{map[string]any{"text": text}}}}},
	})
	return string(b)
}

func TestGemini_GenerateInsight(t *testing.T) {
	srv := geminiServer(t, http.StatusOK, geminiReply("# Informe de Gestión\n"), func(r *http.Request, body geminiRequest) {
		assert.Equal(t, "/v1beta/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "key-123", r.Header.Get("x-goog-api-key"))
		require.Len(t, body.Contents, 1)
		assert.Contains(t, body.Contents[0].Parts[0].Text, "Total de trabajos: 4")
		assert.Contains(t, body.Contents[0].Parts[0].Text, "Juan Perez")
		assert.Empty(t, body.GenerationConfig.ResponseMIMEType)
	})
	defer srv.Close()

	svc := NewGeminiService("key-123", "gemini-test").WithBaseURL(srv.URL)
	out, err := svc.GenerateInsight(context.Background(), sampleMetrics())

	require.NoError(t, err)
	assert.Equal(t, "# Informe de Gestión", out)
}

func TestGemini_ExtractReportFilter(t *testing.T) {
	payload := `{"intencion":"reporte_tecnico","tecnico":"Juan Perez","fecha_inicio":"2024-11-01","fecha_fin":null}`
	srv := geminiServer(t, http.StatusOK, geminiReply(payload), func(_ *http.Request, body geminiRequest) {
		assert.Equal(t, "application/json", body.GenerationConfig.ResponseMIMEType)
		assert.Contains(t, body.Contents[0].Parts[0].Text, "Fecha de hoy: 2025-03-10")
	})
	defer srv.Close()

	svc := NewGeminiService("k", "m").WithBaseURL(srv.URL)
	svc.now = func() time.Time { return testToday }
	f, err := svc.ExtractReportFilter(context.Background(), "trabajos de Juan Perez en noviembre 2024")

	require.NoError(t, err)
	assert.Equal(t, dto.IntentTechnicianReport, f.Intent)
	assert.Equal(t, "Juan Perez", f.Technician)
	require.NotNil(t, f.StartDate)
	assert.Equal(t, time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC), *f.StartDate)
	assert.Nil(t, f.EndDate)
}

func TestGemini_ErrorDeAPI(t *testing.T) {
	srv := geminiServer(t, http.StatusBadRequest, `{"error":{"code":400,"message":"API key not valid"}}`, nil)
	defer srv.Close()

	_, err := NewGeminiService("k", "m").WithBaseURL(srv.URL).GenerateInsight(context.Background(), sampleMetrics())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestGemini_SinAPIKey(t *testing.T) {
	_, err := NewGeminiService("", "m").GenerateInsight(context.Background(), sampleMetrics())
	assert.ErrorContains(t, err, "GEMINI_API_KEY")
}

// ──────────────────────────────────────────────────────────────────────────────
// Anthropic
// ──────────────────────────────────────────────────────────────────────────────

func TestAnthropic_ExtractReportFilterConMarkdown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "key-abc", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))

		var req anthropicRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "claude-test", req.Model)
		assert.Equal(t, filterSystemPrompt, req.System)

		text := "Aquí está:\n```json\n{\"intencion\":\"reporte_tecnico\",\"tecnico\":\"null\",\"fecha_inicio\":\"2025-02-01\",\"fecha_fin\":\"2025-02-28\"}\n```"
		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []any{map[string]any{"type": "text", "text": text}},
		})
	}))
	defer srv.Close()

	f, err := NewAnthropicService("key-abc", "claude-test").WithBaseURL(srv.URL).
		ExtractReportFilter(context.Background(), "reporte de febrero")

	require.NoError(t, err)
	assert.Equal(t, "", f.Technician, "el texto null cuenta como ausente")
	require.NotNil(t, f.EndDate)
	assert.Equal(t, 28, f.EndDate.Day())
}

func TestAnthropic_ErrorHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"type":"error","error":{"type":"rate_limit_error","message":"slow down"}}`)
	}))
	defer srv.Close()

	_, err := NewAnthropicService("k", "m").WithBaseURL(srv.URL).GenerateInsight(context.Background(), sampleMetrics())

	assert.ErrorContains(t, err, "rate_limit_error")
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func TestParseReportFilter_FechaInvalida(t *testing.T) {
	f, err := parseReportFilter(`{"intencion":"otro","tecnico":" Ana ","fecha_inicio":"01/02/2025"}`)

	require.NoError(t, err)
	assert.Equal(t, "otro", f.Intent)
	assert.Equal(t, "Ana", f.Technician)
	assert.Nil(t, f.StartDate)
}

func TestParseReportFilter_SinJSON(t *testing.T) {
	_, err := parseReportFilter("no entendí")
	assert.Error(t, err)
}

func TestNewSummarizer(t *testing.T) {
	assert.IsType(t, &AnthropicService{}, NewSummarizer(config.AIConfig{Provider: "anthropic"}))
	assert.IsType(t, &GeminiService{}, NewSummarizer(config.AIConfig{Provider: "gemini"}))
}
