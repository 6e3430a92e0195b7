package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/contentlint/internal/analysis"
	"github.com/pthm/contentlint/internal/config"
	"github.com/pthm/contentlint/internal/store"
)

const russianText = "Кошка сидит на окне. Она смотрит на улицу. Дом был построен в прошлом году."

func testConfig() config.Config {
	return config.Config{
		Analysis: config.AnalysisConfig{MaxTextBytes: 1 << 20},
		Server:   config.ServerConfig{Host: "127.0.0.1", Port: 8080, ShutdownTimeout: time.Second},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Content-Type",
			MaxAge:         60,
		},
	}
}

func newTestServer(t *testing.T, cfg config.Config, st *store.Store) *httptest.Server {
	t.Helper()
	a, err := analysis.New()
	require.NoError(t, err)
	ts := httptest.NewServer(New(cfg, a, st, zerolog.Nop()).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func requestBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, testConfig(), nil)
	resp := get(t, ts.URL+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}

func TestAnalyzeRussian(t *testing.T) {
	ts := newTestServer(t, testConfig(), nil)
	resp := post(t, ts.URL+"/api/analyze", requestBody(t, map[string]string{
		"text":     russianText,
		"language": "ru",
		"id":       "cat",
		"keyword":  "кошка",
	}))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody[analyzeResponse](t, resp)
	require.NotNil(t, out.Report)
	assert.Equal(t, "cat", out.Report.ID)
	assert.Equal(t, "ru", out.Report.Language)
	assert.Empty(t, out.Report.FallbackReason)
	assert.Empty(t, out.RunID)
	assert.NotEmpty(t, out.Report.Results)
}

func TestAnalyzeUnknownLanguageFallsBack(t *testing.T) {
	ts := newTestServer(t, testConfig(), nil)
	resp := post(t, ts.URL+"/api/analyze", `{"text":"Some text here.","language":"tlh"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody[analyzeResponse](t, resp)
	assert.Equal(t, "default", out.Report.Language)
	assert.NotEmpty(t, out.Report.FallbackReason)
}

func TestAnalyzeRejectsBadRequests(t *testing.T) {
	cfg := testConfig()
	cfg.Analysis.MaxTextBytes = 32

	ts := newTestServer(t, cfg, nil)

	resp := post(t, ts.URL+"/api/analyze", `{"text":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = post(t, ts.URL+"/api/analyze", requestBody(t, map[string]string{"text": strings.Repeat("слово ", 20)}))
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	out := decodeBody[errorResponse](t, resp)
	assert.Contains(t, out.Error, "32 bytes")

	resp = post(t, ts.URL+"/api/analyze", `{"text":"`+strings.Repeat("a", 200<<10)+`"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)

	resp = get(t, ts.URL+"/api/analyze")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestAnalyzeBatchKeepsOrder(t *testing.T) {
	ts := newTestServer(t, testConfig(), nil)
	resp := post(t, ts.URL+"/api/analyze/batch", requestBody(t, map[string]any{
		"language": "ru",
		"papers": []map[string]string{
			{"id": "first", "text": russianText},
			{"text": "The cat sat on the mat. It was happy.", "language": "en"},
		},
	}))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody[batchResponse](t, resp)
	require.Len(t, out.Reports, 2)
	assert.Equal(t, "first", out.Reports[0].ID)
	assert.Equal(t, "#2", out.Reports[1].ID)
	assert.Equal(t, "ru", out.Reports[0].Language)

	resp = post(t, ts.URL+"/api/analyze/batch", `{"papers":[]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLanguages(t *testing.T) {
	ts := newTestServer(t, testConfig(), nil)

	out := decodeBody[languagesResponse](t, get(t, ts.URL+"/api/languages"))
	codes := make([]string, 0, len(out.Languages))
	for _, c := range out.Languages {
		codes = append(codes, c.Language)
	}
	assert.Contains(t, codes, "ru")
	assert.Contains(t, codes, "default")

	resp := get(t, ts.URL+"/api/languages/ru")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ru := decodeBody[struct {
		Language string `json:"language"`
		Passive  string `json:"passive_construction_type"`
	}](t, resp)
	assert.Equal(t, "ru", ru.Language)
	assert.Equal(t, "morphological", ru.Passive)

	resp = get(t, ts.URL+"/api/languages/tlh")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAnalyzeStoresResults(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	ts := newTestServer(t, testConfig(), st)

	resp := get(t, ts.URL+"/api/indexables/cat")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = post(t, ts.URL+"/api/analyze", requestBody(t, map[string]string{
		"text": russianText, "language": "ru", "id": "cat", "keyword": "кошка",
	}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBody[analyzeResponse](t, resp)
	assert.NotEmpty(t, out.RunID)

	resp = get(t, ts.URL+"/api/indexables/cat")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ix := decodeBody[store.Indexable](t, resp)
	assert.Equal(t, "ru", ix.Language)
	assert.Equal(t, "кошка", ix.PrimaryFocusKeyword)
	assert.Equal(t, out.RunID, ix.RunID)
}

func TestAnalyzeBatchRejectsDuplicateIDs(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	ts := newTestServer(t, testConfig(), st)
	resp := post(t, ts.URL+"/api/analyze/batch", requestBody(t, map[string]any{
		"language": "en",
		"papers": []map[string]string{
			{"id": "post", "text": "The cat sat on the mat."},
			{"id": "post", "text": "The dog ran in the park."},
		},
	}))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	runs, err := st.Runs(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestIndexablesWithoutStore(t *testing.T) {
	ts := newTestServer(t, testConfig(), nil)
	resp := get(t, ts.URL+"/api/indexables/anything")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t, testConfig(), nil)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/analyze", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Less(t, resp.StatusCode, 300)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestServeListenerShutsDown(t *testing.T) {
	a, err := analysis.New()
	require.NoError(t, err)
	srv := New(testConfig(), a, nil, zerolog.Nop())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ServeListener(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}
