package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/jobboard/internal/auth"
	"github.com/mmcdole/jobboard/internal/board"
	"github.com/mmcdole/jobboard/internal/domain"
	"github.com/mmcdole/jobboard/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st, err := store.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := New(
		board.NewService(st.Jobs(), st.Specialists(), logger),
		auth.NewService(st.Users(), logger),
		Options{AllowedOrigins: []string{"http://localhost:3000"}},
		logger,
	)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, method, url, body string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func message(t *testing.T, body []byte) string {
	t.Helper()
	var m messageResponse
	require.NoError(t, json.Unmarshal(body, &m))
	return m.Message
}

func TestJobsEndpoints(t *testing.T) {
	ts := newTestServer(t)

	resp, body := do(t, http.MethodGet, ts.URL+"/api/jobs/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	resp, body = do(t, http.MethodPost, ts.URL+"/api/jobs/",
		`{"title":"QA","company":"Acme","location":"Remote","description":"Test things"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created domain.Job
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, domain.ID("1"), created.ID)
	assert.Equal(t, domain.DefaultJobType, created.JobType)
	assert.Contains(t, string(body), `"id":1`)

	resp, body = do(t, http.MethodGet, ts.URL+"/api/jobs/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"title":"QA"`)

	resp, body = do(t, http.MethodGet, ts.URL+"/api/jobs", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var jobs []domain.Job
	require.NoError(t, json.Unmarshal(body, &jobs))
	assert.Len(t, jobs, 1)

	resp, body = do(t, http.MethodGet, ts.URL+"/api/jobs/42", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Job not found", message(t, body))
}

func TestCreateJob_ValidationMessage(t *testing.T) {
	ts := newTestServer(t)

	resp, body := do(t, http.MethodPost, ts.URL+"/api/jobs/", `{"title":"","company":"Acme"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, message(t, body), "title is required")

	resp, body = do(t, http.MethodPost, ts.URL+"/api/jobs/", `{not json`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid JSON body", message(t, body))
}

func TestSpecialistsEndpoints(t *testing.T) {
	ts := newTestServer(t)

	resp, body := do(t, http.MethodPost, ts.URL+"/api/users",
		`{"full_name":"Ada Lovelace","email":"ada@example.com","skills":["math"]}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Contains(t, string(body), `"full_name":"Ada Lovelace"`)

	resp, body = do(t, http.MethodGet, ts.URL+"/api/users", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var specialists []domain.Specialist
	require.NoError(t, json.Unmarshal(body, &specialists))
	require.Len(t, specialists, 1)
	assert.Equal(t, []string{"math"}, specialists[0].Skills)

	resp, _ = do(t, http.MethodGet, ts.URL+"/api/users/1", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = do(t, http.MethodGet, ts.URL+"/api/users/9", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Specialist not found", message(t, body))
}

func TestAuthEndpoints(t *testing.T) {
	ts := newTestServer(t)

	resp, body := do(t, http.MethodPost, ts.URL+"/api/register", `{"fullName":"Ada","email":"ada@example.com"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, auth.MsgFieldsRequired, message(t, body))

	resp, body = do(t, http.MethodPost, ts.URL+"/api/register", `{"fullName":"Ada","email":"ada@example.com","password":"engines"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, auth.MsgRegistrationSuccessful, message(t, body))

	resp, body = do(t, http.MethodPost, ts.URL+"/api/register", `{"fullName":"Ada","email":"ada@example.com","password":"other"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, auth.MsgUserExists, message(t, body))

	resp, body = do(t, http.MethodPost, ts.URL+"/api/login", `{"email":"ada@example.com","password":"wrong"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, auth.MsgInvalidCredentials, message(t, body))

	resp, body = do(t, http.MethodPost, ts.URL+"/api/login", `{"email":"ada@example.com","password":"engines"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, auth.MsgLoginSuccessful, message(t, body))
	assert.Contains(t, string(body), `"fullName":"Ada"`)
	assert.NotContains(t, string(body), "engines")
	assert.NotContains(t, string(body), "$2a$")
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	resp, body := do(t, http.MethodGet, ts.URL+"/api/nothing", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Not found", message(t, body))
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/jobs/", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	st, err := store.Open("")
	require.NoError(t, err)
	defer st.Close()

	srv := New(board.NewService(st.Jobs(), st.Specialists(), nil), auth.NewService(st.Users(), nil), Options{}, nil)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/api/jobs/")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
