package gateway

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unithesis/portal/core"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	logger := core.NewStdLogger(log.New(ioutil.Discard, "", 0))
	return NewClient(core.UpstreamConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, logger)
}

func TestClient_Login(t *testing.T) {
	var gotReq loginRequest
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(loginResponse{Token: "tok123"})
	}))

	token, err := client.Login(context.Background(), "jdoe", "pass")
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)
	assert.Equal(t, loginRequest{Username: "jdoe", Password: "pass"}, gotReq)
}

func TestClient_Students(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/student/fetch/all", r.URL.Path)
		assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[{"id": 1, "name": "Jane Doe", "facultyNumber": "F123"}]`))
	}))

	students, err := client.Students(context.Background(), "tok123")
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, Student{ID: 1, Name: "Jane Doe", FacultyNumber: "F123"}, students[0])
}

func TestClient_NegativeReviewCount(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/review/negative-review-count", r.URL.Path)
		_, _ = w.Write([]byte(`3`))
	}))

	count, err := client.NegativeReviewCount(context.Background(), "tok123")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestClient_ThesesByGradeRange(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/thesis/by-grade-range", r.URL.Path)
		assert.Equal(t, "4.5", r.URL.Query().Get("minGrade"))
		assert.Equal(t, "6", r.URL.Query().Get("maxGrade"))
		assert.Equal(t, "7", r.URL.Query().Get("teacherId"))
		_, _ = w.Write([]byte(`[]`))
	}))

	theses, err := client.ThesesByGradeRange(context.Background(), "tok123", 4.5, 6, 7)
	require.NoError(t, err)
	assert.Empty(t, theses)
}

func TestClient_AddDefending(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/defending/add", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("teacherId"))

		var in newDefending
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "2026-06-15", in.DateDefending)
		_, _ = w.Write([]byte(`{"id": 11, "dateDefending": "2026-06-15"}`))
	}))

	created, err := client.AddDefending(context.Background(), "tok123", 7, "2026-06-15")
	require.NoError(t, err)
	assert.Equal(t, 11, created.ID)
	assert.False(t, created.Grade.Valid)
}

func TestClient_errorKinds(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind Kind
		wantMsg  string
	}{
		{name: "unauthorized", status: 401, body: `{"error": "bad credentials"}`, wantKind: KindUnauthorized, wantMsg: "bad credentials"},
		{name: "forbidden", status: 403, body: `{"message": "forbidden"}`, wantKind: KindForbidden, wantMsg: "forbidden"},
		{name: "not found", status: 404, body: ``, wantKind: KindNotFound, wantMsg: "Not Found"},
		{name: "bad request", status: 422, body: `invalid payload`, wantKind: KindBadRequest, wantMsg: "invalid payload"},
		{name: "server error", status: 500, body: ``, wantKind: KindServer, wantMsg: "Internal Server Error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))

			_, err := client.Students(context.Background(), "tok123")
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, KindOf(err))

			apiErr, ok := err.(*Error)
			require.True(t, ok)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
			assert.Equal(t, "student.fetchAll", apiErr.Op)
		})
	}
}

func TestClient_networkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	logger := core.NewStdLogger(log.New(ioutil.Discard, "", 0))
	client := NewClient(core.UpstreamConfig{BaseURL: srv.URL, Timeout: time.Second}, logger)
	srv.Close() // connection refused from here on

	_, err := client.Students(context.Background(), "tok123")
	require.Error(t, err)
	assert.Equal(t, KindNetwork, KindOf(err))
}

func TestClient_contextCancellation(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Students(ctx, "tok123")
	require.Error(t, err)
	assert.Equal(t, KindNetwork, KindOf(err))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&Error{Kind: KindNotFound}))
	assert.False(t, IsNotFound(&Error{Kind: KindServer}))
	assert.False(t, IsNotFound(assert.AnError))
	assert.False(t, IsNotFound(nil))
}
