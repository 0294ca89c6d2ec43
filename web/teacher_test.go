package web

import (
	"encoding/json"
	"net/http"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unithesis/portal/gateway"
)

func teacherUpstream(t *testing.T) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/teacher/fetchByUsername/prof", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": 3, "user": {"firstName": "Ada", "lastName": "Lovelace"}}`))
	})
	mux.HandleFunc("/teacher/fetchApplications/3", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id": 42, "theme": "Compilers", "acceptanceType": "ACCEPTED",
			 "teacher": {"id": 3, "user": {"firstName": "Ada", "lastName": "Lovelace"}}},
			{"id": 43, "theme": "Databases", "acceptanceType": "DENIED",
			 "teacher": {"id": 4, "user": {"firstName": "Alan", "lastName": "Turing"}}}
		]`))
	})
	mux.HandleFunc("/thesis/fetch/all", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id": 5, "name": "A Compiler", "dateUploaded": "2026-05-01"},
			{"id": 6, "name": "Query Planner", "dateUploaded": "2026-05-02"}
		]`))
	})
	mux.HandleFunc("/teacher/fetchDefendings/3", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 1, "dateDefending": "2026-06-15"}]`))
	})
	mux.HandleFunc("/review/negative-review-count", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`2`))
	})
	return mux
}

func TestTeacherDashboard(t *testing.T) {
	srv := newTestServer(t, teacherUpstream(t))

	rec := get(srv, "/dashboard", teacherToken(t, "prof"))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Teacher Dashboard")
	assert.Contains(t, body, "Compilers")
	assert.Contains(t, body, "Databases")
	assert.Contains(t, body, "Ada Lovelace")
	assert.Contains(t, body, `href="/review/5"`)
	assert.Contains(t, body, "2 students with negative reviews")
	assert.Contains(t, body, `href="/defendings"`)
}

func TestTeacherDashboard_filters(t *testing.T) {
	srv := newTestServer(t, teacherUpstream(t))
	token := teacherToken(t, "prof")

	t.Run("by acceptance type", func(t *testing.T) {
		rec := get(srv, "/dashboard?acceptanceType=ACCEPTED", token)
		body := rec.Body.String()
		assert.Contains(t, body, "Compilers")
		assert.NotContains(t, body, "Databases")
	})

	t.Run("by teacher name", func(t *testing.T) {
		rec := get(srv, "/dashboard?teacherName=Alan+Turing", token)
		body := rec.Body.String()
		assert.Contains(t, body, "Databases")
		assert.NotContains(t, body, "Compilers")
	})

	t.Run("theses by name", func(t *testing.T) {
		rec := get(srv, "/dashboard?search=planner", token)
		body := rec.Body.String()
		assert.Contains(t, body, "Query Planner")
		assert.NotContains(t, body, "A Compiler")
	})
}

func TestTeacherDashboard_graduatedStudents(t *testing.T) {
	mux := teacherUpstream(t)
	mux.HandleFunc("/thesis-defendings/students", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2026-01-01", r.URL.Query().Get("startDate"))
		assert.Equal(t, "2026-06-30", r.URL.Query().Get("endDate"))
		_, _ = w.Write([]byte(`[{"id": 7, "name": "Jane Doe", "dateGraduated": "2026-06-20"}]`))
	})
	srv := newTestServer(t, mux)
	token := teacherToken(t, "prof")

	t.Run("with a full range", func(t *testing.T) {
		rec := get(srv, "/dashboard?startDate=2026-01-01&endDate=2026-06-30", token)
		assert.Contains(t, rec.Body.String(), "Jane Doe")
	})

	t.Run("half a range is rejected locally", func(t *testing.T) {
		rec := get(srv, "/dashboard?startDate=2026-01-01", token)
		body := rec.Body.String()
		assert.Contains(t, body, "Please select both start and end dates.")
		assert.NotContains(t, body, "Jane Doe")
	})
}

func TestApplicationPage(t *testing.T) {
	mux := teacherUpstream(t)
	mux.HandleFunc("/student/fetch/all", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 7, "name": "Jane Doe", "facultyNumber": "F123"}]`))
	})
	srv := newTestServer(t, mux)

	rec := get(srv, "/application", teacherToken(t, "prof"))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Submit an Application")
	assert.Contains(t, body, "Jane Doe (F123)")
}

func TestApplicationSubmit(t *testing.T) {
	form := url.Values{
		"theme":          {"Compilers"},
		"aim":            {"Build one"},
		"tasks":          {"Lex, parse"},
		"technologies":   {"Go"},
		"studentId":      {"7"},
		"acceptanceType": {"UNDEFINED"},
	}

	t.Run("success", func(t *testing.T) {
		var gotApp gateway.NewApplication
		mux := teacherUpstream(t)
		mux.HandleFunc("/application/add", func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotApp))
			_, _ = w.Write([]byte(`{"id": 44, "theme": "Compilers"}`))
		})
		srv := newTestServer(t, mux)

		rec := postForm(srv, "/application", teacherToken(t, "prof"), form)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
		assert.Equal(t, "Application submitted successfully", flashMessage(t, rec))

		// the teacher link comes from the resolved session, not the form
		assert.Equal(t, 3, gotApp.TeacherID)
		assert.Equal(t, 7, gotApp.StudentID)
		assert.Equal(t, gateway.AcceptanceUndefined, gotApp.AcceptanceType)
	})

	t.Run("unresolvable teacher id blocks the create call", func(t *testing.T) {
		var added int64
		mux := http.NewServeMux()
		mux.HandleFunc("/application/add", func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt64(&added, 1)
		})
		srv := newTestServer(t, mux) // teacher lookup 404s

		rec := postForm(srv, "/application", teacherToken(t, "prof"), form)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Teacher ID is missing. Please try again.")
		assert.EqualValues(t, 0, atomic.LoadInt64(&added))
	})

	t.Run("blank fields re-render with values retained", func(t *testing.T) {
		srv := newTestServer(t, teacherUpstream(t))

		rec := postForm(srv, "/application", teacherToken(t, "prof"), url.Values{"theme": {"Compilers"}})
		assert.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, `value="Compilers"`)
		assert.Contains(t, body, "aim:")
	})
}

func TestApplicationEdit(t *testing.T) {
	form := url.Values{
		"theme":          {"Compilers v2"},
		"aim":            {"Build one"},
		"tasks":          {"Lex, parse"},
		"technologies":   {"Go"},
		"acceptanceType": {"ACCEPTED"},
	}

	t.Run("success", func(t *testing.T) {
		var gotApp gateway.Application
		mux := http.NewServeMux()
		mux.HandleFunc("/application/edit/42", func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotApp))
			_, _ = w.Write([]byte(`{"id": 42}`))
		})
		srv := newTestServer(t, mux)

		rec := postForm(srv, "/application/42/edit", teacherToken(t, "prof"), form)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
		assert.Equal(t, "Application updated successfully!", flashMessage(t, rec))
		assert.Equal(t, "Compilers v2", gotApp.Theme)
		assert.Equal(t, gateway.AcceptanceAccepted, gotApp.AcceptanceType)
	})

	t.Run("blank fields are rejected locally", func(t *testing.T) {
		var calls int64
		srv := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt64(&calls, 1)
		}))

		rec := postForm(srv, "/application/42/edit", teacherToken(t, "prof"), url.Values{"theme": {"x"}})
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.EqualValues(t, 0, atomic.LoadInt64(&calls))
		assert.Contains(t, flashMessage(t, rec), "aim:")
	})
}

func TestReviewSubmit(t *testing.T) {
	form := url.Values{
		"text":         {"Solid work."},
		"dateUploaded": {"2026-05-10"},
		"conclusion":   {"true"},
	}

	t.Run("success", func(t *testing.T) {
		var gotReview gateway.NewReview
		mux := teacherUpstream(t)
		mux.HandleFunc("/review/add", func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReview))
			_, _ = w.Write([]byte(`{"thesisId": 5}`))
		})
		srv := newTestServer(t, mux)

		rec := postForm(srv, "/review/5", teacherToken(t, "prof"), form)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
		assert.Equal(t, "Review submitted successfully!", flashMessage(t, rec))
		assert.Equal(t, 5, gotReview.ThesisID)
		assert.Equal(t, 3, gotReview.TeacherID)
		assert.True(t, gotReview.Conclusion)
	})

	t.Run("unresolvable teacher id blocks the create call", func(t *testing.T) {
		var added int64
		mux := http.NewServeMux()
		mux.HandleFunc("/review/add", func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt64(&added, 1)
		})
		srv := newTestServer(t, mux)

		rec := postForm(srv, "/review/5", teacherToken(t, "prof"), form)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Failed to fetch valid teacher information.")
		assert.EqualValues(t, 0, atomic.LoadInt64(&added))
	})
}
