package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
)

func TestClient_AuthenticatedRequestCarriesBearer(t *testing.T) {
	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/jobs", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"items":[{"id":"j1","title":"Backend Engineer"}],"total":1,"page":1,"size":10,"pages":1}`))
	})
	c, _ := newTestClient(t, mux)
	c.Session.session = Session{UserID: "u1", AuthToken: "abc", IsAuthenticated: true}

	list, err := c.Jobs.List(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if gotAuth != "Bearer abc" {
		t.Fatalf("expected Authorization %q, got %q", "Bearer abc", gotAuth)
	}
	if list.Total != 1 || list.Page.Page != 1 || list.Size != 10 || list.Pages != 1 {
		t.Fatalf("pagination envelope mangled: %+v", list.Page)
	}
	if len(list.Items) != 1 || list.Items[0].Title != "Backend Engineer" {
		t.Fatalf("unexpected items: %+v", list.Items)
	}
}

func TestClient_UnauthenticatedRequestHasNoBearer(t *testing.T) {
	var sawAuth bool
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/jobs", func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		_, _ = w.Write([]byte(`{"items":[],"total":0,"page":1,"size":10,"pages":0}`))
	})
	c, _ := newTestClient(t, mux)

	if _, err := c.Jobs.List(context.Background(), 1, 10); err != nil {
		t.Fatalf("list: %v", err)
	}
	if sawAuth {
		t.Fatalf("Authorization header must be absent without a session")
	}
}

func TestClient_CallerHeadersWin(t *testing.T) {
	var gotAuth, gotTrace string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/ping", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotTrace = r.Header.Get("X-Trace-Id")
		w.WriteHeader(http.StatusNoContent)
	})
	c, _ := newTestClient(t, mux)
	c.Session.session = Session{AuthToken: "abc", IsAuthenticated: true}

	headers := http.Header{}
	headers.Set("Authorization", "Bearer override")
	headers.Set("X-Trace-Id", "t-42")
	if err := c.do(context.Background(), http.MethodGet, "/ping", nil, headers, nil, nil); err != nil {
		t.Fatalf("do: %v", err)
	}

	if gotAuth != "Bearer override" {
		t.Fatalf("caller Authorization should win, got %q", gotAuth)
	}
	if gotTrace != "t-42" {
		t.Fatalf("extra header lost, got %q", gotTrace)
	}
}

func TestClient_APIErrorDetail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/jobs/missing", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Job not found"}`))
	})
	c, _ := newTestClient(t, mux)

	_, err := c.Jobs.Get(context.Background(), "missing")
	if err == nil {
		t.Fatalf("expected error")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Status != http.StatusNotFound || apiErr.Error() != "Job not found" {
		t.Fatalf("unexpected error: status=%d detail=%q", apiErr.Status, apiErr.Detail)
	}
}

func TestClient_APIErrorFallbackMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/jobs", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	})
	c, _ := newTestClient(t, mux)

	_, err := c.Jobs.List(context.Background(), 1, 10)
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Error() != "request failed with status 502" {
		t.Fatalf("unexpected fallback message: %q", err.Error())
	}
}

func TestListCache_KeyIncludesQuery(t *testing.T) {
	q1 := url.Values{"page": {"1"}, "size": {"10"}}
	q2 := url.Values{"page": {"2"}, "size": {"10"}}
	if cacheKey("jobs", q1) == cacheKey("jobs", q2) {
		t.Fatalf("distinct queries must yield distinct keys")
	}
	if cacheKey("jobs", q1) == cacheKey("users", q1) {
		t.Fatalf("distinct families must yield distinct keys")
	}
}

func TestJobsClient_ListIsCached(t *testing.T) {
	var hits int
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/jobs", func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte(`{"items":[{"id":"j1","title":"SRE"}],"total":1,"page":1,"size":10,"pages":1}`))
	})
	c, _ := newTestClient(t, mux)

	for i := 0; i < 3; i++ {
		list, err := c.Jobs.List(context.Background(), 1, 10)
		if err != nil {
			t.Fatalf("list %d: %v", i, err)
		}
		if len(list.Items) != 1 {
			t.Fatalf("list %d: unexpected items %+v", i, list.Items)
		}
	}
	if hits != 1 {
		t.Fatalf("expected 1 server hit, got %d", hits)
	}

	// Different page is a different key, so it goes to the server.
	if _, err := c.Jobs.List(context.Background(), 2, 10); err != nil {
		t.Fatalf("list page 2: %v", err)
	}
	if hits != 2 {
		t.Fatalf("expected 2 server hits, got %d", hits)
	}
}

func TestJobsClient_CreateInvalidatesListCache(t *testing.T) {
	var listHits int
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/jobs", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			var in CreateJobInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				t.Fatalf("decode create: %v", err)
			}
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"j2","title":"` + in.Title + `"}`))
			return
		}
		listHits++
		_, _ = w.Write([]byte(`{"items":[],"total":0,"page":1,"size":10,"pages":0}`))
	})
	c, _ := newTestClient(t, mux)
	c.Session.session = Session{AuthToken: "abc", IsAuthenticated: true}

	if _, err := c.Jobs.List(context.Background(), 1, 10); err != nil {
		t.Fatalf("list: %v", err)
	}
	if _, err := c.Jobs.List(context.Background(), 1, 10); err != nil {
		t.Fatalf("cached list: %v", err)
	}
	if listHits != 1 {
		t.Fatalf("expected 1 list hit before create, got %d", listHits)
	}

	if _, err := c.Jobs.Create(context.Background(), CreateJobInput{Title: "Platform Engineer", Description: "d", Location: "Remote", JobType: "full-time"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := c.Jobs.List(context.Background(), 1, 10); err != nil {
		t.Fatalf("list after create: %v", err)
	}
	if listHits != 2 {
		t.Fatalf("create must invalidate the list cache, got %d hits", listHits)
	}
}
