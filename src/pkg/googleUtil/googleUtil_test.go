package googleUtil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/exception"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/logger"
)

func newTestGoogle(t *testing.T, handler http.HandlerFunc) (*Google, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	google := NewGoogle(logger.NewLogger(), "test-key")
	google.baseUrl = server.URL
	return google, server
}

func TestFetchReviews_RetriesServerError(t *testing.T) {
	requests := 0
	google, server := newTestGoogle(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("<html>backend error</html>"))
			return
		}
		w.Write([]byte(`{"status":"OK","result":{"reviews":[{"author_name":"Priya","rating":5,"text":"Great work","time":1700000000}]}}`))
	})
	defer server.Close()

	reviews, err := google.FetchReviews(context.Background(), "place-1")
	if err != nil {
		t.Fatalf("Expected fetch to recover after a server error, but got %v", err)
	}
	if requests != 2 {
		t.Errorf("Expected 2 requests, but got %d", requests)
	}
	if len(reviews) != 1 || reviews[0].AuthorName != "Priya" {
		t.Errorf("Expected the review from the second attempt, but got %+v", reviews)
	}
}

func TestFetchReviews_ServerErrorExhaustsRetries(t *testing.T) {
	requests := 0
	google, server := newTestGoogle(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream timeout"))
	})
	defer server.Close()

	_, err := google.FetchReviews(context.Background(), "place-1")
	if err == nil {
		t.Fatal("Expected an error when every attempt returns 5xx, but got nil")
	}
	if _, ok := err.(*exception.ProviderUnavailableException); !ok {
		t.Errorf("Expected ProviderUnavailableException, but got %T: %v", err, err)
	}
	if requests != 3 {
		t.Errorf("Expected 3 requests before giving up, but got %d", requests)
	}
}

func TestFetchReviews_ApiErrorNotRetried(t *testing.T) {
	requests := 0
	google, server := newTestGoogle(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"status":"INVALID_REQUEST","error_message":"place_id missing"}`))
	})
	defer server.Close()

	_, err := google.FetchReviews(context.Background(), "place-1")
	if err == nil {
		t.Fatal("Expected an error for a rejected request, but got nil")
	}
	if _, ok := err.(*exception.ProviderRejectedException); !ok {
		t.Errorf("Expected ProviderRejectedException, but got %T: %v", err, err)
	}
	if requests != 1 {
		t.Errorf("Expected 1 request for a provider rejection, but got %d", requests)
	}
}

func TestFetchReviews_MalformedBodyNotRetried(t *testing.T) {
	requests := 0
	google, server := newTestGoogle(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte("<html>not json</html>"))
	})
	defer server.Close()

	_, err := google.FetchReviews(context.Background(), "place-1")
	if err == nil {
		t.Fatal("Expected an error for a malformed body, but got nil")
	}
	if _, ok := err.(*exception.ProviderRejectedException); !ok {
		t.Errorf("Expected ProviderRejectedException, but got %T: %v", err, err)
	}
	if requests != 1 {
		t.Errorf("Expected 1 request for a malformed 200 response, but got %d", requests)
	}
}
