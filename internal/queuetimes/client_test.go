package queuetimes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const samplePayload = `{
  "lands": [
    {
      "id": 7,
      "name": "Fantasyland",
      "rides": [
        {"id": 1, "name": "Peter Pan's Flight", "is_open": true, "wait_time": 45, "last_updated": "2024-01-15T20:30:00.000Z"},
        {"id": 2, "name": "Matterhorn Bobsleds", "is_open": false, "wait_time": 0, "last_updated": "2024-01-15T20:29:00.000Z"}
      ]
    },
    {"id": 8, "name": "Tomorrowland", "rides": []}
  ],
  "rides": []
}`

func TestParseFeedURL_DefaultsAndValidates(t *testing.T) {
	u, err := parseFeedURL("   ")
	if err != nil {
		t.Fatalf("parseFeedURL returned error: %v", err)
	}
	if u.String() != DefaultURL {
		t.Fatalf("url = %q, want %q", u.String(), DefaultURL)
	}

	u, err = parseFeedURL("https://example.com/parks/6/queue_times.json#frag")
	if err != nil {
		t.Fatalf("parseFeedURL returned error: %v", err)
	}
	if u.Fragment != "" {
		t.Fatalf("fragment not stripped: %q", u.String())
	}

	if _, err := parseFeedURL("ftp://example.com/x.json"); err == nil {
		t.Fatalf("parseFeedURL accepted ftp scheme")
	}
	if _, err := parseFeedURL("https:///x.json"); err == nil {
		t.Fatalf("parseFeedURL accepted url without host")
	}
}

func TestClient_FetchParkDecodesPayload(t *testing.T) {
	t.Parallel()

	var gotUserAgent, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		if r.URL.Path != "/parks/16/queue_times.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(samplePayload))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL+"/parks/16/queue_times.json", time.Second, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	park, err := c.FetchPark(ctx)
	if err != nil {
		t.Fatalf("FetchPark returned error: %v", err)
	}
	if len(park.Lands) != 2 {
		t.Fatalf("lands = %d, want 2", len(park.Lands))
	}
	land := park.Lands[0]
	if land.Name != "Fantasyland" || len(land.Rides) != 2 {
		t.Fatalf("first land = %#v, want Fantasyland with 2 rides", land)
	}
	if r := land.Rides[0]; r.Name != "Peter Pan's Flight" || !r.IsOpen || r.WaitTime != 45 {
		t.Fatalf("first ride = %#v", r)
	}
	if r := land.Rides[1]; r.IsOpen {
		t.Fatalf("second ride should be closed: %#v", r)
	}
	if park.Lands[1].Rides == nil || len(park.Lands[1].Rides) != 0 {
		t.Fatalf("empty rides should decode to empty slice, got %#v", park.Lands[1].Rides)
	}

	if !strings.HasPrefix(gotUserAgent, "queueboard/") {
		t.Fatalf("User-Agent = %q, want queueboard/*", gotUserAgent)
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q, want application/json", gotAccept)
	}
}

func TestClient_FetchParkErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/bad-json":
			_, _ = w.Write([]byte("{not-json"))
		case "/no-lands":
			_, _ = w.Write([]byte(`{"rides": []}`))
		case "/null-lands":
			_, _ = w.Write([]byte(`{"lands": null}`))
		case "/empty-lands":
			_, _ = w.Write([]byte(`{"lands": []}`))
		case "/boom":
			http.Error(w, "nope", http.StatusInternalServerError)
		case "/moved":
			w.WriteHeader(http.StatusNotModified)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	tests := []struct {
		name    string
		path    string
		wantErr error
		wantMsg string
	}{
		{"malformed json", "/bad-json", ErrParse, "decode response"},
		{"missing lands", "/no-lands", ErrParse, "no lands"},
		{"null lands", "/null-lands", ErrParse, "no lands"},
		{"server error", "/boom", ErrNetwork, "returned status 500"},
		{"not found", "/missing", ErrNetwork, "returned status 404"},
		{"non-2xx redirect class", "/moved", ErrNetwork, "returned status 304"},
		{"empty lands ok", "/empty-lands", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(server.URL+tt.path, time.Second, nil)
			if err != nil {
				t.Fatalf("NewClient returned error: %v", err)
			}
			park, err := c.FetchPark(context.Background())
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("FetchPark returned error: %v", err)
				}
				if len(park.Lands) != 0 {
					t.Fatalf("lands = %d, want 0", len(park.Lands))
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("FetchPark error = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("FetchPark error = %q, want it to mention %q", err.Error(), tt.wantMsg)
			}
			if park != nil {
				t.Fatalf("FetchPark returned partial data %#v on error", park)
			}
		})
	}
}

func TestClient_ConnectionRefusedIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	c, err := NewClient(url, time.Second, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchPark(context.Background())
	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("FetchPark error = %v, want ErrNetwork", err)
	}
	if errors.Is(err, ErrParse) {
		t.Fatalf("transport failure should not be ErrParse")
	}
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	_, err := c.FetchPark(context.Background())
	if err == nil {
		t.Fatalf("FetchPark on nil client returned nil error")
	}
	if errors.Is(err, ErrNetwork) || errors.Is(err, ErrParse) {
		t.Fatalf("nil client error %v should wrap neither sentinel", err)
	}
	if c.URL() != "" {
		t.Fatalf("URL on nil client = %q, want empty", c.URL())
	}
}
