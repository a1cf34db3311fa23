package flickr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/timmy/photofeed/internal/domain"
	"github.com/timmy/photofeed/internal/source"
)

const sampleFeed = `{
	"title": "Uploads from everyone",
	"items": [
		{
			"title": "Harbour at dusk",
			"link": "https://www.flickr.com/photos/alice/1/",
			"media": {"m": "https://live.staticflickr.com/1_m.jpg"},
			"description": " <p>It\'s a <a href=\"https://www.flickr.com/photos/alice/1/\">photo</a></p>",
			"author": "nobody@flickr.com (\"alice\")",
			"author_id": "123@N01",
			"tags": "sunset harbour"
		}
	]
}`

func newTestAdapter(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *Adapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewAdapter(&Config{FeedURL: srv.URL, Timeout: timeout, PageSize: 20})
}

func TestQuery(t *testing.T) {
	tests := []struct {
		name     string
		sel      domain.Selection
		wantKey  string
		wantVal  string
		otherKey string
	}{
		{name: "all", sel: domain.Selection{}, otherKey: "id"},
		{name: "author", sel: domain.AuthorSelection("123@N01"), wantKey: "id", wantVal: "123@N01", otherKey: "tags"},
		{name: "tag", sel: domain.TagSelection("sunset"), wantKey: "tags", wantVal: "sunset", otherKey: "id"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := Query(tc.sel)
			if q["format"] != "json" || q["nojsoncallback"] != "1" {
				t.Errorf("expected raw json params, got %v", q)
			}
			if tc.wantKey != "" && q[tc.wantKey] != tc.wantVal {
				t.Errorf("expected %s=%q, got %q", tc.wantKey, tc.wantVal, q[tc.wantKey])
			}
			if _, ok := q[tc.otherKey]; ok {
				t.Errorf("unexpected %s param in %v", tc.otherKey, q)
			}
		})
	}
}

func TestFetchFeed_ForwardsFilterAndDecodes(t *testing.T) {
	var gotQuery url.Values
	calls := 0
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, sampleFeed)
	}, time.Second)

	items, err := a.FetchFeed(context.Background(), domain.TagSelection("sun set&x=1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls != 1 {
		t.Errorf("expected exactly one upstream call, got %d", calls)
	}
	if gotQuery.Get("tags") != "sun set&x=1" {
		t.Errorf("tag not percent-encoded round trip, got %q", gotQuery.Get("tags"))
	}
	if gotQuery.Get("x") != "" {
		t.Errorf("tag leaked into another query param")
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if !strings.Contains(items[0].Description, "It's a") {
		t.Errorf("apostrophe escape not fixed: %q", items[0].Description)
	}
	if items[0].AuthorID != "123@N01" || items[0].ImageURL() != "https://live.staticflickr.com/1_m.jpg" {
		t.Errorf("unexpected item: %+v", items[0])
	}
}

func TestFetchFeed_EmptyItems(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"title":"empty","items":[]}`)
	}, time.Second)

	items, err := a.FetchFeed(context.Background(), domain.Selection{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", items)
	}
}

func TestFetchFeed_CapsPageSize(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		var b strings.Builder
		b.WriteString(`{"items":[`)
		for i := 0; i < 25; i++ {
			if i > 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(&b, `{"title":"p%d","tags":""}`, i)
		}
		b.WriteString(`]}`)
		fmt.Fprint(w, b.String())
	}, time.Second)

	items, err := a.FetchFeed(context.Background(), domain.Selection{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != domain.DefaultPageSize {
		t.Errorf("expected %d items, got %d", domain.DefaultPageSize, len(items))
	}
}

func TestFetchFeed_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		check   func(error) bool
	}{
		{
			name: "upstream 500",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			check: func(err error) bool {
				var se *source.StatusError
				return errors.As(err, &se) && se.StatusCode == http.StatusInternalServerError
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `jsonFlickrFeed({"items":[]})`)
			},
			check: func(err error) bool { return errors.Is(err, source.ErrMalformed) },
		},
		{
			name: "slow upstream",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-time.After(2 * time.Second):
				case <-r.Context().Done():
				}
			},
			check: func(err error) bool { return errors.Is(err, source.ErrTimeout) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := newTestAdapter(t, tc.handler, 100*time.Millisecond)
			_, err := a.FetchFeed(context.Background(), domain.Selection{})
			if err == nil {
				t.Fatal("expected error")
			}
			if !tc.check(err) {
				t.Errorf("unexpected error kind: %v", err)
			}
		})
	}
}

func TestFetchFeed_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	a := NewAdapter(&Config{FeedURL: addr, Timeout: time.Second})
	_, err := a.FetchFeed(context.Background(), domain.Selection{})
	if !errors.Is(err, source.ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestUnescapeQuotes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `"it\'s"`, want: `"it's"`},
		{in: `"a\\'b"`, want: `"a\\'b"`},
		{in: `"line\nbreak \"q\""`, want: `"line\nbreak \"q\""`},
		{in: `trailing\`, want: `trailing\`},
	}

	for _, tc := range tests {
		if got := string(unescapeQuotes([]byte(tc.in))); got != tc.want {
			t.Errorf("unescapeQuotes(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
