package gallery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timmy/photofeed/internal/domain"
)

type recordingProxy struct {
	mu    sync.Mutex
	paths []string
}

func (p *recordingProxy) handler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.mu.Lock()
		p.paths = append(p.paths, r.URL.EscapedPath())
		p.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}

func TestAPIClient_RoutesBySelection(t *testing.T) {
	proxy := &recordingProxy{}
	srv := httptest.NewServer(proxy.handler(http.StatusOK, `[{"title":"t","author":"nobody@flickr.com (\"alice\")","author_id":"1@N01","tags":"sunset"}]`))
	defer srv.Close()

	client := NewAPIClient(srv.URL+"/", time.Second)

	for _, sel := range []domain.Selection{{}, domain.AuthorSelection("1@N01"), domain.TagSelection("sunset")} {
		items, err := client.Fetch(context.Background(), sel)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "1@N01", items[0].AuthorID)
	}

	assert.Equal(t, []string{"/api/getPhotos", "/api/author/1@N01", "/api/tag/sunset"}, proxy.paths)
}

func TestAPIClient_EmptyList(t *testing.T) {
	proxy := &recordingProxy{}
	srv := httptest.NewServer(proxy.handler(http.StatusOK, `[]`))
	defer srv.Close()

	items, err := NewAPIClient(srv.URL, time.Second).Fetch(context.Background(), domain.Selection{})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.Empty(t, BuildCards(items))
}

func TestAPIClient_ErrorStatus(t *testing.T) {
	proxy := &recordingProxy{}
	srv := httptest.NewServer(proxy.handler(http.StatusBadGateway, `{"error":"upstream feed returned status 500"}`))
	defer srv.Close()

	_, err := NewAPIClient(srv.URL, time.Second).Fetch(context.Background(), domain.TagSelection("sunset"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream feed returned status 500")
	assert.Contains(t, err.Error(), "502")
}

func TestAPIClient_DrivesController(t *testing.T) {
	proxy := &recordingProxy{}
	srv := httptest.NewServer(proxy.handler(http.StatusInternalServerError, `{"error":"boom"}`))
	defer srv.Close()

	c := NewController(NewAPIClient(srv.URL, time.Second), time.Second)
	defer c.Close()

	c.Start()
	c.Wait()

	st := c.State()
	assert.Equal(t, StatusFailed, st.Status)
	assert.Contains(t, st.Err, "boom")
}
