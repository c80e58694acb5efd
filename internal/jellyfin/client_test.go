package jellyfin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	assert.Equal(t, "https://media.example.com", normalizeURL(" media.example.com/ "))
	assert.Equal(t, "http://10.0.0.2:8096", normalizeURL("http://10.0.0.2:8096//"))
	assert.Equal(t, "https://a.b", normalizeURL("https://a.b"))
}

type fakeServer struct {
	t     *testing.T
	names []string
	pages int
}

func (f *fakeServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	assert.Contains(f.t, r.Header.Get("X-Emby-Authorization"), `Client="CouchIndex"`)
	w.Header().Set("Content-Type", "application/json")

	switch r.URL.Path {
	case "/Users/AuthenticateByName":
		json.NewEncoder(w).Encode(map[string]any{
			"AccessToken": "secret",
			"User":        map[string]any{"Id": "user-1", "Name": "alice"},
		})
	case "/UserViews":
		json.NewEncoder(w).Encode(map[string]any{
			"Items": []map[string]any{
				{"Id": "lib-movies", "Name": "Movies", "Type": "CollectionFolder"},
				{"Id": "lib-music", "Name": "Music", "Type": "CollectionFolder"},
			},
			"TotalRecordCount": 2,
		})
	case "/Items":
		assert.Equal(f.t, "secret", r.Header.Get("X-Emby-Token"))
		f.pages++
		start, _ := strconv.Atoi(r.URL.Query().Get("startIndex"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		end := start + limit
		if end > len(f.names) {
			end = len(f.names)
		}
		items := []map[string]any{}
		for i := start; i < end; i++ {
			items = append(items, map[string]any{
				"Id":             fmt.Sprintf("item-%d", i),
				"Name":           f.names[i],
				"SortName":       f.names[i],
				"Type":           "Movie",
				"ProductionYear": 1990 + i%30,
			})
		}
		json.NewEncoder(w).Encode(map[string]any{
			"Items":            items,
			"TotalRecordCount": len(f.names),
			"StartIndex":       start,
		})
	default:
		http.NotFound(w, r)
	}
}

func newFakeServer(t *testing.T, n int) (*fakeServer, *Client) {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("Title %04d", i)
	}
	f := &fakeServer{t: t, names: names}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return f, NewClient(srv.URL)
}

func TestAuthenticate(t *testing.T) {
	_, c := newFakeServer(t, 0)
	require.NoError(t, c.Authenticate(context.Background(), "alice", "pw"))
	assert.Equal(t, "secret", c.Token())
	assert.Equal(t, "user-1", c.UserID())
}

func TestGetAllItemsPages(t *testing.T) {
	f, c := newFakeServer(t, 450)
	c.SetToken("secret", "user-1")

	items, err := c.GetAllItems(context.Background(), "", nil)
	require.NoError(t, err)
	require.Len(t, items, 450)
	assert.Equal(t, 3, f.pages)
	assert.Equal(t, "item-449", items[449].ID)
	assert.Equal(t, "Title 0000", items[0].SortName)
	assert.Equal(t, "Movie", items[0].Type)
	assert.Equal(t, 1990, items[0].Year)
}

func TestGetAllItemsCancelled(t *testing.T) {
	_, c := newFakeServer(t, 10)
	c.SetToken("secret", "user-1")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.GetAllItems(ctx, "", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLibrarySource(t *testing.T) {
	_, c := newFakeServer(t, 3)
	c.SetToken("secret", "user-1")

	src := &LibrarySource{Client: c, Library: "movies"}
	assert.Equal(t, "movies", src.Name())
	items, err := src.Items(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 3)

	missing := &LibrarySource{Client: c, Library: "Podcasts"}
	_, err = missing.Items(context.Background())
	assert.ErrorContains(t, err, "not found")
}

func TestStaticSource(t *testing.T) {
	items, err := StaticSource{}.Items(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, len(demoNames)*demoRepeat)

	seen := make(map[string]bool)
	for _, it := range items {
		assert.False(t, seen[it.ID], "duplicate id %s", it.ID)
		seen[it.ID] = true
	}

	items, err = StaticSource{Names: []string{"One", "Two"}}.Items(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Two", items[1].Name)
}
