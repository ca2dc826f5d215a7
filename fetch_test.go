package goggle

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFetchText_Success verifies the response body comes back as text
func TestFetchText_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte("hello lists"))
	}))
	defer server.Close()

	body, err := FetchText(server.Client(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, "hello lists", body)
}

// TestFetchText_HTTPError verifies a non-200 status is an error
func TestFetchText_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := FetchText(server.Client(), server.URL)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

// TestFetchText_NetworkError verifies an unreachable server is an error
func TestFetchText_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // shut down before fetching

	_, err := FetchText(http.DefaultClient, server.URL)

	assert.Error(t, err)
}

// TestFetchSources_ParsesAllFour verifies the four sources are fetched and
// parsed into one Sources value
func TestFetchSources_ParsesAllFour(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/all", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<DT><A HREF="https://a.com/" ADD_DATE="0">A</A>`))
	})
	mux.HandleFunc("/starred", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<DT><A HREF="https://s.com/path" ADD_DATE="0">S</A>`))
	})
	mux.HandleFunc("/unsafe", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("! flagged domains\nb.com\n"))
	})
	mux.HandleFunc("/plus", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("c.com\n"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	src, err := FetchSources(server.Client(), SourceURLs{
		AllBookmarks:      server.URL + "/all",
		StarredBookmarks:  server.URL + "/starred",
		Unsafe:            server.URL + "/unsafe",
		PotentiallyUnsafe: server.URL + "/plus",
	})

	require.NoError(t, err)
	assert.Equal(t, []BookmarkEntry{{Site: "a.com"}}, src.All)
	assert.Equal(t, []BookmarkEntry{{Site: "s.com", PathRule: "/path^"}}, src.Starred)
	assert.Equal(t, []string{"b.com"}, src.Unsafe)
	assert.Equal(t, []string{"c.com"}, src.PotentiallyUnsafe)
}

// TestFetchSources_FailFast verifies one failing source aborts the whole run
func TestFetchSources_FailFast(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(""))
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	_, err := FetchSources(server.Client(), SourceURLs{
		AllBookmarks:      server.URL + "/ok",
		StarredBookmarks:  server.URL + "/ok",
		Unsafe:            server.URL + "/broken",
		PotentiallyUnsafe: server.URL + "/ok",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

// TestFetchSources_MalformedBookmarkAborts verifies a bad bookmark URL in one
// source aborts the whole run
func TestFetchSources_MalformedBookmarkAborts(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/all", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<DT><A HREF="relative/only" ADD_DATE="0">Bad</A>`))
	})
	mux.HandleFunc("/empty", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(""))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	_, err := FetchSources(server.Client(), SourceURLs{
		AllBookmarks:      server.URL + "/all",
		StarredBookmarks:  server.URL + "/empty",
		Unsafe:            server.URL + "/empty",
		PotentiallyUnsafe: server.URL + "/empty",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bookmark collection")
}
