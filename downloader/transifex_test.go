package downloader

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const projectID = "o:dwarf-fortress:p:dwarf-fortress-steam"

type fakeTransifex struct {
	*httptest.Server
	// failures is the number of job creations to reject per resource.
	failures map[string]int
	created  map[string]int
	polls    atomic.Int32
}

func newFakeTransifex(t *testing.T) *fakeTransifex {
	t.Helper()

	f := &fakeTransifex{failures: map[string]int{}, created: map[string]int{}}
	mux := http.NewServeMux()

	auth := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer secret" {
				w.WriteHeader(http.StatusUnauthorized)
				io.WriteString(w, `{"errors":[{"detail":"bad token"}]}`)
				return
			}
			next(w, r)
		}
	}

	mux.HandleFunc("GET /projects/"+projectID, auth(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":{"id":"`+projectID+`"}}`)
	}))

	mux.HandleFunc("GET /resources", auth(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, projectID, r.URL.Query().Get("filter[project]"))
		if r.URL.Query().Get("page") == "2" {
			io.WriteString(w, `{"data":[{"id":"`+projectID+`:r:text_set","attributes":{"name":"Text set"}}],"links":{}}`)
			return
		}
		io.WriteString(w, `{"data":[{"id":"`+projectID+`:r:objects","attributes":{"slug":"objects","name":"Objects"}}],
			"links":{"next":"`+f.URL+`/resources?filter%5Bproject%5D=`+projectID+`&page=2"}}`)
	}))

	mux.HandleFunc("GET /projects/"+projectID+"/languages", auth(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":[{"id":"l:ru"},{"id":"l:de"}]}`)
	}))

	mux.HandleFunc("POST /resource_translations_async_downloads", auth(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.True(t, json.Valid(body))
		resource := gjson.GetBytes(body, "data.relationships.resource.data.id").String()
		language := gjson.GetBytes(body, "data.relationships.language.data.id").String()

		f.created[resource]++
		if f.created[resource] <= f.failures[resource] {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusAccepted)
		io.WriteString(w, `{"data":{"id":"`+resource+`|`+language+`"}}`)
	}))

	mux.HandleFunc("GET /resource_translations_async_downloads/{job}", auth(func(w http.ResponseWriter, r *http.Request) {
		if f.polls.Add(1)%2 == 1 {
			io.WriteString(w, `{"data":{"attributes":{"status":"processing"}}}`)
			return
		}
		w.Header().Set("Location", "/files/"+r.PathValue("job"))
		w.WriteHeader(http.StatusSeeOther)
	}))

	mux.HandleFunc("GET /files/{job}", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"), "the token must not leak to the file host")
		io.WriteString(w, "catalog "+r.PathValue("job"))
	})

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Close)
	return f
}

func newTestTransifex(srv *fakeTransifex, token string) *Transifex {
	tx := NewTransifex(token, "dwarf-fortress", "dwarf-fortress-steam")
	tx.BaseURL = srv.URL
	tx.PollInterval = time.Millisecond
	return tx
}

func TestTransifexConnect(t *testing.T) {
	srv := newFakeTransifex(t)

	err := newTestTransifex(srv, "wrong").Connect(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad token")

	require.NoError(t, newTestTransifex(srv, "secret").Connect(context.Background()))
}

func TestTransifexList(t *testing.T) {
	srv := newFakeTransifex(t)
	tx := newTestTransifex(srv, "secret")
	require.NoError(t, tx.Connect(context.Background()))

	resources, err := tx.ListResources(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"objects", "text_set"}, resources)

	langs, err := tx.ListLanguages(context.Background(), "objects")
	require.NoError(t, err)
	assert.Equal(t, []string{"ru", "de"}, langs)
}

func TestTransifexDownloadWithRetries(t *testing.T) {
	srv := newFakeTransifex(t)
	srv.failures[projectID+":r:objects"] = 2

	tx := newTestTransifex(srv, "secret")
	require.NoError(t, tx.Connect(context.Background()))

	dir := t.TempDir()
	var stages []Stage
	err := tx.Download(context.Background(), "ru", []string{"objects", "text_set"},
		filepath.Join(dir, "{resource}_{language}.po"), func(s Stage) { stages = append(stages, s) })
	require.NoError(t, err)

	var retries []int
	for _, s := range stages {
		if s.Status == StatusRetry {
			retries = append(retries, s.Attempt)
		}
	}
	assert.Equal(t, []int{1, 2}, retries)

	assert.Equal(t, []string{
		"objects downloading...",
		"objects retry...",
		"objects downloading...",
		"objects ok!",
		"text_set downloading...",
		"text_set ok!",
	}, statuses(dropRepeatedRetries(stages)))

	data, err := os.ReadFile(filepath.Join(dir, "objects_ru.po"))
	require.NoError(t, err)
	assert.Equal(t, "catalog "+projectID+":r:objects|l:ru", string(data))
}

// dropRepeatedRetries keeps only the first of consecutive retry stages.
func dropRepeatedRetries(stages []Stage) []Stage {
	var out []Stage
	for _, s := range stages {
		if s.Status == StatusRetry && len(out) > 0 && out[len(out)-1].Status == StatusRetry {
			continue
		}
		out = append(out, s)
	}
	return out
}

func TestTransifexDownloadStopsAfterMaxAttempts(t *testing.T) {
	srv := newFakeTransifex(t)
	srv.failures[projectID+":r:objects"] = 100

	tx := newTestTransifex(srv, "secret")
	tx.MaxAttempts = 3
	require.NoError(t, tx.Connect(context.Background()))

	var stages []Stage
	err := tx.Download(context.Background(), "ru", []string{"objects", "text_set"},
		filepath.Join(t.TempDir(), "{resource}.po"), func(s Stage) { stages = append(stages, s) })
	require.Error(t, err)

	assert.Equal(t, 3, srv.created[projectID+":r:objects"])
	assert.Zero(t, srv.created[projectID+":r:text_set"], "the run stops at the failed resource")

	last := stages[len(stages)-1]
	assert.Equal(t, "objects", last.Resource)
	assert.Equal(t, StatusFailed, last.Status)
	assert.Error(t, last.Err)
}

func TestTransifexNotConnected(t *testing.T) {
	tx := NewTransifex("secret", "org", "proj")
	err := tx.Download(context.Background(), "ru", []string{"objects"}, "{resource}.po", nil)
	assert.ErrorIs(t, err, ErrNotConnected)
	assert.Equal(t, "o:org:p:proj", tx.ProjectID())
}
