package browser

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	o := DefaultOptions()
	assert.True(t, o.Headless)
	assert.Equal(t, 30*time.Second, o.Timeout())

	o.TimeoutSeconds = 0
	assert.Equal(t, 30*time.Second, o.Timeout())

	o.TimeoutSeconds = 5
	assert.Equal(t, 5*time.Second, o.Timeout())

	headed := DefaultOptions()
	headed.Headless = false
	headed.ChromePath = "/usr/bin/chromium"
	assert.Len(t, headed.allocator(), len(DefaultOptions().allocator()))
}

func TestJSString(t *testing.T) {
	assert.Equal(t, `"[placeholder=\"x\"]"`, jsString(`[placeholder="x"]`))
	assert.Equal(t, `"a\nb"`, jsString("a\nb"))
}

func TestFetchStatic(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`<div class="panel-title">Sinhala</div><div></div>`))
	}))
	defer srv.Close()

	opts := DefaultOptions()
	opts.UserAgent = "swiftqa-test"

	body, err := FetchStatic(context.Background(), srv.URL, opts)
	require.NoError(t, err)
	assert.Contains(t, body, "panel-title")
	assert.Equal(t, "swiftqa-test", gotUA)

	_, err = FetchStatic(context.Background(), srv.URL+"/missing", opts)
	assert.ErrorContains(t, err, "status 404")
}
