package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jobPostingHTML = `<html>
<head><title>Job</title><style>.x{color:red}</style></head>
<body>
<nav>Home | Jobs | About</nav>
<script>trackVisit();</script>
<div class="posting">
<h1>Senior Go Engineer</h1>
<p>We build distributed systems in Go.</p>
<p>Requirements: 5+ years of backend experience.</p>
</div>
<footer>Copyright</footer>
</body>
</html>`

func TestFetchJobDescription(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(jobPostingHTML))
	}))
	defer srv.Close()

	text, err := FetchJobDescription(context.Background(), srv.URL, nil)
	require.NoError(t, err)

	assert.Contains(t, text, "Senior Go Engineer")
	assert.Contains(t, text, "distributed systems in Go")
	assert.NotContains(t, text, "trackVisit")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "Copyright")
}

func TestFetchJobDescription_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := FetchJobDescription(context.Background(), srv.URL, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP status 404")
}

func TestFetchJobDescription_InvalidURL(t *testing.T) {
	_, err := FetchJobDescription(context.Background(), "not-a-url", nil)
	require.Error(t, err)

	var ingErr *Error
	assert.ErrorAs(t, err, &ingErr)
}

func TestExtractText_StripsNoise(t *testing.T) {
	text, err := ExtractText(`<body><nav>menu</nav><p>content here</p></body>`)
	require.NoError(t, err)
	assert.Contains(t, text, "content here")
	assert.NotContains(t, text, "menu")
}

func TestCleanText(t *testing.T) {
	in := "  line one \r\n\r\n\r\n\r\nline two\t\n"
	out := CleanText(in)
	assert.Equal(t, "line one\n\nline two", out)
}
