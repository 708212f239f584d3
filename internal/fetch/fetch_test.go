package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMainText(t *testing.T) {
	html := `<html><body>
		<nav>Home | Jobs</nav>
		<div class="job-description"><p>Senior Go Engineer</p><p>Build APIs</p></div>
		<footer>Copyright</footer>
	</body></html>`

	text, err := ExtractMainText(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Senior Go Engineer")
	assert.Contains(t, text, "Build APIs")
	assert.NotContains(t, text, "Copyright")
	assert.NotContains(t, text, "Home | Jobs")
}

func TestExtractMainTextFallsBackToBody(t *testing.T) {
	text, err := ExtractMainText("<html><body><p>Plain posting text</p></body></html>")
	require.NoError(t, err)
	assert.Equal(t, "Plain posting text", text)
}

func TestJobPosting(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><main>Backend role requiring Python</main></body></html>`))
	}))
	defer server.Close()

	text, err := JobPosting(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Contains(t, text, "Backend role requiring Python")
}

func TestJobPostingInvalidURL(t *testing.T) {
	_, err := JobPosting(context.Background(), "not-a-url")

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "invalid URL")
}

func TestJobPostingHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := JobPosting(context.Background(), server.URL)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
}
