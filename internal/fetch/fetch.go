// Package fetch retrieves job postings over HTTP and reduces their HTML to
// plain text.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout bounds a single job-posting fetch
const DefaultTimeout = 30 * time.Second

// userAgent identifies the optimizer to job boards
const userAgent = "Mozilla/5.0 (compatible; ResumeOptimizer/1.0)"

// Error reports a failed fetch for a specific URL
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// jobPostingSelectors locate the posting body on common job boards, tried in
// order before falling back to the page body.
var jobPostingSelectors = []string{
	".job-description",
	"#job-description",
	".job-details",
	".posting-content",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// noiseSelectors are stripped before text extraction
const noiseSelectors = "nav, footer, header, script, style, noscript, .ad, .ads, .sidebar, .cookie-banner, .popup"

// JobPosting fetches a job posting URL and returns its main text content.
func JobPosting(ctx context.Context, urlStr string) (string, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", userAgent)

	client := &http.Client{Timeout: DefaultTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	text, err := ExtractMainText(string(body))
	if err != nil {
		return "", &Error{URL: urlStr, Message: "content extraction failed", Cause: err}
	}
	return text, nil
}

// ExtractMainText parses HTML and returns the main posting text. Noise
// elements are removed first; the first matching posting selector wins, with
// the body element as the fallback.
func ExtractMainText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(noiseSelectors).Remove()

	var content *goquery.Selection
	for _, selector := range jobPostingSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			content = selection.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	return collapseLines(content.Text()), nil
}

// collapseLines trims each line and drops empty ones
func collapseLines(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
