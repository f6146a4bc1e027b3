package linkedin

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rewriteTransport routes every request to the test server so FetchPage
// can keep its linkedin.com host check.
type rewriteTransport struct {
	target *url.URL
}

func (t rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = t.target.Scheme
	req.URL.Host = t.target.Host
	return http.DefaultTransport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	target, err := url.Parse(srv.URL)
	require.NoError(t, err)
	return NewClient(&http.Client{Transport: rewriteTransport{target: target}})
}

func TestIsLinkedInHost(t *testing.T) {
	assert.True(t, isLinkedInHost("linkedin.com"))
	assert.True(t, isLinkedInHost("www.linkedin.com"))
	assert.True(t, isLinkedInHost("WWW.LINKEDIN.COM"))
	assert.False(t, isLinkedInHost("linkedin.com.evil.example"))
	assert.False(t, isLinkedInHost("notlinkedin.com"))
	assert.False(t, isLinkedInHost("example.com"))
	assert.False(t, isLinkedInHost(""))
}

func TestFetchPageRejectsNonLinkedInURL(t *testing.T) {
	c := NewClient(nil)

	for _, raw := range []string{
		"https://example.com/in/jane",
		"https://linkedin.com.evil.example/in/jane",
		"not a url at all ://",
	} {
		_, err := c.FetchPage(context.Background(), raw)
		assert.ErrorIs(t, err, ErrNotLinkedInURL, raw)
	}
}

func TestFetchPageParsesOGMeta(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla")
		w.Write([]byte(`<html><head>
			<meta property="og:title" content="Jane Doe | LinkedIn">
			<meta property="og:description" content="Software Engineer at Acme">
		</head><body>  Jane   Doe   profile  </body></html>`))
	})

	page, err := c.FetchPage(context.Background(), "https://www.linkedin.com/in/janedoe")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", page.Name)
	assert.Equal(t, "Software Engineer at Acme", page.Headline)
	assert.Equal(t, "Jane Doe profile", page.BodyText)
}

func TestFetchPageNonSuccessStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.FetchPage(context.Background(), "https://www.linkedin.com/in/janedoe")
	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Contains(t, netErr.Error(), "upload your CV instead")
}

func TestPageFromDocumentWithoutMeta(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body>nothing here</body></html>"))
	require.NoError(t, err)

	page := pageFromDocument(doc)
	assert.Empty(t, page.Name)
	assert.Empty(t, page.Headline)
	assert.Equal(t, "nothing here", page.BodyText)
}
