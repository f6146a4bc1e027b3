package linkedin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNotLinkedInURL is returned when the supplied URL does not point at linkedin.com.
var ErrNotLinkedInURL = errors.New("please provide a valid linkedin.com URL")

// NetworkError means the profile page could not be fetched
// (unreachable host, timeout, or a non-2xx response).
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("could not reach LinkedIn (%v); upload your CV instead", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Page holds what a public LinkedIn profile page exposes to anonymous clients.
// LinkedIn blocks most scraping, so this is limited to the og: meta tags plus
// whatever visible text survives in the body.
type Page struct {
	Name     string
	Headline string
	BodyText string
}

type Client struct {
	httpClient *http.Client
}

// Desktop UA; LinkedIn serves a stub page to unknown agents
const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36"

var whitespaceRe = regexp.MustCompile(`\s+`)

func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{httpClient: httpClient}
}

// FetchPage downloads and parses a public profile page.
// The URL host must be linkedin.com or a subdomain of it.
func (c *Client) FetchPage(ctx context.Context, rawURL string) (*Page, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || !isLinkedInHost(parsed.Hostname()) {
		return nil, ErrNotLinkedInURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &NetworkError{URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &NetworkError{URL: rawURL, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: rawURL, Err: err}
	}

	return pageFromDocument(doc), nil
}

func isLinkedInHost(host string) bool {
	host = strings.ToLower(host)
	return host == "linkedin.com" || strings.HasSuffix(host, ".linkedin.com")
}

func pageFromDocument(doc *goquery.Document) *Page {
	page := &Page{}

	if title, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		// og:title carries "Name | LinkedIn" style suffixes
		page.Name = strings.TrimSpace(strings.SplitN(title, "|", 2)[0])
	}
	if desc, ok := doc.Find(`meta[property="og:description"]`).Attr("content"); ok {
		page.Headline = strings.TrimSpace(desc)
	}

	bodyText := doc.Find("body").Text()
	page.BodyText = strings.TrimSpace(whitespaceRe.ReplaceAllString(bodyText, " "))

	return page
}
