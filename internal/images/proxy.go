package images

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// CacheControl is sent with every relayed image; attachment urls are
// content addressed.
const CacheControl = "public, max-age=31536000, immutable"

const (
	defaultContentType = "image/jpeg"
	maxImageBytes      = 20 << 20
)

var (
	ErrInvalidURL     = errors.New("image url is required")
	ErrHostNotAllowed = errors.New("image host not allowed")
	ErrTooLarge       = errors.New("image too large")
)

const maxRedirects = 10

// UpstreamError carries a non-2xx status from the image host.
type UpstreamError struct{ Status int }

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream image status %d", e.Status)
}

type Image struct {
	ContentType string
	Body        []byte
}

// Proxy fetches images from allow-listed hosts. A host entry also admits its
// subdomains. An empty allowlist admits any http(s) host. Redirect targets
// are held to the same allowlist.
type Proxy struct {
	http     *http.Client
	hosts    []string
	maxBytes int64
}

func NewProxy(hosts []string, timeout time.Duration) *Proxy {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	clean := make([]string, 0, len(hosts))
	for _, h := range hosts {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			clean = append(clean, h)
		}
	}
	p := &Proxy{hosts: clean, maxBytes: maxImageBytes}
	p.http = &http.Client{Timeout: timeout, CheckRedirect: p.checkRedirect}
	return p
}

func (p *Proxy) checkRedirect(req *http.Request, via []*http.Request) error {
	if !p.Allowed(req.URL.Hostname()) {
		return ErrHostNotAllowed
	}
	if len(via) >= maxRedirects {
		return fmt.Errorf("stopped after %d redirects", maxRedirects)
	}
	return nil
}

func (p *Proxy) Allowed(host string) bool {
	if len(p.hosts) == 0 {
		return true
	}
	host = strings.ToLower(host)
	for _, h := range p.hosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}

func (p *Proxy) Fetch(ctx context.Context, rawURL string) (*Image, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, ErrInvalidURL
	}
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Hostname() == "" {
		return nil, ErrInvalidURL
	}
	if !p.Allowed(u.Hostname()) {
		return nil, ErrHostNotAllowed
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	res, err := p.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &UpstreamError{Status: res.StatusCode}
	}
	body, err := io.ReadAll(io.LimitReader(res.Body, p.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > p.maxBytes {
		return nil, ErrTooLarge
	}
	ct := res.Header.Get("Content-Type")
	if ct == "" {
		ct = defaultContentType
	}
	return &Image{ContentType: ct, Body: body}, nil
}
