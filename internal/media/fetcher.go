package media

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	applog "marketplace/internal/log"
)

// Fetcher downloads an image and returns it base64 encoded. Failures yield
// the empty string; callers keep going without an image.
type Fetcher interface {
	FetchEncoded(ctx context.Context, rawURL string) string
}

type HTTPFetcher struct {
	Timeout      time.Duration
	MaxRedirects int
}

func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPFetcher{Timeout: timeout, MaxRedirects: 5}
}

func (f *HTTPFetcher) FetchEncoded(ctx context.Context, rawURL string) string {
	body, err := f.fetch(ctx, rawURL)
	if err != nil {
		applog.L().Warn("image.fetch.fail", zap.String("url", rawURL), zap.Error(err))
		return ""
	}
	return base64.StdEncoding.EncodeToString(body)
}

func (f *HTTPFetcher) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	a := fiber.Get(u.String())
	a.Timeout(f.Timeout)
	if f.MaxRedirects > 0 {
		a.MaxRedirectsCount(f.MaxRedirects)
	}
	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return nil, errs[0]
	}
	if code < 200 || code > 299 {
		return nil, fmt.Errorf("status %d", code)
	}
	return body, nil
}

// Static always returns Encoded. Handy when no network is wanted.
type Static struct{ Encoded string }

func (s Static) FetchEncoded(context.Context, string) string { return s.Encoded }
