package ports

import (
	"context"
	"io"
)

// Fetcher is the narrow "fetch URL, get bytes" capability the core needs.
// TLS, proxies, and timeout policy live behind it.
type Fetcher interface {
	// Fetch issues a GET and returns the response body and its announced
	// length (-1 when unknown). Non-2xx responses are errors.
	Fetch(ctx context.Context, url string) (body io.ReadCloser, size int64, err error)
}

// TagResolver resolves the most recent release tag of a hosted repository.
type TagResolver interface {
	// LatestTag returns the raw tag for repo ("owner/name"), including any
	// vendor prefix such as "v." — stripping is the caller's concern.
	LatestTag(ctx context.Context, repo string) (string, error)
}
