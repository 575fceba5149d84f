/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"bennypowers.dev/typescale/internal/version"
)

const (
	// DefaultTimeout is the maximum time to wait for a network fetch or an
	// exec: command.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxSize is the maximum allowed response size (10 MB).
	DefaultMaxSize int64 = 10 * 1024 * 1024

	// acceptInputs prefers the document types the input parser reads.
	acceptInputs = "application/json, application/yaml;q=0.9, text/yaml;q=0.9, text/plain;q=0.5, */*;q=0.1"
)

var (
	// ErrResponseTooLarge is returned when a remote input exceeds the size limit.
	ErrResponseTooLarge = errors.New("response exceeds maximum size")

	// ErrNotInputDocument is returned when a server answers with a media type
	// that cannot hold a JSON or YAML typography input, such as an HTML page.
	ErrNotInputDocument = errors.New("response is not a JSON or YAML document")
)

// FetchError reports a failed fetch of a remote typography input.
type FetchError struct {
	URL string
	// Status is the HTTP status code, or 0 when no response arrived.
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching typography input %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher fetches content from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher fetches typography inputs over HTTP with size limiting.
type HTTPFetcher struct {
	maxSize int64
	client  *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher with the given maximum response size.
func NewHTTPFetcher(maxSize int64) *HTTPFetcher {
	return &HTTPFetcher{
		maxSize: maxSize,
		client:  &http.Client{},
	}
}

// Fetch downloads the input document at url. Failures are *FetchError.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set("Accept", acceptInputs)

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &FetchError{URL: url, Err: fmt.Errorf("timeout: %w", err)}
		}
		return nil, &FetchError{URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: url, Status: resp.StatusCode, Err: errors.New(resp.Status)}
	}
	if err := checkMediaType(resp.Header.Get("Content-Type")); err != nil {
		return nil, &FetchError{URL: url, Status: resp.StatusCode, Err: err}
	}
	if resp.ContentLength > f.maxSize {
		return nil, &FetchError{URL: url, Status: resp.StatusCode,
			Err: fmt.Errorf("%w of %d bytes (Content-Length %d)", ErrResponseTooLarge, f.maxSize, resp.ContentLength)}
	}

	content, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		return nil, &FetchError{URL: url, Status: resp.StatusCode, Err: fmt.Errorf("reading response: %w", err)}
	}
	if int64(len(content)) > f.maxSize {
		return nil, &FetchError{URL: url, Status: resp.StatusCode,
			Err: fmt.Errorf("%w of %d bytes", ErrResponseTooLarge, f.maxSize)}
	}

	return content, nil
}

// checkMediaType accepts JSON, YAML, plain text and untyped responses.
// Raw file hosts commonly serve YAML and JSON as text/plain.
func checkMediaType(contentType string) error {
	if contentType == "" {
		return nil
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return fmt.Errorf("%w: invalid Content-Type %q", ErrNotInputDocument, contentType)
	}
	switch {
	case mediaType == "application/json",
		strings.HasSuffix(mediaType, "+json"),
		strings.HasSuffix(mediaType, "yaml"),
		mediaType == "text/plain",
		mediaType == "application/octet-stream":
		return nil
	}
	return fmt.Errorf("%w: got %s", ErrNotInputDocument, mediaType)
}
