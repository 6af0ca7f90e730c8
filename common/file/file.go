// Package file provides abstractions for reading translation files from different sources.
package file

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/xishang0128/df-translate/constant"
)

var (
	userAgent = "df-translate/" + constant.Version
	client    = &http.Client{Timeout: 2 * time.Minute}
)

// SetUserAgent overrides the User-Agent header of every outgoing request.
func SetUserAgent(ua string) {
	userAgent = ua
}

// UserAgent returns the User-Agent header value in use.
func UserAgent() string {
	return userAgent
}

// Client returns the HTTP client shared by the downloaders.
func Client() *http.Client {
	return client
}

// NewRequest creates a request carrying the configured User-Agent.
func NewRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	return req, nil
}

// Reader is an open translation file.
type Reader interface {
	io.ReadCloser
	// Size returns the length in bytes, or -1 when the source does not tell.
	Size() int64
}

// IsURL reports whether path should be fetched over HTTP.
func IsURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// Open opens a local path or an HTTP(S) URL.
func Open(ctx context.Context, path string) (Reader, error) {
	if IsURL(path) {
		return NewHTTPFile(ctx, path)
	}
	return NewLocalFile(path)
}

// LocalFile implements Reader interface for local files
type LocalFile struct {
	file *os.File
	size int64
}

// NewLocalFile opens a local file for reading.
func NewLocalFile(path string) (*LocalFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}

	return &LocalFile{
		file: file,
		size: stat.Size(),
	}, nil
}

func (f *LocalFile) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

func (f *LocalFile) Close() error {
	return f.file.Close()
}

func (f *LocalFile) Size() int64 {
	return f.size
}

// HTTPFile implements Reader interface for HTTP files
type HTTPFile struct {
	body io.ReadCloser
	size int64
}

// NewHTTPFile starts a GET request for url.
// Any status other than 200 is an error.
func NewHTTPFile(ctx context.Context, url string) (*HTTPFile, error) {
	req, err := NewRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("remote returned %s", resp.Status)
	}

	return &HTTPFile{
		body: resp.Body,
		size: resp.ContentLength,
	}, nil
}

func (f *HTTPFile) Read(p []byte) (int, error) {
	return f.body.Read(p)
}

func (f *HTTPFile) Close() error {
	return f.body.Close()
}

func (f *HTTPFile) Size() int64 {
	return f.size
}
