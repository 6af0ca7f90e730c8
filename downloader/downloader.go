// Package downloader fetches translation catalogs from the places translators publish them.
package downloader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/xishang0128/df-translate/common/file"
)

var (
	ErrNotConnected    = errors.New("not connected")
	ErrUnknownResource = errors.New("unknown resource")
	ErrUnknownLanguage = errors.New("language not available for resource")
)

// Status is the state of a resource download as shown to the user.
type Status string

const (
	StatusDownloading Status = "downloading..."
	StatusRetry       Status = "retry..."
	StatusFailed      Status = "failed"
	StatusOK          Status = "ok!"
)

// Stage reports the progress of a single resource.
type Stage struct {
	Resource string
	Status   Status
	// Attempt is the failed attempt that triggered a retry.
	Attempt int
	Written int64
	// Total is -1 when the size is unknown.
	Total int64
	Err   error
}

// ProgressCallback receives every stage of a download run.
type ProgressCallback func(Stage)

// Downloader is a source of translation catalogs.
type Downloader interface {
	Connect(ctx context.Context) error
	ListResources(ctx context.Context) ([]string, error)
	ListLanguages(ctx context.Context, resource string) ([]string, error)
	// Download saves the catalog of language for every resource to the file
	// named by pattern.
	Download(ctx context.Context, language string, resources []string, pattern string, progress ProgressCallback) error
}

// FileName substitutes {resource} and {language} in pattern.
func FileName(pattern, resource, language string) string {
	return strings.NewReplacer("{resource}", resource, "{language}", language).Replace(pattern)
}

type progressWriter struct {
	stage    Stage
	progress ProgressCallback
}

func (w *progressWriter) Write(p []byte) (int, error) {
	w.stage.Written += int64(len(p))
	w.progress(w.stage)
	return len(p), nil
}

// fetch saves the body of a GET request to path, reporting written bytes.
// The returned stage carries the final byte counts.
func fetch(ctx context.Context, client *http.Client, url, path string, header http.Header, stage Stage, progress ProgressCallback) (Stage, error) {
	req, err := file.NewRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return stage, err
	}
	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := client.Do(req)
	if err != nil {
		return stage, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, http.StatusOK); err != nil {
		return stage, err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return stage, err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return stage, err
	}

	stage.Total = resp.ContentLength
	pw := &progressWriter{stage: stage, progress: progress}

	if _, err := io.Copy(io.MultiWriter(f, pw), resp.Body); err != nil {
		f.Close()
		os.Remove(path)
		return pw.stage, err
	}

	return pw.stage, f.Close()
}

// checkStatus turns an unexpected status into an error carrying the first
// JSON:API error detail when the body has one.
func checkStatus(resp *http.Response, want ...int) error {
	for _, code := range want {
		if resp.StatusCode == code {
			return nil
		}
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if detail := gjson.GetBytes(body, "errors.0.detail"); detail.Exists() {
		return fmt.Errorf("%s %s: %s: %s", resp.Request.Method, resp.Request.URL, resp.Status, detail.String())
	}
	return fmt.Errorf("%s %s: %s", resp.Request.Method, resp.Request.URL, resp.Status)
}

func noProgress(Stage) {}
