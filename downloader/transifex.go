package downloader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"github.com/xishang0128/df-translate/common/file"
)

const (
	TransifexBaseURL = "https://rest.api.transifex.com/"

	DefaultMaxAttempts  = 10
	DefaultPollInterval = time.Second
)

var ErrJobFailed = errors.New("transifex download job failed")

// Transifex downloads catalogs through the Transifex REST API v3.
type Transifex struct {
	BaseURL      string
	Token        string
	Organization string
	Project      string
	// MaxAttempts bounds the tries per resource before the run stops.
	MaxAttempts int
	// PollInterval paces job polling and retries.
	PollInterval time.Duration

	api     *http.Client
	limiter *rate.Limiter
}

func NewTransifex(token, organization, project string) *Transifex {
	return &Transifex{
		BaseURL:      TransifexBaseURL,
		Token:        token,
		Organization: organization,
		Project:      project,
		MaxAttempts:  DefaultMaxAttempts,
		PollInterval: DefaultPollInterval,
	}
}

// ProjectID returns the API identifier o:<organization>:p:<project>.
func (t *Transifex) ProjectID() string {
	return "o:" + t.Organization + ":p:" + t.Project
}

func (t *Transifex) resourceID(slug string) string {
	return t.ProjectID() + ":r:" + slug
}

func (t *Transifex) url(path string, query url.Values) string {
	u := strings.TrimSuffix(t.BaseURL, "/") + "/" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// Connect checks the token and that the project exists.
func (t *Transifex) Connect(ctx context.Context) error {
	t.api = &http.Client{
		Timeout: file.Client().Timeout,
		// Finished jobs answer 303; the Location must be fetched without the token.
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	t.limiter = rate.NewLimiter(rate.Every(t.PollInterval), 1)

	_, err := t.get(ctx, t.url("projects/"+t.ProjectID(), nil))
	return err
}

func (t *Transifex) do(ctx context.Context, method, u string, body []byte) (*http.Response, error) {
	if t.api == nil {
		return nil, ErrNotConnected
	}

	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}

	req, err := file.NewRequest(ctx, method, u, r)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+t.Token)
	req.Header.Set("Accept", "application/vnd.api+json")
	if body != nil {
		req.Header.Set("Content-Type", "application/vnd.api+json")
	}

	return t.api.Do(req)
}

func (t *Transifex) get(ctx context.Context, u string) (gjson.Result, error) {
	resp, err := t.do(ctx, http.MethodGet, u, nil)
	if err != nil {
		return gjson.Result{}, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, http.StatusOK); err != nil {
		return gjson.Result{}, err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, err
	}
	return gjson.ParseBytes(data), nil
}

// list collects the data items of a paginated collection.
func (t *Transifex) list(ctx context.Context, u string) ([]gjson.Result, error) {
	var items []gjson.Result
	for u != "" {
		page, err := t.get(ctx, u)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Get("data").Array()...)
		u = page.Get("links.next").String()
	}
	return items, nil
}

// ListResources returns the resource slugs of the project.
func (t *Transifex) ListResources(ctx context.Context) ([]string, error) {
	items, err := t.list(ctx, t.url("resources", url.Values{"filter[project]": {t.ProjectID()}}))
	if err != nil {
		return nil, err
	}

	slugs := make([]string, 0, len(items))
	for _, item := range items {
		slug := item.Get("attributes.slug").String()
		if slug == "" {
			_, slug, _ = strings.Cut(item.Get("id").String(), ":r:")
		}
		slugs = append(slugs, slug)
	}
	return slugs, nil
}

// ListLanguages returns the language codes of the project. Every resource of a
// project shares them, so resource is ignored.
func (t *Transifex) ListLanguages(ctx context.Context, resource string) ([]string, error) {
	items, err := t.list(ctx, t.url("projects/"+t.ProjectID()+"/languages", nil))
	if err != nil {
		return nil, err
	}

	langs := make([]string, 0, len(items))
	for _, item := range items {
		_, code, _ := strings.Cut(item.Get("id").String(), ":")
		langs = append(langs, code)
	}
	return langs, nil
}

// Download fetches the resources in order, retrying each up to MaxAttempts
// times. The run stops at the first resource that still fails.
func (t *Transifex) Download(ctx context.Context, language string, resources []string, pattern string, progress ProgressCallback) error {
	if t.api == nil {
		return ErrNotConnected
	}
	if progress == nil {
		progress = noProgress
	}

	attempts := max(t.MaxAttempts, 1)

	for _, resource := range resources {
		stage := Stage{Resource: resource, Status: StatusDownloading, Total: -1}
		progress(stage)

		path := FileName(pattern, resource, language)

		var err error
		for attempt := 1; attempt <= attempts; attempt++ {
			var done Stage
			done, err = t.downloadOne(ctx, language, resource, path, stage, progress)
			if err == nil {
				stage = done
				break
			}
			if ctx.Err() != nil {
				break
			}

			log.Debug().Err(err).Str("resource", resource).Int("attempt", attempt).Msg("Download attempt failed")

			if attempt < attempts {
				progress(Stage{Resource: resource, Status: StatusRetry, Attempt: attempt, Total: -1, Err: err})
				if werr := t.limiter.Wait(ctx); werr != nil {
					err = werr
					break
				}
			}
		}

		if err != nil {
			stage.Status = StatusFailed
			stage.Err = err
			progress(stage)
			return fmt.Errorf("%s: %w", resource, err)
		}

		stage.Status = StatusOK
		progress(stage)
	}

	return nil
}

type relationship struct {
	Data struct {
		Type string `json:"type"`
		ID   string `json:"id"`
	} `json:"data"`
}

type asyncDownloadRequest struct {
	Data struct {
		Type       string `json:"type"`
		Attributes struct {
			ContentEncoding string `json:"content_encoding"`
			FileType        string `json:"file_type"`
			Mode            string `json:"mode"`
		} `json:"attributes"`
		Relationships struct {
			Language relationship `json:"language"`
			Resource relationship `json:"resource"`
		} `json:"relationships"`
	} `json:"data"`
}

func (t *Transifex) downloadOne(ctx context.Context, language, resource, path string, stage Stage, progress ProgressCallback) (Stage, error) {
	var job asyncDownloadRequest
	job.Data.Type = "resource_translations_async_downloads"
	job.Data.Attributes.ContentEncoding = "text"
	job.Data.Attributes.FileType = "default"
	job.Data.Attributes.Mode = "default"
	job.Data.Relationships.Language.Data.Type = "languages"
	job.Data.Relationships.Language.Data.ID = "l:" + language
	job.Data.Relationships.Resource.Data.Type = "resources"
	job.Data.Relationships.Resource.Data.ID = t.resourceID(resource)

	body, err := json.Marshal(job)
	if err != nil {
		return stage, err
	}

	resp, err := t.do(ctx, http.MethodPost, t.url("resource_translations_async_downloads", nil), body)
	if err != nil {
		return stage, err
	}
	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return stage, err
	}
	if resp.StatusCode != http.StatusAccepted {
		resp.Body = io.NopCloser(bytes.NewReader(data))
		return stage, checkStatus(resp, http.StatusAccepted)
	}

	jobID := gjson.GetBytes(data, "data.id").String()
	if jobID == "" {
		return stage, fmt.Errorf("%w: no job id in response", ErrJobFailed)
	}

	location, err := t.poll(ctx, jobID)
	if err != nil {
		return stage, err
	}

	return fetch(ctx, file.Client(), location, path, nil, stage, progress)
}

// poll waits for the job to finish and returns the location of the file.
func (t *Transifex) poll(ctx context.Context, jobID string) (string, error) {
	u := t.url("resource_translations_async_downloads/"+jobID, nil)

	for {
		if err := t.limiter.Wait(ctx); err != nil {
			return "", err
		}

		resp, err := t.do(ctx, http.MethodGet, u, nil)
		if err != nil {
			return "", err
		}

		if resp.StatusCode == http.StatusSeeOther {
			resp.Body.Close()
			location, err := resp.Location()
			if err != nil {
				return "", err
			}
			return location.String(), nil
		}

		if err := checkStatus(resp, http.StatusOK); err != nil {
			resp.Body.Close()
			return "", err
		}

		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return "", err
		}

		switch status := gjson.GetBytes(data, "data.attributes.status").String(); status {
		case "failed":
			detail := gjson.GetBytes(data, "data.attributes.errors.0.detail").String()
			return "", fmt.Errorf("%w: %s", ErrJobFailed, detail)
		default:
			log.Trace().Str("job", jobID).Str("status", status).Msg("Waiting for download job")
		}
	}
}
