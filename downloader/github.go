package downloader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/xishang0128/df-translate/common/file"
)

// GitHubBaseURL is the raw content root of the translations backup repository.
const GitHubBaseURL = "https://raw.githubusercontent.com/dfint/translations-backup/main/"

// GitHub downloads catalogs from the translations backup repository.
type GitHub struct {
	BaseURL string

	client    *http.Client
	resources []string
	languages map[string][]string
	paths     map[string]map[string]string
}

func NewGitHub() *GitHub {
	return &GitHub{
		BaseURL: GitHubBaseURL,
		client:  file.Client(),
	}
}

func (g *GitHub) resolve(path string) (string, error) {
	base, err := url.Parse(g.BaseURL)
	if err != nil {
		return "", err
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	ref, err := url.Parse(path)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}

// Connect fetches files_by_resource.json, the resource → language → path index.
func (g *GitHub) Connect(ctx context.Context) error {
	u, err := g.resolve("files_by_resource.json")
	if err != nil {
		return err
	}

	req, err := file.NewRequest(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, http.StatusOK); err != nil {
		return err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%s: invalid JSON", u)
	}

	g.resources = nil
	g.languages = make(map[string][]string)
	g.paths = make(map[string]map[string]string)

	gjson.ParseBytes(data).ForEach(func(resource, languages gjson.Result) bool {
		name := resource.String()
		g.resources = append(g.resources, name)
		g.paths[name] = make(map[string]string)

		languages.ForEach(func(lang, path gjson.Result) bool {
			g.languages[name] = append(g.languages[name], lang.String())
			g.paths[name][lang.String()] = path.String()
			return true
		})
		return true
	})

	log.Debug().Int("resources", len(g.resources)).Str("url", u).Msg("Loaded GitHub index")

	return nil
}

// ListResources returns the resources in index order.
func (g *GitHub) ListResources(ctx context.Context) ([]string, error) {
	if g.paths == nil {
		return nil, ErrNotConnected
	}
	return append([]string(nil), g.resources...), nil
}

// ListLanguages returns the languages of resource, or of the first resource
// when resource is empty.
func (g *GitHub) ListLanguages(ctx context.Context, resource string) ([]string, error) {
	if g.paths == nil {
		return nil, ErrNotConnected
	}
	if resource == "" {
		if len(g.resources) == 0 {
			return nil, nil
		}
		resource = g.resources[0]
	}

	langs, ok := g.languages[resource]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownResource, resource)
	}
	return append([]string(nil), langs...), nil
}

// Download fetches every resource in turn. A failed resource is reported and
// the run continues; the failures are returned together.
func (g *GitHub) Download(ctx context.Context, language string, resources []string, pattern string, progress ProgressCallback) error {
	if g.paths == nil {
		return ErrNotConnected
	}
	if progress == nil {
		progress = noProgress
	}

	var errs []error
	for _, resource := range resources {
		if err := ctx.Err(); err != nil {
			return errors.Join(append(errs, err)...)
		}

		stage := Stage{Resource: resource, Status: StatusDownloading, Total: -1}
		progress(stage)

		stage, err := g.downloadOne(ctx, language, resource, FileName(pattern, resource, language), stage, progress)
		if err != nil {
			log.Warn().Err(err).Str("resource", resource).Str("language", language).Msg("Download failed")
			stage.Status = StatusFailed
			stage.Err = err
			progress(stage)
			errs = append(errs, fmt.Errorf("%s: %w", resource, err))
			continue
		}

		stage.Status = StatusOK
		progress(stage)
	}

	return errors.Join(errs...)
}

func (g *GitHub) downloadOne(ctx context.Context, language, resource, path string, stage Stage, progress ProgressCallback) (Stage, error) {
	paths, ok := g.paths[resource]
	if !ok {
		return stage, fmt.Errorf("%w: %s", ErrUnknownResource, resource)
	}
	rel, ok := paths[language]
	if !ok {
		return stage, fmt.Errorf("%w: %s", ErrUnknownLanguage, language)
	}

	u, err := g.resolve("translation/" + rel)
	if err != nil {
		return stage, err
	}

	return fetch(ctx, g.client, u, path, nil, stage, progress)
}
