package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/AlecAivazis/survey/v2"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/xishang0128/df-translate/common/i18n"
	"github.com/xishang0128/df-translate/downloader"
)

var (
	downloadSource       string
	downloadToken        string
	downloadOrganization string
	downloadProject      string
	downloadLanguage     string
	downloadResources    []string
	downloadDir          string
	downloadPattern      string
	downloadAttempts     int
)

func initDownloadCmd() {
	downloadCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Download.Use,
		Short: i18n.I18nMsg.Download.Short,
		Long:  i18n.I18nMsg.Download.Long,
		Args:  cobra.NoArgs,
		Run:   runDownload,
	}

	downloadCmd.Flags().StringVar(&downloadSource, "source", "", i18n.I18nMsg.Download.FlagSource)
	downloadCmd.Flags().StringVar(&downloadToken, "token", os.Getenv("TRANSIFEX_TOKEN"), i18n.I18nMsg.Download.FlagToken)
	downloadCmd.Flags().StringVar(&downloadOrganization, "organization", "", i18n.I18nMsg.Download.FlagOrganization)
	downloadCmd.Flags().StringVar(&downloadProject, "project", "", i18n.I18nMsg.Download.FlagProject)
	downloadCmd.Flags().StringVarP(&downloadLanguage, "language", "l", "", i18n.I18nMsg.Download.FlagLanguage)
	downloadCmd.Flags().StringSliceVarP(&downloadResources, "resources", "r", nil, i18n.I18nMsg.Download.FlagResources)
	downloadCmd.Flags().StringVarP(&downloadDir, "dir", "o", "", i18n.I18nMsg.Download.FlagDir)
	downloadCmd.Flags().StringVar(&downloadPattern, "pattern", "", i18n.I18nMsg.Download.FlagPattern)
	downloadCmd.Flags().IntVar(&downloadAttempts, "attempts", downloader.DefaultMaxAttempts, i18n.I18nMsg.Download.FlagAttempts)

	rootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, args []string) {
	settings := &cfg.Download
	pick := func(flag, saved string) string {
		if flag != "" {
			return flag
		}
		return saved
	}

	source := pick(downloadSource, settings.Source)
	dir := pick(downloadDir, settings.Directory)
	pattern := pick(downloadPattern, settings.FilePattern)

	ctx, stop := commandContext()
	defer stop()

	var d downloader.Downloader
	switch source {
	case "github", "":
		source = "github"
		d = downloader.NewGitHub()
	case "transifex":
		token := downloadToken
		if token == "" {
			if err := survey.AskOne(&survey.Password{Message: i18n.I18nMsg.Download.PromptToken}, &token, survey.WithValidator(survey.Required)); err != nil {
				log.Fatal().Msgf(i18n.I18nMsg.Common.ErrorPrompt, err)
			}
		}
		tx := downloader.NewTransifex(token, pick(downloadOrganization, settings.Organization), pick(downloadProject, settings.Project))
		tx.MaxAttempts = downloadAttempts
		settings.Organization = tx.Organization
		settings.Project = tx.Project
		d = tx
	default:
		log.Fatal().Msgf(i18n.I18nMsg.Download.ErrorUnknownSource, source)
	}

	fmt.Printf(i18n.I18nMsg.Download.Connecting+"\n", source)
	if err := d.Connect(ctx); err != nil {
		log.Fatal().Msgf(i18n.I18nMsg.Download.ErrorFailedToConnect, err)
	}

	all, err := d.ListResources(ctx)
	if err != nil {
		log.Fatal().Msgf(i18n.I18nMsg.Download.ErrorFailedToList, err)
	}
	if len(all) == 0 {
		log.Fatal().Msg(i18n.I18nMsg.Download.NoResources)
	}

	resources := downloadResources
	if len(resources) == 0 {
		resources = settings.Resources
	}
	if len(resources) == 0 {
		if err := survey.AskOne(&survey.MultiSelect{
			Message:  i18n.I18nMsg.Download.PromptResources,
			Options:  all,
			Default:  all,
			PageSize: 15,
		}, &resources, survey.WithValidator(survey.MinItems(1))); err != nil {
			log.Fatal().Msgf(i18n.I18nMsg.Common.ErrorPrompt, err)
		}
	}

	language := pick(downloadLanguage, settings.Language)
	if language == "" {
		languages, err := d.ListLanguages(ctx, resources[0])
		if err != nil {
			log.Fatal().Msgf(i18n.I18nMsg.Download.ErrorFailedToList, err)
		}
		if err := survey.AskOne(&survey.Select{
			Message:  i18n.I18nMsg.Download.PromptLanguage,
			Options:  languages,
			PageSize: 15,
		}, &language); err != nil {
			log.Fatal().Msgf(i18n.I18nMsg.Common.ErrorPrompt, err)
		}
	}

	settings.Source = source
	settings.Language = language
	settings.Resources = resources
	settings.Directory = dir
	settings.FilePattern = pattern
	saveConfig()

	target := filepath.Join(dir, pattern)
	results, err := downloadWithProgress(ctx, d, language, resources, target)

	printDownloadSummary(resources, results, target, language)

	if err != nil {
		log.Fatal().Msgf(i18n.I18nMsg.Download.ErrorFailedToDownload, err)
	}
	fmt.Println(i18n.I18nMsg.Download.Completed)
}

type downloadBar struct {
	bar    *mpb.Bar
	status atomic.Value
}

type downloadBars struct {
	mu       sync.Mutex
	progress *mpb.Progress
	bars     map[string]*downloadBar
	results  map[string]downloader.Stage
}

// bar returns the bar of resource, adding it on first use.
func (b *downloadBars) bar(resource string) *downloadBar {
	b.mu.Lock()
	defer b.mu.Unlock()

	if db, ok := b.bars[resource]; ok {
		return db
	}

	db := &downloadBar{}
	db.status.Store("")
	db.bar = b.progress.AddBar(0,
		mpb.PrependDecorators(
			decor.Name(resource, decor.WCSyncSpaceR),
			decor.Any(func(decor.Statistics) string { return db.status.Load().(string) }, decor.WCSyncSpaceR),
		),
		mpb.AppendDecorators(
			decor.Counters(decor.SizeB1024(0), "% .1f / % .1f"),
		),
	)
	b.bars[resource] = db
	return db
}

func (b *downloadBars) update(stage downloader.Stage) {
	db := b.bar(stage.Resource)

	if stage.Status == downloader.StatusRetry {
		db.status.Store(fmt.Sprintf("%s (%d)", stage.Status, stage.Attempt))
		db.bar.SetCurrent(0)
		return
	}
	db.status.Store(string(stage.Status))

	if stage.Total > 0 {
		db.bar.SetTotal(stage.Total, false)
	}
	db.bar.SetCurrent(stage.Written)

	switch stage.Status {
	case downloader.StatusOK:
		b.finish(stage)
		db.bar.SetTotal(-1, true)
	case downloader.StatusFailed:
		b.finish(stage)
		db.bar.Abort(false)
	}
}

func (b *downloadBars) finish(stage downloader.Stage) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.results[stage.Resource] = stage
}

// downloadWithProgress runs the download with one progress bar per resource
// and returns the final stage of every resource that finished.
func downloadWithProgress(ctx context.Context, d downloader.Downloader, language string, resources []string, target string) (map[string]downloader.Stage, error) {
	bars := &downloadBars{
		progress: mpb.NewWithContext(ctx, mpb.WithWidth(40)),
		bars:     make(map[string]*downloadBar),
		results:  make(map[string]downloader.Stage),
	}

	err := d.Download(ctx, language, resources, target, bars.update)

	for _, db := range bars.bars {
		if !db.bar.Completed() {
			db.bar.Abort(false)
		}
	}
	bars.progress.Wait()

	return bars.results, err
}

func printDownloadSummary(resources []string, results map[string]downloader.Stage, target, language string) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{
		i18n.I18nMsg.Download.ColumnResource,
		i18n.I18nMsg.Download.ColumnFile,
		i18n.I18nMsg.Download.ColumnSize,
		i18n.I18nMsg.Download.ColumnStatus,
	})

	for _, resource := range resources {
		stage, ok := results[resource]
		if !ok {
			t.AppendRow(table.Row{resource, "", "", i18n.I18nMsg.Download.Skipped})
			continue
		}
		size := ""
		if stage.Status == downloader.StatusOK {
			size = humanize.IBytes(uint64(max(stage.Written, 0)))
		}
		t.AppendRow(table.Row{resource, downloader.FileName(target, resource, language), size, string(stage.Status)})
	}

	t.Render()
}
