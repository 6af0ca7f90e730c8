package main

import (
	"fmt"
	"os"
	"slices"
	"sort"

	"github.com/AlecAivazis/survey/v2"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/xishang0128/df-translate/catalog"
	"github.com/xishang0128/df-translate/common/i18n"
)

var exclusionsLanguage string

func initExclusionsCmd() {
	exclusionsCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Exclusions.Use,
		Short: i18n.I18nMsg.Exclusions.Short,
		Long:  i18n.I18nMsg.Exclusions.Long,
	}
	exclusionsCmd.PersistentFlags().StringVarP(&exclusionsLanguage, "language", "l", "", i18n.I18nMsg.Exclusions.FlagLanguage)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: i18n.I18nMsg.Exclusions.ListShort,
		Args:  cobra.NoArgs,
		Run:   runExclusionsList,
	}

	editCmd := &cobra.Command{
		Use:   "edit [catalog]",
		Short: i18n.I18nMsg.Exclusions.EditShort,
		Args:  cobra.MaximumNArgs(1),
		Run:   runExclusionsEdit,
	}

	addCmd := &cobra.Command{
		Use:   "add <original>...",
		Short: i18n.I18nMsg.Exclusions.AddShort,
		Args:  cobra.MinimumNArgs(1),
		Run:   runExclusionsAdd,
	}

	removeCmd := &cobra.Command{
		Use:   "remove <original>...",
		Short: i18n.I18nMsg.Exclusions.RemoveShort,
		Args:  cobra.MinimumNArgs(1),
		Run:   runExclusionsRemove,
	}

	exclusionsCmd.AddCommand(listCmd, editCmd, addCmd, removeCmd)
	rootCmd.AddCommand(exclusionsCmd)
}

// exclusionsLanguageOr returns the --language flag, else fallback, else the
// language of the last download.
func exclusionsLanguageOr(fallback string) string {
	for _, lang := range []string{exclusionsLanguage, fallback, cfg.Download.Language} {
		if lang != "" {
			return lang
		}
	}
	log.Fatal().Msg(i18n.I18nMsg.Exclusions.ErrorNoLanguage)
	return ""
}

func runExclusionsList(cmd *cobra.Command, args []string) {
	all := cfg.PatchExecutable.FixSpaceExclusions

	languages := make([]string, 0, len(all))
	for lang := range all {
		if exclusionsLanguage == "" || lang == exclusionsLanguage {
			languages = append(languages, lang)
		}
	}
	sort.Strings(languages)

	if len(languages) == 0 {
		fmt.Println(i18n.I18nMsg.Exclusions.Empty)
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{i18n.I18nMsg.Exclusions.ColumnLanguage, i18n.I18nMsg.Common.ColumnOriginal})
	for _, lang := range languages {
		for _, original := range all[lang] {
			t.AppendRow(table.Row{lang, catalog.HighlightSpaces(original)})
		}
		t.AppendSeparator()
	}
	t.Render()
}

func runExclusionsEdit(cmd *cobra.Command, args []string) {
	path := cfg.PatchExecutable.TranslationFile
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		log.Fatal().Msg(i18n.I18nMsg.Common.ErrorNoTranslationFile)
	}

	ctx, stop := commandContext()
	defer stop()

	cat := loadCatalog(ctx, path)
	language := exclusionsLanguageOr(cat.Language)

	candidates := catalog.CandidateExclusions(cat.Pairs)
	if len(candidates) == 0 {
		fmt.Println(i18n.I18nMsg.Exclusions.NoCandidates)
		return
	}

	labels := make([]string, len(candidates))
	byLabel := make(map[string]string, len(candidates))
	for i, original := range candidates {
		labels[i] = catalog.HighlightSpaces(original)
		byLabel[labels[i]] = original
	}

	current := cfg.Exclusions(language)
	var defaults []string
	for i, original := range candidates {
		if slices.Contains(current, original) {
			defaults = append(defaults, labels[i])
		}
	}

	var picked []string
	err := survey.AskOne(&survey.MultiSelect{
		Message:  fmt.Sprintf(i18n.I18nMsg.Exclusions.PromptSelect, language),
		Options:  labels,
		Default:  defaults,
		PageSize: 20,
	}, &picked)
	if err != nil {
		log.Fatal().Msgf(i18n.I18nMsg.Common.ErrorPrompt, err)
	}

	// Exclusions that are not candidates in this catalog are kept.
	var kept []string
	for _, original := range current {
		if !slices.Contains(candidates, original) {
			kept = append(kept, original)
		}
	}
	for _, label := range picked {
		kept = append(kept, byLabel[label])
	}

	cfg.SetExclusions(language, kept)
	saveConfig()
	fmt.Printf(i18n.I18nMsg.Exclusions.Saved+"\n", len(kept), language)
}

func runExclusionsAdd(cmd *cobra.Command, args []string) {
	language := exclusionsLanguageOr("")

	exclusions := cfg.Exclusions(language)
	for _, original := range args {
		if !slices.Contains(exclusions, original) {
			exclusions = append(exclusions, original)
		}
	}

	cfg.SetExclusions(language, exclusions)
	saveConfig()
	fmt.Printf(i18n.I18nMsg.Exclusions.Saved+"\n", len(exclusions), language)
}

func runExclusionsRemove(cmd *cobra.Command, args []string) {
	language := exclusionsLanguageOr("")

	exclusions := slices.DeleteFunc(slices.Clone(cfg.Exclusions(language)), func(original string) bool {
		return slices.Contains(args, original)
	})

	cfg.SetExclusions(language, exclusions)
	saveConfig()
	fmt.Printf(i18n.I18nMsg.Exclusions.Saved+"\n", len(exclusions), language)
}
