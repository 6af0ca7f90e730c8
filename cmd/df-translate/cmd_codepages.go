package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/xishang0128/df-translate/codepage"
	"github.com/xishang0128/df-translate/common/i18n"
)

var codepagesLanguage string

func initCodepagesCmd() {
	codepagesCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Codepages.Use,
		Short: i18n.I18nMsg.Codepages.Short,
		Long:  i18n.I18nMsg.Codepages.Long,
		Args:  cobra.MaximumNArgs(1),
		Run:   runCodepages,
	}

	codepagesCmd.Flags().StringVarP(&codepagesLanguage, "language", "l", "", i18n.I18nMsg.Codepages.FlagLanguage)

	rootCmd.AddCommand(codepagesCmd)
}

func runCodepages(cmd *cobra.Command, args []string) {
	target := cfg.PatchExecutable.TranslationFile
	if len(args) > 0 {
		target = args[0]
	}
	if target == "" {
		log.Fatal().Msg(i18n.I18nMsg.Common.ErrorNoTranslationFile)
	}

	ctx, stop := commandContext()
	defer stop()

	var (
		language string
		suitable []string
	)

	if info, err := os.Stat(target); err == nil && info.IsDir() {
		language = codepagesLanguage
		if language == "" {
			language = cfg.Download.Language
		}
		if language == "" {
			log.Fatal().Msg(i18n.I18nMsg.Codepages.ErrorNoLanguage)
		}

		suitable, err = codepage.ForDirectory(ctx, target, language)
		if err != nil {
			log.Fatal().Msgf(i18n.I18nMsg.Codepages.ErrorFailedToScan, err)
		}
	} else {
		cat := loadCatalog(ctx, target)
		language = cat.Language
		suitable = codepage.ForCatalog(cat)
	}

	if len(suitable) == 0 {
		fmt.Printf(i18n.I18nMsg.Common.NoCodepageFits+"\n", language)
		return
	}

	remembered := cfg.CodepageFor(language)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.SetTitle(fmt.Sprintf(i18n.I18nMsg.Codepages.Title, language))
	t.AppendHeader(table.Row{"#", i18n.I18nMsg.Codepages.ColumnCodepage, ""})
	for i, name := range suitable {
		mark := ""
		if name == remembered {
			mark = i18n.I18nMsg.Codepages.Remembered
		}
		t.AppendRow(table.Row{i + 1, name, mark})
	}
	t.Render()
}
