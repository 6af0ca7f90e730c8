package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/xishang0128/df-translate/catalog"
	"github.com/xishang0128/df-translate/codepage"
	"github.com/xishang0128/df-translate/common/i18n"
)

var checkCodepage string

var (
	insertColor = color.New(color.FgGreen, color.Bold)
	deleteColor = color.New(color.FgRed, color.CrossedOut)
)

func initCheckCmd() {
	checkCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Check.Use,
		Short: i18n.I18nMsg.Check.Short,
		Long:  i18n.I18nMsg.Check.Long,
		Args:  cobra.MaximumNArgs(1),
		Run:   runCheck,
	}

	checkCmd.Flags().StringVarP(&checkCodepage, "codepage", "c", "", i18n.I18nMsg.Check.FlagCodepage)
	checkCmd.Flags().BoolVar(&patchNoFixSpaces, "no-fix-spaces", false, i18n.I18nMsg.Common.FlagNoFixSpaces)

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) {
	path := cfg.PatchExecutable.TranslationFile
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		log.Fatal().Msg(i18n.I18nMsg.Common.ErrorNoTranslationFile)
	}

	if checkCodepage != "" {
		if _, ok := codepage.Lookup(checkCodepage); !ok {
			log.Fatal().Msgf(i18n.I18nMsg.Common.ErrorUnknownCodepage, checkCodepage)
		}
	}

	ctx, stop := commandContext()
	defer stop()

	cat := loadCatalog(ctx, path)
	cleaned := cleanedPairs(cat)

	dmp := diffmatchpatch.New()
	changed, unfit := 0, 0

	for i, raw := range cat.Pairs {
		tr := cleaned[i].Translation

		if tr != raw.Translation {
			changed++
			diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(raw.Translation, tr, false))
			fmt.Printf("%s\n  %s\n", catalog.HighlightSpaces(raw.Original), renderDiff(diffs))
		}

		if checkCodepage != "" && !codepage.Fits(checkCodepage, []string{tr}) {
			unfit++
			fmt.Printf(i18n.I18nMsg.Check.DoesNotFit+"\n", checkCodepage, catalog.HighlightSpaces(tr))
		}
	}

	fmt.Println()
	fmt.Printf(i18n.I18nMsg.Check.ChangedSummary+"\n", changed, len(cat.Pairs))
	if checkCodepage != "" {
		fmt.Printf(i18n.I18nMsg.Check.UnfitSummary+"\n", unfit, checkCodepage)
	}
}

// renderDiff shows insertions and deletions inline, with spaces made visible.
func renderDiff(diffs []diffmatchpatch.Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			b.WriteString(insertColor.Sprint("{+" + visibleSpaces(d.Text) + "+}"))
		case diffmatchpatch.DiffDelete:
			b.WriteString(deleteColor.Sprint("[-" + visibleSpaces(d.Text) + "-]"))
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

func visibleSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "•")
}
