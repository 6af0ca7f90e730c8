package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/xishang0128/df-translate/bisect"
	"github.com/xishang0128/df-translate/catalog"
	"github.com/xishang0128/df-translate/codepage"
	"github.com/xishang0128/df-translate/common/i18n"
	"github.com/xishang0128/df-translate/config"
	"github.com/xishang0128/df-translate/patcher"
)

var (
	patchExecutable   string
	patchCodepage     string
	patchNoFixSpaces  bool
	patchDebugPatcher bool
)

func initPatchCmd() {
	patchCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Patch.Use,
		Short: i18n.I18nMsg.Patch.Short,
		Long:  i18n.I18nMsg.Patch.Long,
		Args:  cobra.MaximumNArgs(1),
		Run:   runPatch,
	}

	addPatchFlags(patchCmd)

	rootCmd.AddCommand(patchCmd)
}

// addPatchFlags registers the flags shared by patch and bisect.
func addPatchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&patchExecutable, "executable", "e", "", i18n.I18nMsg.Common.FlagExecutable)
	cmd.Flags().StringVarP(&patchCodepage, "codepage", "c", "", i18n.I18nMsg.Common.FlagCodepage)
	cmd.Flags().BoolVar(&patchNoFixSpaces, "no-fix-spaces", false, i18n.I18nMsg.Common.FlagNoFixSpaces)
	cmd.Flags().BoolVar(&patchDebugPatcher, "debug-patcher", false, i18n.I18nMsg.Patch.FlagDebugPatcher)
}

func runPatch(cmd *cobra.Command, args []string) {
	start := time.Now()
	defer func() {
		fmt.Printf(i18n.I18nMsg.Common.ElapsedTime+"\n", time.Since(start))
	}()

	ctx, stop := commandContext()
	defer stop()

	translationFile := cfg.PatchExecutable.TranslationFile
	if len(args) > 0 {
		translationFile = args[0]
	}
	if translationFile == "" {
		log.Fatal().Msg(i18n.I18nMsg.Common.ErrorNoTranslationFile)
	}

	cat := loadCatalog(ctx, translationFile)
	pairs := cleanedPairs(cat)
	cp := chooseCodepage(cat)

	if err := runPatcher(ctx, cat, cp, pairs); err != nil {
		log.Fatal().Msgf(i18n.I18nMsg.Patch.ErrorFailedToPatch, err)
	}

	fmt.Println(i18n.I18nMsg.Patch.Completed)
}

// loadCatalog loads a translation file or exits.
func loadCatalog(ctx context.Context, path string) *catalog.Catalog {
	cat, err := catalog.LoadFile(ctx, path)
	if err != nil {
		log.Fatal().Msgf(i18n.I18nMsg.Common.ErrorFailedToLoadCatalog, err)
	}

	config.SetExistingPath(&cfg.PatchExecutable.TranslationFile, path)

	log.Info().
		Str("file", path).
		Str("language", cat.Language).
		Int("strings", len(cat.Pairs)).
		Msg(i18n.I18nMsg.Common.CatalogLoaded)

	return cat
}

// cleanedPairs applies cleanup and, unless disabled, space fixing.
func cleanedPairs(cat *catalog.Catalog) []bisect.Pair {
	fix := cfg.PatchExecutable.AddLeadingTrailingSpaces && !patchNoFixSpaces
	return cat.Cleaned(cfg.PatchExecutable.FixSpaceExclusions, fix)
}

// chooseCodepage picks the --codepage flag, else the codepage remembered for
// the catalog language, else the first suitable one.
func chooseCodepage(cat *catalog.Catalog) string {
	suitable := codepage.ForCatalog(cat)

	cp := patchCodepage
	if cp == "" {
		cp = cfg.CodepageFor(cat.Language)
	}
	if cp == "" {
		if len(suitable) == 0 {
			log.Warn().Msgf(i18n.I18nMsg.Common.NoCodepageFits, cat.Language)
			cp = codepage.DefaultCodepage
		} else {
			cp = suitable[0]
		}
	}

	if _, ok := codepage.Lookup(cp); !ok {
		log.Fatal().Msgf(i18n.I18nMsg.Common.ErrorUnknownCodepage, cp)
	}
	if !slices.Contains(suitable, cp) {
		log.Warn().Msgf(i18n.I18nMsg.Common.CodepageDoesNotFit, cp)
	}

	fmt.Printf(i18n.I18nMsg.Patch.UsingCodepage+"\n", cp)

	return cp
}

// executablePath returns the --executable flag or the remembered path,
// asking the user when neither exists.
func executablePath() (string, error) {
	for _, path := range []string{patchExecutable, cfg.PatchExecutable.Executable} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	var path string
	prompt := &survey.Input{Message: i18n.I18nMsg.Common.PromptExecutable}
	if err := survey.AskOne(prompt, &path, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return path, nil
}

// runPatcher patches the game executable with pairs and remembers the
// choices on success.
func runPatcher(ctx context.Context, cat *catalog.Catalog, cp string, pairs []bisect.Pair) error {
	exe, err := executablePath()
	if err != nil {
		return err
	}

	p := patcher.New(cfg.PatchExecutable.Command)
	err = p.Run(ctx, patcher.Options{
		Executable: exe,
		Codepage:   cp,
		Debug:      patchDebugPatcher || debugMode,
		Dictionary: pairs,
	}, os.Stdout)
	if err != nil {
		return err
	}

	config.SetExistingPath(&cfg.PatchExecutable.Executable, exe)
	cfg.RememberCodepage(cat.Language, cp)
	saveConfig()

	return nil
}
