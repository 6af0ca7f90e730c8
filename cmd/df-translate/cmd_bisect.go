package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/xishang0128/df-translate/bisect"
	"github.com/xishang0128/df-translate/catalog"
	"github.com/xishang0128/df-translate/common/i18n"
	"github.com/xishang0128/df-translate/common/treeview"
	"github.com/xishang0128/df-translate/session"
)

var (
	bisectSession   string
	bisectNoPreview bool
	bisectShowLimit int
)

func initBisectCmd() {
	bisectCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Bisect.Use,
		Short: i18n.I18nMsg.Bisect.Short,
		Long:  i18n.I18nMsg.Bisect.Long,
		Args:  cobra.MaximumNArgs(1),
		Run:   runBisect,
	}

	addPatchFlags(bisectCmd)
	bisectCmd.Flags().StringVarP(&bisectSession, "session", "s", "", i18n.I18nMsg.Bisect.FlagSession)
	bisectCmd.Flags().BoolVar(&bisectNoPreview, "no-preview", false, i18n.I18nMsg.Bisect.FlagNoPreview)
	bisectCmd.Flags().IntVar(&bisectShowLimit, "show-limit", 50, i18n.I18nMsg.Bisect.FlagShowLimit)

	rootCmd.AddCommand(bisectCmd)
}

func runBisect(cmd *cobra.Command, args []string) {
	translationFile := cfg.PatchExecutable.TranslationFile
	if len(args) > 0 {
		translationFile = args[0]
	}
	if translationFile == "" {
		log.Fatal().Msg(i18n.I18nMsg.Common.ErrorNoTranslationFile)
	}

	cat := loadCatalog(context.Background(), translationFile)
	pairs := cleanedPairs(cat)
	if len(pairs) == 0 {
		log.Fatal().Msg(i18n.I18nMsg.Bisect.EmptyCatalog)
	}

	cp := chooseCodepage(cat)
	sess := openSession(translationFile, pairs)

	msg := i18n.I18nMsg.Bisect
	actions := []string{
		msg.ActionSplit,
		msg.ActionSelect,
		msg.ActionMarkBad,
		msg.ActionMarkGood,
		msg.ActionClearMark,
		msg.ActionShow,
		msg.ActionPatch,
		msg.ActionExport,
		msg.ActionSave,
		msg.ActionReset,
		msg.ActionQuit,
	}

	for {
		fmt.Println()
		fmt.Println(treeview.Render(sess.Tree(), treeview.Options{
			Selected: sess.Selected(),
			Preview:  !bisectNoPreview,
		}))
		printSelection(sess)

		var action string
		err := survey.AskOne(&survey.Select{
			Message:  msg.PromptAction,
			Options:  actions,
			PageSize: len(actions),
		}, &action)
		if errors.Is(err, terminal.InterruptErr) {
			action = msg.ActionQuit
		} else if err != nil {
			log.Fatal().Msgf(i18n.I18nMsg.Common.ErrorPrompt, err)
		}

		switch action {
		case msg.ActionSplit:
			splitSelected(sess)
		case msg.ActionSelect:
			selectNodes(sess)
		case msg.ActionMarkBad:
			sess.MarkSelected(bisect.MarkBad)
		case msg.ActionMarkGood:
			sess.MarkSelected(bisect.MarkGood)
		case msg.ActionClearMark:
			sess.MarkSelected(bisect.MarkNone)
		case msg.ActionShow:
			showSelected(sess)
		case msg.ActionPatch:
			patchSelected(sess, cat, cp)
		case msg.ActionExport:
			exportSelected(sess, cat)
		case msg.ActionSave:
			saveSession(sess, true)
		case msg.ActionReset:
			sess.Reset(pairs)
		case msg.ActionQuit:
			if bisectSession != "" {
				saveSession(sess, false)
			}
			return
		}
	}
}

// openSession restores the --session file when it matches the catalog.
func openSession(source string, pairs []bisect.Pair) *session.Session {
	if bisectSession == "" {
		return session.New(source, pairs)
	}

	f, err := os.Open(bisectSession)
	if os.IsNotExist(err) {
		return session.New(source, pairs)
	}
	if err != nil {
		log.Warn().Msgf(i18n.I18nMsg.Bisect.ErrorFailedToRestore, err)
		return session.New(source, pairs)
	}
	defer f.Close()

	snap, err := session.Load(f)
	if err != nil {
		log.Warn().Msgf(i18n.I18nMsg.Bisect.ErrorFailedToRestore, err)
		return session.New(source, pairs)
	}

	sess, err := session.Restore(snap, pairs)
	if errors.Is(err, session.ErrSnapshotMismatch) {
		log.Warn().Msg(i18n.I18nMsg.Bisect.SessionMismatch)
		return session.New(source, pairs)
	}
	if err != nil {
		log.Warn().Msgf(i18n.I18nMsg.Bisect.ErrorFailedToRestore, err)
		return session.New(source, pairs)
	}

	fmt.Printf(i18n.I18nMsg.Bisect.SessionRestored+"\n", sess.ID(), bisectSession)
	return sess
}

func printSelection(sess *session.Session) {
	filtered, err := sess.Filtered()
	if err != nil {
		log.Error().Err(err).Msg("selection")
		return
	}
	fmt.Printf(i18n.I18nMsg.Bisect.SelectionSummary+"\n", len(filtered), len(sess.Pairs()))
}

func splitSelected(sess *session.Session) {
	if len(sess.Selected()) == 0 {
		if root, ok := sess.Tree().Root(); ok {
			_ = sess.Select(root)
		}
	}

	if _, _, ok := sess.SplitSelected(); !ok {
		fmt.Println(i18n.I18nMsg.Bisect.NothingToSplit)
		return
	}

	id, _ := sess.SelectedLeaf()
	if node, ok := sess.Tree().Node(id); ok && !node.Splittable() {
		for p := range node.Items() {
			fmt.Printf(i18n.I18nMsg.Bisect.SingleStringLeft+"\n",
				catalog.HighlightSpaces(p.Original), catalog.HighlightSpaces(p.Translation))
		}
	}
}

func selectNodes(sess *session.Session) {
	choices := treeview.Choices(sess.Tree(), !bisectNoPreview)

	labels := make([]string, len(choices))
	byLabel := make(map[string]bisect.NodeID, len(choices))
	var defaults []string
	selected := sess.Selected()
	for i, c := range choices {
		labels[i] = c.Label
		byLabel[c.Label] = c.ID
		for _, id := range selected {
			if id == c.ID {
				defaults = append(defaults, c.Label)
			}
		}
	}

	var picked []string
	err := survey.AskOne(&survey.MultiSelect{
		Message:  i18n.I18nMsg.Bisect.PromptNodes,
		Options:  labels,
		Default:  defaults,
		PageSize: 20,
	}, &picked)
	if err != nil {
		return
	}

	ids := make([]bisect.NodeID, 0, len(picked))
	for _, label := range picked {
		ids = append(ids, byLabel[label])
	}
	if err := sess.Select(ids...); err != nil {
		log.Error().Err(err).Msg("select")
	}
}

func showSelected(sess *session.Session) {
	filtered, err := sess.Filtered()
	if err != nil {
		log.Error().Err(err).Msg("selection")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"#", i18n.I18nMsg.Common.ColumnOriginal, i18n.I18nMsg.Common.ColumnTranslation})

	for i, p := range filtered {
		if bisectShowLimit > 0 && i >= bisectShowLimit {
			t.AppendFooter(table.Row{"", fmt.Sprintf(i18n.I18nMsg.Bisect.MoreStrings, len(filtered)-i), ""})
			break
		}
		t.AppendRow(table.Row{strconv.Itoa(i + 1), catalog.HighlightSpaces(p.Original), catalog.HighlightSpaces(p.Translation)})
	}

	t.Render()
}

func patchSelected(sess *session.Session, cat *catalog.Catalog, cp string) {
	filtered, err := sess.Filtered()
	if err != nil {
		log.Error().Err(err).Msg("selection")
		return
	}

	// A fresh context per run so that Ctrl+C stops the patcher, not the session.
	ctx, stop := commandContext()
	defer stop()

	if err := runPatcher(ctx, cat, cp, filtered); err != nil {
		log.Error().Msgf(i18n.I18nMsg.Patch.ErrorFailedToPatch, err)
		return
	}
	fmt.Println(i18n.I18nMsg.Patch.Completed)
}

func exportSelected(sess *session.Session, cat *catalog.Catalog) {
	filtered, err := sess.Filtered()
	if err != nil {
		log.Error().Err(err).Msg("selection")
		return
	}

	var path string
	err = survey.AskOne(&survey.Input{
		Message: i18n.I18nMsg.Bisect.PromptExportPath,
		Default: cat.Language + "_selected.po",
	}, &path, survey.WithValidator(survey.Required))
	if err != nil {
		return
	}

	if err := catalog.WriteFile(path, cat.Language, filtered); err != nil {
		log.Error().Msgf(i18n.I18nMsg.Bisect.ErrorFailedToExport, err)
		return
	}
	fmt.Printf(i18n.I18nMsg.Bisect.Exported+"\n", len(filtered), path)
}

// saveSession writes the snapshot to the --session file, asking for a path
// first when ask is set or none was given.
func saveSession(sess *session.Session, ask bool) {
	if ask || bisectSession == "" {
		def := bisectSession
		if def == "" {
			def = "bisect.session"
		}
		err := survey.AskOne(&survey.Input{
			Message: i18n.I18nMsg.Bisect.PromptSessionPath,
			Default: def,
		}, &bisectSession, survey.WithValidator(survey.Required))
		if err != nil {
			return
		}
	}

	f, err := os.Create(bisectSession)
	if err != nil {
		log.Error().Msgf(i18n.I18nMsg.Bisect.ErrorFailedToSave, err)
		return
	}

	if err := sess.Save(f); err != nil {
		f.Close()
		log.Error().Msgf(i18n.I18nMsg.Bisect.ErrorFailedToSave, err)
		return
	}
	if err := f.Close(); err != nil {
		log.Error().Msgf(i18n.I18nMsg.Bisect.ErrorFailedToSave, err)
		return
	}

	fmt.Printf(i18n.I18nMsg.Bisect.SessionSaved+"\n", bisectSession)
}
