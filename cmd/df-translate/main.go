package main

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/xishang0128/df-translate/common/file"
	"github.com/xishang0128/df-translate/common/i18n"
	"github.com/xishang0128/df-translate/common/logging"
	"github.com/xishang0128/df-translate/config"
)

var (
	rootCmd *cobra.Command
	cfg     *config.Config

	userAgent  string
	configPath string
	noConfig   bool
	debugMode  bool
	logLevel   string
	langFlag   string
	noColor    bool
)

func init() {
	i18n.InitLanguage()
	// Help texts are built below, so --lang has to be honored before flag parsing.
	if lang := langFromArgs(os.Args[1:]); lang != "" {
		i18n.SetLanguage(i18n.Language(lang))
	}

	rootCmd = &cobra.Command{
		Use:           "df-translate",
		Short:         i18n.I18nMsg.App.AppDescription,
		Long:          i18n.I18nMsg.App.AppLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := logging.Setup(logLevel, debugMode); err != nil {
				log.Fatal().Msgf(i18n.I18nMsg.Common.ErrorInvalidLogLevel, err)
			}
			if userAgent != "" {
				file.SetUserAgent(userAgent)
			}
			if noColor {
				color.NoColor = true
			}
			if noConfig {
				cfg = config.Default()
				return
			}
			if configPath == "" {
				configPath = config.DefaultPath()
			}
			cfg = config.Load(configPath)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", i18n.I18nMsg.Common.FlagConfig)
	flags.BoolVar(&noConfig, "no-config", false, i18n.I18nMsg.Common.FlagNoConfig)
	flags.BoolVar(&debugMode, "debug", false, i18n.I18nMsg.Common.FlagDebug)
	flags.StringVar(&logLevel, "log-level", "info", i18n.I18nMsg.Common.FlagLogLevel)
	flags.StringVar(&userAgent, "user-agent", "", i18n.I18nMsg.Common.FlagUserAgent)
	flags.StringVar(&langFlag, "lang", "", i18n.I18nMsg.Common.FlagLang)
	flags.BoolVar(&noColor, "no-color", false, i18n.I18nMsg.Common.FlagNoColor)

	initBisectCmd()
	initDownloadCmd()
	initPatchCmd()
	initCodepagesCmd()
	initExclusionsCmd()
	initCheckCmd()
	initVersionCmd()
}

// langFromArgs finds the value of --lang without full flag parsing.
func langFromArgs(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if v, ok := strings.CutPrefix(arg, "--lang="); ok {
			return v
		}
		if arg == "--lang" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// commandContext is cancelled by Ctrl+C.
func commandContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func saveConfig() {
	if err := cfg.Save(); err != nil {
		log.Warn().Msgf(i18n.I18nMsg.Common.ErrorFailedToSaveConfig, err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
