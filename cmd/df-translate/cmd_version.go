package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xishang0128/df-translate/common/i18n"
	"github.com/xishang0128/df-translate/compression"
	"github.com/xishang0128/df-translate/constant"
)

func initVersionCmd() {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: i18n.I18nMsg.App.VersionCmdShort,
		Long:  i18n.I18nMsg.App.VersionCmdLong,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s\n", i18n.I18nMsg.App.VersionTitle)
			fmt.Printf("%s: %s(%s)\n", i18n.I18nMsg.App.VersionLabel, constant.Version, constant.BuildTime)
			build := compression.GetBuildInfo()
			fmt.Printf("%s: %s\n", i18n.I18nMsg.App.GoVersionLabel, build["go_version"])
			fmt.Printf("%s: %s/%s\n", i18n.I18nMsg.App.PlatformLabel, build["goos"], build["goarch"])

			fmt.Printf("\n%s:\n", i18n.I18nMsg.App.SessionCompressionLabel)
			implementations := compression.GetImplementationInfo()
			for _, t := range compression.GetSupportedTypes() {
				fmt.Printf("  %-6s: %s\n", t, implementations[t])
			}
		},
	}

	rootCmd.AddCommand(versionCmd)
}
