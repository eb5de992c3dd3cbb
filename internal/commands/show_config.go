// internal/commands/show_config.go
package ioreport

import (
	"github.com/mwiater/ioreport/internal/appconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// showConfigCmd implements the 'show config' command, which displays the current configuration settings.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overriden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		fallback := appconfig.Config{
			Target:      viper.GetString("target"),
			Size:        viper.GetString("size"),
			OutputDir:   viper.GetString("outputDir"),
			ReportTitle: viper.GetString("reportTitle"),
			LogFile:     viper.GetString("logFile"),
			Debug:       viper.GetBool("debug"),
		}
		appconfig.ShowConfig(cmd.OutOrStdout(), viper.ConfigFileUsed(), GetConfig(), fallback)
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
