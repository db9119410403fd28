package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/deploymenttheory/go-jamfpro-oapi/logger"
	"github.com/deploymenttheory/go-jamfpro-oapi/version"
)

var (
	logDebug bool
	sugar    *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:           "oapigen",
	Short:         "Jamf Pro object generator",
	Long:          "Generates Go object types with property tables from the components of an OpenAPI document",
	Version:       version.GetVersion(),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := logger.LogLevelInfo
		if logDebug {
			level = logger.LogLevelDebug
		}
		var err error
		sugar, err = logger.BuildLogger(logger.Options{
			Level:            level,
			Encoding:         logger.EncodingConsole,
			ConsoleSeparator: " ",
		})
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if sugar != nil {
			_ = sugar.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&logDebug, "debug", false, "set logging level to debug")
}
