package main

import (
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	log      logger.Logger
)

var rootCmd = &cobra.Command{
	Use:          "pvector",
	Short:        "Build, encode and inspect persistent vectors",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger()
	},
}

// initLogger is the single place the process logger is created.
func initLogger() {
	logger.New(logLevel)
	log = logger.Sugar.WithServiceName("pvector")
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "INFO", "log level (DEBUG, INFO, WARN, ERROR)")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(shareCmd)
}
