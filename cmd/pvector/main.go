// Command pvector builds, encodes and inspects persistent vectors of int64.
package main

import (
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	// the logger is created by rootCmd once the --log-level flag is parsed
	defer func() {
		if log != nil {
			logger.OnExit()
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}
