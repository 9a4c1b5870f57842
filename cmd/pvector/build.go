package main

import (
	"fmt"
	"os"

	"github.com/forestrie/go-pvector/pvector"
	"github.com/spf13/cobra"
)

var buildFlags struct {
	count  int
	format string
	out    string
}

// buildCmd appends 0..count-1 one element at a time and writes the result.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a vector of 0..count-1 and write it encoded",
	RunE: func(cmd *cobra.Command, args []string) error {
		if buildFlags.count < 0 {
			return fmt.Errorf("count must not be negative, got %d", buildFlags.count)
		}
		format := formatFor(buildFlags.format, buildFlags.out)

		v := pvector.Empty[int64]()
		for i := range buildFlags.count {
			v = v.Add(int64(i))
		}
		log.Debugf("built size=%d height=%d", v.Len(), v.Height())

		data, err := encodeVector(format, v)
		if err != nil {
			return err
		}
		if err := os.WriteFile(buildFlags.out, data, 0o644); err != nil {
			return err
		}
		log.Infof("wrote %d elements as %s to %s (%d bytes)", v.Len(), format, buildFlags.out, len(data))
		return nil
	},
}

func init() {
	buildCmd.Flags().IntVar(&buildFlags.count, "count", 1000, "number of elements")
	buildCmd.Flags().StringVar(&buildFlags.format, "format", "", "cbor or json (default: from the file extension)")
	buildCmd.Flags().StringVar(&buildFlags.out, "out", "", "output file")
	_ = buildCmd.MarkFlagRequired("out")
}
