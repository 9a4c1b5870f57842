package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var inspectFlags struct {
	format string
	dump   bool
}

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Decode a vector and report its tree shape",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		format := formatFor(inspectFlags.format, path)
		v, err := decodeVector(format, data)
		if err != nil {
			return fmt.Errorf("decoding %s as %s: %w", path, format, err)
		}
		log.Debugf("decoded %d bytes from %s", len(data), path)

		s := v.Stats()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "size=%d height=%d leaves=%d branches=%d\n", s.Size, s.Height, s.Leaves, s.Branches)
		if first, ok := v.First(); ok {
			last, _ := v.Last()
			fmt.Fprintf(out, "first=%d last=%d\n", first, last)
		}
		if inspectFlags.dump {
			return v.Dump(out)
		}
		return nil
	},
}

func init() {
	inspectCmd.Flags().StringVar(&inspectFlags.format, "format", "", "cbor or json (default: from the file extension)")
	inspectCmd.Flags().BoolVar(&inspectFlags.dump, "dump", false, "print the tree outline")
}
