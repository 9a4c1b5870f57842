package main

import (
	"fmt"

	"github.com/forestrie/go-pvector/pvector"
	"github.com/spf13/cobra"
)

var shareFlags struct {
	count int
	index int
}

// shareCmd shows how little of a tree a single Set allocates.
var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Report the nodes shared between a vector and a version with one index set",
	RunE: func(cmd *cobra.Command, args []string) error {
		if shareFlags.count < 0 {
			return fmt.Errorf("count must not be negative, got %d", shareFlags.count)
		}
		b := pvector.NewBuilder[int64](shareFlags.count)
		for i := range shareFlags.count {
			b.Add(int64(i))
		}
		v := b.Build()

		v2, err := v.Set(shareFlags.index, -1)
		if err != nil {
			return err
		}
		s := pvector.Sharing(v, v2)
		log.Infof("set index %d of %d (height %d)", shareFlags.index, v.Len(), v.Height())

		i := shareFlags.index
		if i < 0 {
			i += v.Len()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "nodes=%d shared=%d fresh=%d path=%v\n",
			s.Nodes, s.Shared, s.Fresh(), pvector.PathSlots(i, uint(v2.Height())))
		return nil
	},
}

func init() {
	shareCmd.Flags().IntVar(&shareFlags.count, "count", 1000, "number of elements")
	shareCmd.Flags().IntVar(&shareFlags.index, "index", 0, "index to set")
}
