package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/stuffkit/pkg/parse"
)

func newHexCmd() *cobra.Command {
	var prefix bool

	cmd := &cobra.Command{
		Use:   "hex INT...",
		Short: "Print 32-bit integers as lowercase hex",
		Long:  `Negative values print as their 32-bit two's complement, e.g. -1 is ffffffff.
Pass negative values after --:

  stuffkit hex -- -1 255`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := parse.Hex
			if prefix {
				format = parse.Hex0x
			}
			for _, arg := range args {
				v, err := strconv.ParseInt(arg, 0, 32)
				if err != nil {
					return fmt.Errorf("parsing %q: %w", arg, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), format(int32(v)))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&prefix, "prefix", false, "prefix values with 0x")

	return cmd
}
