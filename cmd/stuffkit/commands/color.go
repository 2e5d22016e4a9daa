package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/stuffkit/pkg/color"
	"github.com/dmitrymomot/stuffkit/pkg/logger"
)

func newColorCmd(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "color VALUE...",
		Short: "Normalise color notations to #RRGGBB",
		Long: `Parse #RRGGBB, 0xRRGGBB or rgb(r,g,b) values and print them as #RRGGBB.
Unsupported values print as white (#FFFFFF) unless --strict is set.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, value := range args {
				if strict {
					c, err := color.ParseStrict(value)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", value, c.Hex())
					continue
				}

				if _, err := color.ParseStrict(value); err != nil {
					a.log.WarnContext(cmd.Context(), "unsupported color, using white",
						slog.String("value", value), logger.Error(err))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", value, color.Parse(value).Hex())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on unsupported values")

	return cmd
}
