package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/stuffkit/pkg/collection"
	"github.com/dmitrymomot/stuffkit/pkg/logger"
)

func newChunkCmd(a *app) *cobra.Command {
	var (
		capacity int
		weight   string
		strict   bool
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "chunk [file...]",
		Short: "Split input lines into weighted chunks",
		Long: `Read lines from the given files (or stdin) and group consecutive lines
into chunks whose total weight does not exceed --capacity. Chunks are printed
one line per item, separated by a blank line, or as a JSON array with --json.

Weights: unit (every line is 1), bytes, runes, tokens (tiktoken, CHUNK_ENCODING).

Examples:
  stuffkit chunk --capacity 100 --weight bytes notes.txt
  git log --oneline | stuffkit chunk --capacity 4000 --weight tokens --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("capacity") {
				capacity = a.cfg.Capacity
			}
			lines, err := readLines(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			measure, err := collection.ParseMeasure(weight)
			if err != nil {
				return err
			}
			weigh, err := collection.StringWeigher(measure, a.cfg.Encoding)
			if err != nil {
				return err
			}

			split := collection.Chunked[string]
			if strict {
				split = collection.ChunkedStrict[string]
			}
			chunks, err := split(lines, capacity, weigh)
			if err != nil {
				var tooLarge *collection.ElementTooLargeError
				if errors.As(err, &tooLarge) {
					a.log.ErrorContext(cmd.Context(), "line does not fit a chunk",
						logger.Index(tooLarge.Index),
						logger.Weight(tooLarge.Weight),
						logger.Capacity(tooLarge.Capacity),
					)
				}
				return err
			}

			a.log.DebugContext(cmd.Context(), "chunked input",
				logger.Count(len(lines)),
				logger.Capacity(capacity),
				slog.String("weight", string(measure)),
				slog.Int("chunks", len(chunks)),
			)
			if asJSON {
				return writeChunksJSON(cmd.OutOrStdout(), chunks)
			}
			return writeChunks(cmd.OutOrStdout(), chunks)
		},
	}

	cmd.Flags().IntVarP(&capacity, "capacity", "c", 50, "maximum total weight of a chunk (<= 0 keeps the input whole; default CHUNK_CAPACITY)")
	cmd.Flags().StringVarP(&weight, "weight", "w", string(collection.MeasureUnit), "weight measure: unit, bytes, runes or tokens")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject a non-positive capacity instead of keeping the input whole")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print chunks as a JSON array of arrays")

	return cmd
}

func writeChunks(w io.Writer, chunks [][]string) error {
	for i, chunk := range chunks {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		for _, line := range chunk {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeChunksJSON(w io.Writer, chunks [][]string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(chunks)
}
