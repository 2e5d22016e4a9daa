package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/stuffkit/pkg/logger"
	"github.com/dmitrymomot/stuffkit/pkg/textfield"
	"github.com/dmitrymomot/stuffkit/pkg/validator"
)

func newValidateCmd(a *app) *cobra.Command {
	var (
		rulesFile string
		field     string
	)

	cmd := &cobra.Command{
		Use:   "validate --rules FILE [text...]",
		Short: "Check texts against a YAML rule chain",
		Long: `Evaluate each text (or each stdin line when no text is given) against the
rules in --rules, in order. The first failing rule's message is printed, or
"ok" when every rule passes. The command fails when any text is invalid.

Rule file:
  - kind: empty
    message: enter a name
  - kind: min_length
    value: 3
  - kind: pattern
    value: "^[a-z]+$"
    message: lowercase letters only

Kinds: empty, required, min_length, max_length, pattern, email, numeric.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(rulesFile)
			if err != nil {
				return fmt.Errorf("opening rules: %w", err)
			}
			rules, err := validator.ParseRules(f, field)
			f.Close()
			if err != nil {
				return err
			}

			texts := args
			if len(texts) == 0 {
				if texts, err = readLines(cmd.InOrStdin(), nil); err != nil {
					return err
				}
			}

			input := textfield.New(
				textfield.ChainPolicy(textfield.Messages(rules...)...),
				textfield.WithName[string](field),
				textfield.WithLogger[string](a.log),
			)

			failed := 0
			out := cmd.OutOrStdout()
			for _, text := range texts {
				input.OnTextChanged(text)
				msg, hasError := input.CurrentError()
				if !hasError {
					fmt.Fprintln(out, "ok")
					continue
				}
				failed++
				fmt.Fprintln(out, msg)
			}

			if failed > 0 {
				a.log.DebugContext(cmd.Context(), "validation finished", logger.Count(failed))
				return fmt.Errorf("%w: %d of %d texts", validator.ErrValidationFailed, failed, len(texts))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&rulesFile, "rules", "r", "", "YAML rule file")
	cmd.Flags().StringVar(&field, "field", "text", "field name used in rule messages")
	_ = cmd.MarkFlagRequired("rules")

	return cmd
}
