// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/physq/internal/logger"
)

// convertCommand constructs the 'convert' subcommand, which reads a literal
// of the given signature and prints it in each requested unit, or in the
// default unit when none is given.
func convertCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "convert <signature> <literal> [unit...]",
		Short:   "Converts a quantity literal to other units",
		Example: `  pacetable convert L "10 km" mi` + "\n" + `  pacetable convert temperature "20 C" F K`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := signature(args[0])
			if err != nil {
				return err
			}
			q, err := a.sys.ParseTyped(d, normalize(args[1]))
			if err != nil {
				return err
			}
			logger.Debug(cmd.Context(), "literal parsed", zap.Stringer("quantity", q))

			out := cmd.OutOrStdout()
			if len(args) == 2 {
				_, err = fmt.Fprintln(out, q.String())
				return err
			}
			for _, unit := range args[2:] {
				unit = normalize(unit)
				v, err := q.Get(unit)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintln(out, strconv.FormatFloat(v, 'g', 6, 64), unit); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
