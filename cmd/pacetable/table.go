// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/physq/internal/logger"
	"github.com/katalvlaran/physq/internal/pace"
)

// tableCommand constructs the 'table' subcommand. Flags left unset fall
// back to the configuration.
func tableCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Prints the time needed to cover race distances at a range of speeds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := a.cfg.Table
			flags := cmd.Flags()
			if flags.Changed("format") {
				t.Format, _ = flags.GetString("format")
			}
			if flags.Changed("from") {
				t.From, _ = flags.GetFloat64("from")
			}
			if flags.Changed("step") {
				t.Step, _ = flags.GetFloat64("step")
			}
			if flags.Changed("count") {
				t.Count, _ = flags.GetInt("count")
			}
			if flags.Changed("speed-unit") {
				su, _ := flags.GetString("speed-unit")
				t.SpeedUnit = normalize(su)
			}
			if flags.Changed("distance") {
				t.Distances, _ = flags.GetStringSlice("distance")
				for i, d := range t.Distances {
					t.Distances[i] = normalize(d)
				}
			}

			format, err := pace.ParseFormat(t.Format)
			if err != nil {
				return err
			}
			tbl, err := pace.Build(a.sys, pace.Options{
				From:      t.From,
				Step:      t.Step,
				Count:     t.Count,
				SpeedUnit: t.SpeedUnit,
				Distances: t.Distances,
			})
			if err != nil {
				return err
			}
			if ctx := cmd.Context(); logger.IsDebug(ctx) {
				logger.Debug(ctx, "pace table built",
					zap.Int("rows", len(tbl.Rows)),
					zap.Strings("columns", tbl.Labels),
					zap.String("speed", tbl.SpeedLabel),
				)
			}

			return tbl.Render(cmd.OutOrStdout(), format)
		},
	}

	cmd.Flags().StringP("format", "f", "text", "Output format (text, latex)")
	cmd.Flags().Float64("from", 5, "First speed")
	cmd.Flags().Float64("step", 0.2, "Speed increment between rows")
	cmd.Flags().Int("count", 29, "Number of rows")
	cmd.Flags().String("speed-unit", "mi/hr", "Unit of the speed column")
	cmd.Flags().StringSlice("distance", nil, "Distance column, e.g. \"5 km\" (repeatable)")

	return cmd
}
