// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type unitEntry struct {
	Unit   string  `yaml:"unit"`
	Factor float64 `yaml:"factor"`
}

type unitListing struct {
	Dimension   string      `yaml:"dimension"`
	Type        string      `yaml:"type"`
	Default     string      `yaml:"default"`
	Units       []unitEntry `yaml:"units"`
	Conversions []string    `yaml:"conversions,omitempty"`
}

// unitsCommand constructs the 'units' subcommand listing every spelling of
// a dimension with its factor to the default unit.
func unitsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "units <signature>",
		Short: "Lists the units of a dimension",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := signature(args[0])
			if err != nil {
				return err
			}
			c, err := a.sys.Catalog(d)
			if err != nil {
				return err
			}
			typ := a.sys.Resolve(d)
			listing := unitListing{
				Dimension: d.String(),
				Type:      typ.Name(),
				Default:   c.Default(),
				Units:     make([]unitEntry, 0, c.Len()),
			}
			for _, u := range c.Units() {
				f, _ := c.Factor(u)
				listing.Units = append(listing.Units, unitEntry{Unit: u, Factor: f})
			}
			listing.Conversions = typ.Units()

			out := cmd.OutOrStdout()
			switch output, _ := cmd.Flags().GetString("output"); output {
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(listing); err != nil {
					return errors.Wrap(err, "encode yaml")
				}
				return enc.Close()
			case "text":
				if _, err := fmt.Fprintf(out, "# %s %s, default %s\n", listing.Type, listing.Dimension, listing.Default); err != nil {
					return err
				}
				for _, u := range listing.Units {
					if _, err := fmt.Fprintf(out, "%s\t%s\n", u.Unit, strconv.FormatFloat(u.Factor, 'g', -1, 64)); err != nil {
						return err
					}
				}
				for _, u := range listing.Conversions {
					if _, err := fmt.Fprintf(out, "%s\t(conversion)\n", u); err != nil {
						return err
					}
				}
				return nil
			default:
				return errors.Errorf("unknown output %q", output)
			}
		},
	}
	cmd.Flags().StringP("output", "o", "text", "Output format (text, yaml)")

	return cmd
}
