// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/lvcplx/scenario"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	plain   bool
	verbose bool
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

var rootCmd = &cobra.Command{
	Use:   "cplxdemo",
	Short: "Walk through the single-precision complex algebra",
	Long: `cplxdemo evaluates a scenario of complex-number operations and prints
each result in canonical form, e.g. "(1 + 1i) * (1 + 1i) = (2i)".

Without --config the built-in tour runs: products and quotients in polar
form, fractional powers, Euler's identity, logarithms, trigonometry and
normalization. A scenario file is TOML unless its extension is .yaml/.yml.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			err := fmt.Errorf("unknown command %q", args[0])
			printError(cmd, "parsing arguments", err)
			return err
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		f := scenario.Default()
		if cfgFile != "" {
			loaded, err := scenario.Load(cfgFile)
			if err != nil {
				printError(cmd, "loading scenario", err)
				return err
			}
			f = loaded
		}
		if verbose {
			cmd.PrintErrf("running %d step(s)\n", len(f.Steps))
		}
		render(cmd.OutOrStdout(), f, scenario.Run(f))
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "scenario file (.toml, .yaml, .yml)")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "disable styling")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		printError(cmd, "parsing flags", err)
		return err
	})
}

// render writes one "name: expr = value" line per result under the title.
func render(w io.Writer, f scenario.File, results []scenario.Result) {
	style := func(s lipgloss.Style, text string) string {
		if plain {
			return text
		}
		return s.Render(text)
	}

	if f.Title != "" {
		fmt.Fprintln(w, style(titleStyle, f.Title))
	}
	for _, r := range results {
		line := r.String()
		if r.Err != nil {
			line = style(errStyle, line)
		}
		fmt.Fprintf(w, "%s: %s\n", style(nameStyle, r.Name), line)
	}
}

func printError(cmd *cobra.Command, msg string, err error) {
	cmd.PrintErrf("error: %s: %v\n", msg, err)
}
