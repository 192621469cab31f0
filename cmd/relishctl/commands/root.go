// Package commands implements the relishctl operator CLI over the backend REST client.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"relish/internal/adapters/backend"
	"relish/internal/config"
)

// app carries the state shared by every subcommand.
type app struct {
	backendURL string
	asJSON     bool
	timeout    time.Duration
	client     *backend.Client
}

// Execute runs relishctl with the process arguments.
func Execute() error {
	root := NewRootCmd(os.Stdout)
	root.SetErr(os.Stderr)
	return root.Execute()
}

// NewRootCmd builds the command tree writing results to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "relishctl",
		Short:        "Operate the Relish Sports backend",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("backend") {
				cfg, err := config.LoadCommon()
				if err != nil {
					return err
				}
				a.backendURL = cfg.BackendURL
			}
			a.client = backend.New(a.backendURL)
			return nil
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&a.backendURL, "backend", config.DefaultBackendURL, "backend base URL (default from RELISH_BACKEND_URL)")
	root.PersistentFlags().BoolVar(&a.asJSON, "json", false, "print JSON instead of a table")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 10*time.Second, "request timeout")

	root.AddCommand(
		healthCmd(a),
		sportsCmd(a),
		facilitiesCmd(a),
		coachesCmd(a),
		branchesCmd(a),
		contactFormsCmd(a),
	)
	return root
}

func (a *app) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), a.timeout)
}

// render prints v as indented JSON with --json, otherwise as a table.
func (a *app) render(w io.Writer, v any, header []string, rows [][]string) error {
	if a.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}
