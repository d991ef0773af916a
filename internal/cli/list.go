package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/katalvlaran/fwdiff/internal/catalog"
	"github.com/spf13/cobra"
)

// FunctionInfo is one row of list in JSON output.
type FunctionInfo struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Inputs      int     `json:"inputs"`
	Outputs     int     `json:"outputs"`
	Default     []Float `json:"default"`
	Path        string  `json:"path"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List the registered functions",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := catalog.Entries()
			if rootOpts.Format == "json" {
				infos := make([]FunctionInfo, len(entries))
				for i, e := range entries {
					infos[i] = FunctionInfo{e.Name, e.Description, e.Inputs, e.Outputs, floats(e.Default), e.Path}
				}
				return writeJSON(cmd.OutOrStdout(), infos)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tN\tM\tPATH\tDEFAULT\tDESCRIPTION")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%s\n",
					e.Name, e.Inputs, e.Outputs, e.Path, formatPoint(floats(e.Default)), e.Description)
			}

			return tw.Flush()
		},
	}
}
