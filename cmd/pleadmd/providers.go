package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"pleadmd/internal/provider"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List the supported LLM providers and their models",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		baseURL, _ := cmd.Flags().GetString("base-url")
		registry := provider.NewRegistry(baseURL)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tAPI KEY\tBASE URL\tMODELS")
		for _, p := range registry.List() {
			key := "optional"
			if p.RequiresAPIKey {
				key = "required"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, key, p.BaseURL, strings.Join(p.Models, ", "))
		}
		return w.Flush()
	},
}

func init() {
	providersCmd.Flags().String("base-url", "", "override the local provider base URL")

	rootCmd.AddCommand(providersCmd)
}
