package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"mockdata/internal/dataset"
)

var (
	prettyFlag bool
	directFlag bool
)

var getCmd = &cobra.Command{
	Use:   "get [section]",
	Short: "Print the whole dataset or one section as JSON",
	Long: "Loads the dataset through the selected environment's strategy and prints it.\n" +
		"Sections: user, dashboard, invoices, expenses, wallet, profile.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prov, err := build(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		var value any
		if len(args) == 0 {
			value, err = prov.Service.GetAll(ctx)
		} else {
			section, parseErr := dataset.ParseSection(args[0])
			if parseErr != nil {
				return parseErr
			}
			if directFlag {
				value, err = prov.Service.Fetch(ctx, section)
			} else {
				value, err = prov.Service.Get(ctx, section)
			}
		}
		if err != nil {
			return fmt.Errorf("load dataset: %w", err)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		if prettyFlag {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(value)
	},
}

func init() {
	getCmd.Flags().BoolVar(&prettyFlag, "pretty", false, "Indent the JSON output")
	getCmd.Flags().BoolVar(&directFlag, "direct", false, "Fetch the section straight from the endpoint, falling back to the full dataset")
}
