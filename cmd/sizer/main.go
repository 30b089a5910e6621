// Command sizer runs the capacity-table sizing engine from the command line.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var tablesDir string

	rootCmd := &cobra.Command{
		Use:          "sizer",
		Short:        "Size beams, joists and wire against capacity tables",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&tablesDir, "tables-dir", "", "directory of *.yaml capacity tables (default: embedded set)")

	rootCmd.AddCommand(tablesCmd(&tablesDir))
	rootCmd.AddCommand(sizeCmd(&tablesDir))
	rootCmd.AddCommand(batchCmd(&tablesDir))
	return rootCmd
}

func tablesCmd(tablesDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List the loaded capacity tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTables(cmd.OutOrStdout(), *tablesDir)
		},
	}
}

func sizeCmd(tablesDir *string) *cobra.Command {
	var (
		table    string
		span     float64
		capacity float64
	)

	cmd := &cobra.Command{
		Use:   "size",
		Short: "Find adequate sizes for one span and required capacity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSize(cmd.OutOrStdout(), *tablesDir, table, span, capacity)
		},
	}

	cmd.Flags().StringVarP(&table, "table", "t", "", "table name, e.g. beam or joist-16")
	cmd.Flags().Float64VarP(&span, "span", "s", 0, "required span in the table's span unit")
	cmd.Flags().Float64VarP(&capacity, "capacity", "c", 0, "required capacity in the table's capacity unit")
	_ = cmd.MarkFlagRequired("table")
	_ = cmd.MarkFlagRequired("span")
	_ = cmd.MarkFlagRequired("capacity")
	return cmd
}

func batchCmd(tablesDir *string) *cobra.Command {
	var (
		table  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "batch [input.xlsx]",
		Short: "Size every row of a workbook (label, span, capacity)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd.OutOrStdout(), *tablesDir, table, args[0], output)
		},
	}

	cmd.Flags().StringVarP(&table, "table", "t", "", "table name")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write results to this workbook instead of printing them")
	_ = cmd.MarkFlagRequired("table")
	return cmd
}
