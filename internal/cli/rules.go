package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect and validate rule tables",
}

var rulesValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a rule file",
	Long: `Load the rule file given by --rules and report structural errors:
empty keywords, rules without keywords and rules without a response.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable()
		if err != nil {
			return fmt.Errorf("invalid rule table: %w", err)
		}

		source := rulesFile
		if source == "" {
			source = "built-in table"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "OK %s: %d emergency keyword(s), %d rule(s)\n",
			source, len(table.Emergency), len(table.Rules))
		return nil
	},
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List rules in match order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable()
		if err != nil {
			return fmt.Errorf("loading rules: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Emergency keywords (%d):\n  %s\n", len(table.Emergency), strings.Join(table.Emergency, ", "))
		fmt.Fprintf(out, "Rules (%d, first match wins):\n", len(table.Rules))
		for i, r := range table.Rules {
			fmt.Fprintf(out, "  %d. %s [%s]\n", i+1, r.Name, strings.Join(r.Keywords, ", "))
		}
		return nil
	},
}

func init() {
	rulesCmd.AddCommand(rulesValidateCmd)
	rulesCmd.AddCommand(rulesListCmd)
	rootCmd.AddCommand(rulesCmd)
}
