package cli

import (
	"github.com/spf13/cobra"

	"healthsmart-chatbot/internal/intent"
)

var rulesFile string

var rootCmd = &cobra.Command{
	Use:   "chatctl",
	Short: "Operator tools for the HealthSmart chatbot",
	Long: `chatctl inspects the routing rules offline: classify sample messages,
validate a rule file before deploying it and list rules in match order.

Without --rules the built-in rule table is used.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rulesFile, "rules", "", "Path to a YAML rule file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadTable returns the rule table selected by --rules.
func loadTable() (intent.Table, error) {
	if rulesFile == "" {
		return intent.DefaultTable(), nil
	}
	return intent.LoadFile(rulesFile)
}
