package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"healthsmart-chatbot/internal/intent"
	"healthsmart-chatbot/pkg/textnorm"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <message...>",
	Short: "Show how a message would be routed",
	Long: `Classify a message with the current rule table and print the intent,
the normalized text and, for rule hits, the canned response.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable()
		if err != nil {
			return fmt.Errorf("loading rules: %w", err)
		}

		message := strings.Join(args, " ")
		classifier := intent.New(table)
		in := classifier.Classify(message)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Message:    %s\n", message)
		fmt.Fprintf(out, "Normalized: %s\n", textnorm.Normalize(message))
		fmt.Fprintf(out, "Intent:     %s\n", in)

		if in == intent.IntentRuleBased {
			if name, ok := classifier.RuleName(message); ok {
				fmt.Fprintf(out, "Rule:       %s\n", name)
			}
			if reply, ok := classifier.Respond(message); ok {
				fmt.Fprintf(out, "Response:   %s\n", reply)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
