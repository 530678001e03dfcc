package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/htmltomd/internal/logging"
	"github.com/yaklabco/htmltomd/pkg/commonmarkrules"
	"github.com/yaklabco/htmltomd/pkg/mdconvert"
)

type rulesFlags struct {
	format string
}

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	Key string `json:"key"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the built-in conversion rules",
		Long:  `List the built-in rule keys used to render each HTML construct as Markdown.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			rules := commonmarkrules.New().BuiltinRules()

			if flags.format == formatJSON {
				return outputRulesJSON(rules)
			}

			logger := logging.NewInteractive()
			logger.Info("built-in rules")
			for _, rule := range rules {
				logger.Info(rule.Key)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")

	return cmd
}

const formatJSON = "json"

// outputRulesJSON outputs rules as a JSON array.
func outputRulesJSON(rules []mdconvert.Rule) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, ruleInfo{Key: rule.Key})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
