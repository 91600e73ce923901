// Package rules handles the rule management commands.
package rules

import (
	"fmt"

	"github.com/spf13/cobra"

	"quillbooks/bookpipe/cmd/root"
	"quillbooks/bookpipe/internal/engine"
	"quillbooks/bookpipe/internal/models"
	"quillbooks/bookpipe/internal/store"
)

// Cmd represents the rules command group.
var Cmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect and manage categorization rules",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List user and built-in rules in evaluation order",
	RunE:  listFunc,
}

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest a rule from a manually corrected transaction",
	Long: `Derive a substring rule from a transaction description and the
category a reviewer assigned to it, so the next statement categorizes the
same merchant without review. Use --save to append it to the rules file.`,
	RunE: suggestFunc,
}

var (
	description string
	category    string
	save        bool
)

func init() {
	suggestCmd.Flags().StringVarP(&description, "description", "d", "", "Raw transaction description (required)")
	suggestCmd.Flags().StringVarP(&category, "category", "c", "", "Category the reviewer assigned (required)")
	suggestCmd.Flags().BoolVar(&save, "save", false, "Append the suggested rule to the rules file")
	_ = suggestCmd.MarkFlagRequired("description")
	_ = suggestCmd.MarkFlagRequired("category")

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(suggestCmd)
}

func listFunc(cmd *cobra.Command, args []string) error {
	userRules, err := store.NewRuleStore(root.Cfg.Rules.File, root.Log).Load()
	if err != nil {
		return fmt.Errorf("error loading user rules: %w", err)
	}

	printRules("User rules", userRules)
	printRules("Built-in rules", engine.BuiltinRules())
	return nil
}

func printRules(title string, rules []models.Rule) {
	fmt.Printf("%s (%d):\n", title, len(rules))
	for _, rule := range rules {
		fmt.Printf("  %-14s priority=%-3d %-9s %-28s -> %s\n",
			rule.ID, rule.Priority, rule.Kind, rule.Pattern, rule.Category)
	}
}

func suggestFunc(cmd *cobra.Command, args []string) error {
	tx := models.Transaction{Description: description}
	rule, ok := engine.SuggestRuleFromEdit(tx, category)
	if !ok {
		return fmt.Errorf("no usable merchant fragment in description: %q", description)
	}

	fmt.Printf("Suggested rule: %s matches %q -> %s\n", rule.ID, rule.Pattern, rule.Category)

	if !save {
		return nil
	}
	if err := store.NewRuleStore(root.Cfg.Rules.File, root.Log).Append(rule); err != nil {
		return fmt.Errorf("error saving rule: %w", err)
	}
	fmt.Printf("Saved to %s\n", root.Cfg.Rules.File)
	return nil
}
