package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/misaki/kumora/internal/enrich"
	"github.com/misaki/kumora/internal/levels"
	"github.com/misaki/kumora/internal/llm"
	"github.com/misaki/kumora/internal/problems"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview generated problems for a level and worksheet (no database)",
	Long: `Generate problems for a specific worksheet and print them with their
answers and hint tiers.

This is a stateless developer tool — no database, no events. Useful for
evaluating generator output across worksheet bands.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("level", "2A", "Worksheet level (4A, 3A, 2A, A-F)")
	previewCmd.Flags().Int("worksheet", 1, "Worksheet number (1-200)")
	previewCmd.Flags().Int("count", 5, "Number of problems to generate")
	previewCmd.Flags().Bool("enrich", false, "Rewrite hint wording with the configured LLM")
	previewCmd.Flags().Bool("json", false, "Print problems as JSON")
}

func runPreview(cmd *cobra.Command, args []string) error {
	levelVal, _ := cmd.Flags().GetString("level")
	worksheet, _ := cmd.Flags().GetInt("worksheet")
	count, _ := cmd.Flags().GetInt("count")
	enrichFlag, _ := cmd.Flags().GetBool("enrich")
	asJSON, _ := cmd.Flags().GetBool("json")

	level, err := levels.Parse(levelVal)
	if err != nil {
		return err
	}

	ctx := context.Background()

	// Enrichment is opt-in and needs a configured provider. Events are
	// skipped here since preview never touches the database.
	var enricher *enrich.Enricher
	if enrichFlag {
		provider, err := llm.NewProviderFromEnv(ctx, nil)
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}
		enricher = enrich.New(provider)
	}

	generated := problems.GenerateSet(level, worksheet, count)
	if enricher != nil {
		for _, p := range generated {
			p.Tiers = enricher.Enrich(ctx, p.Question, p.Tiers)
		}
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(generated)
	}

	info := levels.Info(level, worksheet)
	fmt.Printf("%s, worksheet %d: %s (difficulty %d)\n\n",
		level.DisplayName(), worksheet, info.Topic, info.Difficulty)

	for i, p := range generated {
		fmt.Printf("── Problem %d/%d ──\n", i+1, count)
		fmt.Println(p.Question)
		fmt.Printf("Answer: %s\n", p.Answer)
		fmt.Printf("  micro:    %s\n", p.Tiers.Micro.Text)
		fmt.Printf("  visual:   %s\n", p.Tiers.Visual.Text)
		fmt.Printf("  teaching: %s\n", p.Tiers.Teaching.Text)
		if len(p.QuickHints) > 0 {
			fmt.Printf("  quick:    %s\n", strings.Join(p.QuickHints, " | "))
		}
		fmt.Println()
	}

	return nil
}
