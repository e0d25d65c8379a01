package cmd

import (
	"fmt"
	"os"

	"github.com/misaki/kumora/internal/app"
	"github.com/misaki/kumora/internal/enrich"
	"github.com/misaki/kumora/internal/levels"
	"github.com/misaki/kumora/internal/llm"
	"github.com/misaki/kumora/internal/store"
	"github.com/spf13/cobra"
)

// runPractice opens the store, builds dependencies, and launches the TUI.
func runPractice(cmd *cobra.Command) error {
	ctx := cmd.Context()

	levelVal, _ := cmd.Flags().GetString("level")
	worksheet, _ := cmd.Flags().GetInt("worksheet")

	level, err := levels.Parse(levelVal)
	if err != nil {
		return err
	}
	if worksheet < 1 || worksheet > levels.MaxWorksheet {
		return fmt.Errorf("worksheet %d out of range (1-%d)", worksheet, levels.MaxWorksheet)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{
		Level:     level,
		Worksheet: worksheet,
		Events:    st.EventRepo(),
	}

	// Hint enrichment is optional. The canned hints stand on their own.
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Hints will use the built-in wording.")
	} else {
		opts.Enricher = enrich.New(provider)
	}

	return app.Run(opts)
}
