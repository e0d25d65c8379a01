package cmd

import (
	"fmt"
	"strings"

	"github.com/misaki/kumora/internal/levels"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [level]",
	Short: "Show the worksheet topic bands for a level (or all levels)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			level, err := levels.Parse(args[0])
			if err != nil {
				return err
			}
			printLevelBands(level)
			return nil
		}

		for i, level := range levels.All() {
			if i > 0 {
				fmt.Println()
			}
			printLevelBands(level)
		}
		return nil
	},
}

func printLevelBands(level levels.Level) {
	fmt.Println(level.DisplayName())
	fmt.Println(strings.Repeat("─", 64))

	from := 1
	for _, b := range levels.Bands(level) {
		fmt.Printf("  %3d-%3d  %-44s  %s\n",
			from, b.Through, b.Config.Topic, strings.Repeat("★", b.Config.Difficulty))
		from = b.Through + 1
	}
}
