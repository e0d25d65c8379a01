package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/misaki/kumora/internal/upload"
	"github.com/spf13/cobra"
)

var photoCmd = &cobra.Command{
	Use:   "photo <image>",
	Short: "Prepare a photo of paper work for upload",
	Long: `Downscale and re-encode a photo of completed paper work so it fits
the upload size budget. Accepts PNG or JPEG input and writes a JPEG.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		maxEdge, _ := cmd.Flags().GetInt("max-edge")

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}

		cfg := upload.DefaultConfig()
		if maxEdge > 0 {
			cfg.MaxEdge = maxEdge
		}

		processed, err := upload.Process(data, cfg)
		if err != nil {
			return err
		}

		if out == "" {
			base := strings.TrimSuffix(args[0], filepath.Ext(args[0]))
			out = base + "-upload.jpg"
		}
		if err := os.WriteFile(out, processed.Data, 0o644); err != nil {
			return fmt.Errorf("write image: %w", err)
		}

		fmt.Printf("Wrote %s: %dx%d, quality %d, %d bytes\n",
			out, processed.Width, processed.Height, processed.Quality, len(processed.Data))
		return nil
	},
}

func init() {
	photoCmd.Flags().String("out", "", "Output path (default <input>-upload.jpg)")
	photoCmd.Flags().Int("max-edge", 0, "Longest allowed edge in pixels (default 1600)")
}
