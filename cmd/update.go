package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/misaki/kumora/internal/selfupdate"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check whether a newer release is available",
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := selfupdate.NewChecker()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		result, err := checker.Check(ctx, &selfupdate.CheckInput{
			Version: version,
		})
		if errors.Is(err, selfupdate.ErrDevBuild) {
			fmt.Println("Cannot check a development build. Install a release build first.")
			return nil
		}
		if err != nil {
			return err
		}

		if !result.UpdateAvailable {
			fmt.Println("Already running the latest version.")
			return nil
		}

		fmt.Printf("Update available: %s -> %s\n", result.CurrentVersion, result.LatestVersion)
		if result.ReleaseURL != "" {
			fmt.Println("Release notes:", result.ReleaseURL)
		}
		return nil
	},
}
