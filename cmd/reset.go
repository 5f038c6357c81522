package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"mapty/internal/workout"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every stored workout",
	Long:  `Remove the saved workout list. The next launch starts with an empty map.`,
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "confirm deletion")
	rootCmd.AddCommand(resetCmd)
}

// errNotConfirmed is returned when reset runs without --yes
var errNotConfirmed = errors.New("refusing to delete workouts without --yes")

func runReset(cmd *cobra.Command, args []string) error {
	if !resetYes {
		return errNotConfirmed
	}

	kv, err := openStorage(cfg, inMemory)
	if err != nil {
		return err
	}
	defer kv.Close()

	return resetWorkouts(cmd.Context(), cmd.OutOrStdout(), kv)
}

func resetWorkouts(ctx context.Context, out io.Writer, kv workout.KV) error {
	if err := workout.Wipe(ctx, kv); err != nil {
		return fmt.Errorf("deleting workouts: %w", err)
	}
	fmt.Fprintln(out, "All workouts deleted.")
	return nil
}
