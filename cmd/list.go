package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"mapty/internal/tui"
	"mapty/internal/workout"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print logged workouts",
	Long:  `Print every stored workout in the order it was logged, with its pace or speed.`,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	kv, err := openStorage(cfg, inMemory)
	if err != nil {
		return err
	}
	defer kv.Close()

	return listWorkouts(cmd.Context(), cmd.OutOrStdout(), kv, tui.NewUnits(cfg.Display))
}

func listWorkouts(ctx context.Context, out io.Writer, kv workout.KV, units tui.Units) error {
	s, err := workout.Load(ctx, kv)
	if err != nil {
		// Unreadable data lists as empty, same as the app
		fmt.Fprintf(out, "warning: %v\n", err)
	}

	workouts := s.All()
	if len(workouts) == 0 {
		fmt.Fprintln(out, "No workouts yet.")
		return nil
	}

	for _, w := range workouts {
		var metric, extra string
		switch w.Kind {
		case workout.Running:
			metric = units.FormatPaceValue(w.Metric()) + " " + units.PaceLabel()
			extra = fmt.Sprintf("%d spm", w.Running.CadenceSpm)
		case workout.Cycling:
			metric = units.FormatSpeedValue(w.Metric()) + " " + units.SpeedLabel()
			extra = humanize.Ftoa(w.Cycling.ElevationGainM) + " m"
		}
		fmt.Fprintf(out, "%s %-22s %6s %s  %5s min  %12s  %8s  %s\n",
			w.Glyph(),
			w.Description,
			units.FormatDistanceValue(w.DistanceKm),
			units.DistanceLabel(),
			humanize.Ftoa(w.DurationMin),
			metric,
			extra,
			w.Coordinate,
		)
	}

	fmt.Fprintf(out, "\n%s logged\n", humanize.Comma(int64(len(workouts)))+" workout"+plural(len(workouts)))
	return nil
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
