package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ja-he/lunadash/internal/astro"
	"github.com/ja-he/lunadash/internal/config"
	"github.com/ja-he/lunadash/internal/control"
	"github.com/ja-he/lunadash/internal/model"
)

// PhasesCommand is the `phases` command, printing the upcoming major phases.
type PhasesCommand struct {
	Start string `short:"s" long:"start" description:"search from this time (RFC3339 or YYYY-MM-DD) instead of now" value-name:"<time>"`
	JSON  bool   `long:"json" description:"print the phases as JSON"`
}

// Execute runs the phases command. It needs no network access.
func (command *PhasesCommand) Execute(args []string) error {
	start, err := parseStart(command.Start, time.Now())
	if err != nil {
		return err
	}

	cfg, err := config.Load(baseDir(), config.Dark)
	if err != nil {
		return err
	}
	opts, err := cfg.Scan.Options()
	if err != nil {
		return err
	}
	calc, err := astro.NewCalculator(astro.LibrarySource{}, opts)
	if err != nil {
		return err
	}

	upcoming := calc.UpcomingPhases(start)
	if command.JSON {
		return writeJSON(os.Stdout, upcoming)
	}
	printPhases(os.Stdout, start, upcoming)
	return nil
}

// parseStart accepts RFC3339 timestamps and plain dates (as local midnight).
// An empty string yields now.
func parseStart(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return now, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("could not parse start '%s' as RFC3339 or YYYY-MM-DD", s)
	}
	return t, nil
}

func printPhases(w io.Writer, start time.Time, upcoming []model.UpcomingPhase) {
	if len(upcoming) == 0 {
		fmt.Fprintln(w, "No phases found")
		return
	}
	local := make([]model.UpcomingPhase, len(upcoming))
	for i, u := range upcoming {
		local[i] = model.UpcomingPhase{Name: u.Name, Date: u.Date.Local()}
	}
	items := control.UpcomingItems(local)
	for i, u := range local {
		fmt.Fprintf(w, "%s %-15s %-7s %s (%s)\n",
			items[i].Symbol,
			u.Name,
			items[i].Date,
			u.Date.Format("15:04"),
			model.PhaseCountdown(start, u.Date),
		)
	}
}
