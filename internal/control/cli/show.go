package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ja-he/lunadash/internal/control"
	"github.com/ja-he/lunadash/internal/model"
)

const showTimeout = 30 * time.Second

// ShowCommand is the `show` command, printing the dashboard once.
type ShowCommand struct {
	JSON     bool   `long:"json" description:"print the dashboard as JSON"`
	Location string `short:"l" long:"location" description:"look up this place instead of locating the viewer" value-name:"<place>"`
	Format   string `short:"f" long:"format" choice:"12h" choice:"24h" description:"time format (overrides the configuration)"`
	Publish  bool   `long:"publish" description:"publish the snapshot to the configured MQTT broker"`
}

// Execute runs the show command.
func (command *ShowCommand) Execute(args []string) error {
	env, err := setUp(themeFromFlag(""), command.Publish)
	if err != nil {
		return err
	}
	defer env.Close()

	ctx, cancel := context.WithTimeout(context.Background(), showTimeout)
	defer cancel()

	d := env.Dashboard
	if command.Location != "" {
		d.RefreshPicture(ctx)
		if _, err := d.SetLocation(ctx, command.Location); err != nil {
			return err
		}
	} else if _, err := d.Init(ctx); err != nil {
		return err
	}

	settings := d.Settings()
	if command.Format != "" {
		if settings.TimeFormat, err = model.ParseTimeFormat(command.Format); err != nil {
			return err
		}
	}
	view := control.BuildView(d.Snapshot(), d.Picture(), settings, d.Now())

	if command.JSON {
		return writeJSON(os.Stdout, view)
	}
	printView(os.Stdout, view)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("could not encode output (%w)", err)
	}
	return nil
}

// printView prints the dashboard as plain text.
func printView(w io.Writer, v control.View) {
	fmt.Fprintf(w, "%s  %s\n", v.Main.Symbol, v.Main.PhaseName)
	fmt.Fprintf(w, "  %s\n  %s\n  Distance: %s (%.0f%%)\n", v.Main.Illumination, v.Main.Age, v.Main.Distance, v.Main.DistancePct)

	printRows(w, "Position", v.Position)
	printRows(w, "Times", v.Timing)
	printRows(w, "Orbit", v.Orbital)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Upcoming")
	if v.NextPhase != nil {
		fmt.Fprintf(w, "  Next: %s in %s\n", v.NextPhase.Name, v.NextPhase.Countdown)
	}
	if len(v.Upcoming) == 0 {
		fmt.Fprintln(w, "  No phases found")
	}
	for _, u := range v.Upcoming {
		fmt.Fprintf(w, "  %s %-15s %s\n", u.Symbol, u.Name, u.Date)
	}

	if v.Picture != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s (%s)\n", v.Picture.Title, v.Picture.Date)
		fmt.Fprintf(w, "  %s\n  %s\n", v.Picture.Copyright, v.Picture.ImageURL)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, v.PictureCountdown)
}

func printRows(w io.Writer, title string, rows []control.Row) {
	width := 0
	for _, r := range rows {
		width = max(width, len(r.Label))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, title)
	for _, r := range rows {
		fmt.Fprintf(w, "  %s%s  %s\n", r.Label, strings.Repeat(" ", width-len(r.Label)), r.Value)
	}
}
