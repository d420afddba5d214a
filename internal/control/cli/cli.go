// Package cli provides the command-line interface for lunadash.
package cli

// CommandLineOpts are the flags and subcommands of the program.
type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	TuiCommand     TuiCommand     `command:"tui" description:"Run the terminal dashboard" subcommands-optional:"true"`
	ServeCommand   ServeCommand   `command:"serve" description:"Serve the dashboard over HTTP" subcommands-optional:"true"`
	ShowCommand    ShowCommand    `command:"show" description:"Print the dashboard once" subcommands-optional:"true"`
	PhasesCommand  PhasesCommand  `command:"phases" description:"Print the upcoming major moon phases" subcommands-optional:"true"`
	VersionCommand VersionCommand `command:"version" description:"Show the program version" subcommands-optional:"true"`
}

// Opts holds the parsed command line.
var Opts CommandLineOpts
