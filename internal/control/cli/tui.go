package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/lunadash/internal/control"
	"github.com/ja-he/lunadash/internal/memlog"
	"github.com/ja-he/lunadash/internal/storage"
	"github.com/ja-he/lunadash/internal/styling"
	"github.com/ja-he/lunadash/internal/tui"
)

// TuiCommand is the `tui` command, running the terminal dashboard.
type TuiCommand struct {
	Theme         string `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in config.yaml"`
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs dropped)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`
	Remember      bool   `short:"r" long:"remember" description:"restore the time format and blur from the last run and save them on exit"`
}

// Execute runs the TUI.
func (command *TuiCommand) Execute(args []string) error {
	// set up stderr logger until TUI set up
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// create TUI logger
	var logWriter io.Writer
	if command.LogOutputFile != "" {
		var fileLogger io.Writer
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			stderrLogger.Fatal().Err(err).Str("file", command.LogOutputFile).Msg("could not open file for logging")
		}
		defer file.Close()
		if command.LogPretty {
			fileLogger = zerolog.ConsoleWriter{Out: file, NoColor: true}
		} else {
			fileLogger = file
		}
		logWriter = zerolog.MultiLevelWriter(fileLogger, memlog.Global)
	} else {
		logWriter = memlog.Global
	}
	tuiLogger := zerolog.New(logWriter).With().Timestamp().Caller().Logger()

	// temporarily log to both (in case the TUI doesn't get set we want the info
	// on the stderr logger, otherwise the TUI logger is relevant)
	log.Logger = log.Output(zerolog.MultiLevelWriter(stderrLogger, tuiLogger))

	env, err := setUp(themeFromFlag(command.Theme), true)
	if err != nil {
		return err
	}
	defer env.Close()

	settingsFile := storage.NewFileHandler(filepath.Join(env.BaseDir, "state.yaml"))
	if command.Remember {
		restoreSettings(settingsFile, env.Dashboard)
	}

	stylesheet := styling.NewStylesheetFromConfig(env.Config.Stylesheet)

	screenHandler, err := tui.NewTUIScreenHandler()
	if err != nil {
		return err
	}

	controller, err := NewController(env.Dashboard, env.Config.Keys, *stylesheet, screenHandler)
	if err != nil {
		screenHandler.Fini()
		return err
	}

	// now that the screen is initialized, we'll always want the TUI logger, so
	// we're making it the global logger
	log.Logger = tuiLogger

	controller.Run()

	if command.Remember {
		if err := settingsFile.Write(storage.SavedFrom(env.Dashboard.Settings())); err != nil {
			log.Warn().Err(err).Msg("could not save settings")
		}
	}
	return nil
}

// restoreSettings applies the settings saved by a previous run, if any.
func restoreSettings(h *storage.FileHandler, d *control.Dashboard) {
	saved, ok, err := h.Read()
	if err != nil {
		log.Warn().Err(err).Msg("ignoring saved settings")
		return
	}
	if !ok {
		return
	}
	settings, err := saved.Settings()
	if err != nil {
		log.Warn().Err(err).Msg("ignoring saved settings")
		return
	}
	d.State.SetSettings(settings)
}
