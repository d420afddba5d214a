package cli

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/lunadash/internal/control"
	"github.com/ja-he/lunadash/internal/control/action"
	"github.com/ja-he/lunadash/internal/control/editor"
	"github.com/ja-he/lunadash/internal/input"
	"github.com/ja-he/lunadash/internal/input/processors"
	"github.com/ja-he/lunadash/internal/memlog"
	"github.com/ja-he/lunadash/internal/styling"
	"github.com/ja-he/lunadash/internal/tui"
	"github.com/ja-he/lunadash/internal/ui"
	"github.com/ja-he/lunadash/internal/ui/panes"
	"github.com/ja-he/lunadash/internal/util"
)

const (
	statusHeight    = 1
	upstreamTimeout = 20 * time.Second
)

// Controller is the struct for the TUI controller.
type Controller struct {
	dashboard *control.Dashboard
	rootPane  *panes.RootPane

	controllerEvents chan controllerEvent

	showPicture atomic.Bool
	showPrompt  atomic.Bool
	showHelp    atomic.Bool
	showLog     atomic.Bool
	showPerf    atomic.Bool

	alertMtx sync.Mutex
	alert    string

	picturePane    *panes.PicturePane
	helpPane       *panes.HelpPane
	locationEditor *editor.LineEditor

	renderTimes          util.MetricsHandler
	eventProcessingTimes util.MetricsHandler

	screenHandler *tui.ScreenHandler
	screenEvents  tui.EventPollable
	syncer        tui.ScreenSynchronizer

	ctx    context.Context
	cancel context.CancelFunc
}

// NewController creates a new Controller drawing the dashboard to the given
// screen, with the root key bindings resolved from bindings.
func NewController(
	dashboard *control.Dashboard,
	bindings input.Bindings,
	stylesheet styling.Stylesheet,
	screenHandler *tui.ScreenHandler,
) (*Controller, error) {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		dashboard:        dashboard,
		controllerEvents: make(chan controllerEvent, 32),
		locationEditor:   editor.NewLineEditor("Location"),
		screenHandler:    screenHandler,
		screenEvents:     screenHandler.GetEventPollable(),
		syncer:           screenHandler,
		ctx:              ctx,
		cancel:           cancel,
	}

	screenDims := screenHandler.Dimensions
	body := ui.Between(screenDims, 0, statusHeight)
	renderer := func(dims ui.Dims) ui.ConstrainedRenderer {
		return ui.NewConstrainedRenderer(screenHandler, dims)
	}

	view := func() (control.View, bool) { return dashboard.View(dashboard.Now()) }
	blur := func() bool { return dashboard.Settings().Blur }

	moonDims := ui.GridCell(body, 3, 1, 0, 0)
	positionDims := ui.GridCell(body, 3, 2, 1, 0)
	timingDims := ui.GridCell(body, 3, 2, 2, 0)
	upcomingDims := ui.GridCell(body, 3, 2, 1, 1)
	orbitalDims := ui.GridCell(body, 3, 2, 2, 1)
	statusDims := ui.Bottom(screenDims, statusHeight)

	dashboardPane := panes.NewGroup(
		[]ui.Pane{
			panes.NewMoonPane(renderer(moonDims), moonDims, stylesheet, view, blur),
			panes.NewRowsPane(renderer(positionDims), positionDims, stylesheet, view, blur, "Position",
				func(v control.View) []control.Row { return v.Position }),
			panes.NewRowsPane(renderer(timingDims), timingDims, stylesheet, view, blur, "Times",
				func(v control.View) []control.Row { return v.Timing }),
			panes.NewUpcomingPane(renderer(upcomingDims), upcomingDims, stylesheet, view, blur),
			panes.NewRowsPane(renderer(orbitalDims), orbitalDims, stylesheet, view, blur, "Orbit",
				func(v control.View) []control.Row { return v.Orbital }),
			panes.NewStatusPane(renderer(statusDims), statusDims, stylesheet, view,
				func() string { _, name := dashboard.State.Location(); return name }),
		},
		nil,
		processors.NewModalInputProcessor(input.EmptyTree()),
	)

	// picture popup
	pictureDims := ui.Centered(screenDims, 84, 26, 2)
	c.picturePane = panes.NewPicturePane(renderer(pictureDims), pictureDims, stylesheet, view, c.showPicture.Load)
	pictureInput, err := modalTree(map[input.Keyspec]action.Action{
		"j":      action.NewSimple(action.Static("scroll down"), c.picturePane.ScrollDown),
		"<down>": action.NewSimple(action.Static("scroll down"), c.picturePane.ScrollDown),
		"k":      action.NewSimple(action.Static("scroll up"), c.picturePane.ScrollUp),
		"<up>":   action.NewSimple(action.Static("scroll up"), c.picturePane.ScrollUp),
		"i":      action.NewSimple(action.Static("close picture info"), func() { c.showPicture.Store(false) }),
		"<esc>":  action.NewSimple(action.Static("close picture info"), func() { c.showPicture.Store(false) }),
	})
	if err != nil {
		return nil, err
	}
	c.picturePane.InputProcessor = pictureInput

	// log
	logDims := body
	logInput, err := modalTree(map[input.Keyspec]action.Action{
		"E":     action.NewSimple(action.Static("close log"), func() { c.showLog.Store(false) }),
		"<esc>": action.NewSimple(action.Static("close log"), func() { c.showLog.Store(false) }),
	})
	if err != nil {
		return nil, err
	}
	logPane := panes.NewLogPane(renderer(logDims), logDims, stylesheet, c.showLog.Load, logInput,
		func() string { return "LOG" }, memlog.Global)

	// help
	helpDims := ui.Centered(screenDims, 64, 18, 2)
	helpInput, err := modalTree(map[input.Keyspec]action.Action{
		"?":     action.NewSimple(action.Static("close help"), func() { c.showHelp.Store(false) }),
		"<esc>": action.NewSimple(action.Static("close help"), func() { c.showHelp.Store(false) }),
	})
	if err != nil {
		return nil, err
	}
	c.helpPane = panes.NewHelpPane(renderer(helpDims), helpDims, stylesheet, c.showHelp.Load, helpInput)

	// location prompt
	promptDims := ui.Centered(screenDims, 60, 3, 2)
	e := c.locationEditor
	promptProcessor, err := processors.NewTextInputProcessor(
		map[input.Keyspec]action.Action{
			"<cr>":    action.NewSimple(action.Static("search location"), c.submitLocation),
			"<esc>":   action.NewSimple(action.Static("cancel"), c.cancelLocation),
			"<c-c>":   action.NewSimple(action.Static("cancel"), c.cancelLocation),
			"<bs>":    action.NewSimple(action.Static("backspace"), e.BackspaceRune),
			"<c-bs>":  action.NewSimple(action.Static("backspace"), e.BackspaceRune),
			"<del>":   action.NewSimple(action.Static("delete"), e.DeleteRune),
			"<c-w>":   action.NewSimple(action.Static("backspace word"), e.BackspaceWord),
			"<c-u>":   action.NewSimple(action.Static("backspace to beginning"), e.BackspaceToBeginning),
			"<left>":  action.NewSimple(action.Static("move cursor left"), e.MoveCursorLeft),
			"<right>": action.NewSimple(action.Static("move cursor right"), e.MoveCursorRight),
			"<c-a>":   action.NewSimple(action.Static("move cursor to beginning"), e.MoveCursorToBeginning),
			"<c-e>":   action.NewSimple(action.Static("move cursor to end"), e.MoveCursorPastEnd),
		},
		e.AddRune,
	)
	if err != nil {
		return nil, err
	}
	promptPane := panes.NewPromptPane(renderer(promptDims), promptDims, stylesheet, c.showPrompt.Load,
		processors.NewModalInputProcessor(promptProcessor), e, "<cr> search, <esc> cancel", screenHandler)

	// alert
	alertDims := ui.Centered(screenDims, 60, 8, 2)
	alertInput, err := modalTree(map[input.Keyspec]action.Action{
		"<esc>": action.NewSimple(action.Static("dismiss"), func() { c.setAlert("") }),
		"<cr>":  action.NewSimple(action.Static("dismiss"), func() { c.setAlert("") }),
	})
	if err != nil {
		return nil, err
	}
	alertPane := panes.NewAlertPane(renderer(alertDims), alertDims, stylesheet,
		func() bool { return c.getAlert() != "" }, alertInput, c.getAlert)

	perfDims := ui.Top(screenDims, 2)
	perfPane := panes.NewPerfPane(renderer(perfDims), perfDims, c.showPerf.Load, &c.renderTimes, &c.eventProcessingTimes)

	registry := map[input.Actionspec]action.Action{
		"quit": action.NewSimple(action.Static("exit program"), func() {
			c.controllerEvents <- controllerEventExit
		}),
		"toggle-time-format": action.NewSimple(
			func() string { return dashboard.Settings().TimeFormat.ToggleLabel() },
			func() { dashboard.ToggleTimeFormat() },
		),
		"toggle-blur": action.NewSimple(action.Static("toggle blur"), func() { dashboard.ToggleBlur() }),
		"search-location": action.NewSimple(action.Static("set location"), func() {
			c.locationEditor.Clear()
			c.showPrompt.Store(true)
		}),
		"show-picture": action.NewSimple(action.Static("show picture info"), func() {
			c.picturePane.ResetScroll()
			c.showPicture.Store(true)
		}),
		"refresh":            action.NewSimple(action.Static("refresh picture and moon data"), c.refresh),
		"toggle-help":        action.NewSimple(action.Static("show help"), c.toggleHelp),
		"toggle-log":         action.NewSimple(action.Static("toggle log"), func() { c.showLog.Store(!c.showLog.Load()) }),
		"toggle-performance": action.NewSimple(action.Static("toggle performance info"), func() { c.showPerf.Store(!c.showPerf.Load()) }),
	}
	rootMappings, err := bindings.Resolve(registry)
	if err != nil {
		return nil, fmt.Errorf("invalid key bindings (%w)", err)
	}
	rootInput, err := modalTree(rootMappings)
	if err != nil {
		return nil, err
	}

	c.rootPane = panes.NewRootPane(
		screenHandler,
		screenDims,
		dashboardPane,
		[]ui.Pane{c.picturePane, logPane, c.helpPane, promptPane, alertPane},
		perfPane,
		rootInput,
	)
	return c, nil
}

func modalTree(mappings map[input.Keyspec]action.Action) (*processors.ModalInputProcessor, error) {
	tree, err := input.ConstructInputTree(mappings)
	if err != nil {
		return nil, fmt.Errorf("could not construct input tree (%w)", err)
	}
	return processors.NewModalInputProcessor(tree), nil
}

func (c *Controller) getAlert() string {
	c.alertMtx.Lock()
	defer c.alertMtx.Unlock()
	return c.alert
}

func (c *Controller) setAlert(message string) {
	c.alertMtx.Lock()
	c.alert = message
	c.alertMtx.Unlock()
}

func (c *Controller) toggleHelp() {
	if c.showHelp.Load() {
		c.showHelp.Store(false)
		return
	}
	help := c.rootPane.GetHelp()
	c.rootPane.DeferPreDraw(func() { c.helpPane.Content = help })
	c.showHelp.Store(true)
}

func (c *Controller) cancelLocation() {
	c.showPrompt.Store(false)
	c.locationEditor.Clear()
}

// submitLocation closes the prompt and looks up the entered place in the
// background. On failure an alert is shown and the previous location stays.
func (c *Controller) submitLocation() {
	query := c.locationEditor.GetContent()
	c.cancelLocation()
	c.inBackground(func(ctx context.Context) {
		if _, err := c.dashboard.SetLocation(ctx, query); err != nil {
			log.Error().Err(err).Str("query", query).Msg("could not set location")
			c.setAlert(err.Error())
		}
	})
}

func (c *Controller) refresh() {
	c.inBackground(func(ctx context.Context) {
		c.dashboard.RefreshPicture(ctx)
		if _, err := c.dashboard.Refresh(ctx); err != nil {
			log.Error().Err(err).Msg("could not refresh")
		}
	})
}

// inBackground runs f with a bounded context and renders once it is done.
func (c *Controller) inBackground(f func(ctx context.Context)) {
	go func() {
		ctx, cancel := context.WithTimeout(c.ctx, upstreamTimeout)
		defer cancel()
		f(ctx)
		c.render()
	}()
}

// render requests a render without ever blocking the caller.
func (c *Controller) render() {
	select {
	case c.controllerEvents <- controllerEventRender:
	default:
	}
}

type controllerEvent int

const (
	controllerEventExit controllerEvent = iota
	controllerEventRender
)

// Empties all render events from the channel.
// Returns true, if an exit event was encountered so the caller
// knows to exit.
func emptyRenderEvents(c chan controllerEvent) bool {
	for {
		select {
		case bufferedEvent := <-c:
			if bufferedEvent == controllerEventExit {
				return true
			}
		default:
			return false
		}
	}
}

// Run runs the TUI until the user exits.
func (c *Controller) Run() {
	log.Info().Msg("lunadash TUI started")
	defer c.cancel()

	var wg sync.WaitGroup

	// Run the main render loop, that renders or exits when prompted accordingly
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer c.screenHandler.Fini()
		for controllerEvent := range c.controllerEvents {
			switch controllerEvent {
			case controllerEventRender:
				start := time.Now()

				// empty all further render events before rendering
				if emptyRenderEvents(c.controllerEvents) {
					return
				}
				c.rootPane.Draw()

				c.renderTimes.Add(uint64(time.Since(start).Microseconds()))

			case controllerEventExit:
				return

			default:
				log.Error().Interface("event", controllerEvent).Msgf("unhandled controller event")
			}
		}
	}()

	// initial data; the panes show placeholders until it arrives
	c.inBackground(func(ctx context.Context) {
		if _, err := c.dashboard.Init(ctx); err != nil {
			log.Error().Err(err).Msg("could not initialize dashboard")
			c.setAlert(err.Error())
		}
	})

	// Run the ticker loop, re-rendering every second for the countdowns and
	// fetching the picture once a new one is scheduled.
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		schedule := newPictureSchedule(c.dashboard.Now)
		for {
			select {
			case <-c.ctx.Done():
				return
			case <-ticker.C:
				if schedule.due() {
					c.inBackground(func(ctx context.Context) { c.dashboard.RefreshPicture(ctx) })
				}
				c.render()
			}
		}
	}()

	// Run the event tracking loop, that waits for and processes events and pings
	// for a redraw (or program exit) after each event.
	go func() {
		for {
			ev := c.screenEvents.PollEvent()
			if ev == nil {
				return
			}

			start := time.Now()

			switch e := ev.(type) {
			case *tcell.EventKey:
				key := input.KeyFromTcellEvent(e)
				if !c.rootPane.ProcessInput(key) {
					log.Debug().Str("key", key.ToDebugString()).Msg("could not apply key input")
				}

			case *tcell.EventResize:
				c.syncer.NeedsSync()
			}

			c.eventProcessingTimes.Add(uint64(time.Since(start).Microseconds()))

			c.render()
		}
	}()

	c.render()
	wg.Wait()
}
