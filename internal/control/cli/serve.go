package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/ja-he/lunadash/internal/config"
	"github.com/ja-he/lunadash/internal/control"
	"github.com/ja-he/lunadash/internal/server"
)

// ServeCommand is the `serve` command, serving the dashboard over HTTP.
type ServeCommand struct {
	Address string        `short:"a" long:"address" description:"listen address (overrides the configuration)" value-name:"<host:port>"`
	Refresh time.Duration `short:"r" long:"refresh" default:"10m" description:"how often the lunar data is recomputed"`
}

// Execute runs the serve command until interrupted.
func (command *ServeCommand) Execute(args []string) error {
	env, err := setUp(config.Dark, true)
	if err != nil {
		return err
	}
	defer env.Close()

	addr := env.Config.Server.Address
	if command.Address != "" {
		addr = command.Address
	}

	srv, err := server.New(env.Dashboard, server.Options{AllowOrigins: env.Config.Server.AllowOrigins})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx, addr)
	})
	g.Go(func() error {
		keepUpdated(gctx, env.Dashboard, command.Refresh, time.Minute)
		return nil
	})
	return g.Wait()
}

// keepUpdated initializes the dashboard, then recomputes it every interval
// and fetches the picture once a new one is scheduled, checking every
// pictureCheck, until the context is done.
func keepUpdated(ctx context.Context, d *control.Dashboard, interval, pictureCheck time.Duration) {
	if _, err := d.Init(ctx); err != nil {
		log.Error().Err(err).Msg("could not initialize dashboard")
	}
	if interval <= 0 {
		interval = 10 * time.Minute
	}

	refresh := time.NewTicker(interval)
	defer refresh.Stop()
	check := time.NewTicker(pictureCheck)
	defer check.Stop()
	schedule := newPictureSchedule(d.Now)

	for {
		select {
		case <-ctx.Done():
			return
		case <-refresh.C:
			if _, err := d.Refresh(ctx); err != nil {
				log.Error().Err(err).Msg("could not refresh dashboard")
			}
		case <-check.C:
			if schedule.due() {
				d.RefreshPicture(ctx)
			}
		}
	}
}
