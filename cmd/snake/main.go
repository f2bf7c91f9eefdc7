package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"snake/internal/app"
	"snake/internal/domain"
	"snake/internal/ui/graphics"
	"snake/internal/ui/terminal"
	"snake/internal/ui/types"

	"github.com/atotto/clipboard"
	"golang.org/x/sync/errgroup"
)

type options struct {
	ui      string
	logFile string
	config  *domain.GameConfig
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)

	opts := &options{config: domain.DefaultGameConfig()}
	fs.StringVar(&opts.ui, "ui", "window", "frontend: window or term")
	fs.StringVar(&opts.logFile, "log", "", "write logs to this file (term mode discards logs otherwise)")
	fs.IntVar(&opts.config.BoardWidth, "width", domain.DefaultBoardWidth, "board width in pixels")
	fs.IntVar(&opts.config.BoardHeight, "height", domain.DefaultBoardHeight, "board height in pixels")
	fs.DurationVar(&opts.config.TickInterval, "tick", domain.DefaultTickInterval, "time between ticks")
	fs.Int64Var(&opts.config.Seed, "seed", 0, "food placement seed, 0 for random")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.ui != "window" && opts.ui != "term" {
		return nil, fmt.Errorf("unsupported ui %q (supported: window, term)", opts.ui)
	}
	if err := opts.config.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("Bad arguments: %v", err)
	}

	application, err := app.NewFromConfig(opts.config)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	switch opts.ui {
	case "term":
		err = runTerminal(ctx, application, opts.logFile)
	default:
		err = runWindow(ctx, application, opts.config)
	}

	application.Stop()

	if err != nil {
		log.Fatalf("UI error: %v", err)
	}
}

func runWindow(ctx context.Context, application *app.App, config *domain.GameConfig) error {
	if err := application.Start(ctx); err != nil {
		return fmt.Errorf("start app: %w", err)
	}

	engine := graphics.NewEngine(config.Field(), config.TileSize, application.GetState())

	pumpCtx, stopPumps := context.WithCancel(ctx)
	defer stopPumps()

	g, gctx := errgroup.WithContext(pumpCtx)
	g.Go(func() error {
		handleAppEvents(gctx, application, engine)
		return nil
	})
	g.Go(func() error {
		handleUIEvents(gctx, application, engine)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		engine.Close()
		return nil
	})

	// ebiten owns the main goroutine until the window closes.
	runErr := engine.Run()

	stopPumps()
	if err := g.Wait(); err != nil {
		return err
	}
	return runErr
}

func runTerminal(ctx context.Context, application *app.App, logFile string) error {
	restore, err := redirectLog(logFile)
	if err != nil {
		return err
	}
	defer restore()

	screen, err := terminal.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	g, gctx := errgroup.WithContext(ctx)
	if err := application.Start(gctx); err != nil {
		return fmt.Errorf("start app: %w", err)
	}

	g.Go(func() error {
		return terminal.New(screen).Run(gctx, application)
	})

	return g.Wait()
}

func handleAppEvents(ctx context.Context, application *app.App, engine *graphics.Engine) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-application.Events():
			switch event.Type {
			case app.AppEventStateUpdated:
				if snap, ok := event.Payload.(domain.Snapshot); ok {
					engine.SetState(snap)
				}

			case app.AppEventGameOver:
				engine.SetState(application.GetState())
				if payload, ok := event.Payload.(app.GameOverPayload); ok {
					log.Printf("Game over: score %d after %d ticks", payload.Score, payload.Ticks)
				}
			}
		}
	}
}

func handleUIEvents(ctx context.Context, application *app.App, engine *graphics.Engine) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-engine.Events():
			switch event.Type {
			case types.UIEventSteer:
				data := event.Payload.(types.SteerData)
				application.SendSteer(data.Direction)

			case types.UIEventCopyStatus:
				data := event.Payload.(types.CopyStatusData)
				if err := clipboard.WriteAll(data.Status); err != nil {
					log.Printf("Failed to copy score: %v", err)
				} else {
					log.Printf("Copied %q to clipboard", data.Status)
				}

			case types.UIEventQuit:
				log.Println("Shutting down...")
				return
			}
		}
	}
}

func redirectLog(path string) (func(), error) {
	prev := log.Writer()
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(prev) }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(prev)
		f.Close()
	}, nil
}
