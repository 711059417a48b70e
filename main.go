package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/Steinstark/game-of-life/model"
	"github.com/Steinstark/game-of-life/sim"
	"github.com/Steinstark/game-of-life/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	seed := seedPattern(config)
	engine, err := model.New(config.Width, config.Height, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid board configuration: %v\n", err)
		os.Exit(1)
	}

	var (
		board    = sim.NewBoard(config.Width, config.Height, seed)
		renderer = &model.TerminalRenderer{}
		stats    = utils.NewStats()
	)

	board.OnPush = func(cells []model.Coord) {
		renderer.Clear()
		renderer.Display(config.Width, config.Height, cells)
	}

	controller := sim.NewController(engine, board, config.TickInterval)
	controller.OnTick = func(generation, population int, took time.Duration) {
		stats.Update(generation, population, took)
	}

	displayGameInfo(config, engine)
	renderer.Display(config.Width, config.Height, seed)

	// Handle Ctrl+C gracefully
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return controller.Run(ctx)
	})
	if config.Interactive {
		printUsage()
		g.Go(func() error {
			return commandLoop(ctx, cancel, controller, board, renderer)
		})
	} else {
		g.Go(func() error {
			return runHeadless(ctx, cancel, controller, config.TickInterval)
		})
	}

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Simulation error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nFinal stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, time.Since(stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}

// runHeadless starts the simulation immediately and exits once the
// controller pauses itself at a fixed point.
func runHeadless(ctx context.Context, quit context.CancelFunc, controller *sim.Controller, interval time.Duration) error {
	controller.Start()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if controller.Paused() {
				fmt.Printf("Board stable after generation %d\n", controller.Generation())
				quit()
				return nil
			}
		}
	}
}
