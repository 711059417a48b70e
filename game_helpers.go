package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Steinstark/game-of-life/model"
	"github.com/Steinstark/game-of-life/sim"
	"github.com/Steinstark/game-of-life/utils"
)

// seedPattern builds the initial colony for the configured pattern name.
func seedPattern(config utils.Config) []model.Coord {
	cx, cy := config.Width/2, config.Height/2
	switch config.Pattern {
	case "block":
		return blockAt(cx, cy)
	case "blinker":
		return blinkerAt(cx, cy)
	case "glider":
		return gliderAt(2, 2)
	default:
		return explorerAt(cx, cy)
	}
}

// explorerAt is a seven-cell explorer colony:
//
//	 #
//	###
//	# #
//	 #
func explorerAt(x, y int) []model.Coord {
	return []model.Coord{
		{X: x, Y: y},
		{X: x - 1, Y: y + 1}, {X: x, Y: y + 1}, {X: x + 1, Y: y + 1},
		{X: x - 1, Y: y + 2}, {X: x + 1, Y: y + 2},
		{X: x, Y: y + 3},
	}
}

// blockAt is a 2x2 still life
func blockAt(x, y int) []model.Coord {
	return []model.Coord{
		{X: x, Y: y}, {X: x + 1, Y: y},
		{X: x, Y: y + 1}, {X: x + 1, Y: y + 1},
	}
}

// blinkerAt is a period-2 oscillator
func blinkerAt(x, y int) []model.Coord {
	return []model.Coord{
		{X: x, Y: y}, {X: x + 1, Y: y}, {X: x + 2, Y: y},
	}
}

// gliderAt travels diagonally until it hits the board wall
func gliderAt(x, y int) []model.Coord {
	return []model.Coord{
		{X: x + 1, Y: y},
		{X: x + 2, Y: y + 1},
		{X: x, Y: y + 2}, {X: x + 1, Y: y + 2}, {X: x + 2, Y: y + 2},
	}
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, engine *model.Engine) {
	fmt.Printf("Grid: %dx%d | Pattern: %s | Initial living cells: %d\n",
		engine.Width(), engine.Height(), config.Pattern, engine.Population())
	fmt.Printf("Tick interval: %v\n", config.TickInterval)
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

func printUsage() {
	fmt.Println("Commands:")
	fmt.Println("  start        - run the simulation (locks the board)")
	fmt.Println("  stop         - pause the simulation (unlocks the board)")
	fmt.Println("  toggle X Y   - flip a cell while paused")
	fmt.Println("  show         - redraw the board")
	fmt.Println("  quit         - exit")
}

// commandLoop reads user commands from stdin until quit, EOF, or ctx
// cancellation.
func commandLoop(
	ctx context.Context,
	quit context.CancelFunc,
	controller *sim.Controller,
	board *sim.Board,
	renderer *model.TerminalRenderer,
) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				quit()
				return nil
			}
			if done := handleCommand(line, controller, board, renderer); done {
				quit()
				return nil
			}
		}
	}
}

// handleCommand dispatches one command line and reports whether to exit.
func handleCommand(line string, controller *sim.Controller, board *sim.Board, renderer *model.TerminalRenderer) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "start":
		controller.Start()
		fmt.Println("Running (board locked)")
	case "stop":
		controller.Stop()
		fmt.Println("Paused (board unlocked for edits)")
	case "toggle":
		handleToggle(fields, board, renderer)
	case "show":
		cells := board.LiveCells()
		renderer.Clear()
		renderer.Display(board.Width(), board.Height(), cells)
		fmt.Printf("Generation: %d | Living: %d | Paused: %v\n",
			controller.Generation(), len(cells), controller.Paused())
	case "quit", "exit":
		return true
	default:
		printUsage()
	}
	return false
}

// handleToggle flips a single cell if the board allows it
func handleToggle(fields []string, board *sim.Board, renderer *model.TerminalRenderer) {
	if len(fields) != 3 {
		fmt.Println("Usage: toggle X Y")
		return
	}

	x, errX := strconv.Atoi(fields[1])
	y, errY := strconv.Atoi(fields[2])
	if errX != nil || errY != nil {
		fmt.Println("Usage: toggle X Y")
		return
	}

	if !board.Toggle(x, y) {
		fmt.Println("Edit rejected (board locked or cell out of bounds)")
		return
	}
	renderer.Clear()
	renderer.Display(board.Width(), board.Height(), board.LiveCells())
}
