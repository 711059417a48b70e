package model

import (
	"fmt"
	"os"
	"os/exec"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct{}

// Display renders a live-cell snapshot as a width x height board
func (r *TerminalRenderer) Display(width, height int, cells []Coord) {
	live := make(map[Coord]struct{}, len(cells))
	for _, c := range cells {
		live[c] = struct{}{}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if _, ok := live[Coord{X: x, Y: y}]; ok {
				fmt.Print(gridPosBlock)
			} else {
				fmt.Print(gridPosEmpty)
			}
		}
		fmt.Println()
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
