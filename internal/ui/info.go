package ui

import "fmt"

// StatusInfo is the board summary shown on the status line.
type StatusInfo struct {
	Generation int
	Population int
	Running    bool
	Name       string
}

// Left returns the counters shown on the left of the status line.
func (i StatusInfo) Left() string {
	return fmt.Sprintf("Generations: %d  Population: %d", i.Generation, i.Population)
}

// Right returns the run state and pattern name.
func (i StatusInfo) Right() string {
	state := "paused"
	if i.Running {
		state = "running"
	}
	if i.Name == "" {
		return state
	}
	return fmt.Sprintf("%s  %s", i.Name, state)
}
