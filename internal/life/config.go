package life

import "strconv"

// Config holds the construction parameters of a Grid.
type Config struct {
	// CellCount is the number of rows and of columns.
	CellCount int
	// GridSize is the pixel extent of the square drawing, border included.
	GridSize float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{CellCount: 100, GridSize: 900}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["cells"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellCount = parsed
		}
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 2*BorderWidth {
			c.GridSize = parsed
		}
	}
	return c
}
