package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"hextex/internal/grid"
	"hextex/internal/source"
	"hextex/internal/viewer"
)

func main() {
	verbose := flag.Bool("v", false, "verbose logging")
	width := flag.Int("w", 1, "display width (1, 2, 4 or 8 bytes per value)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: hextex [-v] [-w 1|2|4|8] FILE")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if !grid.ValidWidth(*width) {
		fmt.Fprintf(os.Stderr, "invalid display width %d: must be 1, 2, 4 or 8\n", *width)
		os.Exit(2)
	}

	logger := newLogger(*verbose)

	src, err := source.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info().Str("path", src.Path()).Int64("size", src.Size()).Msg("file loaded")

	model, err := viewer.NewModel(src, *width, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("program failed")
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes to a log file rather than stdout so log lines never
// corrupt the alternate screen.
func newLogger(verbose bool) zerolog.Logger {
	f, err := os.OpenFile("hextex.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Nop()
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(f).Level(level).With().Timestamp().Logger()
}
