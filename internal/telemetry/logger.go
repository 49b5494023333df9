package telemetry

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logging - structured logging for the CLI edge only
//
// pkg/memory never imports this package and never writes a line of output
// itself (spec §7: "no logging" is a property of the core library). Every
// zerolog call in this repo originates from cmd/cyclicdemo or here, at the
// boundary where an operator actually wants to see what a scenario run did.

// NewLogger returns a zerolog.Logger writing human-readable console output
// to w, tagged with component so multi-command output stays attributable.
func NewLogger(w io.Writer, component string) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	return zerolog.New(console).With().Timestamp().Str("component", component).Logger()
}

// NewStderrLogger is the default logger cmd/cyclicdemo wires into cobra
// commands that don't need to capture output for testing.
func NewStderrLogger(component string) zerolog.Logger {
	return NewLogger(os.Stderr, component)
}

// Reclaimer returns a demo.Reporter-shaped func that logs one Debug event
// per payload a scenario run or collection actually destroys. Kept generic
// over the reported name type (string) rather than importing internal/demo,
// so telemetry has no dependency on the scenario graph shape.
func Reclaimer(log zerolog.Logger) func(name string) {
	return func(name string) {
		log.Debug().Str("node", name).Msg("payload reclaimed")
	}
}
