package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/smilemakc/reactive"
)

func main() {
	var (
		logLevel = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	)
	flag.Parse()

	log := reactive.Setup(*logLevel)
	log.Info().Msg("starting reactive demo")

	e := reactive.NewEngine(reactive.Config{LogLevel: *logLevel, AllowCapture: true})

	a := reactive.Var(e, "a", 1)
	b := reactive.Var(e, "b", 3.14)
	s, err := reactive.CalcArgs(e, "s", []reactive.Dep{a, b}, func() (string, error) {
		return fmt.Sprintf("%d%f", a.Get(), b.Get()), nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to build s")
		os.Exit(1)
	}
	t, err := reactive.CalcArgs(e, "t", []reactive.Dep{a, s}, func() (string, error) {
		return fmt.Sprintf("%d%s", a.Get(), s.Get()), nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to build t")
		os.Exit(1)
	}

	fmt.Printf("s=%q t=%q\n", s.Get(), t.Get())

	if err := a.Set(2); err != nil {
		log.Error().Err(err).Msg("failed to write a")
		os.Exit(1)
	}
	fmt.Printf("after a<-2: s=%q t=%q\n", s.Get(), t.Get())

	stats := e.Stats()
	log.Info().Int("nodes", stats.NodeCount).Int("edges", stats.EdgeCount).Uint64("pulses", stats.PulseCount).Msg("engine stats")
}
