// cmd/stackmat-replicator/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/tamzrod/stackmat-replicator/internal/capture"
	"github.com/tamzrod/stackmat-replicator/internal/config"
	"github.com/tamzrod/stackmat-replicator/internal/logging"
	"github.com/tamzrod/stackmat-replicator/internal/status"
	"github.com/tamzrod/stackmat-replicator/internal/timer"
	"github.com/tamzrod/stackmat-replicator/internal/writer"
)

func main() {
	cfgPath := pflag.StringP("config", "c", "", "Path to the YAML config file.")
	dryRun := pflag.BoolP("dry-run", "n", false, "Decode and log only; do not connect to any target.")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: stackmat-replicator [flags] [config.yaml]\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *cfgPath == "" && pflag.NArg() > 0 {
		*cfgPath = pflag.Arg(0)
	}
	if *cfgPath == "" {
		pflag.Usage()
		os.Exit(2)
	}

	if err := run(*cfgPath, *dryRun); err != nil {
		log.Fatal("stackmat-replicator stopped", "err", err)
	}
}

func run(cfgPath string, dryRun bool) error {
	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	config.Normalize(cfg)

	r := cfg.Replicator

	logger, closeLog, err := logging.New(r.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --------------------
	// Source + timer
	// --------------------

	src, err := capture.Build(r.Source)
	if err != nil {
		return fmt.Errorf("source build failed: %w", err)
	}
	defer src.Close()

	tm, err := timer.New(src.SampleRate())
	if err != nil {
		return fmt.Errorf("timer: %w", err)
	}

	logger.Info("source ready",
		"kind", r.Source.Kind,
		"sample_rate", src.SampleRate(),
		"ticks_per_bit", src.SampleRate()/1200,
	)

	// --------------------
	// Writer (status block per target)
	// --------------------

	var w writer.Writer = discardWriter{}
	if !dryRun {
		plan := writer.BuildPlan(r)

		clients, closeWriters, err := writer.BuildEndpointClients(plan)
		if err != nil {
			return fmt.Errorf("writer clients failed: %w", err)
		}
		defer closeWriters()

		w = writer.New(plan, clients)
		logger.Info("writer ready", "targets", len(plan.Targets))
	} else {
		logger.Warn("dry run: targets are not written")
	}

	// SIGUSR1 toggles the capture gate.
	toggle := make(chan os.Signal, 1)
	signal.Notify(toggle, syscall.SIGUSR1)
	defer signal.Stop(toggle)

	// --------------------
	// Source producer
	// --------------------

	out := make(chan capture.Buffer)
	srcErr := make(chan error, 1)
	go func() {
		srcErr <- src.Run(ctx, out)
		close(out)
	}()

	o := &orchestrator{timer: tm, writer: w, log: logger, snap: status.Initial()}
	o.publish("start")

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			<-srcErr
			return nil

		case <-toggle:
			o.toggle()

		case buf, ok := <-out:
			if !ok {
				err := <-srcErr
				if err == nil || errors.Is(err, context.Canceled) {
					logger.Info("source finished")
					return nil
				}
				return err
			}
			o.handle(buf)
		}
	}
}

// discardWriter is the dry-run writer.
type discardWriter struct{}

func (discardWriter) Write(status.Snapshot) error { return nil }
