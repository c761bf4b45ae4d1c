package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"life-heatmap/internal/app"
	"life-heatmap/internal/output"
	"life-heatmap/internal/render"
	"life-heatmap/internal/sim"
)

func main() {
	log.SetFlags(0)

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [width height] [depth] [flags]\nflags may appear before or after the positional arguments\n", os.Args[0])
		flag.PrintDefaults()
	}
	args, err := app.SplitArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if err := cfg.ApplyArgs(args); err != nil {
		log.Print(err)
		flag.Usage()
		os.Exit(2)
	}
	if len(args) == 0 {
		log.Print("No arguments passed. Using default values")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Printf("[FAILURE] %v", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *app.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.NeedsConfirmation() {
		if err := app.Confirm(os.Stdin, os.Stdout); err != nil {
			return err
		}
	}

	log.Printf("Using values width=%d height=%d depth=%d", cfg.Width, cfg.Height, cfg.Depth)
	for _, line := range cfg.Parameters().Lines() {
		log.Printf("  %s", line)
	}

	start := time.Now()
	res, err := sim.Run(ctx, cfg.SimConfig())
	if err != nil {
		return fmt.Errorf("simulation stopped: %w", err)
	}
	log.Printf("Max depth reached after %d generations (%s). Generating image...", res.Generations, time.Since(start).Round(time.Millisecond))
	params := cfg.Parameters()
	params.Groups = append(params.Groups, app.RunStats(res))
	for _, line := range params.Lines()[len(params.Groups)-1:] {
		log.Printf("  %s", line)
	}

	img := render.Upscale(render.Heatmap(res.Heat, cfg.Strength), cfg.Scale)
	path, err := output.WritePNG(cfg.OutDir, img, time.Now())
	if err != nil {
		return err
	}
	log.Printf("[SUCCESS] Image written to %q", path)

	if cfg.View {
		if err := app.Preview(img, params); err != nil {
			return fmt.Errorf("preview: %w", err)
		}
	}
	return nil
}
