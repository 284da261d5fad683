// Command spinny draws a rotating wireframe polyhedron in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"spinny/anim"
	"spinny/shapes"
	"spinny/solid"
	"spinny/term"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("spinny: ")

	cfg := anim.DefaultConfig()
	var (
		objPath string
		screen  bool
	)
	flag.Float64Var(&cfg.ThetaX, "x", cfg.ThetaX, "Rotation around the X axis per frame, in radians.")
	flag.Float64Var(&cfg.ThetaY, "y", cfg.ThetaY, "Rotation around the Y axis per frame, in radians.")
	flag.Float64Var(&cfg.ThetaZ, "z", cfg.ThetaZ, "Rotation around the Z axis per frame, in radians.")
	flag.DurationVar(&cfg.Delay, "delay", cfg.Delay, "Pause between frames.")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Canvas width in columns.")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Canvas height in rows.")
	flag.Float64Var(&cfg.Scale, "scale", cfg.Scale, "Object units to canvas rows.")
	flag.Var(&cfg.Policy, "shading", "Edge glyphs: solid|shaded.")
	flag.IntVar(&cfg.Frames, "frames", 0, "Stop after N frames (0 = run forever).")
	flag.StringVar(&objPath, "obj", "", "Draw the faces of a Wavefront OBJ file instead of a built-in shape.")
	flag.BoolVar(&screen, "screen", false, "Draw on a full-screen terminal (quit with q or Esc).")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() > 1 {
		usage()
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalln(err)
	}

	s, err := loadSolid(flag.Arg(0), objPath)
	if err != nil {
		log.Fatalln(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if screen {
		err = runScreen(ctx, s, cfg)
	} else {
		err = runANSI(ctx, s, cfg)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		stop()
		log.Fatalln(err)
	}
}

func loadSolid(name, objPath string) (solid.Solid, error) {
	if objPath != "" {
		if name != "" {
			return solid.Solid{}, fmt.Errorf("both shape %q and -obj given", name)
		}
		return shapes.LoadOBJ(objPath)
	}
	if name == "" {
		name = "cube"
	}
	return shapes.Lookup(name)
}

func runANSI(ctx context.Context, s solid.Solid, cfg anim.Config) error {
	sink := term.NewANSI(os.Stdout)
	err := anim.Run(ctx, s, cfg, sink)
	if rerr := sink.Release(cfg.Height); err == nil {
		err = rerr
	}
	return err
}

func runScreen(ctx context.Context, s solid.Solid, cfg anim.Config) error {
	sc, err := term.OpenScreen()
	if err != nil {
		return err
	}
	defer sc.Close()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go sc.WatchKeys(cancel)
	return anim.Run(ctx, s, cfg, sc)
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "usage: spinny [flags] [shape]\n\nshapes: %s (default cube)\n\nflags:\n", strings.Join(shapes.Names(), ", "))
	flag.PrintDefaults()
}
