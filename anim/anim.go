// Package anim runs the rotate, render, draw, pause cycle that animates a
// solid.
package anim

import (
	"context"
	"errors"
	"fmt"
	"time"

	"spinny/raster"
	"spinny/solid"
)

// Sink receives rendered frames.
type Sink interface {
	// Draw writes the rows of one frame, top row first.
	Draw(rows []string) error
	// Rewind prepares the sink so that the next Draw overwrites the last
	// rows rows in place.
	Rewind(rows int) error
}

// Config holds the per-frame parameters of the animation.
type Config struct {
	// ThetaX, ThetaY and ThetaZ are the rotation applied every frame, in
	// radians.
	ThetaX, ThetaY, ThetaZ float64
	// Delay is the pause after each frame.
	Delay time.Duration

	Width, Height int
	Scale         float64
	Policy        raster.Policy

	// Frames stops the animation after that many frames. Zero runs until
	// the context is cancelled.
	Frames int
}

// DefaultConfig returns the configuration of the stock cube demo.
func DefaultConfig() Config {
	return Config{
		ThetaX: 0.02,
		ThetaY: 0.025,
		ThetaZ: 0.012,
		Delay:  42 * time.Millisecond,
		Width:  50,
		Height: 25,
		Scale:  0.06,
		Policy: raster.Solid,
	}
}

// Validate reports the first invalid field of cfg.
func (cfg Config) Validate() error {
	switch {
	case cfg.Width <= 0 || cfg.Height <= 0:
		return fmt.Errorf("invalid canvas size %dx%d", cfg.Width, cfg.Height)
	case !(cfg.Scale > 0):
		return fmt.Errorf("invalid scale %v: must be positive", cfg.Scale)
	case cfg.Delay < 0:
		return fmt.Errorf("invalid delay %v", cfg.Delay)
	case cfg.Frames < 0:
		return fmt.Errorf("invalid frame count %d", cfg.Frames)
	}
	return nil
}

var errNilSink = errors.New("anim: nil sink")

// Run animates s on sink. Every frame rotates s in place, renders it, hands
// the rows to sink, rewinds sink and then sleeps for cfg.Delay.
//
// Run returns nil once cfg.Frames frames have been drawn, ctx.Err() when ctx
// is cancelled and the sink's error if drawing fails.
func Run(ctx context.Context, s solid.Solid, cfg Config, sink Sink) error {
	if sink == nil {
		return errNilSink
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	var timer *time.Timer
	if cfg.Delay > 0 {
		timer = time.NewTimer(cfg.Delay)
		timer.Stop()
		defer timer.Stop()
	}

	for frame := 0; cfg.Frames == 0 || frame < cfg.Frames; frame++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		solid.Rotate(s, cfg.ThetaX, cfg.ThetaY, cfg.ThetaZ)
		canvas := raster.Render(s, cfg.Width, cfg.Height, cfg.Scale, cfg.Policy)
		if err := sink.Draw(canvas.Rows()); err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}
		if err := sink.Rewind(cfg.Height); err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}

		if timer == nil {
			continue
		}
		timer.Reset(cfg.Delay)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	return nil
}
