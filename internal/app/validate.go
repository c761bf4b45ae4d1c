package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"life-heatmap/internal/core"
)

const (
	// MinDimension is the smallest accepted width or height.
	MinDimension = 5
	// MaxDepth is the largest accepted number of generations after the seed.
	MaxDepth = 255

	// ConfirmPixels is the 3840x2160 area at which a run needs confirmation.
	ConfirmPixels int64 = 3840 * 2160
	// MaxPixels is the 7680x4320 area above which a run is refused.
	MaxPixels int64 = 7680 * 4320
)

var (
	// ErrTooLarge rejects images above MaxPixels.
	ErrTooLarge = errors.New("dimensions exceed the 8K pixel limit")
	// ErrTooSmall rejects a width or height below MinDimension.
	ErrTooSmall = errors.New("dimensions must be at least 5 pixels")
	// ErrDepthRange rejects a depth outside [0, MaxDepth].
	ErrDepthRange = errors.New("depth must be within 0-255")
	// ErrDeclined is returned when the large-image prompt is not accepted.
	ErrDeclined = errors.New("run declined")
	// ErrNoGUI rejects -view in builds without the ebiten tag.
	ErrNoGUI = errors.New("preview requires building with the 'ebiten' tag")
)

// NeedsConfirmation reports whether the image is large enough to ask first.
func (c *Config) NeedsConfirmation() bool {
	return c.size().Area() >= ConfirmPixels && !c.Yes
}

// Validate checks dimensions, depth and output options.
func (c *Config) Validate() error {
	if area := c.size().Area(); area > MaxPixels {
		return fmt.Errorf("%w: %dx%d is %d pixels", ErrTooLarge, c.Width, c.Height, area)
	}
	if c.Width < MinDimension || c.Height < MinDimension {
		return fmt.Errorf("%w: got %dx%d", ErrTooSmall, c.Width, c.Height)
	}
	if c.Depth < 0 || c.Depth > MaxDepth {
		return fmt.Errorf("%w: got %d", ErrDepthRange, c.Depth)
	}
	if c.Strength < 1 {
		return fmt.Errorf("%w: strength must be positive, got %d", ErrUsage, c.Strength)
	}
	if c.Scale < 1 {
		return fmt.Errorf("%w: scale must be positive, got %d", ErrUsage, c.Scale)
	}
	if scale := int64(c.Scale); scale > MaxPixels || c.size().Area()*scale > MaxPixels/scale {
		return fmt.Errorf("%w: scale %d makes the image larger than %d pixels", ErrTooLarge, c.Scale, MaxPixels)
	}
	if c.OutDir == "" {
		return fmt.Errorf("%w: output directory must not be empty", ErrUsage)
	}
	if c.View && !GUIAvailable {
		return ErrNoGUI
	}
	return nil
}

// Confirm asks whether to continue with a large run. Only answers starting
// with "y" (any case) accept; an empty line or end of input declines.
func Confirm(in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "The dimensions entered are equal to or larger than 4K. This may use lots of CPU and time.")
	fmt.Fprint(out, "Continue? [y/N] ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read confirmation: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	if strings.HasPrefix(answer, "y") {
		return nil
	}
	return ErrDeclined
}

func (c *Config) size() core.Size { return core.Size{W: c.Width, H: c.Height} }
