// Package compositor stamps a small icon onto the bottom-right corner of a
// base image. The icon is scaled relative to the base image height and kept
// at a proportional distance from the image edges, so the stamp looks
// consistent across image sizes.
package compositor

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Ratios between the base image height and the derived icon height and
// padding. A taller base image gets a proportionally taller icon and a wider
// margin to the edges.
const (
	// DefaultIconHeightRatio divides the base image height to obtain the
	// icon height.
	DefaultIconHeightRatio = 40

	// DefaultPaddingRatio divides the base image height to obtain the
	// padding between the icon and the image edges.
	DefaultPaddingRatio = 100
)

// Config holds the scaling ratios of the compositor.
type Config struct {
	// IconHeightRatio divides the base image height to derive the icon height.
	IconHeightRatio int

	// PaddingRatio divides the base image height to derive the edge padding.
	PaddingRatio int
}

// DefaultConfig returns the standard scaling ratios.
func DefaultConfig() Config {
	return Config{
		IconHeightRatio: DefaultIconHeightRatio,
		PaddingRatio:    DefaultPaddingRatio,
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.IconHeightRatio < 1 {
		return fmt.Errorf("icon height ratio must be positive, got %d", c.IconHeightRatio)
	}
	if c.PaddingRatio < 1 {
		return fmt.Errorf("padding ratio must be positive, got %d", c.PaddingRatio)
	}
	return nil
}

// Compositor places icons onto base images.
type Compositor struct {
	config Config
}

// New creates a Compositor with the default ratios.
func New() *Compositor {
	return &Compositor{config: DefaultConfig()}
}

// NewWithConfig creates a Compositor with custom ratios.
func NewWithConfig(config Config) *Compositor {
	return &Compositor{config: config}
}

// Stamp resizes the icon relative to the base image, positions it in the
// bottom-right corner and composites it over the base. The result has the
// same dimensions as the base image; the base image itself is not modified.
func (c *Compositor) Stamp(base *image.NRGBA, icon image.Image) (*image.NRGBA, error) {
	bounds := base.Bounds()
	resized, err := c.ResizeIcon(icon, bounds.Dy())
	if err != nil {
		return nil, err
	}
	pos := c.Position(bounds.Dx(), bounds.Dy(), resized.Bounds().Dx(), resized.Bounds().Dy())
	return c.Composite(base, resized, pos), nil
}

// Composite pastes the icon onto a transparent layer the size of the base
// image and alpha-composites that layer over the base. The icon's own alpha
// channel decides which base pixels show through. An icon placed partly or
// fully outside the base bounds is truncated at the image edges.
func (c *Compositor) Composite(base *image.NRGBA, icon image.Image, pos image.Point) *image.NRGBA {
	bounds := base.Bounds()
	layer := imaging.New(bounds.Dx(), bounds.Dy(), color.NRGBA{})
	layer = imaging.Paste(layer, icon, pos)
	return imaging.Overlay(base, layer, image.Pt(0, 0), 1.0)
}
