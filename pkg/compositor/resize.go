package compositor

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ResizeIcon scales the icon so its height is the base image height divided
// by the configured ratio, preserving the icon's aspect ratio. The height is
// truncated to an integer first and the width is derived from that truncated
// height, so both dimensions are exact integers. Resampling uses the Lanczos
// filter.
func (c *Compositor) ResizeIcon(icon image.Image, baseHeight int) (*image.NRGBA, error) {
	if baseHeight <= 0 {
		return nil, fmt.Errorf("%w: base height %d", ErrInvalidDimension, baseHeight)
	}
	bounds := icon.Bounds()
	iconWidth, iconHeight := bounds.Dx(), bounds.Dy()
	if iconWidth <= 0 || iconHeight <= 0 {
		return nil, fmt.Errorf("%w: icon size %dx%d", ErrInvalidDimension, iconWidth, iconHeight)
	}

	height := baseHeight / c.config.IconHeightRatio
	if height <= 0 {
		return nil, fmt.Errorf("%w: base height %d yields icon height %d", ErrInvalidDimension, baseHeight, height)
	}
	width := int(float64(height) * float64(iconWidth) / float64(iconHeight))
	if width <= 0 {
		return nil, fmt.Errorf("%w: base height %d yields icon width %d", ErrInvalidDimension, baseHeight, width)
	}

	return imaging.Resize(icon, width, height, imaging.Lanczos), nil
}
