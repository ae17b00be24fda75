package compositor

import "image"

// Padding returns the margin kept between the icon and the image edges,
// derived from the base image height.
func (c *Compositor) Padding(baseHeight int) int {
	return baseHeight / c.config.PaddingRatio
}

// Position returns the top-left coordinate that places an icon of the given
// size in the bottom-right corner of the base image. The result is not
// clamped: an icon larger than the available space yields negative
// coordinates and gets truncated at the image edges during compositing.
func (c *Compositor) Position(baseWidth, baseHeight, iconWidth, iconHeight int) image.Point {
	padding := c.Padding(baseHeight)
	return image.Pt(baseWidth-iconWidth-padding, baseHeight-iconHeight-padding)
}
