package compositor

import (
	"fmt"
	"image"
	"os"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	// Register the WebP decoder with the standard image registry.
	_ "golang.org/x/image/webp"
)

// Open loads the image at path and normalizes it to a straight-alpha 8-bit
// NRGBA buffer with its origin at (0, 0). JPEG, PNG, GIF, BMP, TIFF and WebP
// files are supported; WebP files the standard registry rejects get a second
// chance with the chai2010 decoder.
func Open(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}

	img, err := imaging.Decode(f)
	if err != nil {
		if _, serr := f.Seek(0, 0); serr == nil {
			if wimg, werr := webp.Decode(f); werr == nil {
				return imaging.Clone(wimg), nil
			}
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return imaging.Clone(img), nil
}

// SavePNG writes the image to path in PNG format regardless of the path's
// extension, overwriting any existing file. Parent directories are not
// created; a missing parent is a write failure.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := imaging.Encode(f, img, imaging.PNG); err != nil {
		f.Close()
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	return nil
}
