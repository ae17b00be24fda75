// Package iconstamp composites a small icon onto the bottom-right corner of
// a base image.
//
// The icon is scaled relative to the base image height so the stamp looks
// consistent across image sizes: the icon height is the base height divided
// by 40 and the margin kept to the image edges is the base height divided by
// 100. Results are always written as PNG to preserve transparency.
//
// Basic usage:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		"github.com/aldersen/iconstamp"
//	)
//
//	func main() {
//		stamper := iconstamp.New()
//
//		// Stamp a single icon. The output path is derived from the base
//		// image path: photo.jpg becomes photo_with_icon_red.jpg.
//		out, err := stamper.Stamp("photo.jpg", "red.png", "")
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println("wrote", out)
//
//		// Stamp every icon in icon/png, one output file per icon.
//		outcomes, err := stamper.StampAll("photo.jpg")
//		if err != nil {
//			log.Fatal(err)
//		}
//		for _, outcome := range outcomes {
//			if outcome.Err != nil {
//				fmt.Printf("icon %s failed: %v\n", outcome.Icon, outcome.Err)
//				continue
//			}
//			fmt.Println("wrote", outcome.Output)
//		}
//	}
//
// The package consists of two main components:
//
// 1. Compositor (pkg/compositor): Image loading, resizing, positioning,
// compositing and saving
// 2. Icon directory (internal/icons): The fixed icon/png convention and its
// enumeration
//
// Features:
//
//   - Icon size and padding derived from the base image height
//   - Bottom-right placement with proportional padding
//   - Batch mode that applies every icon in the icon directory
//   - Per-icon error reporting that never aborts the remaining icons
//   - JPEG, PNG, GIF, BMP, TIFF and WebP base images, PNG icons
//   - CLI tool for single and batch stamping
//
// Icons are read from the icon/png subdirectory of the working directory.
// Base images are composited in straight-alpha NRGBA, so transparent icon
// regions let the base image show through unchanged.
package iconstamp

import (
	"fmt"

	"github.com/aldersen/iconstamp/internal/icons"
	"github.com/aldersen/iconstamp/pkg/compositor"
)

// Version of the iconstamp library
const Version = "1.0.0"

// Stamper provides a high-level interface for stamping icons onto images.
type Stamper struct {
	compositor *compositor.Compositor
	iconDir    string
}

// New creates a new Stamper with the default ratios and icon directory.
func New() *Stamper {
	return &Stamper{
		compositor: compositor.New(),
		iconDir:    icons.DefaultDir,
	}
}

// NewWithConfig creates a new Stamper with custom ratios and a custom icon
// directory.
func NewWithConfig(config compositor.Config, iconDir string) *Stamper {
	return &Stamper{
		compositor: compositor.NewWithConfig(config),
		iconDir:    iconDir,
	}
}

// Outcome reports the result of stamping one icon onto a base image.
type Outcome struct {
	// Icon is the file name of the icon that was applied.
	Icon string

	// Output is the path of the written file, empty when Err is set.
	Output string

	// Err is the failure that prevented this icon from being applied.
	Err error
}

// Stamp composites the named icon onto the image at basePath and writes the
// result. When outputPath is empty the output name is derived from the base
// image path and the icon name. The path of the written file is returned.
func (s *Stamper) Stamp(basePath, iconName, outputPath string) (string, error) {
	base, err := compositor.Open(basePath)
	if err != nil {
		return "", fmt.Errorf("base image: %w", err)
	}

	icon, err := compositor.Open(icons.Resolve(s.iconDir, iconName))
	if err != nil {
		return "", fmt.Errorf("icon %s: %w", iconName, err)
	}

	stamped, err := s.compositor.Stamp(base, icon)
	if err != nil {
		return "", err
	}

	if outputPath == "" {
		outputPath = compositor.OutputPath(basePath, iconName)
	}
	if err := compositor.SavePNG(stamped, outputPath); err != nil {
		return "", err
	}
	return outputPath, nil
}

// StampAll composites every icon in the icon directory onto the image at
// basePath, writing one output file per icon to its derived path. Icons are
// applied in directory order; a failing icon is recorded in its Outcome and
// the remaining icons are still processed. The returned error is non-nil
// only when no icon could be attempted at all: compositor.ErrNotFound for a
// missing icon directory, icons.ErrNoIcons for a directory without icons.
func (s *Stamper) StampAll(basePath string) ([]Outcome, error) {
	names, err := icons.List(s.iconDir)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s", icons.ErrNoIcons, s.iconDir)
	}

	outcomes := make([]Outcome, 0, len(names))
	for _, name := range names {
		output, err := s.Stamp(basePath, name, "")
		if err != nil {
			outcomes = append(outcomes, Outcome{Icon: name, Err: err})
			continue
		}
		outcomes = append(outcomes, Outcome{Icon: name, Output: output})
	}
	return outcomes, nil
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
