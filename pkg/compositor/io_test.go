package compositor

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.png"))
	if err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestOpenDirectory(t *testing.T) {
	_, err := Open(t.TempDir())
	if err == nil {
		t.Fatal("Expected error for directory, got nil")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestOpenCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	if err := os.WriteFile(path, []byte("this is not an image"), 0644); err != nil {
		t.Fatalf("Writing fixture failed: %v", err)
	}

	_, err := Open(path)
	if err == nil {
		t.Fatal("Expected error for corrupt file, got nil")
	}
	if !errors.Is(err, ErrDecode) {
		t.Errorf("Expected ErrDecode, got %v", err)
	}
}

func TestOpenFormats(t *testing.T) {
	dir := t.TempDir()
	img := createTestImage(64, 48)

	for _, ext := range []string{"png", "jpg", "bmp", "gif", "tif"} {
		path := filepath.Join(dir, "sample."+ext)
		if err := imaging.Save(img, path); err != nil {
			t.Fatalf("Saving %s fixture failed: %v", ext, err)
		}

		loaded, err := Open(path)
		if err != nil {
			t.Fatalf("Open(%s) failed: %v", ext, err)
		}
		if loaded.Bounds().Dx() != 64 || loaded.Bounds().Dy() != 48 {
			t.Errorf("Open(%s): expected 64x48, got %dx%d",
				ext, loaded.Bounds().Dx(), loaded.Bounds().Dy())
		}

		// Every decode is normalized to an NRGBA buffer anchored at (0,0)
		if loaded.Bounds().Min != (image.Point{}) {
			t.Errorf("Open(%s): expected origin (0,0), got %v", ext, loaded.Bounds().Min)
		}
	}
}

func TestOpenWebP(t *testing.T) {
	dir := t.TempDir()
	img := createTestImage(40, 30)

	path := filepath.Join(dir, "sample.webp")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Creating fixture failed: %v", err)
	}
	if err := webp.Encode(f, img, &webp.Options{Lossless: true}); err != nil {
		f.Close()
		t.Fatalf("Encoding WebP fixture failed: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Closing fixture failed: %v", err)
	}

	loaded, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if loaded.Bounds().Dx() != 40 || loaded.Bounds().Dy() != 30 {
		t.Errorf("Expected 40x30, got %dx%d", loaded.Bounds().Dx(), loaded.Bounds().Dy())
	}

	// Lossless round trip keeps pixels exact
	if got, want := loaded.NRGBAAt(10, 20), img.NRGBAAt(10, 20); got != want {
		t.Errorf("Expected pixel %v at (10,20), got %v", want, got)
	}
}

func TestOpenPreservesAlpha(t *testing.T) {
	dir := t.TempDir()

	icon := createTestIcon(16, 16)
	path := filepath.Join(dir, "icon.png")
	if err := SavePNG(icon, path); err != nil {
		t.Fatalf("Saving fixture failed: %v", err)
	}

	loaded, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	// Border pixels stay fully transparent, core pixels fully opaque
	if alpha := loaded.NRGBAAt(0, 0).A; alpha != 0 {
		t.Errorf("Expected transparent border pixel, got alpha %d", alpha)
	}
	if alpha := loaded.NRGBAAt(8, 8).A; alpha != 255 {
		t.Errorf("Expected opaque core pixel, got alpha %d", alpha)
	}
}

func TestSavePNGIgnoresExtension(t *testing.T) {
	dir := t.TempDir()
	img := createTestImage(32, 24)

	// Even with a .jpg extension the file content must be PNG
	path := filepath.Join(dir, "out.jpg")
	if err := SavePNG(img, path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Opening output failed: %v", err)
	}
	defer f.Close()

	_, format, err := image.Decode(f)
	if err != nil {
		t.Fatalf("Decoding output failed: %v", err)
	}
	if format != "png" {
		t.Errorf("Expected png content, got %s", format)
	}
}

func TestSavePNGOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")

	if err := os.WriteFile(path, []byte("stale content"), 0644); err != nil {
		t.Fatalf("Writing fixture failed: %v", err)
	}

	img := createTestImage(32, 24)
	if err := SavePNG(img, path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	loaded, err := Open(path)
	if err != nil {
		t.Fatalf("Open after overwrite failed: %v", err)
	}
	if loaded.Bounds().Dx() != 32 || loaded.Bounds().Dy() != 24 {
		t.Errorf("Expected 32x24 after overwrite, got %dx%d",
			loaded.Bounds().Dx(), loaded.Bounds().Dy())
	}
}

func TestSavePNGMissingParent(t *testing.T) {
	dir := t.TempDir()
	img := createTestImage(16, 16)

	err := SavePNG(img, filepath.Join(dir, "missing", "out.png"))
	if err == nil {
		t.Fatal("Expected error for missing parent directory, got nil")
	}
	if !errors.Is(err, ErrWrite) {
		t.Errorf("Expected ErrWrite, got %v", err)
	}
}

func TestSavePNGRoundTrip(t *testing.T) {
	dir := t.TempDir()
	img := createTestImage(50, 40)

	path := filepath.Join(dir, "out.png")
	if err := SavePNG(img, path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	loaded, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if loaded.Bounds() != img.Bounds() {
		t.Errorf("Expected bounds %v, got %v", img.Bounds(), loaded.Bounds())
	}

	// PNG is lossless, pixels survive the round trip exactly
	for _, p := range []image.Point{{0, 0}, {25, 20}, {49, 39}} {
		if got, want := loaded.NRGBAAt(p.X, p.Y), img.NRGBAAt(p.X, p.Y); got != want {
			t.Errorf("Expected pixel %v at %v, got %v", want, p, got)
		}
	}
}
