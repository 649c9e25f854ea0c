package output

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// JPEGQuality is used whenever a render is written as JPEG
const JPEGQuality = 95

// Save writes img to path, picking the format from the extension and creating parent directories
func Save(img image.Image, path string) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("cannot save %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// Encode writes img to w in the format implied by the extension of path
func Encode(w io.Writer, img image.Image, path string) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return fmt.Errorf("cannot encode %s: %w", path, err)
	}
	return imaging.Encode(w, img, format, imaging.JPEGQuality(JPEGQuality))
}

// EncodePNG writes img to w as PNG
func EncodePNG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}

// ContentType returns the MIME type for the image format implied by path
func ContentType(path string) string {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return "application/octet-stream"
	}
	switch format {
	case imaging.JPEG:
		return "image/jpeg"
	case imaging.GIF:
		return "image/gif"
	case imaging.BMP:
		return "image/bmp"
	case imaging.TIFF:
		return "image/tiff"
	default:
		return "image/png"
	}
}

// Thumbnail shrinks img to at most maxWidth pixels wide, keeping its aspect ratio.
// Images already narrower than maxWidth are returned unscaled.
func Thumbnail(img image.Image, maxWidth int) image.Image {
	return resize.Thumbnail(uint(maxWidth), uint(img.Bounds().Dy()), img, resize.Bilinear)
}

// ThumbnailPath returns the path a thumbnail of path is written to: "out/img.png" -> "out/img_thumb.png"
func ThumbnailPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_thumb" + ext
}
