package loaders

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// Format names an image encoding the CLI can export to
type Format string

const (
	FormatPPM  Format = "ppm"
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
	FormatTGA  Format = "tga"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// Formats lists every supported format
var Formats = []Format{FormatPPM, FormatPNG, FormatWebP, FormatTGA, FormatBMP, FormatTIFF}

// ParseFormat accepts a format name or file extension, case-insensitively
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "."))
	switch name {
	case "tif":
		return FormatTIFF, nil
	case "":
		return "", fmt.Errorf("empty image format")
	}
	for _, format := range Formats {
		if string(format) == name {
			return format, nil
		}
	}
	return "", fmt.Errorf("unknown image format %q", name)
}

// ParseFormats parses a comma-separated list such as "png,webp"
func ParseFormats(list string) ([]Format, error) {
	var formats []Format
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		format, err := ParseFormat(name)
		if err != nil {
			return nil, err
		}
		formats = append(formats, format)
	}
	return formats, nil
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPPM:
		return WritePPM(w, img)
	case FormatPNG:
		return png.Encode(w, img)
	case FormatWebP:
		return nativewebp.Encode(w, img, nil)
	case FormatTGA:
		return tga.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unknown image format %q", format)
	}
}

// ExportPath swaps the extension of path for the format's
func ExportPath(path string, format Format) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + string(format)
}

// Export encodes img into a new file at path
func Export(img image.Image, path string, format Format) error {
	file, err := CreateOutput(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if err := Encode(writer, img, format); err != nil {
		return fmt.Errorf("encode %s as %s: %w", path, format, err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return file.Close()
}

// Thumbnail scales img down so its longer side is maxSize pixels.
// Images that already fit are copied unchanged.
func Thumbnail(img image.Image, maxSize int) *image.RGBA {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if maxSize <= 0 || (width <= maxSize && height <= maxSize) {
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.Copy(dst, image.Point{}, img, bounds, draw.Src, nil)
		return dst
	}

	if width >= height {
		height = max(1, height*maxSize/width)
		width = maxSize
	} else {
		width = max(1, width*maxSize/height)
		height = maxSize
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}
