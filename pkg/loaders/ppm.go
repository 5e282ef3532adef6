package loaders

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strconv"
)

// ppmMaxValue is the only channel range the writer produces
const ppmMaxValue = 255

// WritePPM writes img as a plain-text P3 PPM: a header then one
// "r g b" line per pixel, left to right and top to bottom
func WritePPM(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	if _, err := fmt.Fprintf(w, "P3\n%d %d\n%d\n", bounds.Dx(), bounds.Dy(), ppmMaxValue); err != nil {
		return err
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if _, err := fmt.Fprintf(w, "%d %d %d\n", c.R, c.G, c.B); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadPPM parses a P3 PPM. Comments starting with '#' are ignored and
// channels are rescaled when the file's max value is not 255.
func ReadPPM(r io.Reader) (*image.RGBA, error) {
	tokens, err := ppmTokens(r)
	if err != nil {
		return nil, err
	}

	if len(tokens) < 4 {
		return nil, fmt.Errorf("ppm: truncated header")
	}
	if tokens[0] != "P3" {
		return nil, fmt.Errorf("ppm: unsupported magic %q", tokens[0])
	}

	header := make([]int, 3)
	for i := range header {
		header[i], err = strconv.Atoi(tokens[i+1])
		if err != nil {
			return nil, fmt.Errorf("ppm: header field %d: %w", i+1, err)
		}
	}
	width, height, maxValue := header[0], header[1], header[2]
	if width <= 0 || height <= 0 || maxValue <= 0 || maxValue > 65535 {
		return nil, fmt.Errorf("ppm: invalid header %dx%d max %d", width, height, maxValue)
	}
	if width > math.MaxInt32/height/3 {
		return nil, fmt.Errorf("ppm: image too large: %dx%d", width, height)
	}

	samples := tokens[4:]
	if len(samples) < width*height*3 {
		return nil, fmt.Errorf("ppm: expected %d samples, got %d", width*height*3, len(samples))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height*3; i++ {
		v, err := strconv.Atoi(samples[i])
		if err != nil {
			return nil, fmt.Errorf("ppm: sample %d: %w", i, err)
		}
		if v < 0 || v > maxValue {
			return nil, fmt.Errorf("ppm: sample %d out of range: %d", i, v)
		}
		// Pix holds RGBA, so skip every alpha slot
		img.Pix[i/3*4+i%3] = uint8(v * 255 / maxValue)
	}
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}

	return img, nil
}

// ppmTokens splits the stream into whitespace-separated fields, dropping comments
func ppmTokens(r io.Reader) ([]string, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if i := bytes.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for _, field := range bytes.Fields(line) {
			tokens = append(tokens, string(field))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ppm: %w", err)
	}
	return tokens, nil
}
