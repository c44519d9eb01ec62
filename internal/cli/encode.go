package cli

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Image formats the build command can write.
const (
	formatPNG  = "png"
	formatBMP  = "bmp"
	formatTIFF = "tiff"
)

// resolveFormat returns the explicit format, or the one implied by the
// output file extension. PNG is the fallback.
func resolveFormat(format, out string) (string, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(out)) {
		case ".bmp":
			return formatBMP, nil
		case ".tif", ".tiff":
			return formatTIFF, nil
		default:
			return formatPNG, nil
		}
	}
	switch f := strings.ToLower(format); f {
	case formatPNG, formatBMP, formatTIFF:
		return f, nil
	case "tif":
		return formatTIFF, nil
	default:
		return "", fmt.Errorf("unknown image format %q (want png, bmp or tiff)", format)
	}
}

func encodeImage(w io.Writer, img image.Image, format string) error {
	switch format {
	case formatPNG:
		return png.Encode(w, img)
	case formatBMP:
		return bmp.Encode(w, img)
	case formatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unknown image format %q", format)
	}
}

// writeImage encodes img into the file at path, replacing it.
func writeImage(path string, img image.Image, format string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := encodeImage(f, img, format); err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return nil
}
