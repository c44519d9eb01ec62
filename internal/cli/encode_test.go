package cli

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		format, out string
		want        string
		wantErr     bool
	}{
		{"", "palette.png", formatPNG, false},
		{"", "palette.BMP", formatBMP, false},
		{"", "palette.tif", formatTIFF, false},
		{"", "palette", formatPNG, false},
		{"tiff", "palette.png", formatTIFF, false},
		{"TIF", "x", formatTIFF, false},
		{"jpeg", "palette.jpg", "", true},
	}

	for _, tt := range tests {
		got, err := resolveFormat(tt.format, tt.out)
		if (err != nil) != tt.wantErr {
			t.Errorf("resolveFormat(%q, %q) error = %v, wantErr %v", tt.format, tt.out, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("resolveFormat(%q, %q) = %q, want %q", tt.format, tt.out, got, tt.want)
		}
	}
}

func TestEncodeImageRoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	src.SetNRGBA(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	decoders := map[string]func(*bytes.Reader) (image.Image, error){
		formatPNG:  func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) },
		formatBMP:  func(r *bytes.Reader) (image.Image, error) { return bmp.Decode(r) },
		formatTIFF: func(r *bytes.Reader) (image.Image, error) { return tiff.Decode(r) },
	}

	for format, decode := range decoders {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := encodeImage(&buf, src, format); err != nil {
				t.Fatalf("encodeImage() error = %v", err)
			}
			img, err := decode(bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatalf("decode error = %v", err)
			}
			if img.Bounds() != src.Bounds() {
				t.Errorf("bounds = %v, want %v", img.Bounds(), src.Bounds())
			}
			r, g, b, _ := img.At(1, 1).RGBA()
			if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
				t.Errorf("pixel (1,1) = %d,%d,%d, want 10,20,30", r>>8, g>>8, b>>8)
			}
		})
	}
}

func TestEncodeImageUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := encodeImage(&buf, image.NewNRGBA(image.Rect(0, 0, 1, 1)), "gif"); err == nil {
		t.Error("encodeImage(gif) error = nil, want error")
	}
}
