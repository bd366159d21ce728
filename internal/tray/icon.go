package tray

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"sync"
)

const iconSize = 22

// Accent color of the active icon.
var iconColor = color.NRGBA{R: 0x2e, G: 0x9d, B: 0x5b, A: 0xff}

var (
	iconOnce     sync.Once
	iconApplied  []byte
	iconInactive []byte
)

// Icon returns the PNG tray icon: colored while the static configuration is
// applied and greyscale otherwise.
func Icon(applied bool) []byte {
	iconOnce.Do(func() {
		img := drawIcon()
		iconApplied = encodePNG(img)
		iconInactive = encodePNG(grayscale(img))
	})

	if applied {
		return iconApplied
	}
	return iconInactive
}

// drawIcon draws a filled disc with a ring gap, anti-aliasing left out.
func drawIcon() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, iconSize, iconSize))

	const (
		center = float64(iconSize-1) / 2
		outer  = float64(iconSize)/2 - 1
		gapIn  = outer - 4
		gapOut = outer - 2
	)

	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			dx, dy := float64(x)-center, float64(y)-center
			d2 := dx*dx + dy*dy
			if d2 <= outer*outer && (d2 < gapIn*gapIn || d2 > gapOut*gapOut) {
				img.SetNRGBA(x, y, iconColor)
			}
		}
	}

	return img
}

// grayscale converts with ITU-R BT.601 luma weights, keeping alpha.
func grayscale(src *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(src.Bounds())
	for i := 0; i+3 < len(src.Pix); i += 4 {
		r, g, b := float64(src.Pix[i]), float64(src.Pix[i+1]), float64(src.Pix[i+2])
		gray := uint8(0.299*r + 0.587*g + 0.114*b)
		dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2] = gray, gray, gray
		dst.Pix[i+3] = src.Pix[i+3]
	}
	return dst
}

func encodePNG(img image.Image) []byte {
	var buf bytes.Buffer
	// Encoding an in-memory NRGBA image to a buffer cannot fail.
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}
