package main

import (
	"image"
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/draw"
)

// checkerboard returns a size x size RGBA image of cells x cells squares,
// scaled up from a one-pixel-per-cell source.
func checkerboard(size, cells int) *image.RGBA {
	src := image.NewRGBA(image.Rect(0, 0, cells, cells))
	light := color.RGBA{R: 230, G: 230, B: 230, A: 255}
	dark := color.RGBA{R: 40, G: 40, B: 60, A: 255}
	for y := 0; y < cells; y++ {
		for x := 0; x < cells; x++ {
			if (x+y)%2 == 0 {
				src.SetRGBA(x, y, light)
			} else {
				src.SetRGBA(x, y, dark)
			}
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// upload fills the already-allocated level 0 of texture id.
func upload(id uint32, img *image.RGBA) {
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0,
		int32(img.Rect.Dx()), int32(img.Rect.Dy()),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}
