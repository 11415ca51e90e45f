// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package preview renders a coarse top-down PNG raster of a deck's
// spherical surfaces (no cell markers are drawn), for sanity-checking geometry
// edits without a full MCNP viewer. It never interprets general
// quadric surfaces and is purely diagnostic: it is never required to
// correctly edit a deck.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strconv"
	"strings"

	ximage "golang.org/x/image/draw"

	"github.com/afriou/mcnpdeck"
)

var palette = []color.RGBA{
	{220, 60, 60, 255},
	{60, 140, 220, 255},
	{60, 180, 100, 255},
	{220, 160, 40, 255},
	{160, 80, 200, 255},
	{80, 200, 200, 255},
}

type sphere struct {
	x, y, r float64
}

// Render writes a sizePx x sizePx PNG of d's spherical surfaces (so/s
// types, centred on the origin or an explicit centre) to w, one ring
// per surface coloured by index, scaled to fit the largest sphere.
func Render(d *deck.Deck, w io.Writer, sizePx int) error {
	if sizePx <= 0 {
		return fmt.Errorf("preview: sizePx must be positive, got %d", sizePx)
	}

	spheres := collectSpheres(d)

	canvas := image.NewRGBA(image.Rect(0, 0, sizePx, sizePx))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.RGBA{250, 250, 250, 255}), image.Point{}, draw.Src)

	if len(spheres) == 0 {
		return png.Encode(w, canvas)
	}

	maxR := 0.0
	for _, s := range spheres {
		extent := math.Max(math.Abs(s.x), math.Abs(s.y)) + s.r
		if extent > maxR {
			maxR = extent
		}
	}
	if maxR == 0 {
		maxR = 1
	}
	scale := float64(sizePx) * 0.45 / maxR
	cx, cy := float64(sizePx)/2, float64(sizePx)/2

	for i, s := range spheres {
		col := palette[i%len(palette)]
		drawRing(canvas, cx+s.x*scale, cy-s.y*scale, s.r*scale, col)
	}

	if sizePx < 64 {
		small := image.NewRGBA(image.Rect(0, 0, sizePx, sizePx))
		ximage.NearestNeighbor.Scale(small, small.Bounds(), canvas, canvas.Bounds(), ximage.Over, nil)
		canvas = small
	}

	return png.Encode(w, canvas)
}

// collectSpheres extracts every "so" (sphere at origin) and "s"
// (general sphere, first three params the centre) surface as a 2D
// top-down circle, ignoring z.
func collectSpheres(d *deck.Deck) []sphere {
	var out []sphere
	for _, s := range d.Surfaces {
		fields := strings.Fields(s.Params)
		typ := strings.ToLower(s.SurfType)
		switch typ {
		case "so":
			if len(fields) < 1 {
				continue
			}
			r, err := strconv.ParseFloat(fields[0], 64)
			if err != nil {
				continue
			}
			out = append(out, sphere{0, 0, r})
		case "s":
			if len(fields) < 4 {
				continue
			}
			vals := make([]float64, 4)
			ok := true
			for i := 0; i < 4; i++ {
				v, err := strconv.ParseFloat(fields[i], 64)
				if err != nil {
					ok = false
					break
				}
				vals[i] = v
			}
			if !ok {
				continue
			}
			out = append(out, sphere{vals[0], vals[1], vals[3]})
		}
	}
	return out
}

// drawRing plots a circle outline of radius r centred at (cx, cy) onto
// img by stepping around it in angle, about two pixels wide.
func drawRing(img *image.RGBA, cx, cy, r float64, col color.RGBA) {
	if r <= 0 {
		return
	}
	bounds := img.Bounds()
	steps := int(2 * math.Pi * r)
	if steps < 64 {
		steps = 64
	}
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		x := int(cx + r*math.Cos(theta))
		y := int(cy + r*math.Sin(theta))
		for _, p := range [][2]int{{x, y}, {x + 1, y}, {x, y + 1}} {
			if image.Pt(p[0], p[1]).In(bounds) {
				img.SetRGBA(p[0], p[1], col)
			}
		}
	}
}
