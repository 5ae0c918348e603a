// seehuhn.de/go/wheel - a spinning game wheel
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Genpdf writes a PDF and a PNG image of every scenario in its final,
// highlighted state.  The files are used to inspect glyph and sector
// rendering by eye.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/wheel"
	"seehuhn.de/go/wheel/canvas"
	"seehuhn.de/go/wheel/pdfsurface"
	"seehuhn.de/go/wheel/testcases"
)

const refDir = "testdata/reference"

var background = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, s := range testcases.All[category] {
			name := category + "_" + s.Name
			if err := generate(s, filepath.Join(refDir, name)); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(s testcases.Scenario, base string) error {
	w, err := s.Build()
	if err != nil {
		return err
	}
	w.Spin(&wheel.Sequence{Values: []int{s.Total}})
	for w.State() != wheel.Highlighting {
		if err := w.Advance(false); err != nil {
			return err
		}
	}

	err = w.Render(&pdfsurface.Target{Path: base + ".pdf", Background: &background})
	if err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	dst := canvas.NewFromImage(img)
	dst.Clear(background)
	if err := w.Render(canvas.NewTarget(img)); err != nil {
		return err
	}
	return writePNG(base+".png", img)
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
