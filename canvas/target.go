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

package canvas

import (
	"image"

	"golang.org/x/image/draw"

	"seehuhn.de/go/wheel"
)

// Target is a [wheel.Target] which presents frames on a visible image.
//
// Frames are composited over the current contents of Dst, so that areas
// outside the wheel keep their background.
type Target struct {
	Dst draw.Image

	// Scaler, if set, resizes each frame to the bounds of Dst.
	// Otherwise frames are copied unscaled to the origin of Dst.
	Scaler draw.Scaler

	// Frames counts the frames flushed so far.
	Frames int

	buf *Canvas
}

var _ wheel.Target = (*Target)(nil)

// NewTarget returns a target which presents frames on dst.
func NewTarget(dst draw.Image) *Target {
	return &Target{Dst: dst}
}

// NewFrame implements the [wheel.Target] interface.  The pixel buffer is
// reused between frames of the same size.
func (t *Target) NewFrame(width, height int) wheel.Frame {
	if t.buf == nil || t.buf.Image.Bounds() != image.Rect(0, 0, width, height) {
		t.buf = New(width, height)
	} else {
		clear(t.buf.Image.Pix)
		t.buf.r.Reset(clipRect(t.buf.Image.Bounds()))
	}
	return &frame{Canvas: t.buf, t: t}
}

type frame struct {
	*Canvas
	t *Target
}

// Flush copies the frame to the destination image.
func (f *frame) Flush() error {
	t := f.t
	src := f.Image
	if t.Scaler != nil {
		t.Scaler.Scale(t.Dst, t.Dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	} else {
		draw.Copy(t.Dst, t.Dst.Bounds().Min, src, src.Bounds(), draw.Over, nil)
	}
	t.Frames++
	return nil
}
