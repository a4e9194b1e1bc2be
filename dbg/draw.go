package dbg

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"

	"github.com/osuushi/inkmesh"
)

// This is for debugging purposes only

// Padding around the shape, in pixels
const drawPadding = 20

// DrawMesh renders the mesh to a PNG: triangles filled in alternating shades
// with their edges in green, and the outline the vertices make in cyan. The
// y axis points up. scale is in pixels per unit.
func DrawMesh(path string, mesh *inkmesh.Mesh, scale float64) error {
	if len(mesh.Vertices) == 0 {
		return errors.New("nothing to draw")
	}
	if scale <= 0 {
		return errors.Errorf("invalid scale %v", scale)
	}

	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range mesh.Vertices {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	for i, t := range mesh.Triangles {
		a, b, d := mesh.Vertices[t[0]], mesh.Vertices[t[1]], mesh.Vertices[t[2]]
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.LineTo(d.X, d.Y)
		c.ClosePath()
		if i%2 == 0 {
			c.SetRGBA(0.3, 0.2, 1, 0.6)
		} else {
			c.SetRGBA(0.6, 0.2, 0.8, 0.6)
		}
		c.FillPreserve()
		c.SetRGB(0, 1, 0)
		c.SetLineWidth(1 / scale)
		c.Stroke()
	}

	c.MoveTo(mesh.Vertices[0].X, mesh.Vertices[0].Y)
	for _, p := range mesh.Vertices[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
	c.SetRGB(0, 1, 1)
	c.SetLineWidth(2 / scale)
	c.Stroke()

	return errors.Wrap(c.SavePNG(path), "save png")
}

// Cat prints an image to the terminal (iTerm only).
func Cat(path string, w io.Writer) error {
	return errors.Wrap(imgcat.CatFile(path, w), "imgcat")
}
