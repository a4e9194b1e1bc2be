// Command inkmesh is a developer tool for looking at strokes and polygon fills.
//
// Input on stdin (or the named file) is newline separated points. For stroke,
// each line is "x y [pressure]", with pressure defaulting to 1. For fill, each
// line is "x y", with each polygon separated by an extra newline, or with
// --svg, an SVG document whose polygon and polyline elements are filled.
//
// Polygons may wind either way. Holes are not supported; each polygon is
// filled on its own.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/inkmesh"
	"github.com/osuushi/inkmesh/dbg"
	"github.com/osuushi/inkmesh/internal/config"
	"github.com/osuushi/inkmesh/internal/svgpoly"
)

var (
	app     = kingpin.New("inkmesh", "Triangulate pen strokes and polygons.")
	noColor = app.Flag("no-color", "Disable colored output.").Bool()
	trace   = app.Flag("trace", "Log every join and ear to stderr.").Bool()
	pngPath = app.Flag("png", "Render the mesh to this PNG file.").String()
	scale   = app.Flag("scale", "Pixels per unit for --png and --imgcat.").Default("4").Float64()
	cat     = app.Flag("imgcat", "Print the rendered mesh to the terminal (iTerm only).").Bool()

	strokeCmd          = app.Command("stroke", "Build and triangulate a stroke outline.")
	strokeConfig       = strokeCmd.Flag("config", "YAML stroke settings.").Default(config.DefaultFile).String()
	strokeWidth        = strokeCmd.Flag("width", "Stroke width at full pressure.").Float64()
	strokeCap          = strokeCmd.Flag("cap", "Cap style.").Enum("round", "flat")
	strokeSubdivisions = strokeCmd.Flag("subdivisions", "Curve subdivision budget.").Float64()
	strokeInput        = strokeCmd.Arg("input", "Sample file, stdin if omitted.").File()

	fillCmd   = app.Command("fill", "Triangulate polygons.")
	fillSVG   = fillCmd.Flag("svg", "Input is an SVG document.").Bool()
	fillInput = fillCmd.Arg("input", "Polygon file, stdin if omitted.").File()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	au := aurora.NewAurora(!*noColor)

	var tracer *dbg.Tracer
	if *trace {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inkmesh.SetLogger(logger)
		tracer = dbg.NewTracer(logger)
	}

	var (
		mesh *inkmesh.Mesh
		err  error
	)
	switch command {
	case strokeCmd.FullCommand():
		mesh, err = runStroke(au, openInput(*strokeInput), tracer)
	case fillCmd.FullCommand():
		mesh, err = runFill(au, openInput(*fillInput), tracer)
	}
	app.FatalIfError(err, "%s", command)

	written, err := render(mesh, *pngPath, *scale, *cat, os.Stdout)
	app.FatalIfError(err, "render")
	if written != "" {
		fmt.Println("Wrote", au.Cyan(written))
	}
}

// render draws the mesh to pngPath and optionally prints it to w. With
// printing but no path, the image goes through a temporary file that is
// removed afterwards. It returns the path of the file left behind, if any.
func render(mesh *inkmesh.Mesh, pngPath string, scale float64, cat bool, w io.Writer) (string, error) {
	if pngPath == "" && !cat {
		return "", nil
	}

	path := pngPath
	if path == "" {
		f, err := os.CreateTemp("", "inkmesh-*.png")
		if err != nil {
			return "", errors.Wrap(err, "temporary png")
		}
		path = f.Name()
		f.Close()
		defer os.Remove(path)
	}

	if err := dbg.DrawMesh(path, mesh, scale); err != nil {
		return "", err
	}
	if cat {
		if err := dbg.Cat(path, w); err != nil {
			return "", err
		}
	}
	return pngPath, nil
}

func openInput(f *os.File) io.Reader {
	if f == nil {
		return os.Stdin
	}
	return f
}

func runStroke(au aurora.Aurora, in io.Reader, tracer *dbg.Tracer) (*inkmesh.Mesh, error) {
	cfg, err := config.LoadOptional(*strokeConfig)
	if err != nil {
		return nil, err
	}
	opts, err := cfg.StrokeOptions()
	if err != nil {
		return nil, err
	}
	if err := applyStrokeFlags(&opts, *strokeWidth, *strokeCap, *strokeSubdivisions); err != nil {
		return nil, err
	}

	samples, err := readSamples(in)
	if err != nil {
		return nil, err
	}
	fmt.Printf("Read %d samples\n", au.Bold(len(samples)))

	var opt []inkmesh.TriangulateOption
	if tracer != nil {
		opts.Trace = tracer.Join
		opt = append(opt, inkmesh.WithTrace(tracer.Ear))
	}
	outline, err := inkmesh.BuildStrokeOutline(samples, opts)
	if err != nil {
		return nil, err
	}
	mesh, err := inkmesh.FillPolygon(outline, opt...)
	if err != nil {
		return nil, err
	}
	printMesh(au, "stroke", mesh)
	return mesh, nil
}

// Flags win over the config file when they are given.
func applyStrokeFlags(opts *inkmesh.StrokeOptions, width float64, capName string, subdivisions float64) error {
	if width != 0 {
		opts.Width = width
	}
	if capName != "" {
		capStyle, err := inkmesh.ParseCapStyle(capName)
		if err != nil {
			return err
		}
		opts.Cap = capStyle
	}
	if subdivisions != 0 {
		opts.Subdivisions = subdivisions
	}
	return nil
}

func runFill(au aurora.Aurora, in io.Reader, tracer *dbg.Tracer) (*inkmesh.Mesh, error) {
	var (
		polygons [][]inkmesh.Point
		err      error
	)
	if *fillSVG {
		polygons, err = svgpoly.Parse(in)
	} else {
		polygons, err = readPolygons(in)
	}
	if err != nil {
		return nil, err
	}
	fmt.Printf("Read %d polygons\n", au.Bold(len(polygons)))

	meshes := make([]*inkmesh.Mesh, 0, len(polygons))
	for i, polygon := range polygons {
		var opt []inkmesh.TriangulateOption
		if tracer != nil {
			opt = append(opt, inkmesh.WithTrace(tracer.For(i).Ear))
		}
		mesh, err := inkmesh.FillPolygon(polygon, opt...)
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		printMesh(au, fmt.Sprintf("polygon %d", i), mesh)
		meshes = append(meshes, mesh)
	}
	return mergeMeshes(meshes), nil
}

func printMesh(au aurora.Aurora, label string, mesh *inkmesh.Mesh) {
	fmt.Printf("%s: %d vertices, %d triangles, area %s\n",
		au.Yellow(label),
		len(mesh.Vertices),
		len(mesh.Triangles),
		au.Green(fmt.Sprintf("%.4f", mesh.Area())),
	)
}

// mergeMeshes concatenates meshes into one, offsetting the indices.
func mergeMeshes(meshes []*inkmesh.Mesh) *inkmesh.Mesh {
	merged := &inkmesh.Mesh{}
	for _, m := range meshes {
		offset := len(merged.Vertices)
		merged.Vertices = append(merged.Vertices, m.Vertices...)
		for _, t := range m.Triangles {
			merged.Triangles = append(merged.Triangles, inkmesh.Triangle{t[0] + offset, t[1] + offset, t[2] + offset})
		}
	}
	return merged
}
