// Package render draws a road map and an optional route as a PNG image.
//
// The map is projected equirectangularly onto a fixed frame,
// longitude [-10, 2] by latitude [49, 61], which covers Great Britain.
// Connections are grey, the route is green, route locations are red and
// all other locations blue. Each location carries its name, placed by Layout
// so that no two names overlap.
package render

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/ukpath/core"
	"github.com/katalvlaran/ukpath/dataset"
	"github.com/katalvlaran/ukpath/geo"
)

// ErrBadSize indicates a non-positive image width or height.
var ErrBadSize = errors.New("render: width and height must be positive")

// Frame is the geographic window mapped onto the image.
type Frame struct {
	MinLon, MaxLon float64
	MinLat, MaxLat float64
	Width, Height  int
}

// UKFrame returns the Great Britain window at the given pixel size.
func UKFrame(width, height int) Frame {
	return Frame{MinLon: -10, MaxLon: 2, MinLat: 49, MaxLat: 61, Width: width, Height: height}
}

// Project maps c to pixel coordinates; north is up. Points outside the
// frame land outside the image.
func (f Frame) Project(c geo.Coord) (x, y float64) {
	x = (c.Lon - f.MinLon) / (f.MaxLon - f.MinLon) * float64(f.Width)
	y = (f.MaxLat - c.Lat) / (f.MaxLat - f.MinLat) * float64(f.Height)

	return x, y
}

// Options controls the drawing.
type Options struct {
	Width, Height int
	Labels        bool   // draw location names
	Title         string // drawn top-left when non-empty
}

// Option configures Render.
type Option func(*Options)

// DefaultOptions returns an 800×800 labelled image without a title.
func DefaultOptions() Options {
	return Options{Width: 800, Height: 800, Labels: true}
}

// WithSize sets the image size in pixels.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width, o.Height = width, height
	}
}

// WithLabels toggles location names.
func WithLabels(on bool) Option {
	return func(o *Options) {
		o.Labels = on
	}
}

// WithTitle sets a caption such as "A* Search Path".
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

const (
	nodeRadius = 6
	routeWidth = 4
	edgeWidth  = 1.5
)

// Label is a placed location name, W by H pixels, centred on X with its
// baseline at Y.
type Label struct {
	Name       string
	X, Y, W, H float64
}

func (l Label) overlaps(o Label) bool {
	return l.X-l.W/2 < o.X+o.W/2 && o.X-o.W/2 < l.X+l.W/2 &&
		l.Y-l.H < o.Y && o.Y-o.H < l.Y
}

// labelOffsets are {dLon, dLat} in degrees for names that crowd their
// neighbors at the default spot.
var labelOffsets = map[string][2]float64{
	"Liverpool":  {0, -0.5}, // below the dot
	"Manchester": {-0.1, 0.3},
	"Newcastle":  {0.75, 0.25},
	"Edinburgh":  {0.75, 0.25},
}

const (
	labelLat   = 0.25 // default: due north of the dot
	labelNudge = 0.2  // degrees north-east per retry
	maxNudges  = 20
)

// Layout places the name of every location of ds inside f, in
// ds.Graph.Locations() order. A name starts at its offset from the location
// and moves north-east in steps until it overlaps no name placed before it.
//
// Errors: geo.ErrNoCoordinate for a location without a coordinate.
func Layout(ds *dataset.Dataset, f Frame) ([]Label, error) {
	return layout(gg.NewContext(1, 1), ds, f)
}

// layout measures names with dc's current font face.
func layout(dc *gg.Context, ds *dataset.Dataset, f Frame) ([]Label, error) {
	out := make([]Label, 0, ds.Graph.LocationCount())
	for _, name := range ds.Graph.Locations() {
		c, err := ds.Coords.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		off, ok := labelOffsets[name]
		if !ok {
			off = [2]float64{0, labelLat}
		}
		w, h := dc.MeasureString(name)

		var l Label
		for i := 0; ; i++ {
			x, y := f.Project(geo.Coord{Lat: c.Lat + off[1], Lon: c.Lon + off[0]})
			l = Label{Name: name, X: x, Y: y, W: w, H: h}
			if i == maxNudges || !overlapsAny(l, out) {
				break
			}
			off[0] += labelNudge
			off[1] += labelNudge
		}
		out = append(out, l)
	}

	return out, nil
}

func overlapsAny(l Label, placed []Label) bool {
	for _, o := range placed {
		if l.overlaps(o) {
			return true
		}
	}

	return false
}

// Draw renders ds and path into an image. An empty path draws the bare map.
//
// Errors: ErrBadSize, geo.ErrNoCoordinate for a location without a
// coordinate, core.ErrInvalidPath or core.UnknownLocationError for a path
// that does not belong to ds.Graph.
func Draw(ds *dataset.Dataset, path core.Path, opts ...Option) (image.Image, error) {
	dc, err := draw(ds, path, opts)
	if err != nil {
		return nil, err
	}

	return dc.Image(), nil
}

// Render draws ds and path (see Draw) and writes the result to w as PNG.
func Render(w io.Writer, ds *dataset.Dataset, path core.Path, opts ...Option) error {
	dc, err := draw(ds, path, opts)
	if err != nil {
		return err
	}

	return dc.EncodePNG(w)
}

func draw(ds *dataset.Dataset, path core.Path, opts []Option) (*gg.Context, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Width <= 0 || o.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, o.Width, o.Height)
	}
	if err := ds.Graph.ValidatePath(path); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	f := UKFrame(o.Width, o.Height)
	pos := make(map[string][2]float64, ds.Graph.LocationCount())
	for _, name := range ds.Graph.Locations() {
		c, err := ds.Coords.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		x, y := f.Project(c)
		pos[name] = [2]float64{x, y}
	}

	dc := gg.NewContext(o.Width, o.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// 1) every connection once, a→b with a declared before b
	dc.SetRGB(0.6, 0.6, 0.6)
	dc.SetLineWidth(edgeWidth)
	seen := make(map[string]bool, ds.Graph.LocationCount())
	for _, a := range ds.Graph.Locations() {
		seen[a] = true
		edges, err := ds.Graph.Neighbors(a)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		for _, e := range edges {
			if seen[e.To] {
				continue
			}
			pa, pb := pos[a], pos[e.To]
			dc.DrawLine(pa[0], pa[1], pb[0], pb[1])
			dc.Stroke()
		}
	}

	// 2) the route on top
	if len(path) > 1 {
		dc.SetRGB(0, 0.6, 0)
		dc.SetLineWidth(routeWidth)
		first := pos[path[0]]
		dc.MoveTo(first[0], first[1])
		for _, name := range path[1:] {
			p := pos[name]
			dc.LineTo(p[0], p[1])
		}
		dc.Stroke()
	}

	// 3) locations
	for _, name := range ds.Graph.Locations() {
		p := pos[name]
		if path.Contains(name) {
			dc.SetRGB(1, 0, 0)
		} else {
			dc.SetRGB(0, 0, 1)
		}
		dc.DrawCircle(p[0], p[1], nodeRadius)
		dc.Fill()
	}

	// 4) names above everything
	if o.Labels {
		labels, err := layout(dc, ds, f)
		if err != nil {
			return nil, err
		}
		dc.SetRGB(0, 0, 0)
		for _, l := range labels {
			dc.DrawStringAnchored(l.Name, l.X, l.Y, 0.5, 0)
		}
	}

	if o.Title != "" {
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(o.Title, 10, 10, 0, 1)
	}

	return dc, nil
}
