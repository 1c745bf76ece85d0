// Package render draws a solved cover instance as an SVG document: input
// points as dots, cover circles as unit circles with a dashed radius-2
// exclusion ring, and their centers as crosses. It is a diagnostic aid for eyeballing covers and plays no part
// in solving.
//
// The y axis is flipped so the picture matches the usual mathematical
// orientation.
package render

import (
	"fmt"
	"io"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/unitcover/geometry"
)

// Styles used for each element class.
const (
	PointStyle     = "fill: black"
	CircleStyle    = "fill: none; stroke: steelblue; stroke-width: 0.02"
	ExclusionStyle = "fill: none; stroke: gray; stroke-width: 0.01; stroke-dasharray: 0.05 0.05"
	CenterStyle    = "stroke: crimson; stroke-width: 0.02"
	margin         = 0.25
	dotRadius      = 0.04
	crossHalf      = 0.08
)

// svg is a minimal SVG serializer that keeps the first write error.
type svg struct {
	w   io.Writer
	err error
}

func (s *svg) printf(format string, a ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

func (s *svg) start(viewBox geom.Rect) {
	s.printf(`<?xml version="1.0"?>
<svg version="1.1" viewBox="%f %f %f %f" xmlns="http://www.w3.org/2000/svg">
`, viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height())
}

func (s *svg) end() {
	s.printf("</svg>\n")
}

func (s *svg) circle(c geom.Coord, r float64, style string) {
	s.printf("<circle cx='%f' cy='%f' r='%f' style='%s'/>\n", c.X, c.Y, r, style)
}

func (s *svg) line(p1, p2 geom.Coord, style string) {
	s.printf("<line x1='%f' y1='%f' x2='%f' y2='%f' style='%s'/>\n", p1.X, p1.Y, p2.X, p2.Y, style)
}

// toCoord maps a point into SVG space (y down).
func toCoord(p geometry.Point) geom.Coord {
	return geom.Coord{X: p.X, Y: -p.Y}
}

// Bounds returns the SVG-space rectangle containing every point and every
// exclusion ring around a center, plus a small margin. With nothing to draw it
// returns the unit square around the origin.
func Bounds(points, centers []geometry.Point) geom.Rect {
	pad := geom.Coord{X: margin, Y: margin}
	reach := geom.Coord{X: geometry.ExclusionRadius, Y: geometry.ExclusionRadius}

	var r geom.Rect
	started := false
	grow := func(box geom.Rect) {
		if !started {
			r = box
			started = true
			return
		}
		r.ExpandToContainRect(box)
	}
	for _, p := range points {
		c := toCoord(p)
		grow(geom.Rect{Min: c, Max: c})
	}
	for _, p := range centers {
		c := toCoord(p)
		grow(geom.Rect{Min: c.Minus(reach), Max: c.Plus(reach)})
	}
	if !started {
		r = geom.Rect{Min: geom.Coord{X: -1, Y: -1}, Max: geom.Coord{X: 1, Y: 1}}
	}

	return geom.Rect{Min: r.Min.Minus(pad), Max: r.Max.Plus(pad)}
}

// Write renders points and the cover circles around centers to w.
// Pass nil centers to draw an infeasible instance.
func Write(w io.Writer, points, centers []geometry.Point) error {
	s := &svg{w: w}
	s.start(Bounds(points, centers))

	for _, p := range centers {
		c := toCoord(p)
		s.circle(c, geometry.ExclusionRadius, ExclusionStyle)
		s.circle(c, geometry.Radius, CircleStyle)
		s.line(c.Minus(geom.Coord{X: crossHalf, Y: crossHalf}), c.Plus(geom.Coord{X: crossHalf, Y: crossHalf}), CenterStyle)
		s.line(c.Minus(geom.Coord{X: crossHalf, Y: -crossHalf}), c.Plus(geom.Coord{X: crossHalf, Y: -crossHalf}), CenterStyle)
	}
	for _, p := range points {
		s.circle(toCoord(p), dotRadius, PointStyle)
	}

	s.end()
	return s.err
}
