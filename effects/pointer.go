// Package effects holds the pointer and scroll driven decoration math of the
// portfolio pages. Everything here is pure geometry; the scene applies it.
package effects

import "gonum.org/v1/gonum/spatial/r2"

// Rect is an axis-aligned box in page coordinates.
type Rect struct {
	Min r2.Vec
	W   float64
	H   float64
}

// Center returns the middle of r.
func (r Rect) Center() r2.Vec {
	return r2.Vec{X: r.Min.X + r.W/2, Y: r.Min.Y + r.H/2}
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p r2.Vec) bool {
	return p.X >= r.Min.X && p.X < r.Min.X+r.W && p.Y >= r.Min.Y && p.Y < r.Min.Y+r.H
}

// Tilt is a card's hover transform.
type Tilt struct {
	RotateX float64 // degrees
	RotateY float64 // degrees
	Scale   float64
}

// Rest is the transform of a card the pointer has left.
var Rest = Tilt{Scale: 1}

// TiltAt returns the transform of a card under pointer p. Rotation reaches
// maxDeg at the card edges; the top edge tips towards the viewer.
func TiltAt(p r2.Vec, card Rect, maxDeg, scale float64) Tilt {
	if card.W <= 0 || card.H <= 0 {
		return Rest
	}
	local := Local(p, card)
	cx, cy := card.W/2, card.H/2
	return Tilt{
		RotateX: (local.Y - cy) / cy * -maxDeg,
		RotateY: (local.X - cx) / cx * maxDeg,
		Scale:   scale,
	}
}

// Magnetic returns the offset a magnetic button moves by while the pointer
// is over it: the pointer's offset from the button centre times strength.
func Magnetic(p r2.Vec, btn Rect, strength float64) r2.Vec {
	return r2.Scale(strength, r2.Sub(p, btn.Center()))
}

// Local returns p relative to the top-left corner of r. Spotlight cards
// centre their glow on this point.
func Local(p r2.Vec, r Rect) r2.Vec {
	return r2.Sub(p, r.Min)
}

// BlobOffset returns the translation of background blob index for a pointer
// at p in a viewport of the given size. Later blobs move further.
func BlobOffset(p r2.Vec, viewW, viewH float64, index int, speed float64) r2.Vec {
	if viewW <= 0 || viewH <= 0 {
		return r2.Vec{}
	}
	s := float64(index+1) * speed
	return r2.Vec{
		X: (p.X/viewW - 0.5) * s,
		Y: (p.Y/viewH - 0.5) * s,
	}
}
