// Package core provides fundamental types and utilities for the game.
// It contains no terminal dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

import "math"

// Vec is a point or direction in play-area space. Play-area coordinates are
// relative to the screen center, with y growing downwards.
type Vec struct {
	X, Y float64
}

// Polar returns the point at the given angle (radians) and distance from the origin.
func Polar(angle, radius float64) Vec {
	return Vec{X: math.Cos(angle) * radius, Y: math.Sin(angle) * radius}
}

// Len returns the distance from the origin.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
