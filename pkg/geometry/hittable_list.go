package geometry

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// HittableList is an ordered collection of shapes resolved by nearest hit
type HittableList struct {
	Shapes []Shape
}

// NewHittableList creates a list from the given shapes
func NewHittableList(shapes ...Shape) *HittableList {
	return &HittableList{Shapes: shapes}
}

// Add appends a shape to the list
func (l *HittableList) Add(shape Shape) {
	l.Shapes = append(l.Shapes, shape)
}

// Len returns the number of shapes in the list
func (l *HittableList) Len() int {
	return len(l.Shapes)
}

// Hit returns the closest intersection across all shapes.
// On equal t the earlier shape wins, since only a strictly closer hit replaces the current one.
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	hit, index := l.HitIndex(ray, tMin, tMax)
	return hit, index >= 0
}

// HitIndex is Hit that also reports which shape was hit, or -1 on a miss
func (l *HittableList) HitIndex(ray core.Ray, tMin, tMax float64) (*material.HitRecord, int) {
	var closestHit *material.HitRecord
	closestIndex := -1
	closestSoFar := tMax

	for i, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
			closestIndex = i
		}
	}

	return closestHit, closestIndex
}
