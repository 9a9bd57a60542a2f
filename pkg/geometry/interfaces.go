package geometry

import (
	"github.com/rtview/go-interactive-raytracer/pkg/core"
	"github.com/rtview/go-interactive-raytracer/pkg/material"
)

// Hittable interface for surfaces that can be intersected by rays.
// Hit reports the nearest intersection with t inside rayT, if any.
type Hittable interface {
	Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool)
}
