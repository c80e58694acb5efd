package indexview

import (
	"errors"
	"math"
)

var (
	// ErrInvalidSurface is returned when the interactive surface has no height.
	ErrInvalidSurface = errors.New("indexview: surface height must be positive")
	// ErrNoSections is returned when the control has no section labels.
	ErrNoSections = errors.New("indexview: no sections")
)

// Path addresses one item inside a section.
type Path struct {
	Section int
	Item    int
}

// ComputeTarget maps a vertical position on the surface to a list position.
//
// The surface is split into sectionCount equal slots; the fraction of the slot
// below pointY picks the item inside that section. Empty sections are skipped
// forward (never backward) so the drag surface has no dead zones. ok is false
// when no section at or after the touched one has items.
//
// pointY may lie outside [0, surfaceHeight]; positions past either edge clamp
// to the first or last section. Positions at or below the bottom edge resolve
// to the last item of the last section.
func ComputeTarget(pointY, surfaceHeight float64, sectionCount int, itemCount func(section int) int, scrollToSectionTop bool) (path Path, ok bool, err error) {
	if !(surfaceHeight > 0) || math.IsInf(surfaceHeight, 0) {
		return Path{}, false, ErrInvalidSurface
	}
	if sectionCount <= 0 {
		return Path{}, false, ErrNoSections
	}
	if math.IsNaN(pointY) {
		return Path{}, false, nil
	}

	raw := pointY / surfaceHeight * float64(sectionCount)
	overshoot := raw >= float64(sectionCount)

	slot := math.Floor(raw)
	if slot < 0 {
		slot = 0
	}
	if slot > float64(sectionCount-1) {
		slot = float64(sectionCount - 1)
	}
	section := int(slot)
	percent := math.Max(raw-slot, 0)

	rows := itemCount(section)
	for rows <= 0 && section < sectionCount-1 {
		section++
		percent = 0
		overshoot = false
		rows = itemCount(section)
	}
	if rows <= 0 {
		return Path{}, false, nil
	}

	item := int(math.Floor(float64(rows) * percent))
	if overshoot && item >= rows {
		item = rows - 1
	}
	if scrollToSectionTop {
		item = 0
	}
	if item >= rows {
		return Path{}, false, nil
	}
	return Path{Section: section, Item: item}, true, nil
}
