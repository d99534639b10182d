package utils

import (
	"fmt"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
)

// HexToRGB converts a "#RRGGBB" string into a normalized RGB vector.
// Components are uppercase hex digits; each maps to component/255.
func HexToRGB(hexColor string) (mgl32.Vec3, error) {
	if len(hexColor) != 7 {
		return mgl32.Vec3{}, fmt.Errorf("hex color must be in the format #RRGGBB, got %q", hexColor)
	}
	if hexColor[0] != '#' {
		return mgl32.Vec3{}, fmt.Errorf("hex color must be in the format #RRGGBB, got %q", hexColor)
	}
	for _, c := range hexColor[1:] {
		if !((c >= '0' && c <= '9') || (c >= 'A' && c <= 'F')) {
			return mgl32.Vec3{}, fmt.Errorf("hex color must be in the format #RRGGBB, got %q", hexColor)
		}
	}

	r, err := strconv.ParseUint(hexColor[1:3], 16, 8)
	if err != nil {
		return mgl32.Vec3{}, fmt.Errorf("parse red component: %w", err)
	}
	g, err := strconv.ParseUint(hexColor[3:5], 16, 8)
	if err != nil {
		return mgl32.Vec3{}, fmt.Errorf("parse green component: %w", err)
	}
	b, err := strconv.ParseUint(hexColor[5:7], 16, 8)
	if err != nil {
		return mgl32.Vec3{}, fmt.Errorf("parse blue component: %w", err)
	}

	return mgl32.Vec3{float32(r) / 255.0, float32(g) / 255.0, float32(b) / 255.0}, nil
}
