package allocator

import "github.com/holodeck-hpc/torusba/fabric"

// RotateGeo returns geo permuted one step along the fixed 24-rotation
// cycle a caller walks when Request.Rotate is set and a geometry
// doesn't fit as given. rotCnt selects which step of the cycle to
// apply; values outside 0..23 leave geo unchanged. Implements
// ba_rotate_geo's exact adjacent-axis swap table.
func RotateGeo(geo fabric.Coord, rotCnt int) fabric.Coord {
	swapYZ := func() { geo[fabric.Y], geo[fabric.Z] = geo[fabric.Z], geo[fabric.Y] }
	swapXY := func() { geo[fabric.X], geo[fabric.Y] = geo[fabric.Y], geo[fabric.X] }
	swapAX := func() { geo[fabric.A], geo[fabric.X] = geo[fabric.X], geo[fabric.A] }
	swapAZ := func() { geo[fabric.A], geo[fabric.Z] = geo[fabric.Z], geo[fabric.A] }
	swapXZ := func() { geo[fabric.X], geo[fabric.Z] = geo[fabric.Z], geo[fabric.X] }

	switch rotCnt {
	case 0, 3, 6, 9, 14, 17, 21:
		swapYZ()
	case 1, 4, 7, 10, 12, 15, 18, 20, 22:
		swapXY()
	case 2, 5, 13, 23:
		swapAX()
	case 16, 19:
		swapAZ()
	case 8:
		swapXZ()
	case 11:
		swapAX()
		swapXY()
		swapYZ()
	}

	return geo
}
