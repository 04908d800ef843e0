package paginator

// shiftForward moves the cursor delta real items forward by removing fly
// leaves. When the fly leaves run out the remainder wraps around to
// sight-remaining and the level grows by one page per wrap.
func shiftForward(fly FlyLeaves, sight SightSize, delta int) (FlyLeaves, int) {
	f, s := int(fly), int(sight)
	if delta <= f {
		return FlyLeaves(f - delta), 0
	}
	remaining := delta - f
	pages := (remaining + s - 1) / s
	return FlyLeaves(pages*s - remaining), pages
}

// shiftBackward moves the cursor delta real items backward by adding fly
// leaves. Overflow past sight wraps to the remainder and the level drops
// by one page per wrap.
func shiftBackward(fly FlyLeaves, sight SightSize, delta int) (FlyLeaves, int) {
	total := int(fly) + delta
	s := int(sight)
	return FlyLeaves(total % s), -(total / s)
}
