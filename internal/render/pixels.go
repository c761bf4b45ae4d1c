package render

// luminance scales a counter and clamps it to the 8-bit range.
func luminance(count uint32, strength int) uint8 {
	v := uint64(count) * uint64(strength)
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// fillLuminanceRGBA converts counters into opaque gray RGBA pixels in buf.
func fillLuminanceRGBA(buf []byte, counts []uint32, strength int) {
	for i, c := range counts {
		l := luminance(c, strength)
		base := i * 4
		buf[base+0] = l
		buf[base+1] = l
		buf[base+2] = l
		buf[base+3] = 0xff
	}
}
