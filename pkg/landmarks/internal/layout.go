package internal

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{Top: value, Right: value, Bottom: value, Left: value}
}

func Max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func Min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// ScaleToFit shrinks w x h to fit inside maxW x maxH, keeping the aspect
// ratio. Sizes that already fit are returned unchanged.
func ScaleToFit(w, h, maxW, maxH int32) (int32, int32) {
	if w > maxW && w > 0 {
		h = int32(float32(h) * float32(maxW) / float32(w))
		w = maxW
	}
	if h > maxH && h > 0 {
		w = int32(float32(w) * float32(maxH) / float32(h))
		h = maxH
	}
	return w, h
}
