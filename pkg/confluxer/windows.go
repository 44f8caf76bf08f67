package confluxer

// Window is one position of a multi-segment sliding window. Segments holds
// the consecutive substrings, and Index is the rune offset of the first one.
type Window struct {
	Segments []string
	Index    int
}

// ProduceWindows slides a window made of consecutive segments with the given
// rune lengths across text, one rune at a time. For each offset from 0 to
// len(text)-sum(lengths), it returns the segments starting at that offset.
// Offsets and lengths are counted in runes, not bytes.
//
// It returns nil if text is shorter than the total width or if any length is
// not positive.
func ProduceWindows(text string, lengths ...int) []Window {
	width := 0
	for _, l := range lengths {
		if l <= 0 {
			return nil
		}
		width += l
	}
	if width == 0 {
		return nil
	}

	runes := []rune(text)
	if len(runes) < width {
		return nil
	}

	windows := make([]Window, 0, len(runes)-width+1)
	for i := 0; i <= len(runes)-width; i++ {
		segments := make([]string, len(lengths))
		offset := i
		for j, l := range lengths {
			segments[j] = string(runes[offset : offset+l])
			offset += l
		}
		windows = append(windows, Window{Segments: segments, Index: i})
	}
	return windows
}
