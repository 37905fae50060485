package recognize

// ImageMatch is the result of CheckImage.
type ImageMatch struct {
	AltStart, AltEnd   int
	PathStart, PathEnd int
	// Width/Height: 0 means unspecified, positive = pixels, negative =
	// percent of available space.
	Width, Height       int
	WidthSet, HeightSet bool
	Total               int
}

// CheckImage accepts "![alt](path){ k=v k=v }?" where alt has no
// unescaped ']' and path has no unescaped ')'. Used both as the inline
// image recognizer and, via the block-start check, to detect a
// block-level image (one alone on its line except trailing spaces).
func CheckImage(s Source, pos int) (ImageMatch, bool) {
	i := pos
	if i >= s.Len() || s.At(i) != '!' {
		return ImageMatch{}, false
	}
	i++
	if i >= s.Len() || s.At(i) != '[' {
		return ImageMatch{}, false
	}
	i++
	altStart := i
	for i < s.Len() && s.At(i) != ']' && s.At(i) != '\n' {
		i++
	}
	if i >= s.Len() || s.At(i) != ']' {
		return ImageMatch{}, false
	}
	altEnd := i
	i++
	if i >= s.Len() || s.At(i) != '(' {
		return ImageMatch{}, false
	}
	i++
	pathStart := i
	for i < s.Len() && s.At(i) != ')' && s.At(i) != '\n' {
		i++
	}
	if i >= s.Len() || s.At(i) != ')' {
		return ImageMatch{}, false
	}
	pathEnd := i
	i++

	m := ImageMatch{AltStart: altStart, AltEnd: altEnd, PathStart: pathStart, PathEnd: pathEnd}

	if i < s.Len() && s.At(i) == '{' {
		attrStart := i + 1
		j := attrStart
		for j < s.Len() && s.At(j) != '}' && s.At(j) != '\n' {
			j++
		}
		if j < s.Len() && s.At(j) == '}' {
			parseImageAttrs(s, attrStart, j, &m)
			i = j + 1
		}
	}
	m.Total = i - pos
	return m, true
}

func parseImageAttrs(s Source, start, end int, m *ImageMatch) {
	i := start
	for i < end {
		for i < end && s.At(i) == ' ' {
			i++
		}
		keyStart := i
		for i < end && s.At(i) != '=' && s.At(i) != ' ' {
			i++
		}
		key := sliceString(s, keyStart, i)
		if i < end && s.At(i) == '=' {
			i++
			valStart := i
			for i < end && s.At(i) != ' ' {
				i++
			}
			val := sliceString(s, valStart, i)
			neg := false
			pct := false
			n := 0
			k := 0
			if k < len(val) && val[k] == '-' {
				neg = true
				k++
			}
			for k < len(val) && val[k] >= '0' && val[k] <= '9' {
				n = n*10 + int(val[k]-'0')
				k++
			}
			if k < len(val) && val[k] == '%' {
				pct = true
			}
			if pct {
				neg = true // percent is encoded as negative
			}
			if neg {
				n = -n
			}
			switch key {
			case "width":
				m.Width = n
				m.WidthSet = true
			case "height":
				m.Height = n
				m.HeightSet = true
			}
		}
	}
}

func sliceString(s Source, start, end int) string {
	b := make([]byte, 0, end-start)
	for i := start; i < end; i++ {
		b = append(b, s.At(i))
	}
	return string(b)
}

// IsBlockImage reports whether the image construct at pos is alone on
// its line: only spaces follow it until newline or EOF.
func IsBlockImage(s Source, pos int, m ImageMatch) bool {
	if !IsLineStart(s, pos) {
		return false
	}
	end := pos + m.Total
	for i := end; i < s.Len() && s.At(i) != '\n'; i++ {
		if s.At(i) != ' ' {
			return false
		}
	}
	return true
}
