package charclass

// Named returns the bitmap for a POSIX bracket-expression class name such
// as "alpha", "digit", "lower" (without the surrounding "[:" "]" or the
// leading "^" negation marker, which the caller strips and tracks
// separately as the tag's Negated flag). ok is false for unknown names.
//
// Byte classification is fixed to the POSIX C locale per spec.md §9's
// Open Question resolution, rather than following any runtime locale.
func Named(name string) (Bitmap, bool) {
	switch name {
	case "alpha":
		return alpha(), true
	case "digit":
		return digit(), true
	case "alnum":
		return alpha().Union(digit()), true
	case "upper":
		return rangeBitmap('A', 'Z'), true
	case "lower":
		return rangeBitmap('a', 'z'), true
	case "space":
		return space(), true
	case "blank":
		return blank(), true
	case "cntrl":
		return cntrl(), true
	case "print":
		return rangeBitmap(0x20, 0x7e), true
	case "graph":
		return rangeBitmap(0x21, 0x7e), true
	case "punct":
		return punct(), true
	case "xdigit":
		return rangeBitmap('0', '9').Union(rangeBitmap('a', 'f')).Union(rangeBitmap('A', 'F')), true
	case "h":
		return horiz(), true
	case "v":
		return vert(), true
	default:
		return Bitmap{}, false
	}
}

func rangeBitmap(lo, hi byte) Bitmap {
	var bm Bitmap
	bm.SetRange(lo, hi)
	return bm
}

func alpha() Bitmap {
	return rangeBitmap('A', 'Z').Union(rangeBitmap('a', 'z'))
}

func digit() Bitmap {
	return rangeBitmap('0', '9')
}

// space is POSIX [:space:]: tab, newline, vertical tab, form feed, carriage
// return, space. This deliberately does NOT special-case \v the way some
// emitters do (spec.md §9's Open Question): \v is already a member here by
// virtue of being one of the six classic whitespace bytes.
func space() Bitmap {
	var bm Bitmap
	for _, b := range []byte{'\t', '\n', '\v', '\f', '\r', ' '} {
		bm.Set(b)
	}
	return bm
}

func blank() Bitmap {
	var bm Bitmap
	bm.Set('\t')
	bm.Set(' ')
	return bm
}

func cntrl() Bitmap {
	var bm Bitmap
	bm.SetRange(0x00, 0x1f)
	bm.Set(0x7f)
	return bm
}

func punct() Bitmap {
	var bm Bitmap
	bm.SetRange(0x21, 0x2f)
	bm.SetRange(0x3a, 0x40)
	bm.SetRange(0x5b, 0x60)
	bm.SetRange(0x7b, 0x7e)
	return bm
}

// horiz is the "h" (horizontal whitespace) named class: tab, space, and
// 0xa0 (no-break space), per spec.md §9's deliberate PCRE-compatibility
// contract.
func horiz() Bitmap {
	var bm Bitmap
	bm.Set('\t')
	bm.Set(' ')
	bm.Set(0xa0)
	return bm
}

// vert is the "v" (vertical whitespace) named class: newline, vertical
// tab, form feed, carriage return, and 0x85 (NEL), per spec.md §9's
// deliberate PCRE-compatibility contract.
func vert() Bitmap {
	var bm Bitmap
	for _, b := range []byte{'\n', '\v', '\f', '\r'} {
		bm.Set(b)
	}
	bm.Set(0x85)
	return bm
}
