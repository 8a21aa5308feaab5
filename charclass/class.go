package charclass

// Tagged is a single negatable byte bitmap, one disjunct of a Class
// (spec.md §3: "A disjunction of byte bitmaps each tagged with its own
// negation flag").
type Tagged struct {
	Bitmap  Bitmap
	Negated bool
}

// Class is a disjunction of tagged bitmaps, resolved to a single effective
// bitmap only at flatten time (spec.md §3, §4.1 "Character class → FA").
type Class struct {
	Parts []Tagged
}

// Add appends a tagged bitmap disjunct to the class and returns it for
// chaining, matching the teacher's chainable-builder texture.
func (c *Class) Add(bm Bitmap, negated bool) *Class {
	c.Parts = append(c.Parts, Tagged{Bitmap: bm, Negated: negated})
	return c
}

// AddNamed appends a POSIX named class (e.g. "lower", "h") as a disjunct.
// ok is false if name is not a recognized class name, in which case the
// class is left unmodified.
func (c *Class) AddNamed(name string, negated bool) (ok bool) {
	bm, ok := Named(name)
	if !ok {
		return false
	}
	c.Add(bm, negated)
	return true
}

// Flatten resolves the class to its final effective bitmap: for each
// disjunct, fold in case-insensitivity against its own *positive* bitmap
// first and only then apply that disjunct's own negation, union the
// results, then apply the outer negation (spec.md §3 "Classes are
// flattened … just before FA construction", §4.1 "Flatten under the outer
// negation and case-insensitive flag"). Folding before negating matters:
// original_source/fa_regexp_class.c:193-200 documents fixing a bug where
// folding an already-negated bitmap ORs the opposite-case members straight
// back in (e.g. "(?i)[:^lower:]" would match anything) — testing icase
// membership against the positive bitmap first, then negating, avoids
// that.
func (c *Class) Flatten(outerNegate, icase bool) Bitmap {
	var out Bitmap
	for _, p := range c.Parts {
		bm := p.Bitmap
		if icase {
			bm = bm.withOppositeCase()
		}
		if p.Negated {
			bm = bm.Negate()
		}
		out = out.Union(bm)
	}
	if outerNegate {
		out = out.Negate()
	}
	return out
}
