package cir

// Hierarchy maps class names to their direct bases. A struct embedding a
// named type is derived from it.
//
//	type Circle struct{ Shape } // Circle: [Shape]
type Hierarchy map[string][]string

// IsA reports whether derived is base or is derived from it.
func (h Hierarchy) IsA(derived, base string) bool {
	seen := map[string]bool{}

	var walk func(name string) bool
	walk = func(name string) bool {
		if name == base {
			return true
		}
		if seen[name] {
			return false
		}
		seen[name] = true

		for _, b := range h[name] {
			if walk(b) {
				return true
			}
		}
		return false
	}

	return walk(derived)
}
