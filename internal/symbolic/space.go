package symbolic

// SymbolID identifies a symbolic pointer within a Space.
type SymbolID uint32

// Hierarchy tells class relations apart. Classes it knows nothing about are
// only related to themselves.
type Hierarchy interface {
	IsA(derived, base string) bool
}

// Space is a symbol and type name allocator shared by all states of one
// exploration. It is not safe for concurrent use: explore each function with
// its own Space.
type Space struct {
	next    SymbolID
	types   map[string]uint
	names   []string
	classes Hierarchy
}

// SpaceOption configures a [Space].
type SpaceOption func(s *Space)

// WithHierarchy sets class relations used to check dynamic type assumptions.
func WithHierarchy(h Hierarchy) SpaceOption {
	return func(s *Space) {
		s.classes = h
	}
}

// NewSpace is [Space] constructor.
func NewSpace(opts ...SpaceOption) *Space {
	s := &Space{
		types: make(map[string]uint),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// NewState returns an empty state bound to the space.
func (s *Space) NewState() *State {
	return &State{space: s}
}

// Conjure returns a pointer to a fresh symbolic region.
func (s *Space) Conjure() Loc {
	s.next++
	return Loc{Sym: s.next}
}

func (s *Space) typeIndex(name string) uint {
	i, ok := s.types[name]
	if !ok {
		i = uint(len(s.names))
		s.types[name] = i
		s.names = append(s.names, name)
	}

	return i
}

func (s *Space) typeName(i uint) string {
	if int(i) >= len(s.names) {
		return ""
	}

	return s.names[i]
}

// isA checks if an object of the derived class is also a base one.
func (s *Space) isA(derived, base string) bool {
	if derived == base {
		return true
	}
	if s.classes == nil {
		return false
	}

	return s.classes.IsA(derived, base)
}
