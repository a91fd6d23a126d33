package symbolic

// Description is a printable summary of what a state knows about a value.
type Description struct {
	Value       string
	Nullness    string
	DynamicType string   `json:",omitempty"`
	RuledOut    []string `json:",omitempty"`
}

// Describe summarizes the value as seen by the state.
func (s *State) Describe(v Value) Description {
	d := Description{
		Value:    v.String(),
		Nullness: s.Nullness(v).String(),
		RuledOut: s.RuledOut(v),
	}
	if loc, ok := v.(Loc); ok {
		d.Value = Loc{Sym: s.root(loc.Sym)}.String()
	}
	if t, ok := s.DynamicType(v); ok {
		d.DynamicType = t
	}

	return d
}
