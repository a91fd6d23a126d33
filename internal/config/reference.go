package config

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/sirkon/castvalue/internal/cir"
)

// Reference is a package level function. Methods are set with [Method]
// instead, they are matched regardless of the receiver package.
type Reference struct {
	Package string
	Name    string
}

func (r *Reference) CIR() cir.Reference {
	return cir.Reference{
		Package: r.Package,
		Name:    r.Name,
	}
}

var _ encoding.TextUnmarshaler = (*Reference)(nil)

// UnmarshalText parses the "pkg/path".Name form.
func (r *Reference) UnmarshalText(b []byte) error {
	s := string(bytes.TrimSpace(b))
	if s == "" {
		return errors.New("empty reference")
	}

	if !strings.HasPrefix(s, `"`) {
		return fmt.Errorf("reference must start with quoted package: %q", s)
	}
	end := strings.Index(s[1:], `"`)
	if end < 0 {
		return fmt.Errorf("unterminated quoted package in reference: %q", s)
	}
	end++

	pkg := s[1:end]
	if pkg == "" {
		return fmt.Errorf("package cannot be empty in reference: %q", s)
	}

	rest := s[end+1:]
	if !strings.HasPrefix(rest, ".") || rest == "." {
		return fmt.Errorf("reference must contain a name: %q", s)
	}

	parts := strings.Split(rest[1:], ".")
	if len(parts) != 1 {
		return fmt.Errorf("reference must have exactly 1 identifier after package, use method for methods: %q", s)
	}
	if !isIdent(parts[0]) {
		return fmt.Errorf("invalid identifier %q in reference %q", parts[0], s)
	}

	r.Package = pkg
	r.Name = parts[0]

	return nil
}

func (r Reference) MarshalText() ([]byte, error) {
	if r.Package == "" {
		return nil, fmt.Errorf("cannot marshal Reference: empty Package")
	}
	if r.Name == "" {
		return nil, fmt.Errorf("cannot marshal Reference: empty Name")
	}

	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(r.Package)
	b.WriteString(`".`)
	b.WriteString(r.Name)

	return []byte(b.String()), nil
}

// Method is a method reference: Name or Type.Name.
type Method struct {
	Type string
	Name string
}

var _ encoding.TextUnmarshaler = (*Method)(nil)

func (m *Method) UnmarshalText(b []byte) error {
	s := string(bytes.TrimSpace(b))
	if s == "" {
		return errors.New("empty method")
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return fmt.Errorf("method must be either Name or Type.Name: %q", s)
	}
	for _, p := range parts {
		if !isIdent(p) {
			return fmt.Errorf("invalid identifier %q in method %q", p, s)
		}
	}

	m.Type = ""
	m.Name = parts[len(parts)-1]
	if len(parts) == 2 {
		m.Type = parts[0]
	}

	return nil
}

func (m Method) MarshalText() ([]byte, error) {
	if m.Name == "" {
		return nil, fmt.Errorf("cannot marshal Method: empty Name")
	}
	if m.Type == "" {
		return []byte(m.Name), nil
	}

	return []byte(m.Type + "." + m.Name), nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !unicode.IsLetter(r) && r != '_' {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
