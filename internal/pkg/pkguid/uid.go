package pkguid

import "strconv"

// StringID generates unique string identifiers.
type StringID interface {
	// Generate generates a unique identifier as a string.
	Generate() string
}

// NumberID generates unique numeric identifiers.
type NumberID interface {
	// Generate generates a unique identifier as an int64 number.
	Generate() int64
}

type numberString struct {
	n NumberID
}

// AsString exposes a NumberID as a StringID using base-10 formatting.
func AsString(n NumberID) StringID {
	return numberString{n: n}
}

func (s numberString) Generate() string {
	return strconv.FormatInt(s.n.Generate(), 10)
}
