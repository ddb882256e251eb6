// Package bizkey generates the human-readable business keys used in all
// external-facing record lookups ("OD001", "RID000042", "PID00000001").
// Keys of a fixed width sort lexicographically in issuance order.
package bizkey

import (
	"strconv"
	"strings"
)

// Type describes one record type's key format: a fixed prefix and the
// minimum digit width the numeric suffix is zero-padded to.
type Type struct {
	Prefix string
	Width  int
}

// Key types for each record family.
var (
	Order   = Type{Prefix: "OD", Width: 3}
	Return  = Type{Prefix: "RID", Width: 6}
	Payment = Type{Prefix: "PID", Width: 8}
)

// Next returns the key following last. An empty or unparseable last key
// counts as suffix 0, so issuance fails open and the first key of a type
// is always <PREFIX>0…01. When the incremented suffix no longer fits the
// configured width the key widens; it is never truncated or wrapped.
func (t Type) Next(last string) string {
	return t.Format(t.Suffix(last) + 1)
}

// First returns the first key of the type.
func (t Type) First() string {
	return t.Format(1)
}

// Suffix extracts the numeric suffix of key. A key that does not start
// with the type's prefix, or whose remainder is not a plain decimal
// number, yields 0.
func (t Type) Suffix(key string) uint64 {
	rest, ok := strings.CutPrefix(key, t.Prefix)
	if !ok || rest == "" {
		return 0
	}

	n, err := strconv.ParseUint(rest, 10, 64)
	if err != nil {
		return 0
	}

	return n
}

// Format renders n as a key of this type, zero-padded to the configured
// width. Values wider than the width are rendered at their natural width.
func (t Type) Format(n uint64) string {
	digits := strconv.FormatUint(n, 10)
	if pad := t.Width - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}

	return t.Prefix + digits
}

// Valid reports whether key is a well-formed key of this type.
func (t Type) Valid(key string) bool {
	rest, ok := strings.CutPrefix(key, t.Prefix)
	if !ok || len(rest) < t.Width {
		return false
	}

	_, err := strconv.ParseUint(rest, 10, 64)

	return err == nil
}
