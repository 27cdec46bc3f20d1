// Package modeldto provides models for data transfer objects exchanged with the session API.

package modeldto

import (
	"bytes"
	"encoding/json"
	"math/big"
)

type (
	SessionRequest struct {
		Genero  string `json:"genero" example:"male"`
		Dataset string `json:"dataset" example:"common_voice"`
	}

	// SessionRecord is the subset of a session object the checks look at.
	SessionRecord struct {
		ID SessionID `json:"id"`
	}
)

type idKind int

const (
	kindString idKind = iota
	kindNumber
	kindLiteral
)

// SessionID is an opaque session identifier. The API normally encodes it as
// a JSON string or a JSON number; any other JSON value is kept verbatim as a
// literal token. Kinds never compare equal to each other.
type SessionID struct {
	value string
	kind  idKind
}

// NewSessionID returns a string-kind identifier.
func NewSessionID(v string) SessionID {
	return SessionID{value: v, kind: kindString}
}

// NewNumericSessionID returns a number-kind identifier from its JSON literal.
func NewNumericSessionID(literal string) SessionID {
	return SessionID{value: literal, kind: kindNumber}
}

// UnmarshalJSON accepts any JSON value.
func (s *SessionID) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*s = SessionID{}
	case string:
		*s = NewSessionID(t)
	case json.Number:
		*s = NewNumericSessionID(t.String())
	default:
		var compact bytes.Buffer
		if err := json.Compact(&compact, b); err != nil {
			return err
		}
		*s = SessionID{value: compact.String(), kind: kindLiteral}
	}
	return nil
}

// MarshalJSON writes the identifier back in its original kind.
func (s SessionID) MarshalJSON() ([]byte, error) {
	switch {
	case s.value == "":
		return []byte("null"), nil
	case s.kind == kindString:
		return json.Marshal(s.value)
	default:
		return []byte(s.value), nil
	}
}

// IsZero reports whether the identifier is absent or falsy: null, "", 0,
// false, [] or {}.
func (s SessionID) IsZero() bool {
	switch s.kind {
	case kindNumber:
		f, ok := s.number()
		return s.value == "" || (ok && f.Sign() == 0)
	case kindLiteral:
		return s.value == "false" || s.value == "[]" || s.value == "{}"
	default:
		return s.value == ""
	}
}

// Numeric reports whether the identifier was encoded as a JSON number.
func (s SessionID) Numeric() bool { return s.kind == kindNumber }

// Equal compares kinds, then values: numbers by magnitude, everything else
// by literal text.
func (s SessionID) Equal(other SessionID) bool {
	if s.kind != other.kind {
		return false
	}
	if s.kind == kindNumber {
		a, okA := s.number()
		b, okB := other.number()
		if okA && okB {
			return a.Cmp(b) == 0
		}
	}
	return s.value == other.value
}

func (s SessionID) String() string { return s.value }

func (s SessionID) number() (*big.Float, bool) {
	f, ok := new(big.Float).SetPrec(256).SetString(s.value)
	return f, ok
}
