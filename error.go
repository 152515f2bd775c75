// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package mjcf

import (
	"strconv"
)

// ErrorKind is the kind of an Error.
type ErrorKind int

// Error kinds.
const (
	// The document is not well-formed XML.
	BadXML ErrorKind = iota
	// A required element is missing. Error.Tag names it.
	MissingRequiredTag
	// A worldbody element has attributes.
	WorldBodyHasAttributes
	// A worldbody element has a child that is not allowed
	// there. Error.Tag names it.
	WorldBodyInvalidChildren
	// A geom element is invalid. Error.Err is one of the
	// errors of package geom.
	Geom
)

func (k ErrorKind) String() string {
	switch k {
	case BadXML:
		return "BadXML"
	case MissingRequiredTag:
		return "MissingRequiredTag"
	case WorldBodyHasAttributes:
		return "WorldBodyHasAttributes"
	case WorldBodyInvalidChildren:
		return "WorldBodyInvalidChildren"
	case Geom:
		return "Geom"
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// Error is the error returned by the parsing functions.
type Error struct {
	Kind ErrorKind
	Tag  string
	// Line of the offending element, or 0 if unknown.
	Line int
	Err  error
}

func (e *Error) Error() string {
	s := "mjcf: "
	if e.Line > 0 {
		s += "line " + strconv.Itoa(e.Line) + ": "
	}
	switch e.Kind {
	case BadXML:
		s += "bad XML"
	case MissingRequiredTag:
		s += "missing required tag <" + e.Tag + ">"
	case WorldBodyHasAttributes:
		s += "worldbody tag has attributes"
	case WorldBodyInvalidChildren:
		s += "worldbody has invalid child <" + e.Tag + ">"
	case Geom:
		s += "invalid geom"
	default:
		s += e.Kind.String()
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind.
// A target with an empty Tag matches any tag.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Tag == "" || t.Tag == e.Tag)
}
