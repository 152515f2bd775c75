// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package xmldoc builds an element tree from an XML document.
//
// The decoder is strict: mismatched or unclosed tags,
// duplicate attributes, character data outside of the root
// element and documents with more than one root element are
// all rejected. Documents that declare a non-UTF-8 encoding
// are converted while decoding.
package xmldoc

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// Element is an XML element.
type Element struct {
	Name     string
	Attrs    []xml.Attr
	Children []*Element
	// Line in the source document where the start tag
	// ends.
	Line int
}

// Attr returns the value of the attribute with the given
// local name, and whether such attribute exists.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Local == name && a.Name.Space == "" {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttr returns whether e has the named attribute.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// String implements fmt.Stringer.
func (e *Element) String() string {
	var b strings.Builder
	b.WriteString("<" + e.Name)
	for _, a := range e.Attrs {
		fmt.Fprintf(&b, " %s=%q", a.Name.Local, a.Value)
	}
	b.WriteString(">")
	return b.String()
}

func newErr(reason string) error {
	return errors.New("xmldoc: " + reason)
}

// Parse parses text and returns its root element.
func Parse(text string) (*Element, error) {
	return Decode(strings.NewReader(text))
}

// ParseBytes is like Parse but takes a byte slice.
func ParseBytes(b []byte) (*Element, error) {
	return Decode(bytes.NewReader(b))
}

// Decode decodes r and returns its root element.
func Decode(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = true
	dec.CharsetReader = charset.NewReaderLabel

	var root *Element
	var stack []*Element
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			if len(stack) == 0 && root != nil {
				return nil, newErr("multiple root elements")
			}
			line, _ := dec.InputPos()
			elem := &Element{
				Name:  tok.Name.Local,
				Attrs: tok.Copy().Attr,
				Line:  line,
			}
			if err := checkAttrs(elem); err != nil {
				return nil, err
			}
			if n := len(stack); n > 0 {
				stack[n-1].Children = append(stack[n-1].Children, elem)
			} else {
				root = elem
			}
			stack = append(stack, elem)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 && len(bytes.TrimSpace(tok)) != 0 {
				line, _ := dec.InputPos()
				return nil, fmt.Errorf("xmldoc: line %d: character data outside of root element", line)
			}
		}
	}
	if root == nil {
		return nil, newErr("no root element")
	}
	return root, nil
}

// checkAttrs checks that e has no duplicate attributes.
func checkAttrs(e *Element) error {
	for i := range e.Attrs {
		for j := i + 1; j < len(e.Attrs); j++ {
			if e.Attrs[i].Name == e.Attrs[j].Name {
				return fmt.Errorf("xmldoc: line %d: duplicate attribute %q in <%s>", e.Line, e.Attrs[i].Name.Local, e.Name)
			}
		}
	}
	return nil
}
