// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package xmltree parses XML into a minimal element tree that supports
// depth-first tag lookups, the way upstream open-data responses need to be
// read: wrapper levels vary between services, so lookups match a tag at any
// depth rather than a fixed path.
package xmltree

import (
	"encoding/xml"
	"io"
	"strings"
)

// Node is one XML element: its local tag name, trimmed character data, and
// child elements in document order.
type Node struct {
	Tag      string
	Text     string
	Children []*Node
}

// Parse decodes xmlText into an element tree rooted at the document element.
// Returns an error for malformed input.
func Parse(xmlText string) (*Node, error) {
	dec := xml.NewDecoder(strings.NewReader(xmlText))
	var root *Node
	var stack []*Node

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Tag: t.Name.Local}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			} else if root == nil {
				root = n
			}
			stack = append(stack, n)
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		case xml.EndElement:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				top.Text = strings.TrimSpace(top.Text)
				stack = stack[:len(stack)-1]
			}
		}
	}
	if root == nil {
		return nil, &xml.SyntaxError{Msg: "no element found", Line: 1}
	}
	if len(stack) > 0 {
		return nil, &xml.SyntaxError{Msg: "unexpected EOF", Line: 1}
	}
	return root, nil
}

// FindText returns the trimmed text of the first element named tag, searching
// depth-first from n inclusive. Returns "" when no such element exists.
func (n *Node) FindText(tag string) string {
	found := n.find(tag)
	if found == nil {
		return ""
	}
	return found.Text
}

func (n *Node) find(tag string) *Node {
	if n.Tag == tag {
		return n
	}
	for _, c := range n.Children {
		if found := c.find(tag); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every element named tag, searching depth-first from n
// inclusive, in document order.
func (n *Node) FindAll(tag string) []*Node {
	var out []*Node
	n.collect(tag, &out)
	return out
}

func (n *Node) collect(tag string, out *[]*Node) {
	if n.Tag == tag {
		*out = append(*out, n)
	}
	for _, c := range n.Children {
		c.collect(tag, out)
	}
}
