package shortcut

import (
	"slices"
	"strings"
)

// XPath hover highlighting.
const (
	XPathClass     = "xpath-element"
	XPathHighlight = "#fff2e8" // background while the pointer is over the element
)

// HoverTarget is the element under the pointer.
type HoverTarget struct {
	Text    string   // element textContent
	Classes []string // element classList
}

// IsXPathTarget reports whether t is highlighted on hover: its text contains
// "xpath" (case-sensitive) or it carries XPathClass.
func IsXPathTarget(t HoverTarget) bool {
	return strings.Contains(t.Text, "xpath") || slices.Contains(t.Classes, XPathClass)
}

// HoverBackground returns the background an xpath element gets when the
// pointer enters ("" restores it when the pointer leaves).
// ok is false when t is not an xpath element and must be left alone.
func HoverBackground(t HoverTarget, entered bool) (color string, ok bool) {
	if !IsXPathTarget(t) {
		return "", false
	}
	if entered {
		return XPathHighlight, true
	}
	return "", true
}
