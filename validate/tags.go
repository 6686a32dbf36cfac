package validate

import (
	"fmt"
	"slices"
	"strings"
)

// TagChecker reports table rows whose tag is outside the allowed set.
type TagChecker struct {
	allowed map[string]struct{}
}

// NewTagChecker returns a checker accepting exactly the given tags (compared after trimming).
func NewTagChecker(allowed []string) *TagChecker {
	c := &TagChecker{allowed: make(map[string]struct{}, len(allowed))}
	for _, t := range allowed {
		c.allowed[strings.TrimSpace(t)] = struct{}{}
	}
	return c
}

// TagReport is the outcome of one tag check.
type TagReport struct {
	Total      int
	Bad        int
	BadIndexes []int // row indexes in input order
}

// OK reports whether every row carries an allowed tag.
func (r TagReport) OK() bool { return r.Bad == 0 }

// Message returns the warning banner text, or "" when all tags are allowed.
func (r TagReport) Message() string {
	if r.OK() {
		return ""
	}
	return fmt.Sprintf("存在 %d 条标签不合规！", r.Bad)
}

// Check classifies one tag per table row. A row without a tag is passed as "".
func (c *TagChecker) Check(tags []string) TagReport {
	rep := TagReport{Total: len(tags)}
	for i, t := range tags {
		if _, ok := c.allowed[strings.TrimSpace(t)]; !ok {
			rep.Bad++
			rep.BadIndexes = append(rep.BadIndexes, i)
		}
	}
	return rep
}

// Allowed returns the allowed tags in sorted order.
func (c *TagChecker) Allowed() []string {
	out := make([]string, 0, len(c.allowed))
	for t := range c.allowed {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}
