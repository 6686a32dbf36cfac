package annohelper

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"unicode/utf8"
)

// panelFuncMap returns the template.FuncMap used for panel rendering.
func panelFuncMap() template.FuncMap {
	return template.FuncMap{
		"pad":     pad,
		"percent": percent,
	}
}

// pad right-pads s with spaces to width runes. Longer strings get a single trailing space.
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-n)
}

// percent returns part/total as a whole percentage; 0 when total is 0.
func percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return part * 100 / total
}

func execute(tpl *template.Template, data any) (string, error) {
	if tpl == nil {
		return "", fmt.Errorf("%w: profile not built with NewProfile", ErrTemplateParse)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %w", ErrPanelRender, err)
	}
	return buf.String(), nil
}
