package annohelper

import (
	"context"
	"fmt"
	"slices"
	"text/template"
	"time"
)

// ProfileMetadata identifies a profile and where it came from.
type ProfileMetadata struct {
	ID          string // From manifest id
	Version     string
	Description string // Shown as the help panel title
	Locale      string // e.g. "zh", "en"
	Environment string // Set by registry when loading by env; not from manifest
}

// Timings holds the delays used by the overlays.
// Zero fields are replaced by DefaultTimings values in NewProfile.
type Timings struct {
	TooltipHide   time.Duration // counter tooltip auto-hide
	DeleteConfirm time.Duration // window for the second Delete press
	TagPoll       time.Duration // tag validator poll interval
	Heartbeat     time.Duration // form validator heartbeat
	PanelHide     time.Duration // help panel hide animation
}

// DefaultTimings returns the delays of the annotation page overlays.
func DefaultTimings() Timings {
	return Timings{
		TooltipHide:   3500 * time.Millisecond,
		DeleteConfirm: 3 * time.Second,
		TagPoll:       500 * time.Millisecond,
		Heartbeat:     3 * time.Second,
		PanelHide:     200 * time.Millisecond,
	}
}

func (t Timings) withDefaults() Timings {
	d := DefaultTimings()
	if t.TooltipHide <= 0 {
		t.TooltipHide = d.TooltipHide
	}
	if t.DeleteConfirm <= 0 {
		t.DeleteConfirm = d.DeleteConfirm
	}
	if t.TagPoll <= 0 {
		t.TagPoll = d.TagPoll
	}
	if t.Heartbeat <= 0 {
		t.Heartbeat = d.Heartbeat
	}
	if t.PanelHide <= 0 {
		t.PanelHide = d.PanelHide
	}
	return t
}

// Default panel templates (zh).
const (
	DefaultCountTemplate = `单词+汉字+数字: {{ .Meaningful }}
中文汉字: {{ .Chinese }}
英文单词: {{ .EnglishWords }} ({{ .EnglishChars }}字母)
阿拉伯数字: {{ .Numbers }} ({{ .NumberDigits }}数字)
标点空格: {{ .Punctuation }}`

	DefaultHelpTemplate = `{{ .Title }}
{{ range .Keymap }}{{ pad .DisplayKey 8 }}{{ .Description }}
{{ end }}`

	defaultTitle = "AGI标注快捷键指南"
)

// Profile bundles the per-site configuration of the overlays.
// Use NewProfile to construct; fields must not be mutated after construction.
type Profile struct {
	Metadata      ProfileMetadata
	AllowedTags   []string
	Keymap        []Binding
	Timings       Timings
	CountTemplate string
	HelpTemplate  string
	countTpl      *template.Template
	helpTpl       *template.Template
}

// NewProfile builds a profile with defensive copies and applies options.
// Unset fields fall back to the annotation page defaults.
// Returns ErrTemplateParse if a panel template fails to parse and
// ErrInvalidManifest if a keymap binding is malformed.
func NewProfile(opts ...ProfileOption) (*Profile, error) {
	p := &Profile{}
	for _, opt := range opts {
		opt(p)
	}
	if p.AllowedTags == nil {
		p.AllowedTags = DefaultAllowedTags()
	} else {
		p.AllowedTags = slices.Clone(p.AllowedTags)
	}
	if p.Keymap == nil {
		p.Keymap = DefaultKeymap()
	} else {
		p.Keymap = slices.Clone(p.Keymap)
	}
	for i, b := range p.Keymap {
		if err := validateBinding(i, b); err != nil {
			return nil, err
		}
	}
	p.Timings = p.Timings.withDefaults()
	if p.CountTemplate == "" {
		p.CountTemplate = DefaultCountTemplate
	}
	if p.HelpTemplate == "" {
		p.HelpTemplate = DefaultHelpTemplate
	}
	if p.Metadata.Description == "" {
		p.Metadata.Description = defaultTitle
	}
	var err error
	if p.countTpl, err = template.New("count").Funcs(panelFuncMap()).Parse(p.CountTemplate); err != nil {
		return nil, fmt.Errorf("%w: count: %w", ErrTemplateParse, err)
	}
	if p.helpTpl, err = template.New("help").Funcs(panelFuncMap()).Parse(p.HelpTemplate); err != nil {
		return nil, fmt.Errorf("%w: help: %w", ErrTemplateParse, err)
	}
	return p, nil
}

// CloneProfile returns a copy of the profile with cloned slice fields.
// Registries use this so callers cannot mutate the cached profile.
func CloneProfile(p *Profile) *Profile {
	if p == nil {
		return nil
	}
	out := *p
	out.AllowedTags = slices.Clone(p.AllowedTags)
	out.Keymap = slices.Clone(p.Keymap)
	return &out
}

// RenderCount renders the counter tooltip text for res.
func (p *Profile) RenderCount(ctx context.Context, res CountResult) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	return execute(p.countTpl, res)
}

type helpData struct {
	Title  string
	Keymap []Binding
}

// RenderHelp renders the shortcut help panel text.
func (p *Profile) RenderHelp(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	return execute(p.helpTpl, helpData{Title: p.Metadata.Description, Keymap: p.Keymap})
}

// ProfileRegistry returns a profile by name and environment.
type ProfileRegistry interface {
	GetProfile(ctx context.Context, name, env string) (*Profile, error)
}
