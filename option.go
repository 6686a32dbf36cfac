package annohelper

// ProfileOption configures a Profile (functional options pattern).
type ProfileOption func(*Profile)

// WithMetadata sets profile metadata (id, version, title, locale).
func WithMetadata(meta ProfileMetadata) ProfileOption {
	return func(p *Profile) {
		p.Metadata = meta
	}
}

// WithAllowedTags sets the tag values the tag validator accepts.
// An empty, non-nil slice rejects every tag.
func WithAllowedTags(tags []string) ProfileOption {
	return func(p *Profile) {
		p.AllowedTags = tags
	}
}

// WithKeymap replaces the default shortcut bindings.
func WithKeymap(bindings []Binding) ProfileOption {
	return func(p *Profile) {
		p.Keymap = bindings
	}
}

// WithTimings sets overlay delays; zero fields keep their defaults.
func WithTimings(t Timings) ProfileOption {
	return func(p *Profile) {
		p.Timings = t
	}
}

// WithCountTemplate sets the text/template used for the counter tooltip.
// The template receives a CountResult.
func WithCountTemplate(tmpl string) ProfileOption {
	return func(p *Profile) {
		p.CountTemplate = tmpl
	}
}

// WithHelpTemplate sets the text/template used for the help panel.
// The template receives .Title and .Keymap.
func WithHelpTemplate(tmpl string) ProfileOption {
	return func(p *Profile) {
		p.HelpTemplate = tmpl
	}
}
