package validate

import (
	"log/slog"

	"github.com/skosovsky/annohelper"
)

// NewTagCheckerFor returns a checker accepting the profile's AllowedTags.
func NewTagCheckerFor(p *annohelper.Profile) *TagChecker {
	return NewTagChecker(p.AllowedTags)
}

// NewTagPoller returns a Poller for tag checks at the profile's TagPoll interval.
func NewTagPoller(p *annohelper.Profile, logger *slog.Logger) *Poller {
	return NewPoller(p.Timings.TagPoll, logger)
}

// NewHeartbeat returns a Poller for form checks at the profile's Heartbeat interval.
func NewHeartbeat(p *annohelper.Profile, logger *slog.Logger) *Poller {
	return NewPoller(p.Timings.Heartbeat, logger)
}
