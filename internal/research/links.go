package research

import (
	"net/url"
	"strings"

	"github.com/pthm/contentlint/internal/researcher"
	"github.com/pthm/contentlint/internal/text"
)

// LinkStats splits the anchors of a text into internal and outbound links.
// Fragment, mailto and tel links are ignored.
type LinkStats struct {
	Total            int         `json:"total"`
	Internal         []text.Link `json:"internal,omitempty"`
	Outbound         []text.Link `json:"outbound,omitempty"`
	OutboundNoFollow int         `json:"outbound_nofollow"`
}

// Links classifies every anchor by comparing its host with the paper URL.
// Relative links are internal. Without a paper URL every absolute link is
// outbound.
func Links(r *researcher.Researcher) LinkStats {
	home := hostOf(r.Paper().URL())

	var stats LinkStats
	for _, l := range text.Links(r.Paper().Text()) {
		href := strings.TrimSpace(l.Href)
		u, err := url.Parse(href)
		if err != nil || strings.HasPrefix(href, "#") {
			continue
		}
		switch u.Scheme {
		case "mailto", "tel", "javascript":
			continue
		}

		stats.Total++
		host := strings.ToLower(strings.TrimPrefix(u.Hostname(), "www."))
		if host == "" || (home != "" && host == home) {
			stats.Internal = append(stats.Internal, l)
			continue
		}
		stats.Outbound = append(stats.Outbound, l)
		if l.NoFollow {
			stats.OutboundNoFollow++
		}
	}
	return stats
}

func hostOf(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(u.Hostname(), "www."))
}
