package player

import (
	"net/url"
	"strings"
)

const watchURLPrefix = "https://www.youtube.com/watch?v="

// WatchURL returns the watch page URL for a video id.
func WatchURL(id string) string {
	return watchURLPrefix + url.QueryEscape(id)
}

// VideoID extracts the video id from a YouTube URL.
// A bare id is returned unchanged; unrecognised URLs yield "".
func VideoID(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "/") && !strings.Contains(raw, "?") {
		return raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")
	host = strings.TrimPrefix(host, "music.")

	switch host {
	case "youtu.be":
		return firstSegment(u.Path)
	case "youtube.com", "youtube-nocookie.com":
		if v := u.Query().Get("v"); v != "" {
			return v
		}
		for _, prefix := range []string{"/embed/", "/live/", "/shorts/", "/v/"} {
			if rest, ok := strings.CutPrefix(u.Path, prefix); ok {
				return firstSegment(rest)
			}
		}
	}
	return ""
}

func firstSegment(p string) string {
	p = strings.TrimPrefix(p, "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	return p
}
