package spacex

import (
	"regexp"
	"unicode/utf16"
)

// VideoIDError is returned by ExtractVideoID when no identifier can be found.
// It still yields a well-formed (if broken) embed URL.
const VideoIDError = "error"

const (
	videoIDLen   = 11
	embedURLBase = "https://www.youtube.com/embed/"
)

// Matches youtu.be/<id>, /v/<id>, /u/<c>/<id>, /embed/<id>, ?v=<id> and &v=<id>.
var videoIDPattern = regexp.MustCompile(`^.*(youtu.be/|v/|u/\w/|embed/|\?v=|&v=)([^#&?]*).*`)

// ExtractVideoID returns the 11-character YouTube video ID in url, or
// VideoIDError when url is nil or has no recognizable ID.
func ExtractVideoID(url *string) string {
	if url == nil {
		return VideoIDError
	}
	match := videoIDPattern.FindStringSubmatch(*url)
	if match == nil || utf16Len(match[2]) != videoIDLen {
		return VideoIDError
	}
	return match[2]
}

// utf16Len counts UTF-16 code units, the unit the ID length is defined in.
// Real IDs are ASCII, where it equals len(s).
func utf16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// EmbedURL returns the embeddable player URL for a video ID.
func EmbedURL(videoID string) string {
	return embedURLBase + videoID
}
