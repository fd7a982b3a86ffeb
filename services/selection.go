package services

import (
	"github.com/Denys1771/hifi-backend/extractor"
)

// SelectPreviewURL picks the playable URL exposed on search results and
// track lookups: the first audio-only format in original list order, falling
// back to the entry's own best-overall URL. This is a first-match selection;
// bitrates are never compared on this path.
func SelectPreviewURL(e *extractor.Entry) (string, bool) {
	var url string
	for _, f := range e.Formats {
		if f.AudioOnly() {
			url = f.URL
			break
		}
	}
	if url == "" {
		url = e.URL
	}
	return url, url != ""
}

// SelectStreamURL picks the URL exposed on the stream and download
// endpoints: among all formats that carry audio, the one with the highest
// reported bitrate. Unknown bitrates count as zero and ties keep the first
// format encountered. The entry's top-level URL is only consulted when no
// format carries audio at all.
//
// Kept deliberately separate from SelectPreviewURL: the preview path stops
// at the first match, this one pays for the full scan because stream
// quality matters here.
func SelectStreamURL(e *extractor.Entry) (string, bool) {
	best := -1
	for i, f := range e.Formats {
		if !f.HasAudio() {
			continue
		}
		if best == -1 || f.ABR > e.Formats[best].ABR {
			best = i
		}
	}
	if best >= 0 {
		url := e.Formats[best].URL
		return url, url != ""
	}
	return e.URL, e.URL != ""
}
