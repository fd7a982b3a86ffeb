package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Denys1771/hifi-backend/extractor"
	"github.com/Denys1771/hifi-backend/types"
)

const (
	legacyDefaultTitle  = "Sin título"
	legacyDefaultArtist = "Desconocido"

	defaultTitle  = "Unknown"
	defaultAlbum  = "Unknown"
	defaultArtist = "Unknown Artist"

	qualityLabel    = "High"
	sampleRateLabel = "44.1 kHz"
	unknownBitrate  = "Unknown"
	sourceYouTube   = "youtube"
	msPerSecond     = 1000
)

// Patterns tried in priority order by DeriveArtist. The hyphen and colon
// separators win over the parenthesis group, so "Artist - Song (Live)"
// resolves to "Artist", not "Live".
var artistPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(.+?)\s+-\s+`),
	regexp.MustCompile(`^(.+?)\s*:\s+`),
	regexp.MustCompile(`\(([^)]+)\)`),
}

// DeriveArtist guesses an artist name from a free-text title, returning the
// first capture of the first matching pattern, trimmed. Best effort only:
// the parenthesis pattern happily matches unrelated content like
// "(Official Video)". Unmatched titles yield "Unknown Artist".
func DeriveArtist(title string) string {
	for _, re := range artistPatterns {
		if m := re.FindStringSubmatch(title); m != nil {
			if artist := strings.TrimSpace(m[1]); artist != "" {
				return artist
			}
		}
	}
	return defaultArtist
}

// NewLegacyTrack maps a raw entry into the legacy track shape. Durations
// stay in seconds; absent album and thumbnail serialize as null.
func NewLegacyTrack(e *extractor.Entry, audioURL string) types.Track {
	t := types.Track{
		ID:       e.ID,
		Title:    e.Title,
		Artist:   e.Uploader,
		Duration: int(e.Duration),
		AudioURL: audioURL,
		Source:   sourceYouTube,
	}
	if t.Title == "" {
		t.Title = legacyDefaultTitle
	}
	if t.Artist == "" {
		t.Artist = legacyDefaultArtist
	}
	if e.Album != "" {
		t.Album = &e.Album
	}
	if e.Thumbnail != "" {
		t.CoverURL = &e.Thumbnail
	}
	return t
}

// NewCatalogTrack maps a raw entry into the catalog track shape. Durations
// are scaled to milliseconds, missing fields get "Unknown" defaults, and an
// entry without an uploader gets its artist derived from the title.
func NewCatalogTrack(e *extractor.Entry, audioURL string) types.CatalogTrack {
	title := e.Title
	if title == "" {
		title = defaultTitle
	}
	artist := e.Uploader
	if artist == "" {
		artist = DeriveArtist(e.Title)
	}
	album := e.Album
	if album == "" {
		album = defaultAlbum
	}
	return types.CatalogTrack{
		ID:       e.ID,
		Title:    title,
		Artist:   artist,
		Album:    album,
		Duration: int(e.Duration) * msPerSecond,
		CoverURL: e.Thumbnail,
		AudioURL: audioURL,
		Quality:  qualityLabel,
	}
}

// NewTrackDetail builds the single-track detail shape. The bitrate display
// string comes from the highest audio bitrate yt-dlp reported; the sample
// rate is a fixed display value, not measured.
func NewTrackDetail(e *extractor.Entry, audioURL string) types.TrackDetail {
	detail := types.TrackDetail{
		CatalogTrack: NewCatalogTrack(e, audioURL),
		Bitrate:      unknownBitrate,
		SampleRate:   sampleRateLabel,
	}
	if abr := maxAudioBitrate(e); abr > 0 {
		detail.Bitrate = fmt.Sprintf("%d kbps", int(abr))
	}
	return detail
}

func maxAudioBitrate(e *extractor.Entry) float64 {
	var max float64
	for _, f := range e.Formats {
		if f.HasAudio() && f.ABR > max {
			max = f.ABR
		}
	}
	return max
}
