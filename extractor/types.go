package extractor

// Format is one encoded delivery variant of an entry, as reported by yt-dlp.
type Format struct {
	ACodec string  `json:"acodec"`
	VCodec string  `json:"vcodec"`
	ABR    float64 `json:"abr"`
	URL    string  `json:"url"`
}

// HasAudio reports whether the format carries an audio stream. yt-dlp marks
// absence with the literal string "none"; a missing field counts as present.
func (f Format) HasAudio() bool {
	return f.ACodec != "none"
}

// AudioOnly reports whether the format is an audio-only stream. The video
// codec must be reported as "none" explicitly; a missing vcodec field does
// not qualify.
func (f Format) AudioOnly() bool {
	return f.HasAudio() && f.VCodec == "none"
}

// Entry is one candidate media item returned by yt-dlp for a query.
// URL is the extractor's own best-overall pick, used as a fallback when no
// audio-only format exists. Duration is in seconds.
type Entry struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Uploader  string   `json:"uploader"`
	Album     string   `json:"album"`
	Thumbnail string   `json:"thumbnail"`
	Duration  float64  `json:"duration"`
	URL       string   `json:"url"`
	Formats   []Format `json:"formats"`
}
