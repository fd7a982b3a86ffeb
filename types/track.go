package types

// Track is a search result in the legacy API shape. Field names stay
// byte-compatible with the original HiFi clients, including the Spanish
// JSON keys. Duration is in seconds; Album and CoverURL serialize as null
// when the extractor reported nothing.
type Track struct {
	ID       string  `json:"id"`
	Title    string  `json:"titulo"`
	Artist   string  `json:"artista"`
	Album    *string `json:"album"`
	Duration int     `json:"duracion"`
	CoverURL *string `json:"imagenUrl"`
	AudioURL string  `json:"audioUrl"`
	Source   string  `json:"fuente"`
}

// SearchRequest is the body of the legacy POST search endpoint
type SearchRequest struct {
	Query string `json:"query"`
}

// SearchResponse wraps legacy search results
type SearchResponse struct {
	Tracks []Track `json:"tracks"`
}

// CatalogTrack is a search result in the catalog API shape. Duration is in
// milliseconds and missing fields are replaced with display defaults rather
// than nulls.
type CatalogTrack struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Album    string `json:"album"`
	Duration int    `json:"duration"`
	CoverURL string `json:"cover_url,omitempty"`
	AudioURL string `json:"audio_url"`
	Quality  string `json:"quality"`
}

// TrackDetail extends CatalogTrack with free-text quality display strings
// ("320 kbps", "44.1 kHz"). No unit validation is performed on these.
type TrackDetail struct {
	CatalogTrack
	Bitrate    string `json:"bitrate"`
	SampleRate string `json:"sample_rate"`
}
