package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Denys1771/hifi-backend/config"
	"github.com/Denys1771/hifi-backend/extractor"
)

// stubEngine is a canned extraction engine for resolver tests.
type stubEngine struct {
	searchEntries []extractor.Entry
	searchErr     error
	searchLimit   int

	lookupEntry *extractor.Entry
	lookupErr   error
}

func (s *stubEngine) Search(_ context.Context, _ string, limit int) ([]extractor.Entry, error) {
	s.searchLimit = limit
	return s.searchEntries, s.searchErr
}

func (s *stubEngine) Lookup(context.Context, string) (*extractor.Entry, error) {
	return s.lookupEntry, s.lookupErr
}

func testSearchConfig() config.SearchConfig {
	return config.SearchConfig{LegacyLimit: 10, CatalogLimit: 20}
}

func TestResolverSearch(t *testing.T) {
	engine := &stubEngine{
		searchEntries: []extractor.Entry{
			{
				ID:    "ok",
				Title: "Has Audio",
				Formats: []extractor.Format{
					{ACodec: "opus", VCodec: "none", URL: "https://cdn.example/audio"},
				},
			},
			{
				ID:    "dropped",
				Title: "No Audio At All",
				Formats: []extractor.Format{
					{ACodec: "none", VCodec: "vp9"},
				},
			},
		},
	}
	resolver := NewResolver(engine, testSearchConfig(), nil, nil)

	tracks, err := resolver.Search(context.Background(), "query")
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, "ok", tracks[0].ID)
	assert.Equal(t, 10, engine.searchLimit)
}

func TestResolverSearchPropagatesEngineError(t *testing.T) {
	engine := &stubEngine{searchErr: errors.New("extractor blew up")}
	resolver := NewResolver(engine, testSearchConfig(), nil, nil)

	_, err := resolver.Search(context.Background(), "query")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extractor blew up")
}

func TestResolverSearchEmptyIsSuccess(t *testing.T) {
	resolver := NewResolver(&stubEngine{}, testSearchConfig(), nil, nil)

	tracks, err := resolver.Search(context.Background(), "no matches")
	require.NoError(t, err)
	assert.Empty(t, tracks)
}

func TestResolverSearchCatalogSwallowsEngineError(t *testing.T) {
	engine := &stubEngine{searchErr: errors.New("extractor blew up")}
	resolver := NewResolver(engine, testSearchConfig(), nil, nil)

	tracks := resolver.SearchCatalog(context.Background(), "query")
	assert.NotNil(t, tracks)
	assert.Empty(t, tracks)
	assert.Equal(t, 20, engine.searchLimit)
}

func TestResolverLookup(t *testing.T) {
	engine := &stubEngine{
		lookupEntry: &extractor.Entry{
			ID:       "abc123",
			Title:    "Artist - Song",
			Duration: 100,
			Formats: []extractor.Format{
				{ACodec: "opus", VCodec: "none", ABR: 160, URL: "https://cdn.example/audio"},
			},
		},
	}
	resolver := NewResolver(engine, testSearchConfig(), nil, nil)

	detail, err := resolver.Lookup(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", detail.ID)
	assert.Equal(t, "https://cdn.example/audio", detail.AudioURL)
	assert.Equal(t, "160 kbps", detail.Bitrate)
}

func TestResolverLookupNoAudio(t *testing.T) {
	engine := &stubEngine{lookupEntry: &extractor.Entry{ID: "abc123"}}
	resolver := NewResolver(engine, testSearchConfig(), nil, nil)

	_, err := resolver.Lookup(context.Background(), "abc123")
	require.ErrorIs(t, err, ErrNoAudio)
}

func TestResolverLookupEngineError(t *testing.T) {
	engine := &stubEngine{lookupErr: errors.New("video unavailable")}
	resolver := NewResolver(engine, testSearchConfig(), nil, nil)

	_, err := resolver.Lookup(context.Background(), "abc123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoAudio)
}

func TestResolverStreamURLPicksBestBitrate(t *testing.T) {
	engine := &stubEngine{
		lookupEntry: &extractor.Entry{
			ID: "abc123",
			Formats: []extractor.Format{
				{ACodec: "opus", VCodec: "none", ABR: 64, URL: "https://cdn.example/low"},
				{ACodec: "opus", VCodec: "none", ABR: 160, URL: "https://cdn.example/high"},
			},
		},
	}
	resolver := NewResolver(engine, testSearchConfig(), nil, nil)

	url, err := resolver.StreamURL(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/high", url)
}

func TestResolverStreamURLNoAudio(t *testing.T) {
	engine := &stubEngine{lookupEntry: &extractor.Entry{ID: "abc123"}}
	resolver := NewResolver(engine, testSearchConfig(), nil, nil)

	_, err := resolver.StreamURL(context.Background(), "abc123")
	require.ErrorIs(t, err, ErrNoAudio)
}
