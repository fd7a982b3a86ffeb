package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Denys1771/hifi-backend/config"
	"github.com/Denys1771/hifi-backend/extractor"
	"github.com/Denys1771/hifi-backend/metrics"
	"github.com/Denys1771/hifi-backend/types"
)

// ErrNoAudio marks an entry the engine resolved but for which no playable
// audio URL could be selected. Search drops such entries silently; single
// lookups surface this as not-found.
var ErrNoAudio = errors.New("no playable audio url")

// Resolver turns queries and video identifiers into public track shapes.
// It holds no cross-request state; every call independently invokes the
// extraction engine.
type Resolver struct {
	engine  extractor.Engine
	search  config.SearchConfig
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewResolver creates a Resolver. logger and m may be nil in tests.
func NewResolver(engine extractor.Engine, search config.SearchConfig, logger *zap.Logger, m *metrics.Metrics) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		engine:  engine,
		search:  search,
		logger:  logger,
		metrics: m,
	}
}

// Search resolves a free-text query into legacy tracks. Engine failures
// propagate to the caller; entries without a playable URL are dropped.
// Zero matches is a success with an empty list.
func (r *Resolver) Search(ctx context.Context, query string) ([]types.Track, error) {
	entries, err := r.engine.Search(ctx, query, r.search.LegacyLimit)
	r.observeEngineCall("search", err)
	if err != nil {
		r.logger.Error("search failed", zap.String("query", query), zap.Error(err))
		return nil, err
	}

	tracks := make([]types.Track, 0, len(entries))
	for i := range entries {
		url, ok := SelectPreviewURL(&entries[i])
		if !ok {
			r.countDropped()
			continue
		}
		tracks = append(tracks, NewLegacyTrack(&entries[i], url))
		r.countResolved()
	}

	r.logger.Info("search resolved",
		zap.String("query", query),
		zap.Int("entries", len(entries)),
		zap.Int("tracks", len(tracks)))
	return tracks, nil
}

// SearchCatalog resolves a free-text query into catalog tracks. This is the
// lenient family: engine failures degrade to an empty result set.
func (r *Resolver) SearchCatalog(ctx context.Context, query string) []types.CatalogTrack {
	entries, err := r.engine.Search(ctx, query, r.search.CatalogLimit)
	r.observeEngineCall("search", err)
	if err != nil {
		r.logger.Warn("catalog search failed, returning empty result",
			zap.String("query", query), zap.Error(err))
		return []types.CatalogTrack{}
	}

	tracks := make([]types.CatalogTrack, 0, len(entries))
	for i := range entries {
		url, ok := SelectPreviewURL(&entries[i])
		if !ok {
			r.countDropped()
			continue
		}
		tracks = append(tracks, NewCatalogTrack(&entries[i], url))
		r.countResolved()
	}

	r.logger.Info("catalog search resolved",
		zap.String("query", query),
		zap.Int("entries", len(entries)),
		zap.Int("tracks", len(tracks)))
	return tracks
}

// Lookup resolves a single video identifier into a track detail. Returns
// ErrNoAudio when the entry carries no usable URL.
func (r *Resolver) Lookup(ctx context.Context, id string) (*types.TrackDetail, error) {
	entry, err := r.engine.Lookup(ctx, id)
	r.observeEngineCall("lookup", err)
	if err != nil {
		r.logger.Error("track lookup failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	url, ok := SelectPreviewURL(entry)
	if !ok {
		r.countDropped()
		return nil, ErrNoAudio
	}
	r.countResolved()

	detail := NewTrackDetail(entry, url)
	return &detail, nil
}

// StreamURL picks the best-bitrate audio URL for the stream and download
// endpoints. Returns ErrNoAudio when nothing usable was found.
func (r *Resolver) StreamURL(ctx context.Context, id string) (string, error) {
	entry, err := r.engine.Lookup(ctx, id)
	r.observeEngineCall("lookup", err)
	if err != nil {
		r.logger.Error("stream lookup failed", zap.String("id", id), zap.Error(err))
		return "", err
	}

	url, ok := SelectStreamURL(entry)
	if !ok {
		return "", ErrNoAudio
	}
	return url, nil
}

func (r *Resolver) observeEngineCall(operation string, err error) {
	if r.metrics != nil {
		r.metrics.ObserveEngineCall(operation, err)
	}
}

func (r *Resolver) countResolved() {
	if r.metrics != nil {
		r.metrics.TracksResolved.Inc()
	}
}

func (r *Resolver) countDropped() {
	if r.metrics != nil {
		r.metrics.TracksDropped.Inc()
	}
}
