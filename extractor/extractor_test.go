package extractor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFakeBinary creates a shell script standing in for yt-dlp. The script
// records its arguments and prints the given stdout payload.
func writeFakeBinary(t *testing.T, stdout string, exitCode int) (bin, argsFile string) {
	t.Helper()

	tmpDir := t.TempDir()
	bin = filepath.Join(tmpDir, "yt-dlp")
	argsFile = filepath.Join(tmpDir, "args")

	script := fmt.Sprintf(`#!/bin/sh
printf '%%s\n' "$@" > %q
cat <<'PAYLOAD'
%s
PAYLOAD
exit %d
`, argsFile, stdout, exitCode)

	require.NoError(t, os.WriteFile(bin, []byte(script), 0755))
	return bin, argsFile
}

func TestSearch(t *testing.T) {
	payload := `{"entries":[
		{"id":"abc123","title":"Artist - Song","uploader":"Artist",
		 "thumbnail":"https://img.example/abc123.jpg","duration":215.3,
		 "formats":[
			{"acodec":"none","vcodec":"vp9","url":"https://cdn.example/video"},
			{"acodec":"opus","vcodec":"none","abr":160,"url":"https://cdn.example/audio"}
		 ]},
		{"id":"def456","title":"Other Song","duration":98,
		 "url":"https://cdn.example/fallback","formats":[]}
	]}`
	bin, argsFile := writeFakeBinary(t, payload, 0)

	client := NewClient(Options{BinaryPath: bin, Quiet: true, FormatPreference: "bestaudio/best"})
	entries, err := client.Search(context.Background(), "test query", 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "abc123", entries[0].ID)
	assert.Equal(t, "Artist - Song", entries[0].Title)
	assert.Equal(t, "Artist", entries[0].Uploader)
	assert.InDelta(t, 215.3, entries[0].Duration, 0.001)
	require.Len(t, entries[0].Formats, 2)
	assert.False(t, entries[0].Formats[0].AudioOnly())
	assert.True(t, entries[0].Formats[1].AudioOnly())

	assert.Equal(t, "https://cdn.example/fallback", entries[1].URL)

	args, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Contains(t, string(args), "ytsearch10:test query")
	assert.Contains(t, string(args), "--dump-single-json")
	assert.Contains(t, string(args), "--skip-download")
	assert.Contains(t, string(args), "--no-warnings")
	assert.Contains(t, string(args), "bestaudio/best")
}

func TestSearchEmptyResult(t *testing.T) {
	bin, _ := writeFakeBinary(t, `{"entries":[]}`, 0)

	client := NewClient(Options{BinaryPath: bin})
	entries, err := client.Search(context.Background(), "no matches", 20)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSearchEngineFailure(t *testing.T) {
	bin, _ := writeFakeBinary(t, "", 1)

	client := NewClient(Options{BinaryPath: bin})
	_, err := client.Search(context.Background(), "boom", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yt-dlp failed")
}

func TestSearchMalformedOutput(t *testing.T) {
	bin, _ := writeFakeBinary(t, "not json at all", 0)

	client := NewClient(Options{BinaryPath: bin})
	_, err := client.Search(context.Background(), "garbage", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse yt-dlp output")
}

func TestLookup(t *testing.T) {
	payload := `{"id":"abc123","title":"Artist - Song","uploader":"Artist",
		"album":"Greatest Hits","duration":215,
		"formats":[{"acodec":"mp4a.40.2","vcodec":"none","abr":128,"url":"https://cdn.example/audio"}]}`
	bin, argsFile := writeFakeBinary(t, payload, 0)

	client := NewClient(Options{BinaryPath: bin})
	entry, err := client.Lookup(context.Background(), "abc123")
	require.NoError(t, err)

	assert.Equal(t, "abc123", entry.ID)
	assert.Equal(t, "Greatest Hits", entry.Album)
	require.Len(t, entry.Formats, 1)

	args, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Contains(t, string(args), "https://www.youtube.com/watch?v=abc123")
}

func TestLookupContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(DefaultOptions())
	_, err := client.Lookup(ctx, "abc123")
	require.Error(t, err)
}

func TestFlatExtractionFlag(t *testing.T) {
	bin, argsFile := writeFakeBinary(t, `{"entries":[]}`, 0)

	client := NewClient(Options{BinaryPath: bin, FlatExtraction: true})
	_, err := client.Search(context.Background(), "anything", 5)
	require.NoError(t, err)

	args, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Contains(t, string(args), "--flat-playlist")
}
