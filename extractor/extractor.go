package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
)

// Engine resolves search queries and video identifiers into raw entries.
type Engine interface {
	Search(ctx context.Context, query string, limit int) ([]Entry, error)
	Lookup(ctx context.Context, id string) (*Entry, error)
}

// Options is the fixed set of extraction options. It is built once at
// startup and never mutated afterwards; per-request state lives in the
// command invocation itself.
type Options struct {
	// BinaryPath is the path to the yt-dlp executable. Defaults to "yt-dlp".
	BinaryPath string
	// Quiet suppresses progress output and warnings.
	Quiet bool
	// FlatExtraction skips per-entry format resolution (--flat-playlist).
	FlatExtraction bool
	// FormatPreference is the -f expression handed to yt-dlp.
	FormatPreference string
}

// DefaultOptions mirrors the extraction profile the service was built
// around: quiet, full extraction, best-audio preference.
func DefaultOptions() Options {
	return Options{
		BinaryPath:       "yt-dlp",
		Quiet:            true,
		FormatPreference: "bestaudio/best",
	}
}

const watchURLTemplate = "https://www.youtube.com/watch?v=%s"

// CommandClient implements Engine by invoking the yt-dlp binary.
type CommandClient struct {
	opts Options
}

// NewClient creates a CommandClient with the given options.
func NewClient(opts Options) *CommandClient {
	return &CommandClient{opts: opts}
}

// Search runs a bounded search-provider query and returns the raw entries.
// A query that matches nothing yields an empty slice, not an error.
func (c *CommandClient) Search(ctx context.Context, query string, limit int) ([]Entry, error) {
	out, err := c.run(ctx, fmt.Sprintf("ytsearch%d:%s", limit, query))
	if err != nil {
		return nil, err
	}

	var result struct {
		Entries []Entry `json:"entries"`
	}
	if err := json.Unmarshal(out, &result); err != nil {
		return nil, fmt.Errorf("failed to parse yt-dlp output: %w", err)
	}
	return result.Entries, nil
}

// Lookup resolves a single video identifier via its canonical watch URL.
func (c *CommandClient) Lookup(ctx context.Context, id string) (*Entry, error) {
	out, err := c.run(ctx, fmt.Sprintf(watchURLTemplate, id))
	if err != nil {
		return nil, err
	}

	var entry Entry
	if err := json.Unmarshal(out, &entry); err != nil {
		return nil, fmt.Errorf("failed to parse yt-dlp output: %w", err)
	}
	return &entry, nil
}

func (c *CommandClient) run(ctx context.Context, target string) ([]byte, error) {
	bin := c.opts.BinaryPath
	if bin == "" {
		bin = "yt-dlp"
	}

	args := []string{"--dump-single-json", "--skip-download"}
	if c.opts.Quiet {
		args = append(args, "--quiet", "--no-warnings")
	}
	if c.opts.FlatExtraction {
		args = append(args, "--flat-playlist")
	}
	if c.opts.FormatPreference != "" {
		args = append(args, "-f", c.opts.FormatPreference)
	}
	args = append(args, target)

	cmd := exec.CommandContext(ctx, bin, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("yt-dlp failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
