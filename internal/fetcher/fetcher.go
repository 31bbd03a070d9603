package fetcher

import (
	"context"
	"errors"
)

var (
	// ErrCookiesMissing is returned before any network access when the
	// configured cookies file is required but absent.
	ErrCookiesMissing = errors.New("cookies file not found, upload your YouTube cookies")

	// ErrArtifactMissing is returned when the collaborator reported success
	// but the expected audio file is not on disk.
	ErrArtifactMissing = errors.New("produced audio file not found")
)

// ProgressFunc receives download progress. Reporting is best effort: it fires
// during the download phase only and its absence never affects the outcome.
type ProgressFunc func(bytesDownloaded, bytesTotal int64)

// Result describes one finished fetch job.
type Result struct {
	JobID           string
	WorkDir         string
	ArtifactPath    string
	ThumbnailPath   string
	Title           string
	Uploader        string
	DurationSeconds int
	SizeBytes       int64
}

type Fetcher interface {
	// Fetch downloads the media behind url into a fresh working directory and
	// transcodes it to mp3. A non-nil progress sink may be invoked repeatedly
	// during the download phase.
	Fetch(ctx context.Context, url string, progress ProgressFunc) (*Result, error)

	// Cleanup removes the job's working directory. Best effort and
	// idempotent; failures are logged, never propagated.
	Cleanup(result *Result)
}
