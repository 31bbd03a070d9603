package testutils

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vgasparyan/youtube-audio-bot/internal/config"
	"github.com/vgasparyan/youtube-audio-bot/internal/fetcher"
	"github.com/vgasparyan/youtube-audio-bot/internal/history"
)

// TestConfig returns a configuration suitable for handler tests.
func TestConfig(downloadDir string) *config.Config {
	return &config.Config{
		BotToken:    "test-token",
		DownloadDir: downloadDir,
		CookiesFile: filepath.Join(downloadDir, "cookies.txt"),
		DefaultLang: "en",
		FetchSettings: config.FetchConfig{
			MaxConcurrentFetches:   3,
			ProgressUpdateInterval: time.Millisecond,
		},
	}
}

// StubFetcher implements fetcher.Fetcher with a scripted outcome.
type StubFetcher struct {
	mu sync.Mutex

	// Result and Err script the Fetch outcome. When Result is set, its
	// artifact file is created on disk so delivery checks can stat it.
	Result *fetcher.Result
	Err    error

	// Progress, if non-empty, is replayed into the progress sink.
	Progress [][2]int64

	FetchCalls   []string
	CleanupCalls int
}

func (s *StubFetcher) Fetch(_ context.Context, url string, progress fetcher.ProgressFunc) (*fetcher.Result, error) {
	s.mu.Lock()
	s.FetchCalls = append(s.FetchCalls, url)
	s.mu.Unlock()

	if progress != nil {
		for _, p := range s.Progress {
			progress(p[0], p[1])
		}
	}

	if s.Err != nil {
		return nil, s.Err
	}
	return s.Result, nil
}

func (s *StubFetcher) Cleanup(_ *fetcher.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.CleanupCalls++
}

// CleanupCount returns the number of Cleanup calls recorded so far.
func (s *StubFetcher) CleanupCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.CleanupCalls
}

// FetchCount returns the number of Fetch calls recorded so far.
func (s *StubFetcher) FetchCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.FetchCalls)
}

// NewStubResult builds a Result backed by a real artifact file of the given
// size (written sparsely via Truncate).
func NewStubResult(dir, title string, sizeBytes int64) (*fetcher.Result, error) {
	workDir := filepath.Join(dir, "job")
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return nil, err
	}
	artifact := filepath.Join(workDir, "audio.mp3")
	f, err := os.Create(artifact)
	if err != nil {
		return nil, err
	}
	if err := f.Truncate(sizeBytes); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}

	return &fetcher.Result{
		JobID:           "stub-job",
		WorkDir:         workDir,
		ArtifactPath:    artifact,
		Title:           title,
		Uploader:        "Stub Uploader",
		DurationSeconds: 120,
		SizeBytes:       sizeBytes,
	}, nil
}

// HistoryStub implements history.Store in memory.
type HistoryStub struct {
	mu      sync.Mutex
	Entries []history.Entry
}

func (h *HistoryStub) Add(_ context.Context, entry *history.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Entries = append(h.Entries, *entry)
	return nil
}

func (h *HistoryStub) Recent(_ context.Context, chatID int64, limit int) ([]history.Entry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []history.Entry
	for i := len(h.Entries) - 1; i >= 0 && len(out) < limit; i-- {
		if h.Entries[i].ChatID == chatID {
			out = append(out, h.Entries[i])
		}
	}
	return out, nil
}
