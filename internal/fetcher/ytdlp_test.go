package fetcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vgasparyan/youtube-audio-bot/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DownloadDir:    t.TempDir(),
		CookiesFile:    filepath.Join(t.TempDir(), "cookies.txt"),
		RequireCookies: true,
	}
}

func TestFetch_MissingCookiesFailsFast(t *testing.T) {
	f := NewYTDLPFetcher(testConfig(t))

	_, err := f.Fetch(context.Background(), "https://youtu.be/abc123", nil)
	if !errors.Is(err, ErrCookiesMissing) {
		t.Fatalf("Expected ErrCookiesMissing, got %v", err)
	}
}

func TestBuildDownloadArgs(t *testing.T) {
	cfg := testConfig(t)
	cfg.RequireCookies = false
	f := NewYTDLPFetcher(cfg)

	args := f.buildDownloadArgs("https://youtu.be/abc123", "/tmp/job/audio.%(ext)s")

	want := []string{"--no-playlist", "-x", "--audio-format", "--embed-thumbnail", "--newline"}
	for _, flag := range want {
		if !containsArg(args, flag) {
			t.Errorf("Expected %s in args, got %v", flag, args)
		}
	}
	if containsArg(args, "--cookies") {
		t.Errorf("Did not expect --cookies without a cookies file, got %v", args)
	}
	if args[len(args)-1] != "https://youtu.be/abc123" {
		t.Errorf("Expected URL as final arg, got %v", args)
	}
}

func TestBuildDownloadArgs_WithCookies(t *testing.T) {
	cfg := testConfig(t)
	if err := os.WriteFile(cfg.CookiesFile, []byte("# cookies"), 0o600); err != nil {
		t.Fatalf("Failed to write cookies file: %v", err)
	}
	f := NewYTDLPFetcher(cfg)

	args := f.buildDownloadArgs("https://youtu.be/abc123", "/tmp/job/audio.%(ext)s")
	if !containsArg(args, "--cookies") {
		t.Errorf("Expected --cookies in args, got %v", args)
	}
}

func containsArg(args []string, want string) bool {
	for _, a := range args {
		if a == want {
			return true
		}
	}
	return false
}

func TestParseProgressLine(t *testing.T) {
	tests := []struct {
		line       string
		total      int64
		downloaded int64
		ok         bool
	}{
		{"[download]  50.0% of   10.00MiB at  1.2MiB/s ETA 00:03", 10 << 20, 5 << 20, true},
		{"[download] 100% of 1.00KiB in 00:00", 1 << 10, 1 << 10, true},
		{"[download]  25.0% of ~4.00MiB at  500KiB/s", 4 << 20, 1 << 20, true},
		{"[download] Destination: downloads/x/audio.webm", 0, 0, false},
		{"[ExtractAudio] Destination: downloads/x/audio.mp3", 0, 0, false},
		{"random output", 0, 0, false},
	}

	for _, tt := range tests {
		downloaded, total, ok := parseProgressLine(tt.line)
		if ok != tt.ok {
			t.Errorf("parseProgressLine(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if total != tt.total {
			t.Errorf("parseProgressLine(%q) total = %d, want %d", tt.line, total, tt.total)
		}
		if downloaded != tt.downloaded {
			t.Errorf("parseProgressLine(%q) downloaded = %d, want %d", tt.line, downloaded, tt.downloaded)
		}
	}
}

func TestParseSize(t *testing.T) {
	if n, err := parseSize("2.00MiB"); err != nil || n != 2<<20 {
		t.Errorf("parseSize(2.00MiB) = %d, %v", n, err)
	}
	if n, err := parseSize("512B"); err != nil || n != 512 {
		t.Errorf("parseSize(512B) = %d, %v", n, err)
	}
	if _, err := parseSize("oops"); err == nil {
		t.Error("Expected error for unrecognized size")
	}
}

func TestFindThumbnail(t *testing.T) {
	dir := t.TempDir()
	if findThumbnail(dir) != "" {
		t.Error("Expected no thumbnail in empty dir")
	}

	path := filepath.Join(dir, "audio.webp")
	if err := os.WriteFile(path, []byte("img"), 0o600); err != nil {
		t.Fatalf("Failed to write thumbnail: %v", err)
	}
	if got := findThumbnail(dir); got != path {
		t.Errorf("Expected %q, got %q", path, got)
	}
}

func TestCleanup_Idempotent(t *testing.T) {
	cfg := testConfig(t)
	f := NewYTDLPFetcher(cfg)

	workDir := filepath.Join(cfg.DownloadDir, "job")
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		t.Fatalf("Failed to create work dir: %v", err)
	}
	result := &Result{WorkDir: workDir}

	f.Cleanup(result)
	if _, err := os.Stat(workDir); !os.IsNotExist(err) {
		t.Error("Expected work dir to be removed")
	}

	// Second cleanup on an already-removed directory must not panic or fail.
	f.Cleanup(result)
	f.Cleanup(nil)
}
