package fetcher

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vgasparyan/youtube-audio-bot/internal/config"
)

const artifactBaseName = "audio"

// YTDLPFetcher drives the yt-dlp CLI: best audio stream, no playlist
// expansion, mp3 at 192K with the thumbnail embedded as cover art.
type YTDLPFetcher struct {
	cfg *config.Config
}

func NewYTDLPFetcher(cfg *config.Config) *YTDLPFetcher {
	return &YTDLPFetcher{cfg: cfg}
}

type mediaInfo struct {
	Title    string  `json:"title"`
	Uploader string  `json:"uploader"`
	Channel  string  `json:"channel"`
	Duration float64 `json:"duration"`
}

func (f *YTDLPFetcher) Fetch(ctx context.Context, url string, progress ProgressFunc) (*Result, error) {
	if f.cfg.RequireCookies {
		if _, err := os.Stat(f.cfg.CookiesFile); err != nil {
			logrus.WithError(err).WithField("cookies_file", f.cfg.CookiesFile).Error("Cookies file check failed")
			return nil, ErrCookiesMissing
		}
	}

	if timeout := f.cfg.GetFetchSettings().FetchTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	jobID := uuid.New().String()
	workDir := filepath.Join(f.cfg.DownloadDir, jobID)
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create working directory: %w", err)
	}

	result := &Result{JobID: jobID, WorkDir: workDir}

	info, err := f.probeMetadata(ctx, url)
	if err != nil {
		f.Cleanup(result)
		return nil, err
	}
	result.Title = info.Title
	result.Uploader = info.Uploader
	if result.Uploader == "" {
		result.Uploader = info.Channel
	}
	result.DurationSeconds = int(info.Duration)

	if err := f.runDownload(ctx, url, workDir, progress); err != nil {
		f.Cleanup(result)
		return nil, err
	}

	result.ArtifactPath = filepath.Join(workDir, artifactBaseName+".mp3")
	stat, err := os.Stat(result.ArtifactPath)
	if err != nil {
		f.Cleanup(result)
		return nil, ErrArtifactMissing
	}
	result.SizeBytes = stat.Size()
	result.ThumbnailPath = findThumbnail(workDir)

	logrus.WithFields(logrus.Fields{
		"job_id": jobID,
		"title":  result.Title,
		"size":   result.SizeBytes,
	}).Info("Fetch completed")

	return result, nil
}

func (f *YTDLPFetcher) probeMetadata(ctx context.Context, url string) (*mediaInfo, error) {
	args := []string{"-J", "--no-playlist", "--no-warnings"}
	args = f.appendCookiesArg(args)
	args = append(args, url)

	cmd := exec.CommandContext(ctx, "yt-dlp", args...)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve video info: %s", commandError(err))
	}

	var info mediaInfo
	if err := json.Unmarshal(output, &info); err != nil {
		return nil, fmt.Errorf("failed to parse video info: %w", err)
	}
	if info.Title == "" {
		info.Title = "Audio"
	}
	return &info, nil
}

func (f *YTDLPFetcher) runDownload(ctx context.Context, url, workDir string, progress ProgressFunc) error {
	outputTemplate := filepath.Join(workDir, artifactBaseName+".%(ext)s")
	args := f.buildDownloadArgs(url, outputTemplate)

	cmd := exec.CommandContext(ctx, "yt-dlp", args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to create stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start yt-dlp: %w", err)
	}

	errorOutput := make(chan string, 1)
	go func() {
		defer close(errorOutput)
		scanner := bufio.NewScanner(stderr)
		var output strings.Builder
		for scanner.Scan() {
			output.WriteString(scanner.Text() + "\n")
		}
		errorOutput <- output.String()
	}()

	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		line := scanner.Text()
		if progress == nil {
			continue
		}
		if downloaded, total, ok := parseProgressLine(line); ok {
			progress(downloaded, total)
		}
	}

	stderrOutput := <-errorOutput

	if err := cmd.Wait(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("download canceled: %w", ctx.Err())
		}
		logrus.WithError(err).Errorf("yt-dlp exited with error: %s", stderrOutput)
		return fmt.Errorf("yt-dlp failed: %s", firstNonEmptyLine(stderrOutput, err.Error()))
	}

	return nil
}

func (f *YTDLPFetcher) buildDownloadArgs(url, outputTemplate string) []string {
	args := []string{
		"--newline",
		"--no-playlist",
		"--no-warnings",
		"-f", "bestaudio/best",
		"-x",
		"--audio-format", "mp3",
		"--audio-quality", "192K",
		"--embed-thumbnail",
		"--write-thumbnail",
		"--add-metadata",
		"-o", outputTemplate,
	}
	args = f.appendCookiesArg(args)
	return append(args, url)
}

func (f *YTDLPFetcher) appendCookiesArg(args []string) []string {
	if f.cfg.CookiesFile == "" {
		return args
	}
	if _, err := os.Stat(f.cfg.CookiesFile); err != nil {
		return args
	}
	return append(args, "--cookies", f.cfg.CookiesFile)
}

func (f *YTDLPFetcher) Cleanup(result *Result) {
	if result == nil || result.WorkDir == "" {
		return
	}
	if err := os.RemoveAll(result.WorkDir); err != nil {
		logrus.WithError(err).WithField("work_dir", result.WorkDir).Debug("Failed to clean up working directory")
	}
}

// parseProgressLine extracts progress from yt-dlp --newline output such as
// "[download]  42.5% of   4.53MiB at  1.2MiB/s ETA 00:03".
func parseProgressLine(line string) (downloaded, total int64, ok bool) {
	if !strings.HasPrefix(line, "[download]") {
		return 0, 0, false
	}
	fields := strings.Fields(line)
	if len(fields) < 4 || fields[2] != "of" {
		return 0, 0, false
	}

	percentStr := strings.TrimSuffix(fields[1], "%")
	percent, err := strconv.ParseFloat(percentStr, 64)
	if err != nil {
		return 0, 0, false
	}

	totalBytes, err := parseSize(strings.TrimPrefix(fields[3], "~"))
	if err != nil || totalBytes <= 0 {
		return 0, 0, false
	}

	const fullPercent = 100
	return int64(percent / fullPercent * float64(totalBytes)), totalBytes, true
}

func parseSize(s string) (int64, error) {
	multipliers := []struct {
		suffix string
		factor float64
	}{
		{"GiB", 1 << 30},
		{"MiB", 1 << 20},
		{"KiB", 1 << 10},
		{"B", 1},
	}
	for _, m := range multipliers {
		if strings.HasSuffix(s, m.suffix) {
			value, err := strconv.ParseFloat(strings.TrimSuffix(s, m.suffix), 64)
			if err != nil {
				return 0, err
			}
			return int64(value * m.factor), nil
		}
	}
	return 0, fmt.Errorf("unrecognized size: %s", s)
}

func findThumbnail(workDir string) string {
	for _, ext := range []string{".webp", ".jpg", ".jpeg", ".png"} {
		path := filepath.Join(workDir, artifactBaseName+ext)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func commandError(err error) string {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
		return firstNonEmptyLine(string(exitErr.Stderr), err.Error())
	}
	return err.Error()
}

func firstNonEmptyLine(s, fallback string) string {
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return fallback
}
