package handlers

import (
	"context"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/vgasparyan/youtube-audio-bot/internal/app"
	"github.com/vgasparyan/youtube-audio-bot/internal/fetcher"
	"github.com/vgasparyan/youtube-audio-bot/internal/history"
	"github.com/vgasparyan/youtube-audio-bot/internal/lang"
	"github.com/vgasparyan/youtube-audio-bot/internal/validation"
)

// MaxAudioSize is the Telegram bot API attachment ceiling.
const MaxAudioSize = 50 * 1024 * 1024

// HandleLink runs the READY-state flow for a text message: validate the link,
// acknowledge with a status message, then fetch, deliver and clean up in a
// goroutine so other users' updates keep flowing.
func HandleLink(a *app.App, update tgbotapi.Update) {
	chatID := update.Message.Chat.ID
	text := update.Message.Text
	language := a.Sessions.GetLanguage(chatID)

	if !validation.IsSupportedLink(text) {
		a.Bot.SendMessage(chatID, lang.GetMessage(language, lang.InvalidLinkMsgID), nil)
		return
	}

	logrus.WithField("link", text).Info("Starting fetch for a valid link")

	statusMessageID, err := a.Bot.SendMessageReturningID(chatID, lang.GetMessage(language, lang.DownloadingMsgID), nil)
	if err != nil {
		logrus.WithError(err).Warn("Failed to send downloading status message")
	}

	go runFetchJob(a, chatID, text, language, statusMessageID)
}

func runFetchJob(a *app.App, chatID int64, url, language string, statusMessageID int) {
	a.AcquireFetchSlot()
	defer a.ReleaseFetchSlot()

	progress := newProgressReporter(a, chatID, language, statusMessageID)

	result, err := a.Fetcher.Fetch(context.Background(), url, progress.report)
	if err != nil {
		logrus.WithError(err).WithField("url", url).Error("Fetch failed")
		a.Bot.SendMessage(chatID, lang.GetMessage(language, lang.ErrorMsgID, err.Error()), nil)
		recordHistory(a, &history.Entry{
			ChatID:  chatID,
			URL:     url,
			Outcome: history.OutcomeFailed,
			Error:   err.Error(),
		})
		return
	}

	if result.SizeBytes > MaxAudioSize {
		logrus.WithFields(logrus.Fields{
			"url":  url,
			"size": result.SizeBytes,
		}).Warn("Artifact exceeds size ceiling, rejecting")
		a.Bot.SendMessage(chatID, lang.GetMessage(language, lang.FileTooBigMsgID), nil)
		recordHistory(a, &history.Entry{
			ChatID:    chatID,
			URL:       url,
			Title:     result.Title,
			SizeBytes: result.SizeBytes,
			Outcome:   history.OutcomeTooBig,
		})
		a.Fetcher.Cleanup(result)
		return
	}

	deliver(a, chatID, url, language, result)
}

func deliver(a *app.App, chatID int64, url, language string, result *fetcher.Result) {
	entry := &history.Entry{
		ChatID:    chatID,
		URL:       url,
		Title:     result.Title,
		SizeBytes: result.SizeBytes,
		Outcome:   history.OutcomeDelivered,
	}

	err := a.Bot.SendAudio(chatID, result.ArtifactPath, result.Title, result.Uploader, result.DurationSeconds, result.ThumbnailPath)
	if err != nil {
		// Delivery failure is logged, never fatal; no further reply is owed.
		logrus.WithError(err).WithField("chat_id", chatID).Warn("Audio delivery failed")
		entry.Outcome = history.OutcomeFailed
		entry.Error = err.Error()
	} else {
		a.Bot.SendMessage(chatID, lang.GetMessage(language, lang.FinishedMsgID), nil)
	}

	recordHistory(a, entry)
	a.Fetcher.Cleanup(result)
}

func recordHistory(a *app.App, entry *history.Entry) {
	if a.History == nil {
		return
	}
	if err := a.History.Add(context.Background(), entry); err != nil {
		logrus.WithError(err).Warn("Failed to record fetch history")
	}
}

// progressReporter forwards download progress to the status message, at most
// one edit per configured interval to avoid rate-limiting the outbound
// channel.
type progressReporter struct {
	a               *app.App
	chatID          int64
	language        string
	statusMessageID int
	interval        time.Duration

	mu       sync.Mutex
	lastEdit time.Time
	lastPct  int
}

func newProgressReporter(a *app.App, chatID int64, language string, statusMessageID int) *progressReporter {
	return &progressReporter{
		a:               a,
		chatID:          chatID,
		language:        language,
		statusMessageID: statusMessageID,
		interval:        a.Config.GetFetchSettings().ProgressUpdateInterval,
		lastPct:         -1,
	}
}

func (p *progressReporter) report(downloaded, total int64) {
	if p.statusMessageID == 0 || total <= 0 {
		return
	}

	const fullPercent = 100
	pct := int(downloaded * fullPercent / total)

	p.mu.Lock()
	now := time.Now()
	if now.Sub(p.lastEdit) < p.interval || pct == p.lastPct {
		p.mu.Unlock()
		return
	}
	p.lastEdit = now
	p.lastPct = pct
	p.mu.Unlock()

	text := lang.GetMessage(p.language, lang.ProgressMsgID, pct)
	if err := p.a.Bot.EditMessageText(p.chatID, p.statusMessageID, text); err != nil {
		logrus.WithError(err).Debug("Progress edit failed")
	}
}
