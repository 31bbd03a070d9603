package handlers

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/vgasparyan/youtube-audio-bot/internal/app"
	"github.com/vgasparyan/youtube-audio-bot/internal/history"
	"github.com/vgasparyan/youtube-audio-bot/internal/lang"
)

const historyListLimit = 10

// HistoryHandler lists the chat's recent fetches.
func HistoryHandler(a *app.App, update tgbotapi.Update) {
	chatID := update.Message.Chat.ID
	language := a.Sessions.GetLanguage(chatID)

	if a.History == nil {
		a.Bot.SendMessage(chatID, lang.GetMessage(language, lang.HistoryEmptyMsgID), nil)
		return
	}

	entries, err := a.History.Recent(context.Background(), chatID, historyListLimit)
	if err != nil {
		logrus.WithError(err).Error("Failed to load fetch history")
		a.Bot.SendMessage(chatID, lang.GetMessage(language, lang.ErrorMsgID, err.Error()), nil)
		return
	}

	if len(entries) == 0 {
		a.Bot.SendMessage(chatID, lang.GetMessage(language, lang.HistoryEmptyMsgID), nil)
		return
	}

	var sb strings.Builder
	sb.WriteString(lang.GetMessage(language, lang.HistoryHeaderMsgID))
	for _, entry := range entries {
		sb.WriteString("\n")
		sb.WriteString(formatEntry(&entry))
	}
	a.Bot.SendMessage(chatID, sb.String(), nil)
}

func formatEntry(entry *history.Entry) string {
	title := entry.Title
	if title == "" {
		title = entry.URL
	}
	switch entry.Outcome {
	case history.OutcomeDelivered:
		return fmt.Sprintf("✅ %s (%.1f MB)", title, float64(entry.SizeBytes)/(1024*1024))
	case history.OutcomeTooBig:
		return fmt.Sprintf("⚠️ %s (too big)", title)
	default:
		return fmt.Sprintf("❌ %s", title)
	}
}
