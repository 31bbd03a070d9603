package handlers

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/vgasparyan/youtube-audio-bot/internal/app"
	"github.com/vgasparyan/youtube-audio-bot/internal/lang"
)

// Router dispatches one inbound update by kind. The conversation is
// re-entrant: /start restarts language selection from any state, and any text
// message is handled as a link submission with the session's language (the
// configured default when nothing was ever selected).
func Router(a *app.App, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		HandleCallbackQuery(a, update)
		return
	}

	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	logrus.WithFields(logrus.Fields{
		"chat_id": chatID,
		"text":    update.Message.Text,
	}).Debug("Received message")

	if update.Message.IsCommand() {
		command := strings.ToLower(update.Message.Command())
		switch command {
		case "start":
			StartHandler(a, update)
		case "history":
			HistoryHandler(a, update)
		default:
			logrus.Warnf("Unknown command: %s", command)
			language := a.Sessions.GetLanguage(chatID)
			a.Bot.SendMessage(chatID, lang.GetMessage(language, lang.UnknownCommandMsgID), nil)
		}
		return
	}

	HandleLink(a, update)
}
