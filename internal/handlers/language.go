package handlers

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/vgasparyan/youtube-audio-bot/internal/app"
	"github.com/vgasparyan/youtube-audio-bot/internal/lang"
)

// HandleCallbackQuery processes inline keyboard interactions. The only
// keyboard in the bot is the language selector.
func HandleCallbackQuery(a *app.App, update tgbotapi.Update) {
	callback := update.CallbackQuery
	chatID := callback.Message.Chat.ID
	data := callback.Data

	// Answer first so the button does not stay in a pending visual state.
	a.Bot.AnswerCallbackQuery(tgbotapi.NewCallback(callback.ID, ""))

	if !strings.HasPrefix(data, languageCallbackPrefix) {
		logrus.Warnf("Unknown callback data: %s", data)
		return
	}

	code := strings.TrimPrefix(data, languageCallbackPrefix)
	if !lang.Supported(code) {
		logrus.Warnf("Unsupported language code: %s", code)
		return
	}

	a.Sessions.SetLanguage(chatID, code)
	logrus.WithFields(logrus.Fields{
		"chat_id":  chatID,
		"language": code,
	}).Info("Language selected")

	a.Bot.SendMessage(chatID, lang.GetMessage(code, lang.SendLinkMsgID), nil)
}
