package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vgasparyan/youtube-audio-bot/internal/app"
	"github.com/vgasparyan/youtube-audio-bot/internal/lang"
)

const languageCallbackPrefix = "lang_"

// StartHandler presents the language keyboard. The prompt itself is sent in
// English since no language is selected yet.
func StartHandler(a *app.App, update tgbotapi.Update) {
	chatID := update.Message.Chat.ID

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Հայ 🇦🇲", languageCallbackPrefix+"hy"),
			tgbotapi.NewInlineKeyboardButtonData("Рус 🇷🇺", languageCallbackPrefix+"ru"),
			tgbotapi.NewInlineKeyboardButtonData("Eng 🇬🇧", languageCallbackPrefix+"en"),
		),
	)

	a.Bot.SendMessage(chatID, lang.GetMessage("en", lang.ChooseLanguageMsgID), keyboard)
}
