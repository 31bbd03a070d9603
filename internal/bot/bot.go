package bot

import (
	"fmt"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/vgasparyan/youtube-audio-bot/internal/config"
)

// Service is the outbound transport surface the handlers depend on. Send
// failures are logged and swallowed: a rejected delivery must never stop the
// event loop.
type Service interface {
	SendMessage(chatID int64, text string, keyboard any)
	SendMessageReturningID(chatID int64, text string, keyboard any) (int, error)
	EditMessageText(chatID int64, messageID int, text string) error
	AnswerCallbackQuery(callbackConfig tgbotapi.CallbackConfig)
	SendAudio(chatID int64, filePath, title, performer string, duration int, thumbPath string) error
}

type Bot struct {
	Api *tgbotapi.BotAPI
}

var _ Service = (*Bot)(nil)

func NewBot(cfg *config.Config) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		logrus.WithError(err).Error("Error creating bot")
		return nil, fmt.Errorf("error creating bot: %w", err)
	}
	logrus.Infof("Authorized on account %s", api.Self.UserName)
	return &Bot{Api: api}, nil
}

func (b *Bot) SendMessage(chatID int64, text string, keyboard any) {
	if _, err := b.SendMessageReturningID(chatID, text, keyboard); err != nil {
		logrus.WithError(err).Errorf("Message not sent: %s", text)
	}
}

func (b *Bot) SendMessageReturningID(chatID int64, text string, keyboard any) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	if keyboard != nil {
		switch k := keyboard.(type) {
		case tgbotapi.InlineKeyboardMarkup:
			msg.ReplyMarkup = k
		case tgbotapi.ReplyKeyboardMarkup:
			msg.ReplyMarkup = k
		case tgbotapi.ReplyKeyboardRemove:
			msg.ReplyMarkup = k
		}
	}
	sent, err := b.Api.Send(msg)
	if err != nil {
		return 0, err
	}
	return sent.MessageID, nil
}

func (b *Bot) EditMessageText(chatID int64, messageID int, text string) error {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	if _, err := b.Api.Request(edit); err != nil {
		logrus.WithError(err).Debugf("Failed to edit message %d in chat %d", messageID, chatID)
		return err
	}
	return nil
}

func (b *Bot) AnswerCallbackQuery(callbackConfig tgbotapi.CallbackConfig) {
	if _, err := b.Api.Request(callbackConfig); err != nil {
		logrus.WithError(err).Error("Failed to answer callback query")
	}
}

func (b *Bot) SendAudio(chatID int64, filePath, title, performer string, duration int, thumbPath string) error {
	audio := tgbotapi.NewAudio(chatID, tgbotapi.FilePath(filePath))
	audio.Title = title
	audio.Performer = performer
	audio.Duration = duration
	if thumbPath != "" {
		audio.Thumb = tgbotapi.FilePath(thumbPath)
	}

	if _, err := b.Api.Send(audio); err != nil {
		logrus.WithError(err).Warnf("Audio not sent to chat %d", chatID)
		return err
	}
	return nil
}

// UpdatesChan returns the inbound update channel. When a webhook URL is
// configured the webhook is registered and an HTTP listener started;
// otherwise long polling is used.
func (b *Bot) UpdatesChan(cfg *config.Config) (tgbotapi.UpdatesChannel, error) {
	if cfg.WebhookURL == "" {
		u := tgbotapi.NewUpdate(0)
		u.Timeout = 60
		return b.Api.GetUpdatesChan(u), nil
	}

	wh, err := tgbotapi.NewWebhook(cfg.WebhookURL + "/webhook")
	if err != nil {
		return nil, fmt.Errorf("invalid webhook URL: %w", err)
	}
	if _, err := b.Api.Request(wh); err != nil {
		return nil, fmt.Errorf("failed to set webhook: %w", err)
	}

	updates := b.Api.ListenForWebhook("/webhook")
	go func() {
		addr := fmt.Sprintf(":%d", cfg.ListenPort)
		logrus.Infof("Webhook listener started on %s", addr)
		if err := http.ListenAndServe(addr, nil); err != nil {
			logrus.WithError(err).Fatal("Webhook listener failed")
		}
	}()
	return updates, nil
}
