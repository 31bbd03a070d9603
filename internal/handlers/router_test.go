package handlers

import (
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vgasparyan/youtube-audio-bot/internal/testutils"
)

func TestRouter_StartSendsLanguageKeyboard(t *testing.T) {
	bot := &testutils.MockBot{}
	a := newTestApp(t, bot, &testutils.StubFetcher{})

	Router(a, makeCommandUpdate(123, "/start"))

	msgs := bot.Messages()
	if len(msgs) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(msgs))
	}
	if !strings.Contains(msgs[0].Text, "choose your language") {
		t.Errorf("Expected language prompt, got: %s", msgs[0].Text)
	}

	keyboard, ok := msgs[0].Keyboard.(tgbotapi.InlineKeyboardMarkup)
	if !ok {
		t.Fatalf("Expected inline keyboard, got %T", msgs[0].Keyboard)
	}
	if len(keyboard.InlineKeyboard) != 1 || len(keyboard.InlineKeyboard[0]) != 3 {
		t.Fatalf("Expected one row of 3 buttons, got %v", keyboard.InlineKeyboard)
	}
	for i, want := range []string{"lang_hy", "lang_ru", "lang_en"} {
		if got := *keyboard.InlineKeyboard[0][i].CallbackData; got != want {
			t.Errorf("Button %d: expected callback %q, got %q", i, want, got)
		}
	}
}

func TestRouter_UnknownCommand(t *testing.T) {
	bot := &testutils.MockBot{}
	a := newTestApp(t, bot, &testutils.StubFetcher{})

	Router(a, makeCommandUpdate(123, "/frobnicate"))

	msg := bot.GetLastMessage()
	if msg == nil {
		t.Fatal("Expected a message")
	}
	if !strings.Contains(msg.Text, "Unknown command") {
		t.Errorf("Expected unknown-command message, got: %s", msg.Text)
	}
}

func TestRouter_NilMessageIgnored(t *testing.T) {
	bot := &testutils.MockBot{}
	a := newTestApp(t, bot, &testutils.StubFetcher{})

	Router(a, tgbotapi.Update{})

	if len(bot.Messages()) != 0 {
		t.Errorf("Expected no messages for empty update, got %d", len(bot.Messages()))
	}
}
