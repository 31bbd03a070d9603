package handlers

import (
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vgasparyan/youtube-audio-bot/internal/app"
	"github.com/vgasparyan/youtube-audio-bot/internal/fetcher"
	"github.com/vgasparyan/youtube-audio-bot/internal/testutils"
)

func newTestApp(t *testing.T, bot *testutils.MockBot, stub *testutils.StubFetcher) *app.App {
	t.Helper()
	cfg := testutils.TestConfig(t.TempDir())
	return app.New(cfg, bot, stub, &testutils.HistoryStub{})
}

func makeTextUpdate(chatID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			Chat: &tgbotapi.Chat{ID: chatID},
			Text: text,
		},
	}
}

func makeCommandUpdate(chatID int64, command string) tgbotapi.Update {
	update := makeTextUpdate(chatID, command)
	update.Message.Entities = []tgbotapi.MessageEntity{
		{Type: "bot_command", Offset: 0, Length: len(command)},
	}
	return update
}

func makeCallbackUpdate(chatID int64, data string) tgbotapi.Update {
	return tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:      "cb-1",
			Data:    data,
			Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: chatID}},
		},
	}
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("Condition not met before deadline")
}

func stubResult(t *testing.T, title string, sizeBytes int64) *fetcher.Result {
	t.Helper()
	result, err := testutils.NewStubResult(t.TempDir(), title, sizeBytes)
	if err != nil {
		t.Fatalf("Failed to build stub result: %v", err)
	}
	return result
}
