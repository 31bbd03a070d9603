package testutils

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MockMessage captures a single message sent by MockBot.
type MockMessage struct {
	ChatID   int64
	Text     string
	Keyboard any
}

// MockAudio captures a single audio attachment sent by MockBot.
type MockAudio struct {
	ChatID    int64
	FilePath  string
	Title     string
	Performer string
	Duration  int
	ThumbPath string
}

// MockEdit captures a single message edit performed by MockBot.
type MockEdit struct {
	ChatID    int64
	MessageID int
	Text      string
}

// MockBot implements bot.Service for testing. All sends are recorded; the
// mutex makes it safe for handlers that send from their own goroutines.
type MockBot struct {
	mu sync.Mutex

	SentMessages      []MockMessage
	SentAudios        []MockAudio
	Edits             []MockEdit
	AnsweredCallbacks []string

	// SendAudioError, if set, is returned by SendAudio.
	SendAudioError error

	nextMessageID int
}

func (m *MockBot) SendMessage(chatID int64, text string, keyboard any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SentMessages = append(m.SentMessages, MockMessage{ChatID: chatID, Text: text, Keyboard: keyboard})
}

func (m *MockBot) SendMessageReturningID(chatID int64, text string, keyboard any) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SentMessages = append(m.SentMessages, MockMessage{ChatID: chatID, Text: text, Keyboard: keyboard})
	m.nextMessageID++
	return m.nextMessageID, nil
}

func (m *MockBot) EditMessageText(chatID int64, messageID int, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Edits = append(m.Edits, MockEdit{ChatID: chatID, MessageID: messageID, Text: text})
	return nil
}

func (m *MockBot) AnswerCallbackQuery(callbackConfig tgbotapi.CallbackConfig) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AnsweredCallbacks = append(m.AnsweredCallbacks, callbackConfig.CallbackQueryID)
}

func (m *MockBot) SendAudio(chatID int64, filePath, title, performer string, duration int, thumbPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SendAudioError != nil {
		return m.SendAudioError
	}
	m.SentAudios = append(m.SentAudios, MockAudio{
		ChatID:    chatID,
		FilePath:  filePath,
		Title:     title,
		Performer: performer,
		Duration:  duration,
		ThumbPath: thumbPath,
	})
	return nil
}

// Messages returns a copy of the recorded messages.
func (m *MockBot) Messages() []MockMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MockMessage, len(m.SentMessages))
	copy(out, m.SentMessages)
	return out
}

// Audios returns a copy of the recorded audio sends.
func (m *MockBot) Audios() []MockAudio {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MockAudio, len(m.SentAudios))
	copy(out, m.SentAudios)
	return out
}

// EditList returns a copy of the recorded message edits.
func (m *MockBot) EditList() []MockEdit {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MockEdit, len(m.Edits))
	copy(out, m.Edits)
	return out
}

// GetLastMessage returns the most recently sent message, or nil if none.
func (m *MockBot) GetLastMessage() *MockMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.SentMessages) == 0 {
		return nil
	}
	msg := m.SentMessages[len(m.SentMessages)-1]
	return &msg
}
