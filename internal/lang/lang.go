package lang

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

type MessageID string

const (
	ChooseLanguageMsgID  MessageID = "choose_language"
	SendLinkMsgID        MessageID = "send_link"
	DownloadingMsgID     MessageID = "downloading"
	ProgressMsgID        MessageID = "progress"
	FinishedMsgID        MessageID = "finished"
	ErrorMsgID           MessageID = "error"
	FileTooBigMsgID      MessageID = "file_too_big"
	InvalidLinkMsgID     MessageID = "invalid_link"
	UnknownCommandMsgID  MessageID = "unknown_command"
	HistoryHeaderMsgID   MessageID = "history_header"
	HistoryEmptyMsgID    MessageID = "history_empty"
)

const fallbackLang = "en"

var supported = []string{"en", "hy", "ru"}

// Supported reports whether code is one of the fixed language codes.
func Supported(code string) bool {
	for _, l := range supported {
		if l == code {
			return true
		}
	}
	return false
}

// GetMessage returns the text for id in the given language, falling back to
// English when the language or the message is missing.
func GetMessage(language string, id MessageID, args ...any) string {
	if m, ok := messages[id]; ok {
		if msg, ok := m[language]; ok {
			return fmt.Sprintf(msg, args...)
		}
		if msg, ok := m[fallbackLang]; ok {
			return fmt.Sprintf(msg, args...)
		}
	}
	logrus.Warnf("Message not found for ID: %s", id)
	return "Message not found"
}
