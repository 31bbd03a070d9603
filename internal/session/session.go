package session

import "sync"

// Store keeps the selected language per chat. Entries live for the process
// lifetime; there is no expiry and no persistence across restarts.
type Store struct {
	mu          sync.Mutex
	languages   map[int64]string
	defaultLang string
}

func NewStore(defaultLang string) *Store {
	return &Store{
		languages:   make(map[int64]string),
		defaultLang: defaultLang,
	}
}

// GetLanguage returns the language selected by the chat, or the configured
// default when no selection has been made yet.
func (s *Store) GetLanguage(chatID int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.languages[chatID]; ok {
		return l
	}
	return s.defaultLang
}

func (s *Store) SetLanguage(chatID int64, language string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.languages[chatID] = language
}
