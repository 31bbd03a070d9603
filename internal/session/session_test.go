package session

import (
	"sync"
	"testing"
)

func TestGetLanguage_Default(t *testing.T) {
	store := NewStore("en")
	if lang := store.GetLanguage(1); lang != "en" {
		t.Errorf("Expected default en, got %q", lang)
	}
}

func TestSetLanguage_Sticks(t *testing.T) {
	store := NewStore("en")
	store.SetLanguage(1, "hy")
	if lang := store.GetLanguage(1); lang != "hy" {
		t.Errorf("Expected hy, got %q", lang)
	}

	store.SetLanguage(1, "ru")
	if lang := store.GetLanguage(1); lang != "ru" {
		t.Errorf("Expected ru after reselect, got %q", lang)
	}
}

func TestSetLanguage_PerUser(t *testing.T) {
	store := NewStore("en")
	store.SetLanguage(1, "hy")
	store.SetLanguage(2, "ru")

	if lang := store.GetLanguage(1); lang != "hy" {
		t.Errorf("Expected hy for user 1, got %q", lang)
	}
	if lang := store.GetLanguage(2); lang != "ru" {
		t.Errorf("Expected ru for user 2, got %q", lang)
	}
	if lang := store.GetLanguage(3); lang != "en" {
		t.Errorf("Expected default for user 3, got %q", lang)
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := NewStore("en")
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			store.SetLanguage(id, "ru")
			store.GetLanguage(id)
		}(int64(i))
	}
	wg.Wait()

	if lang := store.GetLanguage(25); lang != "ru" {
		t.Errorf("Expected ru, got %q", lang)
	}
}
