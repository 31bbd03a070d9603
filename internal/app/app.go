package app

import (
	"github.com/vgasparyan/youtube-audio-bot/internal/bot"
	"github.com/vgasparyan/youtube-audio-bot/internal/config"
	"github.com/vgasparyan/youtube-audio-bot/internal/fetcher"
	"github.com/vgasparyan/youtube-audio-bot/internal/history"
	"github.com/vgasparyan/youtube-audio-bot/internal/session"
)

// App carries the collaborators every handler needs. All dependencies are
// injected explicitly; there are no package-level singletons.
type App struct {
	Config   *config.Config
	Bot      bot.Service
	Sessions *session.Store
	Fetcher  fetcher.Fetcher
	History  history.Store

	fetchSlots chan struct{}
}

func New(cfg *config.Config, botService bot.Service, fetch fetcher.Fetcher, hist history.Store) *App {
	return &App{
		Config:     cfg,
		Bot:        botService,
		Sessions:   session.NewStore(cfg.DefaultLang),
		Fetcher:    fetch,
		History:    hist,
		fetchSlots: make(chan struct{}, cfg.GetFetchSettings().MaxConcurrentFetches),
	}
}

// AcquireFetchSlot blocks until a slot in the bounded fetch pool is free.
func (a *App) AcquireFetchSlot() {
	a.fetchSlots <- struct{}{}
}

func (a *App) ReleaseFetchSlot() {
	<-a.fetchSlots
}
