package app

import "keymill/internal/store"

// App is the dependency graph commands run against.
type App struct {
	Sessions *store.SessionFileStore
}

func New(sessions *store.SessionFileStore) *App {
	return &App{Sessions: sessions}
}
