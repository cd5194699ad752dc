package main

import (
	"log"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"proposalgen/collections"
	"proposalgen/config"
	"proposalgen/handlers"
)

// sessionMaxIdle is how long an untouched wizard session is kept in memory.
const sessionMaxIdle = 2 * time.Hour

func main() {
	app := pocketbase.New()

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal(err)
	}

	app.RootCmd.AddCommand(newGenerateCmd(cfg))

	store := handlers.NewSessionStore()
	newClient := handlers.NewClientFactory(cfg.Assist)

	// Create collections on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		return se.Next()
	})

	app.Cron().MustAdd("sessions-sweep", "*/15 * * * *", func() {
		store.Sweep(sessionMaxIdle)
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		handlers.RegisterRoutes(se.Router, app, store, newClient)

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
