package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"apiTareas/internal/config"
	"apiTareas/internal/db"
	"apiTareas/internal/httpapi"
	"apiTareas/internal/logging"
	"apiTareas/repository"
)

func main() {
	cfg, err := config.LoadWithDefaults()
	if err != nil {
		logging.SetupLogger(0).Error("load config", logging.Err(err))
		os.Exit(1)
	}

	log := logging.SetupLogger(cfg.LogLevel())
	log.Info("configuration loaded", "config", cfg.String())

	var tasks repository.TaskRepositoryI
	var users repository.UserRepositoryI
	switch cfg.Storage.Driver {
	case "sqlite":
		d, err := db.Open(cfg.Storage.DBPath)
		if err != nil {
			log.Error("open db", logging.Err(err))
			os.Exit(1)
		}
		defer func() {
			if err := d.Close(); err != nil {
				log.Error("close db", logging.Err(err))
			}
		}()
		tasks = repository.NewTaskSQLiteRepository(d)
		users = repository.NewUserSQLiteRepository(d)
	default:
		if err := os.MkdirAll(cfg.Storage.DataDir, 0o755); err != nil {
			log.Error("create data dir", logging.Err(err))
			os.Exit(1)
		}
		tasks = repository.NewTaskFileRepository(cfg.Storage.DataDir)
		users = repository.NewUserFileRepository(cfg.Storage.DataDir)
	}

	e := httpapi.New(cfg.Auth.JWTSecret, tasks, users, log)
	shutdown, err := httpapi.Start(cfg.HTTP.Address, e)
	if err != nil {
		log.Error("start http server", logging.Err(err))
		os.Exit(1)
	}
	log.Info("servidor escuchando", "address", cfg.HTTP.Address)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		log.Error("shutdown", logging.Err(err))
	}
}
