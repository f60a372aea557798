package commands

import (
	"go.uber.org/zap"

	"tableflip.dev/timetable/pkg/app"
	"tableflip.dev/timetable/pkg/logging"
	"tableflip.dev/timetable/pkg/store"
)

// loadService reads the config and opens the page store it points at.
func loadService() (*app.Service, store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cfg.LogLevel())
	if err != nil {
		return nil, nil, err
	}
	s, err := store.Load(cfg, store.WithLogger(log))
	if err != nil {
		return nil, nil, err
	}
	log.Debug("store ready", zap.String("path", cfg.BasePath()))
	return &app.Service{Store: s, Log: log}, cfg, nil
}
