package app

import (
	"fmt"

	"go.uber.org/zap"

	"eventdash/internal/api"
	"eventdash/internal/config"
	"eventdash/internal/gateway"
	"eventdash/internal/logger"
	"eventdash/internal/session"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	backend := gateway.NewClient(conf.Backend)
	sessions := session.NewManager(conf.Session)

	s := api.NewServer(conf, backend, sessions)

	addr := ":" + conf.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
