package service

import (
	"github.com/Luvvydev/trash-bot/internal/config"
	"github.com/Luvvydev/trash-bot/internal/domain/contract"
	"go.uber.org/zap"
)

type Services struct {
	Scheduler *scheduler
}

func New(cfg *config.Config, slackClient contract.SlackClient, log *zap.Logger) *Services {
	return &Services{
		Scheduler: newScheduler(cfg, slackClient, log),
	}
}
