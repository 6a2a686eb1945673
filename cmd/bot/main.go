package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Luvvydev/trash-bot/internal/config"
	"github.com/Luvvydev/trash-bot/internal/domain"
	"github.com/Luvvydev/trash-bot/internal/domain/service"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Warn(".env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	slackClient := slack.New(cfg.SlackBotToken)

	identity, err := slackClient.AuthTest()
	if err != nil {
		logger.Fatal("slack authentication failed", zap.Error(err))
	}
	logger.Info("logged in",
		zap.String("user", identity.User),
		zap.String("team", identity.Team),
	)

	channel, err := slackClient.GetConversationInfo(&slack.GetConversationInfoInput{
		ChannelID: cfg.SlackChannelID,
	})
	if err != nil {
		logger.Warn("channel not found or not accessible to the bot",
			zap.String("channel_id", cfg.SlackChannelID),
			zap.Error(err),
		)
	} else {
		logger.Info("posting to fixed channel",
			zap.String("channel", channel.Name),
			zap.String("channel_id", channel.ID),
		)
	}

	svcs := service.New(cfg, slackClient, logger)

	logger.Info("next run",
		zap.String("local", svcs.Scheduler.NextRun(time.Now()).Format(time.RFC3339)),
		zap.String("weekday", domain.WeekdayNames[cfg.NotifyDay]),
	)

	svcs.Scheduler.Start()
	defer svcs.Scheduler.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
}
