package service

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Luvvydev/trash-bot/internal/config"
	"github.com/Luvvydev/trash-bot/internal/domain"
	"github.com/Luvvydev/trash-bot/internal/domain/contract"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

type scheduler struct {
	slackClient contract.SlackClient
	channelID   string
	weekday     int
	hour        int
	minute      int
	location    *time.Location
	log         *zap.Logger
	stopChan    chan struct{}
	running     bool
	now         func() time.Time
	pickGif     func() string
}

func newScheduler(cfg *config.Config, slackClient contract.SlackClient, log *zap.Logger) *scheduler {
	return &scheduler{
		slackClient: slackClient,
		channelID:   cfg.SlackChannelID,
		weekday:     cfg.NotifyDay,
		hour:        cfg.NotifyHour,
		minute:      cfg.NotifyMin,
		location:    cfg.Location,
		log:         log,
		stopChan:    make(chan struct{}),
		now:         time.Now,
		pickGif:     randomGif,
	}
}

func (s *scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	s.log.Info("scheduler starting")
	go s.mainLoop()
}

func (s *scheduler) Stop() {
	if !s.running {
		return
	}
	s.log.Info("scheduler stopping")
	close(s.stopChan)
	s.running = false
}

// NextRun returns the next occurrence of the configured weekday and
// time-of-day in the configured timezone, strictly after now. The target is
// composed in civil time so it lands on the right wall-clock time even when
// the week crosses a DST transition.
func (s *scheduler) NextRun(now time.Time) time.Time {
	now = now.In(s.location)

	daysAhead := (s.weekday - isoWeekday(now) + 7) % 7
	next := time.Date(now.Year(), now.Month(), now.Day()+daysAhead, s.hour, s.minute, 0, 0, s.location)
	if !next.After(now) {
		next = next.AddDate(0, 0, 7)
	}

	return next
}

func (s *scheduler) mainLoop() {
	for {
		// Recomputed from the wall clock every cycle, never cached.
		next := s.NextRun(s.now())

		s.log.Info("waiting for next reminder",
			zap.String("at", next.Format(time.RFC3339)),
			zap.String("weekday", domain.WeekdayNames[s.weekday]),
		)

		timer := time.NewTimer(next.Sub(s.now()))

		select {
		case <-timer.C:
			if err := s.sendReminder(); err != nil {
				// No retry within the cycle; the next week's send is
				// scheduled regardless.
				s.log.Error("failed to send reminder", zap.Error(err))
			}

		case <-s.stopChan:
			timer.Stop()
			return
		}
	}
}

func (s *scheduler) sendReminder() error {
	message := fmt.Sprintf("%s\n%s", domain.ReminderText, s.pickGif())

	_, _, err := s.slackClient.PostMessage(
		s.channelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message to channel %s: %w", s.channelID, err)
	}

	s.log.Info("reminder sent", zap.String("channel_id", s.channelID))
	return nil
}

func randomGif() string {
	return domain.TrashGifs[rand.IntN(len(domain.TrashGifs))]
}

func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 { // Sunday = 0 in Go, but we want 7 for ISO 8601
		wd = 7
	}
	return wd
}
