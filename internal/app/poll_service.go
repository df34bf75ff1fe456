// internal/app/poll_service.go
package app

import (
	"context"
	"fmt"
	"time"

	"homework_notification_bot/internal/domain/homework"
	"homework_notification_bot/internal/domain/poll"
	"homework_notification_bot/internal/infra/practicum"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// APIClient fetches the decoded homework-statuses payload for a cursor.
type APIClient interface {
	Statuses(ctx context.Context, fromDate int64) (any, error)
}

// MessageSender delivers one chat message and reports delivery success.
type MessageSender interface {
	Send(text string) bool
}

// PollService runs the fetch → validate → format → notify cycle forever.
// The cursor and the last-error marker are owned exclusively by this service;
// neither is persisted, so both reset on restart.
type PollService struct {
	api              APIClient
	sender           MessageSender
	log              *logrus.Logger
	pollInterval     time.Duration
	antiSpamInterval time.Duration

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) bool

	cursor int64
	// lastErrorMessage holds the most recent error text that was actually
	// delivered. A failed delivery leaves it untouched so the same error is
	// retried on its next occurrence.
	lastErrorMessage string
}

func NewPollService(
	api APIClient,
	sender MessageSender,
	log *logrus.Logger,
	pollInterval time.Duration,
	antiSpamInterval time.Duration,
) *PollService {
	return &PollService{
		api:              api,
		sender:           sender,
		log:              log,
		pollInterval:     pollInterval,
		antiSpamInterval: antiSpamInterval,
		now:              time.Now,
		sleep:            sleepCtx,
	}
}

// Run blocks until ctx is canceled. The cursor starts at the current time, so
// only updates that happen after startup are reported.
func (s *PollService) Run(ctx context.Context) {
	s.cursor = s.now().Unix()
	s.log.WithField("cursor", s.cursor).Info("Poll loop started")

	for {
		s.runCycle(ctx)
		if ctx.Err() != nil {
			s.log.Info("Poll loop stopped")
			return
		}
		s.log.Infof("Waiting %s until the next poll cycle", s.pollInterval)
		if !s.sleep(ctx, s.pollInterval) {
			s.log.Info("Poll loop stopped")
			return
		}
	}
}

// runCycle executes one poll cycle. Every failure inside the cycle funnels
// into the single error-notification path; nothing is retried mid-cycle.
func (s *PollService) runCycle(ctx context.Context) {
	cycleLog := s.log.WithField("cycle_id", uuid.NewString())

	if err := s.pollOnce(ctx, cycleLog); err != nil {
		if ctx.Err() != nil {
			return // shutdown, not a poll failure
		}
		s.reportFailure(cycleLog, err)
	}
}

func (s *PollService) pollOnce(ctx context.Context, log *logrus.Entry) error {
	payload, err := s.api.Statuses(ctx, s.cursor)
	if err != nil {
		return err
	}

	// The cursor advances as soon as the server supplied its clock, even if
	// the homework list turns out to be malformed below.
	next, err := practicum.CurrentDate(payload)
	if err != nil {
		return err
	}
	s.cursor = next

	homeworks, err := practicum.CheckResponse(payload)
	if err != nil {
		return err
	}
	if len(homeworks) == 0 {
		log.Debug("No homework updates this cycle")
		return nil
	}
	log.WithField("count", len(homeworks)).Info("Got homework updates")

	// Drain in server-provided order, pausing between consecutive sends so a
	// burst of updates does not flood the chat.
	for i, record := range homeworks {
		if i > 0 {
			if !s.sleep(ctx, s.antiSpamInterval) {
				return ctx.Err()
			}
		}
		message, err := homework.ParseStatus(record)
		if err != nil {
			return err
		}
		s.sender.Send(message)
	}
	return nil
}

// reportFailure notifies the chat about a failed cycle, suppressing texts
// already delivered on a previous cycle. The marker is updated only after
// confirmed delivery: a transient send failure must not mark the error as
// reported.
func (s *PollService) reportFailure(log *logrus.Entry, err error) {
	kind := poll.Classify(err)
	log.WithError(err).WithField("kind", string(kind)).Error("Poll cycle failed")

	message := failureMessage(kind, err)
	if message == s.lastErrorMessage {
		log.Debug("Error already reported, suppressing duplicate notification")
		return
	}
	if s.sender.Send(message) {
		s.lastErrorMessage = message
	}
}

func failureMessage(kind poll.ErrorKind, err error) string {
	switch kind {
	case poll.KindTransport:
		return fmt.Sprintf("Сбой в работе программы: не удалось связаться с API сервиса. %v", err)
	case poll.KindProtocol:
		return fmt.Sprintf("Сбой в работе программы: API сервиса ответил ошибкой. %v", err)
	case poll.KindShape:
		return fmt.Sprintf("Сбой в работе программы: ответ API не соответствует ожиданиям. %v", err)
	default:
		return fmt.Sprintf("Сбой в работе программы: %v", err)
	}
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
