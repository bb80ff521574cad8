package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/totegamma/storykeep/internal/domain"
)

// SignalService fans association events out over redis pub/sub.
// A nil client turns it into a no-op publisher.
type SignalService struct {
	rdb *redis.Client
}

func NewSignalService(redisClient *redis.Client) *SignalService {
	return &SignalService{
		rdb: redisClient,
	}
}

// Channel is the pub/sub channel carrying one account's events.
func Channel(accountID int64) string {
	return "account:" + strconv.FormatInt(accountID, 10)
}

func (s *SignalService) Enabled() bool {
	return s != nil && s.rdb != nil
}

func (s *SignalService) Publish(ctx context.Context, event domain.Event) error {
	if !s.Enabled() {
		return nil
	}

	jsonstr, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = s.rdb.Publish(ctx, Channel(event.AccountID), jsonstr).Err()
	if err != nil {
		return errors.Wrap(err, "SignalService.Publish")
	}

	return nil
}

// Realtime forwards the account's events to output until ctx is done.
func (s *SignalService) Realtime(ctx context.Context, accountID int64, output chan<- domain.Event) error {
	if !s.Enabled() {
		return errors.New("realtime requires redis")
	}

	pubsub := s.rdb.Subscribe(ctx, Channel(accountID))
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return errors.Wrap(err, "SignalService.Realtime")
	}

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			var event domain.Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				slog.WarnContext(
					ctx, "dropping malformed event",
					slog.String("error", err.Error()),
					slog.String("module", "signal"),
				)
				continue
			}
			select {
			case output <- event:
			case <-ctx.Done():
				return nil
			}
		}
	}
}
