package sweep

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"character-auction/internal/room"
)

// Sweeper enforces the advisory room deadlines on a schedule. The state
// machine itself never watches the clock: stale turn timers are resolved and
// stale vote timers tallied from here (or by a polling client hitting the
// resolve/endvote endpoints).
type Sweeper struct {
	manager  *room.Manager
	interval time.Duration
	logger   *zap.Logger
	cron     *cron.Cron
}

func New(manager *room.Manager, interval time.Duration, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		manager:  manager,
		interval: interval,
		logger:   logger,
		cron:     cron.New(cron.WithSeconds()),
	}
}

func (s *Sweeper) Start() error {
	_, err := s.cron.AddFunc(fmt.Sprintf("@every %s", s.interval), func() {
		if n := s.manager.ExpireDeadlines(time.Now()); n > 0 {
			s.logger.Info("advanced rooms on expired deadlines", zap.Int("rooms", n))
		}
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

func (s *Sweeper) Stop() {
	s.cron.Stop()
}
