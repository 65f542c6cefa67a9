package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"crudapp/pkg/session"

	"github.com/robfig/cron"
)

const purgeTimeout = 30 * time.Second

type JobSpec struct {
	Schedule string
	Factory  JobFactory
}

func NewJobSpec(schedule string, factory JobFactory) JobSpec {
	return JobSpec{schedule, factory}
}

type JobFactory func(sessions session.Repository, logger *slog.Logger) cron.Job

var Jobs = map[string]JobSpec{
	"PurgeSessions": NewJobSpec("@every 5m", NewPurgeSessionsJob),
}

// Start schedules every job in Jobs and starts the scheduler.
func Start(sessions session.Repository, logger *slog.Logger) (*cron.Cron, error) {
	c := cron.New()
	for name, spec := range Jobs {
		if err := c.AddJob(spec.Schedule, spec.Factory(sessions, logger)); err != nil {
			return nil, fmt.Errorf("invalid schedule %q for job %s: %w", spec.Schedule, name, err)
		}
	}
	c.Start()
	return c, nil
}

type PurgeSessionsJob struct {
	sessions session.Repository
	logger   *slog.Logger
}

func NewPurgeSessionsJob(sessions session.Repository, logger *slog.Logger) cron.Job {
	return &PurgeSessionsJob{sessions: sessions, logger: logger}
}

func (job *PurgeSessionsJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	n, err := job.sessions.DeleteExpired(ctx)
	if err != nil {
		job.logger.Warn("error purging expired sessions", "error", err)
		return
	}
	job.logger.Debug("purged expired sessions", "count", n)
}
