package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/Shalini630/serbian-land-trust/internal/database"
	"github.com/Shalini630/serbian-land-trust/internal/modules/dashboards"
)

// SummaryRefreshJob recomputes the cached dashboard summaries.
type SummaryRefreshJob struct {
	Dashboards *dashboards.Service
}

func (j *SummaryRefreshJob) Name() string     { return "summary_refresh" }
func (j *SummaryRefreshJob) Schedule() string { return "@every 15m" }

func (j *SummaryRefreshJob) Run() error {
	j.Dashboards.RefreshAll()
	return nil
}

// HealthCheckJob runs SQLite quick checks against the core databases.
type HealthCheckJob struct {
	Databases map[string]*database.DB
}

func (j *HealthCheckJob) Name() string     { return "db_health_check" }
func (j *HealthCheckJob) Schedule() string { return "@every 1h" }

func (j *HealthCheckJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for name, db := range j.Databases {
		if err := db.QuickCheck(ctx); err != nil {
			return fmt.Errorf("quick check failed for %s: %w", name, err)
		}
	}
	return nil
}
