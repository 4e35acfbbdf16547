package database

import (
	"fmt"
	"time"

	coreport "github.com/easybots/storefront-backend/internal/domain/port/core"
	"github.com/easybots/storefront-backend/internal/infrastructure/adapter/metrics"
)

// PoolMonitor periodically samples database connection pool statistics,
// publishes them as gauges and warns when the pool is nearly exhausted
type PoolMonitor struct {
	db       *Manager
	logger   coreport.Logger
	stopChan chan struct{}
}

// NewPoolMonitor creates a new connection pool monitor
func NewPoolMonitor(db *Manager, logger coreport.Logger) *PoolMonitor {
	return &PoolMonitor{
		db:       db,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start begins monitoring the connection pool at the given interval
func (m *PoolMonitor) Start(interval time.Duration) error {
	// Sample once up front so a broken pool surfaces immediately
	if err := m.collect(); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	go func() {
		for {
			select {
			case <-ticker.C:
				if err := m.collect(); err != nil {
					m.logger.Error("Failed to collect connection pool metrics", map[string]any{
						"error": err.Error(),
					})
				}
			case <-m.stopChan:
				ticker.Stop()
				return
			}
		}
	}()

	return nil
}

// Stop stops the monitoring
func (m *PoolMonitor) Stop() {
	close(m.stopChan)
}

// collect samples the current pool statistics
func (m *PoolMonitor) collect() error {
	sqlDB, err := m.db.DB().DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	stats := sqlDB.Stats()
	metrics.SetDBPoolStats(stats.OpenConnections, stats.InUse, stats.Idle)

	threshold := float64(stats.MaxOpenConnections) * 0.8
	if float64(stats.InUse) > threshold {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}

	return nil
}
