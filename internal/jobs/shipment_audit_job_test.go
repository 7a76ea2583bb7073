package jobs_test

import (
	"io"
	"log/slog"
	"testing"

	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestShipmentAuditJob_DefaultSchedule(t *testing.T) {
	// An empty cron spec falls back to the built-in once-a-minute schedule.
	job := jobs.NewShipmentAuditJob(queries.GetActiveShipmentsQueryHandler{}, "", testLogger())

	require.NoError(t, job.Start())
	job.Stop()
}

func TestShipmentAuditJob_CustomSchedule(t *testing.T) {
	job := jobs.NewShipmentAuditJob(
		queries.GetActiveShipmentsQueryHandler{}, "0 0 3 * * *", testLogger())

	require.NoError(t, job.Start())
	job.Stop()
}

func TestShipmentAuditJob_InvalidCronSpec(t *testing.T) {
	job := jobs.NewShipmentAuditJob(
		queries.GetActiveShipmentsQueryHandler{}, "not a cron spec", testLogger())

	err := job.Start()
	require.Error(t, err)
}

func TestJobManager_StartAllReportsScheduleError(t *testing.T) {
	manager := jobs.NewJobManager(
		queries.GetActiveShipmentsQueryHandler{}, "every full moon", testLogger())

	err := manager.StartAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start shipment audit job")
}

func TestJobManager_StartAndStopAll(t *testing.T) {
	manager := jobs.NewJobManager(
		queries.GetActiveShipmentsQueryHandler{}, "0 30 4 * * *", testLogger())

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}
