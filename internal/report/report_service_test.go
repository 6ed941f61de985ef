package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	attendanceerrors "github.com/vivek068790/Employee-Register-App/internal/attendance/errors"
	"github.com/vivek068790/Employee-Register-App/internal/domain"
	"github.com/vivek068790/Employee-Register-App/internal/recordstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshotStore struct {
	snap recordstore.Snapshot
}

func (s snapshotStore) Snapshot() recordstore.Snapshot { return s.snap }

func TestReportService_Session(t *testing.T) {
	ctx := context.Background()
	svc := NewService(snapshotStore{snap: fixture()})

	session, err := svc.Session(ctx, domain.MustParseDate("2025-03-05"))
	require.NoError(t, err)
	assert.Equal(t, 1, session.LateCount)

	_, err = NewService(snapshotStore{}).Session(ctx, domain.MustParseDate("2025-03-05"))
	assert.ErrorIs(t, err, attendanceerrors.ErrSessionNotFound)

	_, err = NewService(snapshotStore{}).DayStats(ctx, domain.MustParseDate("2025-03-05"))
	assert.ErrorIs(t, err, attendanceerrors.ErrSessionNotFound)
}

func TestReportService_ExportSession(t *testing.T) {
	svc := NewService(snapshotStore{snap: fixture()})

	f, err := svc.ExportSession(context.Background(), domain.MustParseDate("2025-03-05"))
	require.NoError(t, err)
	assert.Equal(t, "attendance-2025-03-05.csv", f.Name)

	rows, err := csv.NewReader(bytes.NewReader(f.Body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"Name 1", "C1", "male", "present", "2025-03-05"}, rows[1])
	assert.Equal(t, []string{"Name 4", "C4", "female", "Not marked", "2025-03-05"}, rows[4])
}

func TestReportService_Delegates(t *testing.T) {
	ctx := context.Background()
	svc := NewService(snapshotStore{snap: fixture()})

	assert.Len(t, svc.Sessions(ctx), 3)
	assert.Len(t, svc.Recent(ctx, 1), 1)
	assert.Equal(t, 42, svc.Overall(ctx).AverageAttendance)
	assert.Equal(t, 50, svc.Monthly(ctx, time.March, 2025).AverageAttendance)
	assert.Len(t, svc.MonthlyByEmployee(ctx, time.March, 2025), 4)
}
