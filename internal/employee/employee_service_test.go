package employee_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/vivek068790/Employee-Register-App/internal/domain"
	"github.com/vivek068790/Employee-Register-App/internal/employee"
	employeeerrors "github.com/vivek068790/Employee-Register-App/internal/employee/errors"
	"github.com/vivek068790/Employee-Register-App/internal/events"
	"github.com/vivek068790/Employee-Register-App/internal/kvstore/memory"
	"github.com/vivek068790/Employee-Register-App/internal/messaging/kafka"
	kafkaMock "github.com/vivek068790/Employee-Register-App/internal/messaging/kafka/mock"
	"github.com/vivek068790/Employee-Register-App/internal/recordstore"
	"github.com/vivek068790/Employee-Register-App/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC)

type serviceDeps struct {
	store     *recordstore.Store
	publisher *kafkaMock.MockPublisher
	service   employee.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	seq := 0
	store, err := recordstore.Open(context.Background(), memory.New(),
		recordstore.WithClock(func() time.Time { return fixedNow }),
		recordstore.WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("emp-%d", seq)
		}),
	)
	require.NoError(t, err)

	pub := kafkaMock.NewMockPublisher(ctrl)
	return &serviceDeps{
		store:     store,
		publisher: pub,
		service:   employee.NewServiceWithPublisher(store, pub),
	}
}

func createReq(name, code, gender string) employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{Name: name, EmployeeID: code, Gender: gender}
}

func TestEmployeeService_Create(t *testing.T) {
	t.Run("success publishes lifecycle event with request id", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := contextutil.WithRequestID(context.Background(), "rid-1")

		deps.publisher.EXPECT().
			Publish(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, msg kafka.Message) error {
				assert.Equal(t, events.EmployeeLifecycleTopic, msg.Topic)
				assert.Equal(t, events.EmployeeCreated, msg.EventType)
				assert.Equal(t, "emp-1", msg.Key)
				assert.Equal(t, "rid-1", msg.RequestID)
				ev := msg.Payload.(events.EmployeeLifecycleEvent)
				assert.Equal(t, "EMP001", ev.EmployeeCode)
				return nil
			})

		resp, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			Name:       " John Smith ",
			EmployeeID: "EMP001",
			Email:      "john@company.com",
			Gender:     "Male",
			Position:   "Manager",
		})

		require.NoError(t, err)
		assert.Equal(t, "emp-1", resp.ID)
		assert.Equal(t, "John Smith", resp.Name)
		assert.Equal(t, "male", resp.Gender)
		assert.Equal(t, "2025-03-10T08:00:00Z", resp.DateAdded)
	})

	t.Run("publish failure does not fail the request", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		_, err := deps.service.Create(context.Background(), createReq("A", "E1", "female"))
		assert.NoError(t, err)
		assert.Len(t, deps.store.ListEmployees(context.Background()), 1)
	})

	t.Run("duplicate code", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		_, err := deps.service.Create(context.Background(), createReq("A", "E1", "female"))
		require.NoError(t, err)
		_, err = deps.service.Create(context.Background(), createReq("B", "e1 ", "male"))
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeCodeAlreadyExists)
	})

	t.Run("invalid gender", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.Create(context.Background(), createReq("A", "E1", "other"))
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidGender)
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	for _, r := range []employee.CreateEmployeeRequest{
		{Name: "Sarah Johnson", EmployeeID: "EMP002", Gender: "female", Position: "Developer"},
		{Name: "John Smith", EmployeeID: "EMP001", Gender: "male", Position: "Manager"},
		{Name: "Mike Wilson", EmployeeID: "EMP003", Gender: "male", Position: "Designer"},
	} {
		_, err := deps.service.Create(ctx, r)
		require.NoError(t, err)
	}

	date := domain.MustParseDate("2025-03-10")
	_, err := deps.store.MarkAttendance(ctx, recordstore.MarkInput{EmployeeID: "emp-3", Date: date, Status: domain.StatusAbsent})
	require.NoError(t, err)
	_, err = deps.store.MarkAttendance(ctx, recordstore.MarkInput{EmployeeID: "emp-1", Date: date, Status: domain.StatusPresent})
	require.NoError(t, err)

	names := func(resp []employee.EmployeeResponse) []string {
		out := []string{}
		for _, r := range resp {
			out = append(out, r.Name)
		}
		return out
	}

	t.Run("insertion order without sort", func(t *testing.T) {
		resp, err := deps.service.GetAll(ctx, employee.ListQuery{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Sarah Johnson", "John Smith", "Mike Wilson"}, names(resp))
		assert.Empty(t, resp[0].AttendanceStatus)
	})

	t.Run("search matches position case-insensitively", func(t *testing.T) {
		resp, err := deps.service.GetAll(ctx, employee.ListQuery{Search: "DESIGN"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Mike Wilson"}, names(resp))
	})

	t.Run("sort by code desc", func(t *testing.T) {
		resp, err := deps.service.GetAll(ctx, employee.ListQuery{SortBy: employee.SortByEmployeeID, Desc: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"Mike Wilson", "Sarah Johnson", "John Smith"}, names(resp))
	})

	t.Run("sort by status for a date", func(t *testing.T) {
		resp, err := deps.service.GetAll(ctx, employee.ListQuery{SortBy: employee.SortByStatus, Date: date})
		require.NoError(t, err)
		// absent < present < unmarked
		assert.Equal(t, []string{"Mike Wilson", "Sarah Johnson", "John Smith"}, names(resp))
		assert.Equal(t, "absent", resp[0].AttendanceStatus)
		assert.Equal(t, "unmarked", resp[2].AttendanceStatus)
	})

	t.Run("unknown sort", func(t *testing.T) {
		_, err := deps.service.GetAll(ctx, employee.ListQuery{SortBy: "salary"})
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidSort)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	_, err := deps.service.Create(ctx, createReq("A", "E1", "female"))
	require.NoError(t, err)

	t.Run("partial update", func(t *testing.T) {
		pos := "Lead"
		resp, err := deps.service.Update(ctx, "emp-1", employee.UpdateEmployeeRequest{Position: &pos})
		require.NoError(t, err)
		assert.Equal(t, "Lead", resp.Position)
		assert.Equal(t, "A", resp.Name)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		name := "X"
		_, err := deps.service.Update(ctx, "nope", employee.UpdateEmployeeRequest{Name: &name})
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		blank := "  "
		_, err := deps.service.Update(ctx, "emp-1", employee.UpdateEmployeeRequest{Name: &blank})
		assert.ErrorIs(t, err, employeeerrors.ErrNameRequired)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	gomock.InOrder(
		deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil),
		deps.publisher.EXPECT().
			Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg kafka.Message) error {
				assert.Equal(t, events.EmployeeDeleted, msg.EventType)
				return nil
			}),
	)

	_, err := deps.service.Create(ctx, createReq("A", "E1", "female"))
	require.NoError(t, err)
	_, err = deps.store.MarkAttendance(ctx, recordstore.MarkInput{EmployeeID: "emp-1", Date: domain.MustParseDate("2025-03-10"), Status: domain.StatusLate})
	require.NoError(t, err)

	require.NoError(t, deps.service.Delete(ctx, "emp-1"))
	assert.Empty(t, deps.store.ListAttendanceRecords(ctx))

	err = deps.service.Delete(ctx, "emp-1")
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}
