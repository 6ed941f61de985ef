package employee

import (
	"context"
	"strings"
	"time"

	"github.com/vivek068790/Employee-Register-App/internal/domain"
	employeeerrors "github.com/vivek068790/Employee-Register-App/internal/employee/errors"
	"github.com/vivek068790/Employee-Register-App/internal/events"
	"github.com/vivek068790/Employee-Register-App/internal/messaging/kafka"
	"github.com/vivek068790/Employee-Register-App/internal/recordstore"
	"github.com/vivek068790/Employee-Register-App/internal/report"
	"github.com/vivek068790/Employee-Register-App/internal/shared/contextutil"

	"go.uber.org/zap"
)

// Store is the part of the record store this feature needs.
type Store interface {
	ListEmployees(ctx context.Context) []domain.Employee
	FindEmployee(ctx context.Context, id string) (domain.Employee, bool)
	AddEmployee(ctx context.Context, in domain.EmployeeInput) (domain.Employee, error)
	UpdateEmployee(ctx context.Context, id string, patch domain.EmployeePatch) (domain.Employee, bool, error)
	DeleteEmployee(ctx context.Context, id string) (bool, error)
	Snapshot() recordstore.Snapshot
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, q ListQuery) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	store     Store
	publisher kafka.Publisher
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(store Store, logger ...*zap.Logger) Service {
	return NewServiceWithPublisher(store, nil, logger...)
}

func NewServiceWithPublisher(store Store, publisher kafka.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if publisher == nil {
		publisher = kafka.NewNoopPublisher()
	}
	return &service{
		store:     store,
		publisher: publisher,
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_code", req.EmployeeID),
	)

	empl, err := s.store.AddEmployee(ctx, domain.EmployeeInput{
		Name:     req.Name,
		Code:     req.EmployeeID,
		Email:    req.Email,
		Phone:    req.Phone,
		Gender:   domain.Gender(strings.ToLower(strings.TrimSpace(req.Gender))),
		Position: req.Position,
	})
	if err != nil {
		s.logger.Warn("create employee failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.publishLifecycle(ctx, events.EmployeeCreated, empl)
	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID),
	)
	return mapToResponse(empl), nil
}

func (s *service) GetAll(ctx context.Context, q ListQuery) ([]EmployeeResponse, error) {
	if !validSort(q.SortBy) {
		return nil, employeeerrors.ErrInvalidSort
	}

	snap := s.store.Snapshot()
	date := q.Date
	if date.IsZero() && q.SortBy == SortByStatus {
		date = domain.DateOf(s.now())
	}
	statusOf := func(id string) string {
		if st, ok := report.StatusOf(snap, id, date); ok {
			return string(st)
		}
		return statusUnmarked
	}

	employees := filterAndSort(snap.Employees, q, statusOf)
	resp := mapToListResponse(employees)
	if !q.Date.IsZero() {
		for i := range resp {
			resp[i].AttendanceStatus = statusOf(resp[i].ID)
		}
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	empl, ok := s.store.FindEmployee(ctx, id)
	if !ok {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	return mapToResponse(empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	patch := domain.EmployeePatch{
		Name:     req.Name,
		Code:     req.EmployeeID,
		Email:    req.Email,
		Phone:    req.Phone,
		Position: req.Position,
	}
	if req.Gender != nil {
		g := domain.Gender(strings.ToLower(strings.TrimSpace(*req.Gender)))
		patch.Gender = &g
	}

	empl, found, err := s.store.UpdateEmployee(ctx, id, patch)
	if err != nil {
		s.logger.Warn("update employee failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}
	if !found {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	s.publishLifecycle(ctx, events.EmployeeUpdated, empl)
	s.logger.Info("update employee success", zap.String("employee_id", id))
	return mapToResponse(empl), nil
}

// Delete cascades to the employee's attendance records. The cascade runs
// even for an unknown id; the caller still gets not-found.
func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	empl, _ := s.store.FindEmployee(ctx, id)
	found, err := s.store.DeleteEmployee(ctx, id)
	if err != nil {
		s.logger.Error("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return err
	}
	if !found {
		return employeeerrors.ErrEmployeeNotFound
	}

	s.publishLifecycle(ctx, events.EmployeeDeleted, empl)
	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func mapToResponse(empl domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         empl.ID,
		Name:       empl.Name,
		EmployeeID: empl.Code,
		Email:      empl.Email,
		Phone:      empl.Phone,
		Gender:     string(empl.Gender),
		Position:   empl.Position,
		DateAdded:  empl.DateAdded.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(employees []domain.Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res
}
