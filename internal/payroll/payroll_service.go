package payroll

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vivek068790/Employee-Register-App/internal/domain"
	"github.com/vivek068790/Employee-Register-App/internal/export"
	payrollerrors "github.com/vivek068790/Employee-Register-App/internal/payroll/errors"
	"github.com/vivek068790/Employee-Register-App/internal/recordstore"
	"github.com/vivek068790/Employee-Register-App/internal/shared/contextutil"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Store is the part of the record store this feature needs.
type Store interface {
	Snapshot() recordstore.Snapshot
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	GetMonthly(ctx context.Context, month time.Month, year int) (PayrollResponse, error)
	Export(ctx context.Context, month time.Month, year int, format Format) (export.File, error)
	Payslip(ctx context.Context, employeeID string, month time.Month, year int) (export.File, error)
}

type service struct {
	store  Store
	rates  RateTable
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(store Store, rates RateTable, logger ...*zap.Logger) (Service, error) {
	if err := rates.Validate(); err != nil {
		return nil, err
	}
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{store: store, rates: rates, sf: &singleflight.Group{}, logger: l}, nil
}

func validPeriod(month time.Month, year int) bool {
	return month >= time.January && month <= time.December && year > 0
}

// compute shares one calculation between concurrent callers asking for the
// same month.
func (s *service) compute(month time.Month, year int) []domain.PayrollData {
	key := fmt.Sprintf("payroll:%04d-%02d", year, int(month))
	v, _, shared := s.sf.Do(key, func() (interface{}, error) {
		return MonthlyPayroll(s.store.Snapshot(), month, year, s.rates), nil
	})
	rows := v.([]domain.PayrollData)
	if shared {
		rows = append([]domain.PayrollData(nil), rows...)
	}
	return rows
}

func (s *service) GetMonthly(ctx context.Context, month time.Month, year int) (PayrollResponse, error) {
	if !validPeriod(month, year) {
		return PayrollResponse{}, payrollerrors.ErrInvalidPeriod
	}
	rows := s.compute(month, year)
	s.logger.Debug("payroll computed",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("month", month.String()),
		zap.Int("year", year),
		zap.Int("employees", len(rows)),
	)
	return PayrollResponse{Rows: rows, Summary: Summarize(rows, month, year), Rates: s.rates}, nil
}

func (s *service) Export(ctx context.Context, month time.Month, year int, format Format) (export.File, error) {
	if !validPeriod(month, year) {
		return export.File{}, payrollerrors.ErrInvalidPeriod
	}
	rows := s.compute(month, year)
	base := fmt.Sprintf("payroll-%s-%d", strings.ToLower(month.String()), year)

	var (
		f   export.File
		err error
	)
	switch Format(strings.ToLower(string(format))) {
	case FormatCSV, "":
		f = export.File{Name: base + ".csv", ContentType: export.ContentTypeCSV}
		f.Body, err = export.PayrollCSV(rows)
	case FormatXLSX:
		f = export.File{Name: base + ".xlsx", ContentType: export.ContentTypeXLSX}
		f.Body, err = export.PayrollXLSX(rows, month, year)
	default:
		return export.File{}, payrollerrors.ErrUnsupportedFormat
	}
	if err != nil {
		s.logger.Error("payroll export failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("format", string(format)),
			zap.Error(err),
		)
		return export.File{}, err
	}

	s.logger.Info("payroll exported",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("file", f.Name),
		zap.Int("rows", len(rows)),
	)
	return f, nil
}

func (s *service) Payslip(ctx context.Context, employeeID string, month time.Month, year int) (export.File, error) {
	if !validPeriod(month, year) {
		return export.File{}, payrollerrors.ErrInvalidPeriod
	}
	for _, p := range s.compute(month, year) {
		if p.EmployeeID != employeeID && !domain.SameCode(p.EmployeeCode, employeeID) {
			continue
		}
		s.logger.Info("payslip rendered",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("employee_id", p.EmployeeID),
		)
		return export.File{
			Name:        fmt.Sprintf("payslip-%s-%04d-%02d.pdf", p.EmployeeCode, year, int(month)),
			ContentType: export.ContentTypePDF,
			Body:        renderPayslipPDF(p),
		}, nil
	}
	return export.File{}, payrollerrors.ErrPayrollEmployeeNotFound
}
