package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bengkel-backend/internal/domain"
	"bengkel-backend/internal/repository"
)

type maintFixture struct {
	tools         *MockToolRepo
	reports       *MockMaintenanceRepo
	notifications *MockNotificationRepo
	svc           MaintenanceService
}

func newMaintFixture() *maintFixture {
	f := &maintFixture{
		tools:         new(MockToolRepo),
		reports:       new(MockMaintenanceRepo),
		notifications: new(MockNotificationRepo),
	}
	f.svc = NewMaintenanceService(fakeTxManager{}, f.tools, f.reports, f.notifications)
	return f
}

func TestCreateReportTakesToolOutOfCirculation(t *testing.T) {
	f := newMaintFixture()

	f.tools.On("GetByIDForUpdate", mock.Anything, int32(7)).
		Return(&domain.Tool{ID: 7, Status: domain.ToolStatusAvailable}, nil)
	f.reports.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.MaintenanceReport) bool {
		return r.ToolID == 7 && r.ReporterID == 3 && r.Status == domain.MaintenanceStatusOpen
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.MaintenanceReport).ID = 11
	}).Return(nil)
	f.tools.On("UpdateStatus", mock.Anything, int32(7), domain.ToolStatusUnderMaintenance).Return(nil)

	report, err := f.svc.CreateReport(context.Background(), 7, 3, "engine leaks oil")
	require.NoError(t, err)
	assert.Equal(t, int32(11), report.ID)
	f.tools.AssertExpectations(t)
	f.reports.AssertExpectations(t)
}

func TestCreateReportToolMissing(t *testing.T) {
	f := newMaintFixture()

	f.tools.On("GetByIDForUpdate", mock.Anything, int32(99)).
		Return(nil, repository.ErrNotFound)

	_, err := f.svc.CreateReport(context.Background(), 99, 3, "broken")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAssignTechnician(t *testing.T) {
	f := newMaintFixture()

	f.reports.On("GetByID", mock.Anything, int32(11)).
		Return(&domain.MaintenanceReport{ID: 11, ToolID: 7, ReporterID: 3,
			Status: domain.MaintenanceStatusOpen}, nil)
	f.reports.On("Update", mock.Anything, mock.MatchedBy(func(r *domain.MaintenanceReport) bool {
		return r.Status == domain.MaintenanceStatusInProgress &&
			r.AssigneeID != nil && *r.AssigneeID == 5
	})).Return(nil)
	f.notifications.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.UserID == 5
	})).Return(nil)

	report, err := f.svc.AssignTechnician(context.Background(), 11, 5)
	require.NoError(t, err)
	assert.Equal(t, domain.MaintenanceStatusInProgress, report.Status)
	f.reports.AssertExpectations(t)
	f.notifications.AssertExpectations(t)
}

func TestAssignTechnicianNonOpenIsNoOp(t *testing.T) {
	f := newMaintFixture()

	f.reports.On("GetByID", mock.Anything, int32(11)).
		Return(&domain.MaintenanceReport{ID: 11, Status: domain.MaintenanceStatusResolved}, nil)

	report, err := f.svc.AssignTechnician(context.Background(), 11, 5)
	require.NoError(t, err)
	assert.Equal(t, domain.MaintenanceStatusResolved, report.Status)
	f.reports.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestResolveReport(t *testing.T) {
	f := newMaintFixture()

	tech := int32(5)
	f.reports.On("GetByID", mock.Anything, int32(11)).
		Return(&domain.MaintenanceReport{ID: 11, ToolID: 7, ReporterID: 3,
			AssigneeID: &tech, Status: domain.MaintenanceStatusInProgress}, nil)
	f.reports.On("Update", mock.Anything, mock.MatchedBy(func(r *domain.MaintenanceReport) bool {
		return r.Status == domain.MaintenanceStatusResolved && r.ResolvedOn != nil
	})).Return(nil)
	f.tools.On("UpdateStatus", mock.Anything, int32(7), domain.ToolStatusAvailable).Return(nil)
	f.notifications.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.UserID == 3
	})).Return(nil)

	report, err := f.svc.ResolveReport(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, domain.MaintenanceStatusResolved, report.Status)
	f.tools.AssertExpectations(t)
}

func TestResolveReportFromOpenIsNoOp(t *testing.T) {
	f := newMaintFixture()

	f.reports.On("GetByID", mock.Anything, int32(11)).
		Return(&domain.MaintenanceReport{ID: 11, ToolID: 7,
			Status: domain.MaintenanceStatusOpen}, nil)

	report, err := f.svc.ResolveReport(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, domain.MaintenanceStatusOpen, report.Status)

	f.reports.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.tools.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
