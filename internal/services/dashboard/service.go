package dashboard

import (
	"context"
	"fmt"

	"officedesk/internal/clock"
	"officedesk/internal/models"
	"officedesk/internal/services/attendance"
)

type Service interface {
	GetAdminDashboard(ctx context.Context) (*models.AdminDashboardStats, error)
	GetEmployeeDashboard(ctx context.Context, claims *models.UserClaims) (*models.EmployeeDashboardStats, error)
}

// UserCounter counts accounts per role.
type UserCounter interface {
	CountByRole(ctx context.Context, role string) (int64, error)
}

// AttendanceCounter counts a day's attendance rows; an empty status counts all.
type AttendanceCounter interface {
	CountByDay(ctx context.Context, dateKey string, status models.AttendanceStatus) (int64, error)
}

// LinkCounter counts issued links; an empty creator counts all.
type LinkCounter interface {
	Count(ctx context.Context, createdBy string) (int64, error)
}

type service struct {
	users      UserCounter
	attendance AttendanceCounter
	links      LinkCounter
	tracker    attendance.Service
	clock      clock.Clock
}

func NewService(
	users UserCounter,
	attendanceCounter AttendanceCounter,
	links LinkCounter,
	tracker attendance.Service,
	clk clock.Clock,
) Service {
	if clk == nil {
		clk = clock.System{}
	}
	return &service{
		users:      users,
		attendance: attendanceCounter,
		links:      links,
		tracker:    tracker,
		clock:      clk,
	}
}

func (s *service) GetAdminDashboard(ctx context.Context) (*models.AdminDashboardStats, error) {
	today := attendance.DayKey(s.clock.Now())

	employees, err := s.users.CountByRole(ctx, models.RoleEmployee)
	if err != nil {
		return nil, fmt.Errorf("count employees: %w", err)
	}
	clockedIn, err := s.attendance.CountByDay(ctx, today, models.StatusClockedIn)
	if err != nil {
		return nil, fmt.Errorf("count clocked in: %w", err)
	}
	present, err := s.attendance.CountByDay(ctx, today, "")
	if err != nil {
		return nil, fmt.Errorf("count present: %w", err)
	}
	links, err := s.links.Count(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("count payment links: %w", err)
	}

	return &models.AdminDashboardStats{
		TotalEmployees:    employees,
		ClockedInToday:    clockedIn,
		PresentToday:      present,
		TotalPaymentLinks: links,
	}, nil
}

func (s *service) GetEmployeeDashboard(ctx context.Context, claims *models.UserClaims) (*models.EmployeeDashboardStats, error) {
	snap, err := s.tracker.Today(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("attendance today: %w", err)
	}
	links, err := s.links.Count(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("count payment links: %w", err)
	}

	return &models.EmployeeDashboardStats{
		Status:        snap.Record.Status,
		WorkedToday:   snap.Display,
		GoalReached:   snap.GoalReached,
		PaymentLinks:  links,
		CanIssueLinks: claims.HasPermission(models.PermissionPaymentLinkWrite),
	}, nil
}
