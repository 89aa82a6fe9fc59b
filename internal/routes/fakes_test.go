package routes

import (
	"context"
	"sort"
	"strings"
	"sync"

	"officedesk/internal/models"
	"officedesk/internal/repositories"
	"officedesk/internal/services/attendance"

	"github.com/google/uuid"
)

type memUsers struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newMemUsers(users ...*models.User) *memUsers {
	m := &memUsers{users: map[string]*models.User{}}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *memUsers) Create(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return repositories.ErrEmailTaken
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (m *memUsers) Update(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *memUsers) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
	return nil
}

func (m *memUsers) IncrementTokenVersion(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		u.TokenVersion++
	}
	return nil
}

func (m *memUsers) List(_ context.Context, f repositories.UserFilter) ([]*models.User, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.User
	for _, u := range m.users {
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(u.Name+" "+u.Email), strings.ToLower(f.Search)) {
			continue
		}
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, int64(len(out)), nil
}

func (m *memUsers) CountByRole(ctx context.Context, role string) (int64, error) {
	_, n, err := m.List(ctx, repositories.UserFilter{Role: role})
	return n, err
}

type memAttendance struct {
	mu         sync.Mutex
	rows       map[string]models.Attendance
	historyErr error
}

func (m *memAttendance) failHistory(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.historyErr = err
}

func newMemAttendance() *memAttendance {
	return &memAttendance{rows: map[string]models.Attendance{}}
}

func (m *memAttendance) Save(_ context.Context, userID, dateKey string, st attendance.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[userID+"/"+dateKey] = models.Attendance{
		UserID:       userID,
		DateKey:      dateKey,
		ClockInTime:  st.ClockInTime,
		ClockOutTime: st.ClockOutTime,
		Status:       st.Status,
	}
	return nil
}

func (m *memAttendance) History(_ context.Context, userID string) ([]models.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.historyErr != nil {
		return nil, m.historyErr
	}
	var out []models.Attendance
	for _, r := range m.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateKey > out[j].DateKey })
	return out, nil
}

func (m *memAttendance) CountByDay(_ context.Context, dateKey string, status models.AttendanceStatus) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, r := range m.rows {
		if r.DateKey == dateKey && (status == "" || r.Status == status) {
			n++
		}
	}
	return n, nil
}
