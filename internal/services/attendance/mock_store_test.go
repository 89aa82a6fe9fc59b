package attendance

import (
	"context"

	"officedesk/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Save(ctx context.Context, userID, dateKey string, state State) error {
	args := m.Called(ctx, userID, dateKey, state)
	return args.Error(0)
}

func (m *MockStore) History(ctx context.Context, userID string) ([]models.Attendance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Attendance), args.Error(1)
}

// lastSaved returns the state of the most recent Save call.
func (m *MockStore) lastSaved() (string, State, bool) {
	var (
		key   string
		state State
		found bool
	)
	for _, c := range m.Calls {
		if c.Method == "Save" {
			key = c.Arguments.String(2)
			state = c.Arguments.Get(3).(State)
			found = true
		}
	}
	return key, state, found
}
