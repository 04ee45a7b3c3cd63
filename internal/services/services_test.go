package services

import (
	"testing"

	"github.com/pashagolub/pgxmock/v4"
)

func newMockDB(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("new mock pool: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
		mock.Close()
	})
	return mock
}

var taskColumns = []string{"id", "user_id", "name", "priority", "deadline", "elapsed_time", "notes", "completed"}
