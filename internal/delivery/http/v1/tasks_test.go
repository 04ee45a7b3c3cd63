package v1

import (
	"errors"
	"net/http"
	"strconv"
	"testing"
)

func createTask(t *testing.T, s *testServer, token string, body map[string]any) taskResponse {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/tasks", token, body)
	assertStatus(t, w, http.StatusCreated)
	return decode[taskResponse](t, w)
}

func TestHandleCreateTaskDefaults(t *testing.T) {
	s := newTestServer(t)
	token := s.tokenFor(t, userA)

	task := createTask(t, s, token, map[string]any{
		"name":     "Write report",
		"priority": 2,
		"deadline": "2024-01-05",
	})
	if task.ID == 0 || task.UserID != userA {
		t.Errorf("unexpected ids %+v", task)
	}
	if task.ElapsedTime != "0m" || task.Notes != "" || task.Completed {
		t.Errorf("unexpected defaults %+v", task)
	}
}

func TestHandleCreateTaskValidation(t *testing.T) {
	s := newTestServer(t)
	token := s.tokenFor(t, userA)

	for name, body := range map[string]map[string]any{
		"missing name":     {"priority": 1, "deadline": "2024-01-05"},
		"missing priority": {"name": "x", "deadline": "2024-01-05"},
		"bad deadline":     {"name": "x", "priority": 1, "deadline": "05/01/2024"},
		"no such day":      {"name": "x", "priority": 1, "deadline": "2024-02-30"},
		"wrong type":       {"name": "x", "priority": "high", "deadline": "2024-01-05"},
	} {
		w := s.do(t, http.MethodPost, "/api/tasks", token, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", name, w.Code)
			continue
		}
		assertErrorBody(t, w)
	}
}

func TestHandleCreateTaskAcceptsZeroPriority(t *testing.T) {
	s := newTestServer(t)
	task := createTask(t, s, s.tokenFor(t, userA), map[string]any{
		"name":     "someday",
		"priority": 0,
		"deadline": "2024-01-05",
	})
	if task.Priority != 0 {
		t.Errorf("unexpected priority %d", task.Priority)
	}
}

func TestHandleGetTasksNewestFirst(t *testing.T) {
	s := newTestServer(t)
	token := s.tokenFor(t, userA)

	for i, priority := range []int{3, 1, 2} {
		createTask(t, s, token, map[string]any{
			"name":     "task " + strconv.Itoa(i),
			"priority": priority,
			"deadline": "2024-01-0" + strconv.Itoa(i+1),
		})
	}
	createTask(t, s, s.tokenFor(t, userB), map[string]any{
		"name":     "someone else's",
		"priority": 9,
		"deadline": "2024-01-01",
	})

	w := s.do(t, http.MethodGet, "/api/tasks", token, nil)
	assertStatus(t, w, http.StatusOK)
	tasks := decode[[]taskResponse](t, w)
	if len(tasks) != 3 {
		t.Fatalf("expected 3 own tasks, got %d", len(tasks))
	}
	for i := 1; i < len(tasks); i++ {
		if tasks[i-1].ID <= tasks[i].ID {
			t.Fatalf("expected descending ids, got %+v", tasks)
		}
	}
}

func TestHandleGetTasksEmptyIsArray(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/api/tasks", s.tokenFor(t, userA), nil)
	assertStatus(t, w, http.StatusOK)
	if got := w.Body.String(); got != "[]" {
		t.Errorf("expected empty array, got %s", got)
	}
}

func TestHandleGetTasksStoreFailure(t *testing.T) {
	s := newTestServer(t)
	s.store.failWith = errors.New("pool exhausted")

	w := s.do(t, http.MethodGet, "/api/tasks", s.tokenFor(t, userA), nil)
	assertStatus(t, w, http.StatusInternalServerError)
	assertErrorBody(t, w)
}

func TestHandleUpdateTask(t *testing.T) {
	s := newTestServer(t)
	token := s.tokenFor(t, userA)
	task := createTask(t, s, token, map[string]any{"name": "draft", "priority": 1, "deadline": "2024-01-05"})

	w := s.do(t, http.MethodPut, "/api/tasks/"+strconv.FormatInt(task.ID, 10), token, map[string]any{
		"name":     "final",
		"priority": 4,
		"deadline": "2024-02-01",
	})
	assertStatus(t, w, http.StatusOK)
	if !decode[successResponse](t, w).Success {
		t.Error("expected success true")
	}

	stored := s.store.tasks[task.ID]
	if stored.Name != "final" || stored.Priority != 4 || stored.Deadline != "2024-02-01" {
		t.Errorf("task not updated: %+v", stored)
	}
}

func TestHandleCompleteTaskTwice(t *testing.T) {
	s := newTestServer(t)
	token := s.tokenFor(t, userA)
	task := createTask(t, s, token, map[string]any{"name": "draft", "priority": 1, "deadline": "2024-01-05"})
	path := "/api/tasks/" + strconv.FormatInt(task.ID, 10) + "/complete"

	for i := range 2 {
		w := s.do(t, http.MethodPatch, path, token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("call %d: expected 200, got %d", i+1, w.Code)
		}
	}
	if !s.store.tasks[task.ID].Completed {
		t.Error("expected task to stay completed")
	}
}

func TestHandleDeleteTask(t *testing.T) {
	s := newTestServer(t)
	token := s.tokenFor(t, userA)
	task := createTask(t, s, token, map[string]any{"name": "draft", "priority": 1, "deadline": "2024-01-05"})
	path := "/api/tasks/" + strconv.FormatInt(task.ID, 10)

	assertStatus(t, s.do(t, http.MethodDelete, path, token, nil), http.StatusOK)
	assertStatus(t, s.do(t, http.MethodDelete, path, token, nil), http.StatusNotFound)
}

func TestForeignTaskLooksMissing(t *testing.T) {
	s := newTestServer(t)
	owner := s.tokenFor(t, userA)
	other := s.tokenFor(t, userB)
	task := createTask(t, s, owner, map[string]any{"name": "private", "priority": 1, "deadline": "2024-01-05"})
	id := strconv.FormatInt(task.ID, 10)

	missing := s.do(t, http.MethodDelete, "/api/tasks/999999", other, nil)
	assertStatus(t, missing, http.StatusNotFound)

	requests := []struct {
		method, path string
		body         any
	}{
		{http.MethodPut, "/api/tasks/" + id, map[string]any{"name": "hijacked", "priority": 1, "deadline": "2024-01-05"}},
		{http.MethodPatch, "/api/tasks/" + id + "/complete", nil},
		{http.MethodDelete, "/api/tasks/" + id, nil},
		{http.MethodGet, "/api/activities/" + id, nil},
		{http.MethodGet, "/api/notes/" + id, nil},
	}
	for _, r := range requests {
		w := s.do(t, r.method, r.path, other, r.body)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s %s: expected 404, got %d", r.method, r.path, w.Code)
			continue
		}
		if w.Body.String() != missing.Body.String() {
			t.Errorf("%s %s: response differs from a missing task: %s", r.method, r.path, w.Body.String())
		}
	}

	stored := s.store.tasks[task.ID]
	if stored.Name != "private" || stored.Completed {
		t.Errorf("foreign request mutated the task: %+v", stored)
	}
}

func TestHandleTaskInvalidID(t *testing.T) {
	s := newTestServer(t)
	token := s.tokenFor(t, userA)

	for _, path := range []string{"/api/tasks/abc", "/api/tasks/-1", "/api/tasks/0"} {
		w := s.do(t, http.MethodDelete, path, token, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", path, w.Code)
		}
	}
}

func TestHandleUpdateTaskRejectsBadDeadline(t *testing.T) {
	s := newTestServer(t)
	token := s.tokenFor(t, userA)
	task := createTask(t, s, token, map[string]any{"name": "draft", "priority": 1, "deadline": "2024-01-05"})

	w := s.do(t, http.MethodPut, "/api/tasks/"+strconv.FormatInt(task.ID, 10), token, map[string]any{
		"name":     "final",
		"priority": 4,
		"deadline": "2024-1-5",
	})
	assertStatus(t, w, http.StatusBadRequest)
	assertErrorBody(t, w)

	if stored := s.store.tasks[task.ID]; stored.Deadline != "2024-01-05" {
		t.Errorf("task changed by rejected update: %+v", stored)
	}
}
