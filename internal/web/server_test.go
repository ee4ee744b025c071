package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taskdeck/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	tasks []domain.Task
}

func (f *fakeReader) GetAll() []domain.Task {
	return f.tasks
}

func (f *fakeReader) GetByID(id string) (domain.Task, bool) {
	for _, task := range f.tasks {
		if task.ID == id {
			return task, true
		}
	}
	return domain.Task{}, false
}

func (f *fakeReader) GetByStatus(status domain.Status) []domain.Task {
	var out []domain.Task
	for _, task := range f.tasks {
		if task.Status == status {
			out = append(out, task)
		}
	}
	return out
}

func setupServer() (*httptest.Server, *fakeReader) {
	assignee := domain.User{ID: "u2", Name: "Bob"}
	reader := &fakeReader{tasks: []domain.Task{
		{
			ID:       "t1",
			Title:    "Fix bug",
			Status:   domain.StatusTodo,
			Priority: domain.PriorityHigh,
			DueDate:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			Creator:  domain.User{ID: "u1", Name: "Alice"},
			Assignee: &assignee,
		},
		{
			ID:       "t2",
			Title:    "Write docs",
			Status:   domain.StatusDone,
			Priority: domain.PriorityLow,
			DueDate:  time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			Creator:  domain.User{ID: "u1", Name: "Alice"},
		},
	}}
	return httptest.NewServer(NewServer(reader).Handler()), reader
}

func TestServer_ListTasks(t *testing.T) {
	server, _ := setupServer()
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/tasks")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var doc taskListDocument
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Equal(t, 2, doc.Total)
	assert.Equal(t, "t1", doc.Tasks[0].ID)
	assert.Equal(t, "2024-06-01", doc.Tasks[0].DueDate)
	require.NotNil(t, doc.Tasks[0].Assignee)
	assert.Equal(t, "Bob", *doc.Tasks[0].Assignee)
	assert.Nil(t, doc.Tasks[1].Assignee)
}

func TestServer_ListTasksByStatus(t *testing.T) {
	server, _ := setupServer()
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/tasks?status=done")
	require.NoError(t, err)
	defer resp.Body.Close()

	var doc taskListDocument
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	require.Equal(t, 1, doc.Total)
	assert.Equal(t, "t2", doc.Tasks[0].ID)
}

func TestServer_ListTasksByStatus_Invalid(t *testing.T) {
	server, _ := setupServer()
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/tasks?status=bogus")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_GetTask(t *testing.T) {
	server, _ := setupServer()
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/tasks/t1")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var doc taskDocument
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Equal(t, "Fix bug", doc.Title)
	assert.Equal(t, "TODO", doc.Status)
}

func TestServer_GetTask_NotFound(t *testing.T) {
	server, _ := setupServer()
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/tasks/missing")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_Health(t *testing.T) {
	server, _ := setupServer()
	defer server.Close()

	resp, err := http.Get(server.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_Metrics(t *testing.T) {
	server, _ := setupServer()
	defer server.Close()

	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
