package web

import (
	"encoding/json"
	"net/http"

	"taskdeck/internal/domain"
	"taskdeck/internal/validation"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// TaskReader is the read-only slice of the controller the web view needs.
type TaskReader interface {
	GetAll() []domain.Task
	GetByID(id string) (domain.Task, bool)
	GetByStatus(status domain.Status) []domain.Task
}

// Server exposes a local, read-only view over the cached task list plus
// the Prometheus metrics endpoint. No mutations go through HTTP; every
// write stays an intent issued to the controller.
type Server struct {
	tasks TaskReader
}

// NewServer creates a web server over the given task reader.
func NewServer(tasks TaskReader) *Server {
	return &Server{tasks: tasks}
}

// Handler returns the HTTP handler for the local view.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.healthHandler)
	r.Get("/api/tasks", s.listTasksHandler)
	r.Get("/api/tasks/{id}", s.getTaskHandler)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listTasksHandler(w http.ResponseWriter, r *http.Request) {
	var tasks []domain.Task
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := validation.ParseStatus(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		tasks = s.tasks.GetByStatus(status)
	} else {
		tasks = s.tasks.GetAll()
	}

	writeJSON(w, http.StatusOK, taskListDocument{
		Total: len(tasks),
		Tasks: toDocuments(tasks),
	})
}

func (s *Server) getTaskHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	task, found := s.tasks.GetByID(id)
	if !found {
		writeError(w, http.StatusNotFound, "task not found: "+id)
		return
	}

	writeJSON(w, http.StatusOK, toDocument(task))
}

// taskDocument is the local JSON rendering of a cached task.
type taskDocument struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	DueDate     string  `json:"due_date"`
	Creator     string  `json:"creator"`
	Assignee    *string `json:"assignee,omitempty"`
	IsOverdue   bool    `json:"is_overdue"`
}

type taskListDocument struct {
	Total int            `json:"total"`
	Tasks []taskDocument `json:"tasks"`
}

func toDocument(task domain.Task) taskDocument {
	doc := taskDocument{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status.String(),
		Priority:    task.Priority.String(),
		DueDate:     task.DueDate.Format("2006-01-02"),
		Creator:     task.Creator.String(),
		IsOverdue:   task.IsOverdue,
	}
	if task.Assignee != nil {
		assignee := task.Assignee.String()
		doc.Assignee = &assignee
	}
	return doc
}

func toDocuments(tasks []domain.Task) []taskDocument {
	docs := make([]taskDocument, len(tasks))
	for i, task := range tasks {
		docs[i] = toDocument(task)
	}
	return docs
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
