package web

import (
	"errors"
	"net/http"

	"github.com/psustentables/taskboard/internal/common"
	"github.com/psustentables/taskboard/internal/server/models"
)

// taskView is a task row joined with its assignee's username. The lookup is
// explicit here instead of being a relation on the model.
type taskView struct {
	*models.Task
	AssigneeName string
}

type dashboardPage struct {
	pageData
	Tasks        []taskView
	Users        []*models.User
	SearchQuery  string
	StatusFilter string
	Statuses     []models.Status
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	search := query.Get("search")
	statusFilter := query.Get("status")

	tasks, err := s.tasks.Find(r.Context(), models.TaskFilter{
		TitleContains: search,
		Status:        models.Status(statusFilter),
	})
	if err != nil {
		s.internalError(w, r, err.Error())
		return
	}

	users, err := s.users.List(r.Context())
	if err != nil {
		s.internalError(w, r, err.Error())
		return
	}

	usernames := make(map[int64]string, len(users))
	for _, u := range users {
		usernames[u.ID] = u.UserName
	}

	views := make([]taskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, taskView{Task: t, AssigneeName: usernames[t.AssigneeID]})
	}

	s.render(w, r, http.StatusOK, "dashboard", dashboardPage{
		pageData:     s.newPageData(w, r),
		Tasks:        views,
		Users:        users,
		SearchQuery:  search,
		StatusFilter: statusFilter,
		Statuses:     []models.Status{models.StatusPending, models.StatusInProgress, models.StatusCompleted},
	})
}

func (s *Server) handleTaskCreate(w http.ResponseWriter, r *http.Request) {
	form, err := parseNewTaskForm(r)
	if err != nil {
		s.setFlash(w, "danger", err.Error())
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	user := CurrentUser(r.Context())

	_, err = s.tasks.Create(r.Context(), &models.Task{
		Title:       form.Title,
		Description: form.Description,
		AssigneeID:  form.AssigneeID,
		CreatedBy:   user.UserName,
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.setFlash(w, "danger", "Assignee does not exist")
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		s.internalError(w, r, err.Error())
		return
	}

	s.setFlash(w, "success", "Task created")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

type editTaskPage struct {
	pageData
	Task     *models.Task
	Statuses []models.Status
}

func (s *Server) handleTaskEditForm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.notFoundTask(w, r)
		return
	}

	task, err := s.tasks.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.notFoundTask(w, r)
			return
		}
		s.internalError(w, r, err.Error())
		return
	}

	s.render(w, r, http.StatusOK, "edit_task", editTaskPage{
		pageData: s.newPageData(w, r),
		Task:     task,
		Statuses: []models.Status{models.StatusPending, models.StatusInProgress, models.StatusCompleted},
	})
}

func (s *Server) handleTaskEdit(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.notFoundTask(w, r)
		return
	}

	form, err := parseEditTaskForm(r)
	if err != nil {
		s.setFlash(w, "danger", err.Error())
		http.Redirect(w, r, r.URL.Path, http.StatusSeeOther)
		return
	}

	err = s.tasks.Update(r.Context(), id, models.TaskPatch{
		Title:       &form.Title,
		Description: &form.Description,
		Status:      &form.Status,
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.notFoundTask(w, r)
			return
		}
		s.internalError(w, r, err.Error())
		return
	}

	s.setFlash(w, "success", "Task updated")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) handleTaskStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.notFoundTask(w, r)
		return
	}

	form, err := parseStatusForm(r)
	if err != nil {
		s.setFlash(w, "danger", err.Error())
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	if err := s.tasks.SetStatus(r.Context(), id, form.Status); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.notFoundTask(w, r)
			return
		}
		s.internalError(w, r, err.Error())
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) handleTaskDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.notFoundTask(w, r)
		return
	}

	if err := s.tasks.Delete(r.Context(), id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.notFoundTask(w, r)
			return
		}
		s.internalError(w, r, err.Error())
		return
	}

	s.setFlash(w, "success", "Task deleted")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) notFoundTask(w http.ResponseWriter, r *http.Request) {
	s.setFlash(w, "danger", "Task not found")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
