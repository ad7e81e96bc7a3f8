package handlers

import (
	"net/http"

	"github.com/SscSPs/personal_os/internal/core/domain"
	portssvc "github.com/SscSPs/personal_os/internal/core/ports/services"
	"github.com/SscSPs/personal_os/internal/dto"
	"github.com/gin-gonic/gin"
)

type taskHandler struct {
	taskService  portssvc.TaskSvcFacade
	habitService portssvc.HabitSvcFacade
}

// registerTaskRoutes registers tasks, their history and habits.
func registerTaskRoutes(rg *gin.RouterGroup, taskService portssvc.TaskSvcFacade, habitService portssvc.HabitSvcFacade) {
	h := &taskHandler{taskService: taskService, habitService: habitService}

	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.listTasks)
		tasks.POST("", h.createTask)
		tasks.PATCH("/:taskID", h.updateTask)
		tasks.DELETE("/:taskID", h.deleteTask)
	}
	rg.GET("/task-history", h.listTaskHistory)

	habits := rg.Group("/habits")
	{
		habits.GET("", h.listHabits)
		habits.POST("", h.createHabit)
	}
}

// listTasks godoc
// @Summary List tasks
// @Description view=today returns tasks due today plus open overdue or undated tasks
// @Tags tasks
// @Produce json
// @Param view query string false "all or today" default(all)
// @Success 200 {array} dto.TaskResponse
// @Failure 400 {object} errorResponse
// @Router /tasks [get]
func (h *taskHandler) listTasks(c *gin.Context) {
	var params dto.ListTasksParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	tasks, err := h.taskService.ListTasks(c.Request.Context(), domain.TaskView(params.View))
	if err != nil {
		respondError(c, err, "Failed to list tasks")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTaskResponse(tasks, h.taskService.Today()))
}

// createTask godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body dto.CreateTaskRequest true "Task"
// @Success 201 {object} dto.TaskResponse
// @Failure 400 {object} errorResponse
// @Router /tasks [post]
func (h *taskHandler) createTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	task, err := h.taskService.CreateTask(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create task")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTaskResponse(task, h.taskService.Today()))
}

// updateTask godoc
// @Summary Update a task
// @Description Partial update. due_date: null clears the due date; completed toggles completion.
// @Tags tasks
// @Accept json
// @Produce json
// @Param taskID path int true "Task ID"
// @Param task body dto.UpdateTaskRequest true "Fields to change"
// @Success 200 {object} dto.TaskResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /tasks/{taskID} [patch]
func (h *taskHandler) updateTask(c *gin.Context) {
	taskID, ok := idParam(c, "taskID")
	if !ok {
		return
	}
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, req)
	if err != nil {
		respondError(c, err, "Failed to update task")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskResponse(task, h.taskService.Today()))
}

// deleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Param taskID path int true "Task ID"
// @Success 204
// @Failure 404 {object} errorResponse
// @Router /tasks/{taskID} [delete]
func (h *taskHandler) deleteTask(c *gin.Context) {
	taskID, ok := idParam(c, "taskID")
	if !ok {
		return
	}
	if err := h.taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		respondError(c, err, "Failed to delete task")
		return
	}
	c.Status(http.StatusNoContent)
}

// listTaskHistory godoc
// @Summary List task history
// @Tags tasks
// @Produce json
// @Param limit query int false "Page size, clamped to [1, 200]" default(50)
// @Success 200 {array} dto.TaskHistoryResponse
// @Router /task-history [get]
func (h *taskHandler) listTaskHistory(c *gin.Context) {
	var params dto.ListTaskHistoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	items, err := h.taskService.ListTaskHistory(c.Request.Context(), params.Limit)
	if err != nil {
		respondError(c, err, "Failed to list task history")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTaskHistoryResponse(items))
}

// listHabits godoc
// @Summary List habits
// @Tags habits
// @Produce json
// @Success 200 {array} dto.HabitResponse
// @Router /habits [get]
func (h *taskHandler) listHabits(c *gin.Context) {
	items, err := h.habitService.ListHabits(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list habits")
		return
	}
	c.JSON(http.StatusOK, dto.ToListHabitResponse(items))
}

// createHabit godoc
// @Summary Create a habit
// @Tags habits
// @Accept json
// @Produce json
// @Param habit body dto.CreateHabitRequest true "Habit"
// @Success 201 {object} dto.HabitResponse
// @Failure 400 {object} errorResponse
// @Router /habits [post]
func (h *taskHandler) createHabit(c *gin.Context) {
	var req dto.CreateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	habit, err := h.habitService.CreateHabit(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create habit")
		return
	}
	c.JSON(http.StatusCreated, dto.ToHabitResponse(habit))
}
