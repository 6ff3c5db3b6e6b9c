package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	request "arborgold/internal/adapter/http/dto/request"
	response "arborgold/internal/adapter/http/dto/response"
	"arborgold/internal/domain/entities"
	"arborgold/internal/usecase"
	"arborgold/internal/usecase/interfaces"
	"arborgold/pkg"
)

// JobHandler handles HTTP requests for jobs, their tasks and equipment
// assignments, and the calendar view.

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	job, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeAppError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromJob(job))
}

func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	job, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeAppError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload request.UpdateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	job, err := h.usecase.Update(c.Request.Context(), id, payload.ToPatch())
	if err != nil {
		writeAppError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) jobFilterFromQuery(c *gin.Context) (interfaces.JobFilter, bool) {
	crewID, ok := parseIDQuery(c, "crew_id")
	if !ok {
		return interfaces.JobFilter{}, false
	}
	customerID, ok := parseIDQuery(c, "customer_id")
	if !ok {
		return interfaces.JobFilter{}, false
	}

	filter := interfaces.JobFilter{
		Q:          c.Query("q"),
		Status:     entities.JobStatus(c.Query("status")),
		CrewID:     crewID,
		CustomerID: customerID,
	}
	for name, dst := range map[string]**time.Time{"start": &filter.Start, "end": &filter.End} {
		if raw := c.Query(name); raw != "" {
			t, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				writeAppError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid "+name+" query parameter", http.StatusBadRequest))
				return interfaces.JobFilter{}, false
			}
			*dst = &t
		}
	}
	return filter, true
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	filter, ok := h.jobFilterFromQuery(c)
	if !ok {
		return
	}

	jobs, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeAppError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJobs(jobs))
}

// Calendar is the schedule view: jobs filtered by their scheduled window.
func (h *JobHandler) Calendar(c *gin.Context) {
	h.ListJobs(c)
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		writeAppError(c, mapJobError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// CompleteJob marks the job completed and returns its invoice, creating one
// on first call and returning the existing one afterwards.
func (h *JobHandler) CompleteJob(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	// Body is optional; an absent payload means zero invoice tax.
	var payload request.CompleteJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		writeAppError(c, errInvalidPayload)
		return
	}

	invoice, err := h.usecase.Complete(c.Request.Context(), id, payload.InvoiceTax)
	if err != nil {
		writeAppError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func (h *JobHandler) AddTask(c *gin.Context) {
	jobID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload request.CreateTaskRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	task, err := h.usecase.AddTask(c.Request.Context(), jobID, payload.ToInput())
	if err != nil {
		writeAppError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromTask(task))
}

func (h *JobHandler) UpdateTask(c *gin.Context) {
	jobID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "task_id")
	if !ok {
		return
	}
	var payload request.UpdateTaskRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	task, err := h.usecase.UpdateTask(c.Request.Context(), jobID, taskID, payload.ToPatch())
	if err != nil {
		writeAppError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTask(task))
}

func (h *JobHandler) DeleteTask(c *gin.Context) {
	jobID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "task_id")
	if !ok {
		return
	}

	if err := h.usecase.DeleteTask(c.Request.Context(), jobID, taskID); err != nil {
		writeAppError(c, mapJobError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *JobHandler) AssignEquipment(c *gin.Context) {
	jobID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload request.AssignEquipmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	job, err := h.usecase.AssignEquipment(c.Request.Context(), jobID, payload.EquipmentID)
	if err != nil {
		writeAppError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) RemoveEquipment(c *gin.Context) {
	jobID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	equipmentID, ok := parseIDParam(c, "equipment_id")
	if !ok {
		return
	}

	job, err := h.usecase.RemoveEquipment(c.Request.Context(), jobID, equipmentID)
	if err != nil {
		writeAppError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid job status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobEstimateMismatch):
		return pkg.NewDomainErrorSimple("CONSISTENCY_VIOLATION", "Estimate belongs to a different customer", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTaskJobMismatch):
		return pkg.NewDomainErrorSimple("CONSISTENCY_VIOLATION", "Task belongs to a different job", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCrewNotFound):
		return pkg.NewDomainErrorSimple("CREW_NOT_FOUND", "Crew not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEquipmentNotFound):
		return pkg.NewDomainErrorSimple("EQUIPMENT_NOT_FOUND", "Equipment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEquipmentLinkNotFound):
		return pkg.NewDomainErrorSimple("EQUIPMENT_NOT_ASSIGNED", "Equipment is not assigned to the job", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobTaskNotFound):
		return pkg.NewDomainErrorSimple("TASK_NOT_FOUND", "Task not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
