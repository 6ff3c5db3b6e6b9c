package routes

import (
	"github.com/gin-gonic/gin"

	"arborgold/internal/adapter/http/handlers"
)

const (
	PathJobs      = "/jobs"
	PathCrews     = "/crews"
	PathEquipment = "/equipment"
	PathCalendar  = "/calendar"
)

func addFieldworkRoutes(rg *gin.RouterGroup, jobHandler *handlers.JobHandler, crewHandler *handlers.CrewHandler, equipmentHandler *handlers.EquipmentHandler) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/:id", jobHandler.GetJob)
		jobs.PATCH("/:id", jobHandler.UpdateJob)
		jobs.DELETE("/:id", jobHandler.DeleteJob)
		jobs.POST("/:id/complete", jobHandler.CompleteJob)

		jobs.POST("/:id/tasks", jobHandler.AddTask)
		jobs.PATCH("/:id/tasks/:task_id", jobHandler.UpdateTask)
		jobs.DELETE("/:id/tasks/:task_id", jobHandler.DeleteTask)

		jobs.POST("/:id/equipment", jobHandler.AssignEquipment)
		jobs.DELETE("/:id/equipment/:equipment_id", jobHandler.RemoveEquipment)
	}

	rg.GET(PathCalendar, jobHandler.Calendar)

	crews := rg.Group(PathCrews)
	{
		crews.POST("", crewHandler.CreateCrew)
		crews.GET("", crewHandler.ListCrews)
		crews.GET("/:id", crewHandler.GetCrew)
		crews.PATCH("/:id", crewHandler.UpdateCrew)
		crews.DELETE("/:id", crewHandler.DeleteCrew)
	}

	equipment := rg.Group(PathEquipment)
	{
		equipment.POST("", equipmentHandler.CreateEquipment)
		equipment.GET("", equipmentHandler.ListEquipment)
		equipment.GET("/:id", equipmentHandler.GetEquipment)
		equipment.PATCH("/:id", equipmentHandler.UpdateEquipment)
		equipment.DELETE("/:id", equipmentHandler.DeleteEquipment)
	}
}
