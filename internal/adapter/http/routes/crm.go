package routes

import (
	"github.com/gin-gonic/gin"

	"arborgold/internal/adapter/http/handlers"
)

const (
	PathCustomers = "/customers"
	PathLeads     = "/leads"
)

func addCRMRoutes(rg *gin.RouterGroup, customerHandler *handlers.CustomerHandler, leadHandler *handlers.LeadHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("", customerHandler.ListCustomers)
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.PATCH("/:id", customerHandler.UpdateCustomer)
		customers.DELETE("/:id", customerHandler.DeleteCustomer)
	}

	leads := rg.Group(PathLeads)
	{
		leads.POST("", leadHandler.CreateLead)
		leads.GET("", leadHandler.ListLeads)
		leads.GET("/:id", leadHandler.GetLead)
		leads.PATCH("/:id", leadHandler.UpdateLead)
		leads.DELETE("/:id", leadHandler.DeleteLead)
	}
}
