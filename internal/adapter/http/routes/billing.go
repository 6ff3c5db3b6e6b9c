package routes

import (
	"github.com/gin-gonic/gin"

	"arborgold/internal/adapter/http/handlers"
)

const (
	PathEstimates = "/estimates"
	PathInvoices  = "/invoices"
)

func addBillingRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, invoiceHandler *handlers.InvoiceHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PATCH("/:id", estimateHandler.UpdateEstimate)
		estimates.DELETE("/:id", estimateHandler.DeleteEstimate)

		// Conversions. convert-to-job creates a new job on every call;
		// approve-and-invoice returns the same invoice on repeat calls.
		estimates.POST("/:id/convert-to-job", estimateHandler.ConvertToJob)
		estimates.POST("/:id/approve-and-invoice", estimateHandler.ApproveAndInvoice)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.PATCH("/:id", invoiceHandler.UpdateInvoice)
		invoices.DELETE("/:id", invoiceHandler.DeleteInvoice)
		invoices.POST("/:id/payments", invoiceHandler.RecordPayment)
	}
}
