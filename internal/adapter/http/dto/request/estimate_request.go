package request

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"

	"arborgold/internal/domain/entities"
	"arborgold/internal/usecase"
)

type LineItemRequest struct {
	Name        string           `json:"name" binding:"required"`
	Description *string          `json:"description"`
	Qty         decimal.Decimal  `json:"qty"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	Total       *decimal.Decimal `json:"total"`
	SortOrder   *int             `json:"sort_order"`
}

func lineItemInputs(items []LineItemRequest) []usecase.LineItemInput {
	out := make([]usecase.LineItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, usecase.LineItemInput{
			Name:        it.Name,
			Description: it.Description,
			Qty:         it.Qty,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
			SortOrder:   it.SortOrder,
		})
	}
	return out
}

type CreateEstimateRequest struct {
	CustomerID     snowflake.ID      `json:"customer_id" binding:"required"`
	LeadID         *snowflake.ID     `json:"lead_id"`
	Status         string            `json:"status"`
	Scope          string            `json:"scope"`
	Hazards        string            `json:"hazards"`
	Equipment      string            `json:"equipment"`
	SuggestedPrice decimal.Decimal   `json:"suggested_price"`
	Total          decimal.Decimal   `json:"total"`
	Tax            decimal.Decimal   `json:"tax"`
	Discount       decimal.Decimal   `json:"discount"`
	Notes          string            `json:"notes"`
	LineItems      []LineItemRequest `json:"line_items"`
}

func (r CreateEstimateRequest) ToInput() usecase.CreateEstimateInput {
	return usecase.CreateEstimateInput{
		CustomerID:     r.CustomerID,
		LeadID:         r.LeadID,
		Status:         entities.EstimateStatus(r.Status),
		Scope:          r.Scope,
		Hazards:        r.Hazards,
		Equipment:      r.Equipment,
		SuggestedPrice: r.SuggestedPrice,
		Total:          r.Total,
		Tax:            r.Tax,
		Discount:       r.Discount,
		Notes:          r.Notes,
		LineItems:      lineItemInputs(r.LineItems),
	}
}

type UpdateEstimateRequest struct {
	Status         *string            `json:"status"`
	Scope          *string            `json:"scope"`
	Hazards        *string            `json:"hazards"`
	Equipment      *string            `json:"equipment"`
	SuggestedPrice *decimal.Decimal   `json:"suggested_price"`
	Total          *decimal.Decimal   `json:"total"`
	Tax            *decimal.Decimal   `json:"tax"`
	Discount       *decimal.Decimal   `json:"discount"`
	SentAt         *time.Time         `json:"sent_at"`
	ApprovedAt     *time.Time         `json:"approved_at"`
	Notes          *string            `json:"notes"`
	LineItems      *[]LineItemRequest `json:"line_items"`
}

func (r UpdateEstimateRequest) ToPatch() usecase.EstimatePatch {
	patch := usecase.EstimatePatch{
		Scope:          r.Scope,
		Hazards:        r.Hazards,
		Equipment:      r.Equipment,
		SuggestedPrice: r.SuggestedPrice,
		Total:          r.Total,
		Tax:            r.Tax,
		Discount:       r.Discount,
		SentAt:         r.SentAt,
		ApprovedAt:     r.ApprovedAt,
		Notes:          r.Notes,
	}
	if r.Status != nil {
		s := entities.EstimateStatus(*r.Status)
		patch.Status = &s
	}
	if r.LineItems != nil {
		items := lineItemInputs(*r.LineItems)
		patch.LineItems = &items
	}
	return patch
}

type ConvertEstimateToJobRequest struct {
	Status         string         `json:"status"`
	ScheduledStart *time.Time     `json:"scheduled_start"`
	ScheduledEnd   *time.Time     `json:"scheduled_end"`
	CrewID         *snowflake.ID  `json:"crew_id"`
	Notes          string         `json:"notes"`
	Tasks          []string       `json:"tasks"`
	EquipmentIDs   []snowflake.ID `json:"equipment_ids"`
}

func (r ConvertEstimateToJobRequest) ToInput() usecase.ConvertEstimateToJobInput {
	return usecase.ConvertEstimateToJobInput{
		Status:         entities.JobStatus(r.Status),
		ScheduledStart: r.ScheduledStart,
		ScheduledEnd:   r.ScheduledEnd,
		CrewID:         r.CrewID,
		Notes:          r.Notes,
		Tasks:          r.Tasks,
		EquipmentIDs:   r.EquipmentIDs,
	}
}

type ApproveAndInvoiceRequest struct {
	IssuedAt *time.Time `json:"issued_at"`
}
