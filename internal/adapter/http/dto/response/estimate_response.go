package response

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"

	"arborgold/internal/domain/entities"
)

type LineItemResponse struct {
	ID          snowflake.ID    `json:"id"`
	EstimateID  snowflake.ID    `json:"estimate_id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Qty         decimal.Decimal `json:"qty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
	SortOrder   int             `json:"sort_order"`
}

type EstimateResponse struct {
	ID             snowflake.ID       `json:"id"`
	CustomerID     snowflake.ID       `json:"customer_id"`
	LeadID         *snowflake.ID      `json:"lead_id"`
	Status         string             `json:"status"`
	Scope          string             `json:"scope"`
	Hazards        string             `json:"hazards"`
	Equipment      string             `json:"equipment"`
	SuggestedPrice decimal.Decimal    `json:"suggested_price"`
	Total          decimal.Decimal    `json:"total"`
	Tax            decimal.Decimal    `json:"tax"`
	Discount       decimal.Decimal    `json:"discount"`
	SentAt         *time.Time         `json:"sent_at"`
	ApprovedAt     *time.Time         `json:"approved_at"`
	Notes          string             `json:"notes"`
	LineItems      []LineItemResponse `json:"line_items"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	items := make([]LineItemResponse, 0, len(e.LineItems))
	for _, it := range e.LineItems {
		items = append(items, LineItemResponse{
			ID:          it.ID,
			EstimateID:  it.EstimateID,
			Name:        it.Name,
			Description: it.Description,
			Qty:         it.Qty,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
			SortOrder:   it.SortOrder,
		})
	}
	return EstimateResponse{
		ID:             e.ID,
		CustomerID:     e.CustomerID,
		LeadID:         e.LeadID,
		Status:         string(e.Status),
		Scope:          e.Scope,
		Hazards:        e.Hazards,
		Equipment:      e.Equipment,
		SuggestedPrice: e.SuggestedPrice,
		Total:          e.Total,
		Tax:            e.Tax,
		Discount:       e.Discount,
		SentAt:         e.SentAt,
		ApprovedAt:     e.ApprovedAt,
		Notes:          e.Notes,
		LineItems:      items,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func FromEstimates(estimates []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(estimates))
	for _, e := range estimates {
		out = append(out, FromEstimate(e))
	}
	return out
}
