package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"arborgold/internal/domain/billing"
	"arborgold/internal/domain/entities"
	"arborgold/internal/usecase/interfaces"
)

var (
	ErrEstimateNotFound        = errors.New("estimate not found")
	ErrInvalidEstimateStatus   = errors.New("invalid estimate status")
	ErrEstimateLeadMismatch    = errors.New("lead does not belong to the estimate customer")
	ErrInvalidJobStatusForConv = errors.New("invalid job status")
)

// LineItemInput is one incoming line item. Total nil means "derive from
// qty * unit_price"; a non-nil total is authoritative.
type LineItemInput struct {
	Name        string
	Description *string
	Qty         decimal.Decimal
	UnitPrice   decimal.Decimal
	Total       *decimal.Decimal
	SortOrder   *int
}

type CreateEstimateInput struct {
	CustomerID     snowflake.ID
	LeadID         *snowflake.ID
	Status         entities.EstimateStatus
	Scope          string
	Hazards        string
	Equipment      string
	SuggestedPrice decimal.Decimal
	Total          decimal.Decimal
	Tax            decimal.Decimal
	Discount       decimal.Decimal
	Notes          string
	LineItems      []LineItemInput
}

type EstimatePatch struct {
	Status         *entities.EstimateStatus
	Scope          *string
	Hazards        *string
	Equipment      *string
	SuggestedPrice *decimal.Decimal
	Total          *decimal.Decimal
	Tax            *decimal.Decimal
	Discount       *decimal.Decimal
	SentAt         *time.Time
	ApprovedAt     *time.Time
	Notes          *string
	LineItems      *[]LineItemInput
}

// ConvertEstimateToJobInput shapes the job created from an estimate. Tasks
// and equipment ids are materialized as owned child rows.
type ConvertEstimateToJobInput struct {
	Status         entities.JobStatus
	ScheduledStart *time.Time
	ScheduledEnd   *time.Time
	CrewID         *snowflake.ID
	Notes          string
	Tasks          []string
	EquipmentIDs   []snowflake.ID
}

type IEstimateUseCase interface {
	Create(ctx context.Context, in CreateEstimateInput) (entities.Estimate, error)
	GetByID(ctx context.Context, id snowflake.ID) (entities.Estimate, error)
	Update(ctx context.Context, id snowflake.ID, patch EstimatePatch) (entities.Estimate, error)
	List(ctx context.Context, f interfaces.EstimateFilter) ([]entities.Estimate, error)
	Delete(ctx context.Context, id snowflake.ID) error
	ConvertToJob(ctx context.Context, id snowflake.ID, in ConvertEstimateToJobInput) (entities.Job, error)
	ApproveAndInvoice(ctx context.Context, id snowflake.ID, issuedAt *time.Time) (entities.Invoice, error)
}

type EstimateUseCase struct {
	uow  interfaces.UnitOfWork
	node *snowflake.Node
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(uow interfaces.UnitOfWork, node *snowflake.Node) *EstimateUseCase {
	return &EstimateUseCase{uow: uow, node: node}
}

// applyEstimateStatus moves the estimate into status and fires the set-once
// timestamp side effects for sent and approved.
func applyEstimateStatus(e *entities.Estimate, status entities.EstimateStatus, now time.Time) {
	e.Status = status
	switch status {
	case entities.EstimateStatusSent:
		if e.SentAt == nil {
			t := now
			e.SentAt = &t
		}
	case entities.EstimateStatusApproved:
		if e.ApprovedAt == nil {
			t := now
			e.ApprovedAt = &t
		}
	}
}

func (u *EstimateUseCase) buildLineItems(estimateID snowflake.ID, inputs []LineItemInput) []entities.EstimateLineItem {
	items := make([]entities.EstimateLineItem, 0, len(inputs))
	for i, in := range inputs {
		item := entities.EstimateLineItem{
			ID:          u.node.Generate(),
			EstimateID:  estimateID,
			Name:        in.Name,
			Description: in.Description,
			Qty:         in.Qty,
			UnitPrice:   in.UnitPrice,
			SortOrder:   i,
		}
		if item.Qty.IsZero() {
			item.Qty = decimal.NewFromInt(1)
		}
		if in.SortOrder != nil {
			item.SortOrder = *in.SortOrder
		}
		item.Total = billing.LineItemTotal(item, in.Total)
		items = append(items, item)
	}
	return items
}

func (u *EstimateUseCase) Create(ctx context.Context, in CreateEstimateInput) (entities.Estimate, error) {
	customer, err := u.uow.Customers().GetByID(ctx, in.CustomerID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if customer.ID == 0 {
		return entities.Estimate{}, ErrCustomerNotFound
	}

	if in.LeadID != nil {
		lead, err := u.uow.Leads().GetByID(ctx, *in.LeadID)
		if err != nil {
			return entities.Estimate{}, err
		}
		if lead.ID == 0 {
			return entities.Estimate{}, ErrLeadNotFound
		}
		if lead.CustomerID != in.CustomerID {
			return entities.Estimate{}, ErrEstimateLeadMismatch
		}
	}

	status := in.Status
	if status == "" {
		status = entities.EstimateStatusDraft
	}
	if !entities.ValidEstimateStatus(status) {
		return entities.Estimate{}, ErrInvalidEstimateStatus
	}

	e := entities.Estimate{
		ID:             u.node.Generate(),
		CustomerID:     in.CustomerID,
		LeadID:         in.LeadID,
		Scope:          in.Scope,
		Hazards:        in.Hazards,
		Equipment:      in.Equipment,
		SuggestedPrice: in.SuggestedPrice,
		Total:          in.Total,
		Tax:            in.Tax,
		Discount:       in.Discount,
		Notes:          in.Notes,
	}
	applyEstimateStatus(&e, status, time.Now().UTC())

	e.LineItems = u.buildLineItems(e.ID, in.LineItems)
	if len(e.LineItems) > 0 {
		_, e.Total = billing.EstimateTotals(e.LineItems, e.Tax, e.Discount)
	}

	if err := u.uow.Estimates().Create(ctx, &e); err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id snowflake.ID) (entities.Estimate, error) {
	e, err := u.uow.Estimates().GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == 0 {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) Update(ctx context.Context, id snowflake.ID, patch EstimatePatch) (entities.Estimate, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}

	if patch.Status != nil && !entities.ValidEstimateStatus(*patch.Status) {
		return entities.Estimate{}, ErrInvalidEstimateStatus
	}

	if patch.Scope != nil {
		e.Scope = *patch.Scope
	}
	if patch.Hazards != nil {
		e.Hazards = *patch.Hazards
	}
	if patch.Equipment != nil {
		e.Equipment = *patch.Equipment
	}
	if patch.SuggestedPrice != nil {
		e.SuggestedPrice = *patch.SuggestedPrice
	}
	if patch.Total != nil {
		e.Total = *patch.Total
	}
	if patch.Tax != nil {
		e.Tax = *patch.Tax
	}
	if patch.Discount != nil {
		e.Discount = *patch.Discount
	}
	if patch.Notes != nil {
		e.Notes = *patch.Notes
	}
	if patch.Status != nil {
		applyEstimateStatus(&e, *patch.Status, time.Now().UTC())
	}
	// Explicit timestamps win over the set-once side effect.
	if patch.SentAt != nil {
		e.SentAt = patch.SentAt
	}
	if patch.ApprovedAt != nil {
		e.ApprovedAt = patch.ApprovedAt
	}

	if patch.LineItems != nil {
		e.LineItems = u.buildLineItems(e.ID, *patch.LineItems)
	}
	if len(e.LineItems) > 0 {
		_, e.Total = billing.EstimateTotals(e.LineItems, e.Tax, e.Discount)
	}

	err = u.uow.Do(ctx, func(tx interfaces.Repositories) error {
		if patch.LineItems != nil {
			if err := tx.Estimates().ReplaceLineItems(ctx, e.ID, e.LineItems); err != nil {
				return err
			}
		}
		return tx.Estimates().Update(ctx, &e)
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (u *EstimateUseCase) List(ctx context.Context, f interfaces.EstimateFilter) ([]entities.Estimate, error) {
	return u.uow.Estimates().List(ctx, f)
}

func (u *EstimateUseCase) Delete(ctx context.Context, id snowflake.ID) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.uow.Estimates().Delete(ctx, id)
}

// ConvertToJob creates a new job from the estimate and forces the estimate
// into approved. Deliberately not idempotent: every call creates another job,
// which is how re-quotes are handled. Callers own the dedup decision.
func (u *EstimateUseCase) ConvertToJob(ctx context.Context, id snowflake.ID, in ConvertEstimateToJobInput) (entities.Job, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}

	status := in.Status
	if status == "" {
		status = entities.JobStatusScheduled
	}
	if !entities.ValidJobStatus(status) {
		return entities.Job{}, ErrInvalidJobStatusForConv
	}

	if in.CrewID != nil {
		crew, err := u.uow.Crews().GetByID(ctx, *in.CrewID)
		if err != nil {
			return entities.Job{}, err
		}
		if crew.ID == 0 {
			return entities.Job{}, ErrCrewNotFound
		}
	}
	for _, eqID := range in.EquipmentIDs {
		eq, err := u.uow.Equipment().GetByID(ctx, eqID)
		if err != nil {
			return entities.Job{}, err
		}
		if eq.ID == 0 {
			return entities.Job{}, ErrEquipmentNotFound
		}
	}

	estimateID := e.ID
	j := entities.Job{
		ID:             u.node.Generate(),
		CustomerID:     e.CustomerID,
		EstimateID:     &estimateID,
		Status:         status,
		ScheduledStart: in.ScheduledStart,
		ScheduledEnd:   in.ScheduledEnd,
		CrewID:         in.CrewID,
		Total:          e.Total,
		Notes:          in.Notes,
	}
	now := time.Now().UTC()
	if status == entities.JobStatusCompleted {
		j.CompletedAt = &now
	}
	for i, title := range in.Tasks {
		j.Tasks = append(j.Tasks, entities.JobTask{
			ID:        u.node.Generate(),
			JobID:     j.ID,
			Title:     title,
			SortOrder: i,
		})
	}
	for _, eqID := range in.EquipmentIDs {
		j.EquipmentLinks = append(j.EquipmentLinks, entities.JobEquipment{
			ID:          u.node.Generate(),
			JobID:       j.ID,
			EquipmentID: eqID,
		})
	}

	err = u.uow.Do(ctx, func(tx interfaces.Repositories) error {
		applyEstimateStatus(&e, entities.EstimateStatusApproved, now)
		if err := tx.Estimates().Update(ctx, &e); err != nil {
			return err
		}
		return tx.Jobs().Create(ctx, &j)
	})
	if err != nil {
		return entities.Job{}, err
	}
	return j, nil
}

// ApproveAndInvoice forces the estimate into approved and ensures an invoice
// exists for its most recent job, synthesizing a minimal scheduled job when
// the estimate was never converted. Repeat calls return the same invoice.
func (u *EstimateUseCase) ApproveAndInvoice(ctx context.Context, id snowflake.ID, issuedAt *time.Time) (entities.Invoice, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}

	var inv entities.Invoice
	err = u.uow.Do(ctx, func(tx interfaces.Repositories) error {
		now := time.Now().UTC()
		applyEstimateStatus(&e, entities.EstimateStatusApproved, now)
		if err := tx.Estimates().Update(ctx, &e); err != nil {
			return err
		}

		j, err := tx.Jobs().LatestByEstimateID(ctx, e.ID)
		if err != nil {
			return err
		}
		if j.ID == 0 {
			estimateID := e.ID
			j = entities.Job{
				ID:         u.node.Generate(),
				CustomerID: e.CustomerID,
				EstimateID: &estimateID,
				Status:     entities.JobStatusScheduled,
				Total:      e.Total,
			}
			if err := tx.Jobs().Create(ctx, &j); err != nil {
				return err
			}
		}

		existing, err := tx.Invoices().GetByJobID(ctx, j.ID)
		if err != nil {
			return err
		}
		if existing.ID != 0 {
			inv = existing
			return nil
		}

		subtotal := e.Total.Sub(e.Tax)
		if subtotal.IsNegative() {
			subtotal = decimal.Zero
		}
		issued := issuedAt
		if issued == nil {
			issued = &now
		}
		inv = entities.Invoice{
			ID:         u.node.Generate(),
			CustomerID: e.CustomerID,
			JobID:      j.ID,
			Status:     entities.InvoiceStatusUnpaid,
			Subtotal:   subtotal,
			Tax:        e.Tax,
			Total:      e.Total,
			IssuedAt:   issued,
		}
		if err := tx.Invoices().Create(ctx, &inv); err != nil {
			// A concurrent caller won the race on the unique job_id; theirs
			// is the invoice.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				inv, err = tx.Invoices().GetByJobID(ctx, j.ID)
				return err
			}
			return err
		}
		return nil
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}
