// Package seed loads a small demo data set for local development. It is
// gated behind SEED_DEMO_DATA and never touches a store that already has
// customers.
package seed

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"arborgold/internal/domain/billing"
	"arborgold/internal/domain/entities"
	"arborgold/internal/usecase/interfaces"
)

// Run seeds demo data when SEED_DEMO_DATA is enabled. Safe to call on every
// startup.
func Run(ctx context.Context, uow interfaces.UnitOfWork, node *snowflake.Node) error {
	if !enabled() {
		return nil
	}

	existing, err := uow.Customers().List(ctx, interfaces.CustomerFilter{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		zap.L().Info("demo seed skipped, data present")
		return nil
	}

	err = uow.Do(ctx, func(tx interfaces.Repositories) error {
		s := seeder{tx: tx, node: node, now: time.Now().UTC()}
		return s.run(ctx)
	})
	if err != nil {
		return err
	}
	zap.L().Info("demo data seeded")
	return nil
}

func enabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("SEED_DEMO_DATA"))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

type seeder struct {
	tx   interfaces.Repositories
	node *snowflake.Node
	now  time.Time
}

func (s *seeder) run(ctx context.Context) error {
	settings := entities.Settings{
		ID:             entities.SettingsID,
		CompanyName:    "ArborGold Demo",
		DefaultTaxRate: decimal.NewFromFloat(0.07),
	}
	if err := s.tx.Settings().Save(ctx, &settings); err != nil {
		return err
	}

	crews, err := s.crews(ctx)
	if err != nil {
		return err
	}
	equipment, err := s.equipment(ctx)
	if err != nil {
		return err
	}
	customers, leads, err := s.customers(ctx)
	if err != nil {
		return err
	}
	estimates, err := s.estimates(ctx, customers, leads)
	if err != nil {
		return err
	}
	return s.jobs(ctx, estimates, crews, equipment)
}

func (s *seeder) crews(ctx context.Context) ([]entities.Crew, error) {
	colorA, colorB := "#3b7a57", "#7c5e3b"
	crews := []entities.Crew{
		{ID: s.node.Generate(), Name: "Evergreen Team", Type: entities.CrewTypeGTC, Color: &colorA},
		{ID: s.node.Generate(), Name: "Summit Crew", Type: entities.CrewTypePHC, Color: &colorB},
	}
	for i := range crews {
		crews[i].Members = []entities.CrewMember{{
			ID:     s.node.Generate(),
			CrewID: crews[i].ID,
			UserID: int64(i + 1),
		}}
		if err := s.tx.Crews().Create(ctx, &crews[i]); err != nil {
			return nil, err
		}
	}
	return crews, nil
}

func (s *seeder) equipment(ctx context.Context) ([]entities.Equipment, error) {
	items := []entities.Equipment{
		{Name: "Bucket Truck", Type: "truck", Status: entities.EquipmentStatusAvailable},
		{Name: "Chipper 9000", Type: "chipper", Status: entities.EquipmentStatusAvailable},
		{Name: "Stump Grinder", Type: "grinder", Status: entities.EquipmentStatusMaintenance},
		{Name: "Climbing Kit", Type: "gear", Status: entities.EquipmentStatusAvailable},
		{Name: "Mini Skid Steer", Type: "loader", Status: entities.EquipmentStatusInUse},
		{Name: "Chainsaw Kit", Type: "gear", Status: entities.EquipmentStatusAvailable},
	}
	for i := range items {
		items[i].ID = s.node.Generate()
		if err := s.tx.Equipment().Create(ctx, &items[i]); err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (s *seeder) customers(ctx context.Context) ([]entities.Customer, []entities.Lead, error) {
	names := []string{
		"Pinecrest HOA",
		"Riverbend Estates",
		"Mason Family",
		"Willow Creek Church",
		"Oakline Retail",
		"Harper Residence",
		"Summit View Apartments",
		"Greenridge School",
		"Lakeside Cafe",
		"Stonebrook Farms",
	}
	sources := []string{"referral", "website", "yard sign", "storm"}
	statuses := []entities.LeadStatus{entities.LeadStatusNew, entities.LeadStatusContacted, entities.LeadStatusQualified}

	var customers []entities.Customer
	var leads []entities.Lead
	for i, name := range names {
		tags := []string{"standard"}
		if (i+1)%3 == 0 {
			tags = []string{"priority"}
		}
		var company *string
		if !strings.Contains(name, "Family") && !strings.Contains(name, "Residence") {
			n := name
			company = &n
		}
		c := entities.Customer{
			ID:             s.node.Generate(),
			Name:           name,
			CompanyName:    company,
			Phone:          "555-010" + strconv.Itoa(i+1),
			Email:          "contact" + strconv.Itoa(i+1) + "@example.com",
			BillingAddress: strconv.Itoa(101+i) + " Maple Ave",
			ServiceAddress: strconv.Itoa(201+i) + " Pine St",
			Notes:          "Seasonal pruning request.",
			Tags:           datatypes.NewJSONSlice(tags),
		}
		if err := s.tx.Customers().Create(ctx, &c); err != nil {
			return nil, nil, err
		}
		customers = append(customers, c)

		source := sources[i%len(sources)]
		l := entities.Lead{
			ID:         s.node.Generate(),
			CustomerID: c.ID,
			Source:     &source,
			Status:     statuses[i%len(statuses)],
			Notes:      "Initial inquiry logged.",
		}
		if err := s.tx.Leads().Create(ctx, &l); err != nil {
			return nil, nil, err
		}
		leads = append(leads, l)
	}
	return customers, leads, nil
}

func (s *seeder) estimates(ctx context.Context, customers []entities.Customer, leads []entities.Lead) ([]entities.Estimate, error) {
	statuses := []entities.EstimateStatus{
		entities.EstimateStatusDraft,
		entities.EstimateStatusSent,
		entities.EstimateStatusApproved,
		entities.EstimateStatusRejected,
	}

	var estimates []entities.Estimate
	for i := 0; i < 15; i++ {
		customer := customers[i%len(customers)]
		lead := leads[i%len(leads)]
		status := statuses[i%len(statuses)]

		e := entities.Estimate{
			ID:         s.node.Generate(),
			CustomerID: customer.ID,
			LeadID:     &lead.ID,
			Status:     status,
			Scope:      "Remove two mature oaks",
			Hazards:    "Utility lines on north side",
			Equipment:  "Bucket truck, chipper",
			Tax:        decimal.NewFromFloat(65.10),
			Notes:      "Customer reviewing proposal.",
		}
		if status == entities.EstimateStatusDraft {
			e.Discount = decimal.NewFromInt(50)
		}
		if status != entities.EstimateStatusDraft {
			sentAt := s.now.AddDate(0, 0, -(i%15 + 1))
			e.SentAt = &sentAt
		}
		if status == entities.EstimateStatusApproved {
			approvedAt := s.now.AddDate(0, 0, -(i%10 + 1))
			e.ApprovedAt = &approvedAt
		}

		removalDesc := "Remove hazard tree near driveway"
		grindDesc := "Grind stump to 6 inches"
		e.LineItems = []entities.EstimateLineItem{
			{
				ID:          s.node.Generate(),
				EstimateID:  e.ID,
				Name:        "Tree removal",
				Description: &removalDesc,
				Qty:         decimal.NewFromInt(1),
				UnitPrice:   decimal.NewFromInt(750),
				Total:       decimal.NewFromInt(750),
				SortOrder:   0,
			},
			{
				ID:          s.node.Generate(),
				EstimateID:  e.ID,
				Name:        "Stump grind",
				Description: &grindDesc,
				Qty:         decimal.NewFromInt(1),
				UnitPrice:   decimal.NewFromInt(180),
				Total:       decimal.NewFromInt(180),
				SortOrder:   1,
			},
		}
		subtotal, total := billing.EstimateTotals(e.LineItems, e.Tax, e.Discount)
		e.SuggestedPrice = subtotal.Add(e.Tax)
		e.Total = total

		if err := s.tx.Estimates().Create(ctx, &e); err != nil {
			return nil, err
		}
		estimates = append(estimates, e)
	}
	return estimates, nil
}

func (s *seeder) jobs(ctx context.Context, estimates []entities.Estimate, crews []entities.Crew, equipment []entities.Equipment) error {
	statuses := []entities.JobStatus{
		entities.JobStatusScheduled,
		entities.JobStatusInProgress,
		entities.JobStatusCompleted,
	}

	for i := 0; i < 10; i++ {
		estimate := estimates[i%len(estimates)]
		crew := crews[i%len(crews)]
		status := statuses[i%len(statuses)]
		start := s.now.AddDate(0, 0, i-2)
		end := start.Add(6 * time.Hour)
		estimateID := estimate.ID

		j := entities.Job{
			ID:             s.node.Generate(),
			CustomerID:     estimate.CustomerID,
			EstimateID:     &estimateID,
			Status:         status,
			ScheduledStart: &start,
			ScheduledEnd:   &end,
			CrewID:         &crew.ID,
			Total:          estimate.Total,
			Notes:          "Crew briefed on access constraints.",
		}
		if status == entities.JobStatusCompleted {
			completed := start.Add(7 * time.Hour)
			j.CompletedAt = &completed
		}
		j.Tasks = []entities.JobTask{
			{ID: s.node.Generate(), JobID: j.ID, Title: "Set up traffic cones", SortOrder: 0},
			{ID: s.node.Generate(), JobID: j.ID, Title: "Fell and chip", SortOrder: 1, Completed: status == entities.JobStatusCompleted},
		}
		j.EquipmentLinks = []entities.JobEquipment{
			{ID: s.node.Generate(), JobID: j.ID, EquipmentID: equipment[i%len(equipment)].ID},
		}
		if err := s.tx.Jobs().Create(ctx, &j); err != nil {
			return err
		}

		// Invoice the first completed job, partially paid.
		if i == 2 {
			tax := decimal.NewFromInt(20)
			inv := entities.Invoice{
				ID:         s.node.Generate(),
				CustomerID: j.CustomerID,
				JobID:      j.ID,
				Status:     entities.InvoiceStatusPartial,
				Subtotal:   j.Total,
				Tax:        tax,
				Total:      billing.InvoiceTotal(j.Total, tax),
				IssuedAt:   &s.now,
			}
			if err := s.tx.Invoices().Create(ctx, &inv); err != nil {
				return err
			}
			p := entities.Payment{
				ID:        s.node.Generate(),
				InvoiceID: inv.ID,
				Amount:    decimal.NewFromInt(200),
				Method:    "card",
				PaidAt:    s.now,
			}
			if err := s.tx.Invoices().AddPayment(ctx, &p); err != nil {
				return err
			}
		}
	}
	return nil
}
