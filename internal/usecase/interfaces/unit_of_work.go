package interfaces

import "context"

// Repositories bundles the entity store contracts so lifecycle operations
// can reach every aggregate through one handle.
type Repositories interface {
	Customers() CustomerRepository
	Leads() LeadRepository
	Estimates() EstimateRepository
	Jobs() JobRepository
	Crews() CrewRepository
	Equipment() EquipmentRepository
	Invoices() InvoiceRepository
	Settings() SettingsRepository
	Reports() ReportRepository
}

// UnitOfWork executes fn against transaction-scoped repositories. Either
// every mutation inside fn commits or none do; lifecycle operations never
// span more than one call.
type UnitOfWork interface {
	Repositories
	Do(ctx context.Context, fn func(tx Repositories) error) error
}
