package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// likePattern builds the case-insensitive LIKE argument used by the q
// filters.
func likePattern(q string) string {
	return "%" + strings.ToLower(strings.TrimSpace(q)) + "%"
}

// ignoreNotFound maps gorm's not-found to the zero-value-and-nil contract
// the repository interfaces promise.
func ignoreNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

// invoiceOrder sorts issued invoices first (newest issue date), invoices
// without an issue date last, newest id as tie-break. The CASE keeps the
// behavior identical across engines instead of relying on NULLS LAST.
const invoiceOrder = "CASE WHEN issued_at IS NULL THEN 1 ELSE 0 END, issued_at DESC, id DESC"
