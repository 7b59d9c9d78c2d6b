package repository

import (
	"fmt"
	"time"

	"github.com/adarsht2308/dellcube-lms-sub000/models"
)

// DocketRepository is the canonical docket store. Mutating methods take the
// version the caller read; an implementation must apply the change only if the
// stored version still matches and must return models.ErrDocketVersionConflict
// otherwise, so that two writers can never race on the same docket.
type DocketRepository interface {
	CreateDocket(d *models.Docket) error
	GetDocket(filters map[string]interface{}, single bool) ([]*models.Docket, error)
	GetDocketByNumber(docketNumber string) (*models.Docket, error)

	UpdateStatus(docketNumber string, version int64, status models.DocketStatus, updatedAt time.Time) (*models.Docket, error)
	UpdateCharges(docketNumber string, version int64, charges models.FreightChargeBreakdown, total float64, updatedAt time.Time) (*models.Docket, error)
	SetDelivered(docketNumber string, version int64, proof *models.DeliveryProof) (*models.Docket, error)

	ListForDriver(driverID int64, page, limit int, search string) ([]*models.Docket, int64, error)
	ListRecent(driverID int64, within time.Duration) ([]*models.Docket, error)

	UpdatePDFInfo(docketNumber string, path string, createdAt time.Time) error
}

// formatDocketNumber renders a sequence value as the operator-visible number.
func formatDocketNumber(seq int64) string {
	return fmt.Sprintf("DCK-%06d", seq)
}

// docketFilterFields are the docket fields callers may filter listings by.
// Filter keys come straight from query strings, so anything outside this set
// is dropped before it can reach a query.
var docketFilterFields = map[string]bool{
	"id":                true,
	"docket_number":     true,
	"consignor":         true,
	"consignee":         true,
	"customer_id":       true,
	"company_id":        true,
	"branch_id":         true,
	"goods_type_id":     true,
	"vehicle_id":        true,
	"vendor_vehicle_id": true,
	"driver_id":         true,
	"payment_type":      true,
	"status":            true,
	"created_by":        true,
}

func allowedDocketFilter(key string) bool {
	return docketFilterFields[key]
}
