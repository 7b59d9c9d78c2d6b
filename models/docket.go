package models

import "time"

// Docket is the shipment invoice, the central record of the system.
type Docket struct {
	ID           int64  `json:"id" bson:"_id,omitempty" db:"id"`
	DocketNumber string `json:"docket_number" bson:"docket_number" db:"docket_number"`

	// Parties
	Consignor  string `json:"consignor" bson:"consignor" db:"consignor"`
	Consignee  string `json:"consignee" bson:"consignee" db:"consignee"`
	CustomerID *int64 `json:"customer_id,omitempty" bson:"customer_id,omitempty" db:"customer_id"`
	CompanyID  int64  `json:"company_id" bson:"company_id" db:"company_id"`
	BranchID   int64  `json:"branch_id" bson:"branch_id" db:"branch_id"`

	// Routing
	FromAddress DocketAddress `json:"from_address" bson:"from_address"`
	ToAddress   DocketAddress `json:"to_address" bson:"to_address"`

	// Cargo
	GoodsTypeID      int64      `json:"goods_type_id" bson:"goods_type_id" db:"goods_type_id"`
	GoodsType        *GoodsType `json:"goods_type,omitempty" bson:"-"`
	NumberOfPackages *int       `json:"number_of_packages,omitempty" bson:"number_of_packages,omitempty" db:"number_of_packages"`
	TotalWeight      *float64   `json:"total_weight,omitempty" bson:"total_weight,omitempty" db:"total_weight"`
	GoodsValue       *float64   `json:"goods_value,omitempty" bson:"goods_value,omitempty" db:"goods_value"`

	// Assignment: exactly one of VehicleID / VendorVehicleID fulfils the docket.
	VehicleID           *int64  `json:"vehicle_id,omitempty" bson:"vehicle_id,omitempty" db:"vehicle_id"`
	VendorVehicleID     *int64  `json:"vendor_vehicle_id,omitempty" bson:"vendor_vehicle_id,omitempty" db:"vendor_vehicle_id"`
	DriverID            *int64  `json:"driver_id,omitempty" bson:"driver_id,omitempty" db:"driver_id"`
	DriverContactNumber *string `json:"driver_contact_number,omitempty" bson:"driver_contact_number,omitempty" db:"driver_contact_number"`

	// Commercial
	PaymentType    PaymentType            `json:"payment_type" bson:"payment_type" db:"payment_type"`
	FreightCharges FreightChargeBreakdown `json:"freight_charges" bson:"freight_charges"`
	Total          float64                `json:"total" bson:"total" db:"total"`

	// Lifecycle
	Status      DocketStatus   `json:"status" bson:"status" db:"status"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at" db:"created_at"`
	UpdatedAt   *time.Time     `json:"updated_at,omitempty" bson:"updated_at,omitempty" db:"updated_at"`
	DeliveredAt *time.Time     `json:"delivered_at,omitempty" bson:"delivered_at,omitempty" db:"delivered_at"`
	Proof       *DeliveryProof `json:"delivery_proof,omitempty" bson:"delivery_proof,omitempty"`

	// Compliance / reference
	EwayBillNo  *string `json:"eway_bill_no,omitempty" bson:"eway_bill_no,omitempty" db:"eway_bill_no"`
	OrderNumber *string `json:"order_number,omitempty" bson:"order_number,omitempty" db:"order_number"`
	SiteID      *string `json:"site_id,omitempty" bson:"site_id,omitempty" db:"site_id"`

	CreatedBy int64 `json:"created_by" bson:"created_by" db:"created_by"`

	// Version increments on every mutation; conditional updates use it to keep
	// concurrent writers from racing on the same docket.
	Version int64 `json:"version" bson:"version" db:"version"`

	// PDF bookkeeping
	PdfCreatedAt *time.Time `json:"pdf_created_at,omitempty" bson:"pdf_created_at,omitempty" db:"pdf_created_at"`
	PdfPath      *string    `json:"pdf_path,omitempty" bson:"pdf_path,omitempty" db:"pdf_path"`
}

// FreightChargeBreakdown is the fixed set of monetary line items on a docket.
// Total is derived; paid/to_pay/tbb are payment allocations, never charges.
type FreightChargeBreakdown struct {
	RatePerKg      *float64 `json:"rate_per_kg,omitempty" bson:"rate_per_kg,omitempty" db:"rate_per_kg"`
	FreightRs      *float64 `json:"freight_rs,omitempty" bson:"freight_rs,omitempty" db:"freight_rs"`
	FreightCharges *float64 `json:"freight_charges,omitempty" bson:"freight_charges,omitempty" db:"freight_charges"`
	AOC            *float64 `json:"aoc,omitempty" bson:"aoc,omitempty" db:"aoc"`
	Hamali         *float64 `json:"hamali,omitempty" bson:"hamali,omitempty" db:"hamali"`
	DDCharges      *float64 `json:"dd_charges,omitempty" bson:"dd_charges,omitempty" db:"dd_charges"`
	STCharges      *float64 `json:"st_charges,omitempty" bson:"st_charges,omitempty" db:"st_charges"`
	ServiceCharge  *float64 `json:"service_charge,omitempty" bson:"service_charge,omitempty" db:"service_charge"`
	Paid           *float64 `json:"paid,omitempty" bson:"paid,omitempty" db:"paid"`
	ToPay          *float64 `json:"to_pay,omitempty" bson:"to_pay,omitempty" db:"to_pay"`
	TBB            *float64 `json:"tbb,omitempty" bson:"tbb,omitempty" db:"tbb"`
}

// DocketAddress is a structured region reference plus a free-text supplement.
// Only IDs are stored; names are resolved at document-assembly time.
type DocketAddress struct {
	CountryID  *int64 `json:"country_id,omitempty" bson:"country_id,omitempty"`
	StateID    *int64 `json:"state_id,omitempty" bson:"state_id,omitempty"`
	CityID     *int64 `json:"city_id,omitempty" bson:"city_id,omitempty"`
	LocalityID *int64 `json:"locality_id,omitempty" bson:"locality_id,omitempty"`
	PincodeID  *int64 `json:"pincode_id,omitempty" bson:"pincode_id,omitempty"`
	// Free text supplement; never replaces the structured reference.
	AddressLine string `json:"address_line,omitempty" bson:"address_line,omitempty"`
}

// IsEmpty reports whether no region level is referenced.
func (a DocketAddress) IsEmpty() bool {
	return a.CountryID == nil && a.StateID == nil && a.CityID == nil &&
		a.LocalityID == nil && a.PincodeID == nil
}

// DeliveryProof is captured exactly once, together with the Delivered
// transition, and is immutable afterwards.
type DeliveryProof struct {
	ReceiverName   string    `json:"receiver_name" bson:"receiver_name" db:"receiver_name"`
	ReceiverMobile string    `json:"receiver_mobile" bson:"receiver_mobile" db:"receiver_mobile"`
	Signature      string    `json:"signature" bson:"signature" db:"signature"` // stored object URL
	DeliveredAt    time.Time `json:"delivered_at" bson:"delivered_at" db:"delivered_at"`
}
