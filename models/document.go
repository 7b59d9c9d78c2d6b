package models

// Copy labels, in print order. Every docket renders exactly these four.
const (
	CopyConsignor = "Consignor Copy"
	CopyOffice    = "Office Copy"
	CopyConsignee = "Consignee Copy"
	CopyDriver    = "Driver Copy"
)

var CopyTitles = []string{CopyConsignor, CopyOffice, CopyConsignee, CopyDriver}

// DocumentView is one printable copy of a docket. The four copies of a docket
// share an identical Sheet and differ only in CopyType; which fields a copy
// actually shows is the renderer's decision, not the assembler's.
type DocumentView struct {
	CopyType string      `json:"copy_type"`
	Sheet    DocketSheet `json:"sheet"`
}

// DocketSheet is the fully formatted content of a docket for printing. Every
// field is display-ready text: "-" means not recorded, a monetary "0.00"
// means recorded as zero.
type DocketSheet struct {
	DocketNumber string `json:"docket_number"`
	Date         string `json:"date"`
	Status       string `json:"status"`

	Consignor string `json:"consignor"`
	Consignee string `json:"consignee"`

	FromAddress     string `json:"from_address"`
	ToAddress       string `json:"to_address"`
	PickupAddress   string `json:"pickup_address"`
	DeliveryAddress string `json:"delivery_address"`

	GoodsName        string   `json:"goods_name"`
	GoodsItems       []string `json:"goods_items"`
	NumberOfPackages string   `json:"number_of_packages"`
	TotalWeight      string   `json:"total_weight"`
	GoodsValue       string   `json:"goods_value"`

	Vehicle       string `json:"vehicle"`
	Driver        string `json:"driver"`
	DriverContact string `json:"driver_contact"`

	PaymentType   string `json:"payment_type"`
	RatePerKg     string `json:"rate_per_kg"`
	FreightRs     string `json:"freight_rs"`
	FreightOther  string `json:"freight_charges"`
	AOC           string `json:"aoc"`
	Hamali        string `json:"hamali"`
	DDCharges     string `json:"dd_charges"`
	STCharges     string `json:"st_charges"`
	ServiceCharge string `json:"service_charge"`
	Paid          string `json:"paid"`
	ToPay         string `json:"to_pay"`
	TBB           string `json:"tbb"`
	Total         string `json:"total"`
	TotalWords    string `json:"total_words"`

	EwayBillNo  string `json:"eway_bill_no"`
	OrderNumber string `json:"order_number"`
	SiteID      string `json:"site_id"`

	ReceiverName   string `json:"receiver_name"`
	ReceiverMobile string `json:"receiver_mobile"`
	DeliveredAt    string `json:"delivered_at"`
}

// DocketPDFData feeds the HTML template for one printed copy.
type DocketPDFData struct {
	Branch    *BranchProfile
	View      DocumentView
	Contacts  string // formatted mobile numbers
	CopyIndex int
}
