package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/adarsht2308/dellcube-lms-sub000/models"
	"github.com/adarsht2308/dellcube-lms-sub000/utils"
)

// AssembleCopies projects one docket into its four printable copies. All four
// share a single sheet built from one read of the record, so their non-label
// content is identical by construction. Redaction of individual fields per
// copy is left to the renderer.
func (s *DocketService) AssembleCopies(docketNumber string) ([]models.DocumentView, error) {
	d, err := s.Dockets.GetDocketByNumber(docketNumber)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, models.ErrDocketNotFound
	}

	var from, to *models.ResolvedRegion
	if s.Regions != nil {
		if from, err = s.Regions.Resolve(d.FromAddress); err != nil {
			return nil, err
		}
		if to, err = s.Regions.Resolve(d.ToAddress); err != nil {
			return nil, err
		}
	}

	goods := d.GoodsType
	if goods == nil && s.Goods != nil && d.GoodsTypeID != 0 {
		goods, err = s.Goods.GetGoodsType(d.GoodsTypeID)
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
	}

	sheet := BuildSheet(d, from, to, goods)

	views := make([]models.DocumentView, 0, len(models.CopyTitles))
	for _, title := range models.CopyTitles {
		views = append(views, models.DocumentView{CopyType: title, Sheet: sheet})
	}
	return views, nil
}

// BuildSheet formats every docket field for printing. "-" stands for a value
// that was never recorded; a monetary zero prints as "0.00".
func BuildSheet(d *models.Docket, from, to *models.ResolvedRegion, goods *models.GoodsType) models.DocketSheet {
	sheet := models.DocketSheet{
		DocketNumber: formatText(d.DocketNumber),
		Status:       formatText(string(d.Status)),
		Consignor:    formatText(d.Consignor),
		Consignee:    formatText(d.Consignee),

		FromAddress:     FormatRegionAddress(from),
		ToAddress:       FormatRegionAddress(to),
		PickupAddress:   formatText(d.FromAddress.AddressLine),
		DeliveryAddress: formatText(d.ToAddress.AddressLine),

		NumberOfPackages: formatInt(d.NumberOfPackages),
		TotalWeight:      formatQuantity(d.TotalWeight),
		GoodsValue:       formatMoneyPtr(d.GoodsValue),

		Vehicle:       formatVehicle(d),
		Driver:        formatRef(d.DriverID),
		DriverContact: formatTextPtr(d.DriverContactNumber),

		PaymentType:   formatText(string(d.PaymentType)),
		RatePerKg:     formatMoneyPtr(d.FreightCharges.RatePerKg),
		FreightRs:     formatMoneyPtr(d.FreightCharges.FreightRs),
		FreightOther:  formatMoneyPtr(d.FreightCharges.FreightCharges),
		AOC:           formatMoneyPtr(d.FreightCharges.AOC),
		Hamali:        formatMoneyPtr(d.FreightCharges.Hamali),
		DDCharges:     formatMoneyPtr(d.FreightCharges.DDCharges),
		STCharges:     formatMoneyPtr(d.FreightCharges.STCharges),
		ServiceCharge: formatMoneyPtr(d.FreightCharges.ServiceCharge),
		Paid:          formatMoneyPtr(d.FreightCharges.Paid),
		ToPay:         formatMoneyPtr(d.FreightCharges.ToPay),
		TBB:           formatMoneyPtr(d.FreightCharges.TBB),
		Total:         formatMoney(d.Total),
		TotalWords:    utils.NumberToCurrencyWords(d.Total),

		EwayBillNo:  formatTextPtr(d.EwayBillNo),
		OrderNumber: formatTextPtr(d.OrderNumber),
		SiteID:      formatTextPtr(d.SiteID),

		ReceiverName:   dash,
		ReceiverMobile: dash,
		DeliveredAt:    dash,
	}

	if !d.CreatedAt.IsZero() {
		sheet.Date = d.CreatedAt.Format("02-Jan-2006")
	} else {
		sheet.Date = dash
	}

	sheet.GoodsName = dash
	if goods != nil {
		sheet.GoodsName = formatText(goods.Name)
		sheet.GoodsItems = goods.Items
	}

	if d.Proof != nil {
		sheet.ReceiverName = formatText(d.Proof.ReceiverName)
		sheet.ReceiverMobile = formatText(d.Proof.ReceiverMobile)
		sheet.DeliveredAt = d.Proof.DeliveredAt.Format("02-Jan-2006 15:04")
	}

	return sheet
}

// FormatRegionAddress composes "locality, city, state, country - pincode",
// dropping empty segments and their separators. With nothing to show it
// returns "-".
func FormatRegionAddress(r *models.ResolvedRegion) string {
	if r == nil {
		return dash
	}
	var segments []string
	for _, seg := range []string{r.Locality, r.City, r.State, r.Country} {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	out := strings.Join(segments, ", ")
	if r.Pincode != "" {
		if out == "" {
			out = r.Pincode
		} else {
			out += " - " + r.Pincode
		}
	}
	if out == "" {
		return dash
	}
	return out
}

const dash = "-"

func formatText(s string) string {
	if s == "" {
		return dash
	}
	return s
}

func formatTextPtr(s *string) string {
	if s == nil || *s == "" {
		return dash
	}
	return *s
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatMoneyPtr(v *float64) string {
	if v == nil {
		return dash
	}
	return formatMoney(*v)
}

func formatQuantity(v *float64) string {
	if v == nil {
		return dash
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return dash
	}
	return strconv.Itoa(*v)
}

func formatRef(id *int64) string {
	if id == nil {
		return dash
	}
	return strconv.FormatInt(*id, 10)
}

func formatVehicle(d *models.Docket) string {
	if d.VehicleID != nil {
		return fmt.Sprintf("FLEET-%d", *d.VehicleID)
	}
	if d.VendorVehicleID != nil {
		return fmt.Sprintf("VENDOR-%d", *d.VendorVehicleID)
	}
	return dash
}
