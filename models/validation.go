package models

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidateForCreate checks the fields required before a docket may be stored.
func (d *Docket) ValidateForCreate() error {
	err := validation.ValidateStruct(d,
		validation.Field(&d.Consignor, validation.Required),
		validation.Field(&d.Consignee, validation.Required),
		validation.Field(&d.CompanyID, validation.Required),
		validation.Field(&d.BranchID, validation.Required),
		validation.Field(&d.GoodsTypeID, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%v%w", err, ErrValidation)
	}

	if d.FromAddress.IsEmpty() && d.FromAddress.AddressLine == "" {
		return ValidationError("from_address", "cannot be empty")
	}
	if d.ToAddress.IsEmpty() && d.ToAddress.AddressLine == "" {
		return ValidationError("to_address", "cannot be empty")
	}
	if d.PaymentType != "" && !d.PaymentType.IsValid() {
		return ValidationError("payment_type", fmt.Sprintf("%q is not a recognised payment type", d.PaymentType))
	}
	if d.VehicleID != nil && d.VendorVehicleID != nil {
		return ValidationError("vehicle", "docket cannot reference both an own vehicle and a vendor vehicle")
	}
	return nil
}
