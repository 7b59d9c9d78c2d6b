package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adarsht2308/dellcube-lms-sub000/models"
)

type PostgresDocketRepo struct {
	DB *sql.DB
}

func NewPostgresDocketRepo(db *sql.DB) *PostgresDocketRepo {
	return &PostgresDocketRepo{DB: db}
}

// ------------------------ Column list & scanning ------------------------

const docketColumns = `
	d.id, d.docket_number, d.consignor, d.consignee,
	d.customer_id, d.company_id, d.branch_id,
	d.from_country_id, d.from_state_id, d.from_city_id, d.from_locality_id, d.from_pincode_id, d.from_address_line,
	d.to_country_id, d.to_state_id, d.to_city_id, d.to_locality_id, d.to_pincode_id, d.to_address_line,
	d.goods_type_id, d.number_of_packages, d.total_weight, d.goods_value,
	d.vehicle_id, d.vendor_vehicle_id, d.driver_id, d.driver_contact_number,
	d.payment_type,
	d.rate_per_kg, d.freight_rs, d.freight_charges, d.aoc, d.hamali, d.dd_charges, d.st_charges, d.service_charge,
	d.paid, d.to_pay, d.tbb, d.total,
	d.status, d.created_at, d.updated_at, d.delivered_at,
	d.receiver_name, d.receiver_mobile, d.signature,
	d.eway_bill_no, d.order_number, d.site_id,
	d.created_by, d.version, d.pdf_created_at, d.pdf_path`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDocket(row rowScanner) (*models.Docket, error) {
	var d models.Docket
	var receiverName, receiverMobile, signature *string
	var proofDeliveredAt *time.Time

	err := row.Scan(
		&d.ID, &d.DocketNumber, &d.Consignor, &d.Consignee,
		&d.CustomerID, &d.CompanyID, &d.BranchID,
		&d.FromAddress.CountryID, &d.FromAddress.StateID, &d.FromAddress.CityID,
		&d.FromAddress.LocalityID, &d.FromAddress.PincodeID, &d.FromAddress.AddressLine,
		&d.ToAddress.CountryID, &d.ToAddress.StateID, &d.ToAddress.CityID,
		&d.ToAddress.LocalityID, &d.ToAddress.PincodeID, &d.ToAddress.AddressLine,
		&d.GoodsTypeID, &d.NumberOfPackages, &d.TotalWeight, &d.GoodsValue,
		&d.VehicleID, &d.VendorVehicleID, &d.DriverID, &d.DriverContactNumber,
		&d.PaymentType,
		&d.FreightCharges.RatePerKg, &d.FreightCharges.FreightRs, &d.FreightCharges.FreightCharges,
		&d.FreightCharges.AOC, &d.FreightCharges.Hamali, &d.FreightCharges.DDCharges,
		&d.FreightCharges.STCharges, &d.FreightCharges.ServiceCharge,
		&d.FreightCharges.Paid, &d.FreightCharges.ToPay, &d.FreightCharges.TBB, &d.Total,
		&d.Status, &d.CreatedAt, &d.UpdatedAt, &d.DeliveredAt,
		&receiverName, &receiverMobile, &signature,
		&d.EwayBillNo, &d.OrderNumber, &d.SiteID,
		&d.CreatedBy, &d.Version, &d.PdfCreatedAt, &d.PdfPath,
	)
	if err != nil {
		return nil, err
	}

	if receiverName != nil && receiverMobile != nil && signature != nil && d.DeliveredAt != nil {
		proofDeliveredAt = d.DeliveredAt
		d.Proof = &models.DeliveryProof{
			ReceiverName:   *receiverName,
			ReceiverMobile: *receiverMobile,
			Signature:      *signature,
			DeliveredAt:    *proofDeliveredAt,
		}
	}
	return &d, nil
}

// ------------------------ Create ------------------------

func (r *PostgresDocketRepo) CreateDocket(d *models.Docket) error {
	return r.DB.QueryRow(`
		INSERT INTO dockets(
			docket_number, consignor, consignee,
			customer_id, company_id, branch_id,
			from_country_id, from_state_id, from_city_id, from_locality_id, from_pincode_id, from_address_line,
			to_country_id, to_state_id, to_city_id, to_locality_id, to_pincode_id, to_address_line,
			goods_type_id, number_of_packages, total_weight, goods_value,
			vehicle_id, vendor_vehicle_id, driver_id, driver_contact_number,
			payment_type,
			rate_per_kg, freight_rs, freight_charges, aoc, hamali, dd_charges, st_charges, service_charge,
			paid, to_pay, tbb, total,
			status, created_at,
			eway_bill_no, order_number, site_id,
			created_by, version
		)
		VALUES(
			'DCK-' || lpad(nextval('docket_number_seq')::text, 6, '0'), $1, $2,
			$3, $4, $5,
			$6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17,
			$18, $19, $20, $21,
			$22, $23, $24, $25,
			$26,
			$27, $28, $29, $30, $31, $32, $33, $34,
			$35, $36, $37, $38,
			$39, $40,
			$41, $42, $43,
			$44, $45
		)
		RETURNING id, docket_number
	`,
		d.Consignor, d.Consignee,
		d.CustomerID, d.CompanyID, d.BranchID,
		d.FromAddress.CountryID, d.FromAddress.StateID, d.FromAddress.CityID,
		d.FromAddress.LocalityID, d.FromAddress.PincodeID, d.FromAddress.AddressLine,
		d.ToAddress.CountryID, d.ToAddress.StateID, d.ToAddress.CityID,
		d.ToAddress.LocalityID, d.ToAddress.PincodeID, d.ToAddress.AddressLine,
		d.GoodsTypeID, d.NumberOfPackages, d.TotalWeight, d.GoodsValue,
		d.VehicleID, d.VendorVehicleID, d.DriverID, d.DriverContactNumber,
		d.PaymentType,
		d.FreightCharges.RatePerKg, d.FreightCharges.FreightRs, d.FreightCharges.FreightCharges,
		d.FreightCharges.AOC, d.FreightCharges.Hamali, d.FreightCharges.DDCharges,
		d.FreightCharges.STCharges, d.FreightCharges.ServiceCharge,
		d.FreightCharges.Paid, d.FreightCharges.ToPay, d.FreightCharges.TBB, d.Total,
		d.Status, d.CreatedAt,
		d.EwayBillNo, d.OrderNumber, d.SiteID,
		d.CreatedBy, d.Version,
	).Scan(&d.ID, &d.DocketNumber)
}

// ------------------------ Read ------------------------

func (r *PostgresDocketRepo) GetDocket(filters map[string]interface{}, single bool) ([]*models.Docket, error) {
	query := `SELECT ` + docketColumns + ` FROM dockets d`

	args := []interface{}{}
	where := []string{}
	i := 1
	for k, v := range filters {
		if !allowedDocketFilter(k) {
			continue
		}
		where = append(where, fmt.Sprintf("d.%s = $%d", k, i))
		args = append(args, v)
		i++
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	if !single {
		query += " ORDER BY d.created_at DESC"
	}

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Docket
	for rows.Next() {
		d, err := scanDocket(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if single {
		if len(result) > 0 {
			return []*models.Docket{result[0]}, nil
		}
		return nil, nil
	}
	return result, nil
}

func (r *PostgresDocketRepo) GetDocketByNumber(docketNumber string) (*models.Docket, error) {
	row := r.DB.QueryRow(`SELECT `+docketColumns+` FROM dockets d WHERE d.docket_number = $1`, docketNumber)
	d, err := scanDocket(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// ------------------------ Conditional updates ------------------------

// checkUpdateResult distinguishes a missing docket from a lost version race
// after a conditional update matched no row.
func (r *PostgresDocketRepo) checkUpdateResult(docketNumber string) error {
	var exists bool
	if err := r.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM dockets WHERE docket_number=$1)`, docketNumber).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return models.ErrDocketNotFound
	}
	return models.ErrDocketVersionConflict
}

func (r *PostgresDocketRepo) UpdateStatus(docketNumber string, version int64, status models.DocketStatus, updatedAt time.Time) (*models.Docket, error) {
	row := r.DB.QueryRow(`
		UPDATE dockets d SET status=$1, updated_at=$2, version=version+1
		WHERE d.docket_number=$3 AND d.version=$4
		RETURNING `+docketColumns+`
	`, status, updatedAt, docketNumber, version)

	d, err := scanDocket(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, r.checkUpdateResult(docketNumber)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *PostgresDocketRepo) UpdateCharges(docketNumber string, version int64, charges models.FreightChargeBreakdown, total float64, updatedAt time.Time) (*models.Docket, error) {
	row := r.DB.QueryRow(`
		UPDATE dockets d SET
			rate_per_kg=$1, freight_rs=$2, freight_charges=$3, aoc=$4, hamali=$5,
			dd_charges=$6, st_charges=$7, service_charge=$8,
			paid=$9, to_pay=$10, tbb=$11, total=$12,
			updated_at=$13, version=version+1
		WHERE d.docket_number=$14 AND d.version=$15
		RETURNING `+docketColumns+`
	`,
		charges.RatePerKg, charges.FreightRs, charges.FreightCharges, charges.AOC, charges.Hamali,
		charges.DDCharges, charges.STCharges, charges.ServiceCharge,
		charges.Paid, charges.ToPay, charges.TBB, total,
		updatedAt, docketNumber, version)

	d, err := scanDocket(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, r.checkUpdateResult(docketNumber)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// SetDelivered writes the proof fields and the Delivered status in one
// statement, so the record can never show a partial proof.
func (r *PostgresDocketRepo) SetDelivered(docketNumber string, version int64, proof *models.DeliveryProof) (*models.Docket, error) {
	row := r.DB.QueryRow(`
		UPDATE dockets d SET
			status=$1, receiver_name=$2, receiver_mobile=$3, signature=$4,
			delivered_at=$5, updated_at=$5, version=version+1
		WHERE d.docket_number=$6 AND d.version=$7
		RETURNING `+docketColumns+`
	`, models.StatusDelivered, proof.ReceiverName, proof.ReceiverMobile, proof.Signature,
		proof.DeliveredAt, docketNumber, version)

	d, err := scanDocket(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, r.checkUpdateResult(docketNumber)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// ------------------------ Driver listings ------------------------

func (r *PostgresDocketRepo) ListForDriver(driverID int64, page, limit int, search string) ([]*models.Docket, int64, error) {
	args := []interface{}{driverID}
	where := "d.driver_id = $1"
	if search != "" {
		args = append(args, "%"+search+"%")
		where += fmt.Sprintf(" AND d.docket_number ILIKE $%d", len(args))
	}

	var total int64
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM dockets d WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, (page-1)*limit)
	query := fmt.Sprintf(`SELECT %s FROM dockets d WHERE %s ORDER BY d.created_at DESC LIMIT $%d OFFSET $%d`,
		docketColumns, where, len(args)-1, len(args))

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []*models.Docket
	for rows.Next() {
		d, err := scanDocket(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, d)
	}
	return result, total, rows.Err()
}

func (r *PostgresDocketRepo) ListRecent(driverID int64, within time.Duration) ([]*models.Docket, error) {
	cutoff := time.Now().UTC().Add(-within)

	rows, err := r.DB.Query(`
		SELECT `+docketColumns+` FROM dockets d
		WHERE d.driver_id = $1 AND d.created_at >= $2
		ORDER BY d.created_at DESC
	`, driverID, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Docket
	for rows.Next() {
		d, err := scanDocket(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

// ------------------------ PDF bookkeeping ------------------------

func (r *PostgresDocketRepo) UpdatePDFInfo(docketNumber string, path string, createdAt time.Time) error {
	_, err := r.DB.Exec(`
		UPDATE dockets SET pdf_path=$1, pdf_created_at=$2 WHERE docket_number=$3
	`, path, createdAt, docketNumber)
	return err
}
