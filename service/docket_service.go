package service

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adarsht2308/dellcube-lms-sub000/models"
	"github.com/adarsht2308/dellcube-lms-sub000/repository"
)

// DocketService owns the docket lifecycle: creation, status transitions,
// charge updates, delivery proof capture and copy assembly. Every mutating
// method takes the acting user explicitly.
type DocketService struct {
	Dockets    repository.DocketRepository
	Regions    repository.RegionResolver
	Goods      repository.GoodsTypeRepository
	Signatures SignatureStore
}

func NewDocketService(
	dockets repository.DocketRepository,
	regions repository.RegionResolver,
	goods repository.GoodsTypeRepository,
	signatures SignatureStore,
) *DocketService {
	return &DocketService{
		Dockets:    dockets,
		Regions:    regions,
		Goods:      goods,
		Signatures: signatures,
	}
}

// CreateDocket validates and stores a new docket in the Created state.
func (s *DocketService) CreateDocket(d *models.Docket, actor models.Actor) error {
	if !actor.Role.IsOffice() {
		return models.UnauthorizedTransitionError("only office roles may create dockets")
	}
	if err := d.ValidateForCreate(); err != nil {
		return err
	}

	d.Status = models.StatusCreated
	if d.PaymentType == "" {
		d.PaymentType = models.PaymentToPay
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	d.Total = ComputeTotal(d.FreightCharges)
	d.Version = 1
	d.CreatedBy = actor.UserID
	d.DeliveredAt = nil
	d.Proof = nil

	if err := s.Dockets.CreateDocket(d); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"docket": d.DocketNumber,
		"user":   actor.UserID,
	}).Info("docket created")
	return nil
}

// UpdateStatus applies a validated status transition. Delivered is never
// reachable through this path: the Delivered transition only happens together
// with proof capture in SubmitDeliveryProof.
func (s *DocketService) UpdateStatus(docketNumber string, to models.DocketStatus, actor models.Actor) (*models.Docket, error) {
	d, err := s.Dockets.GetDocketByNumber(docketNumber)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, models.ErrDocketNotFound
	}

	if err := CheckTransition(d, to, actor); err != nil {
		return nil, err
	}
	if to == models.StatusDelivered {
		return nil, models.PreconditionError("delivery requires proof capture; submit delivery proof instead")
	}

	updated, err := s.Dockets.UpdateStatus(docketNumber, d.Version, to, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"docket": docketNumber,
		"from":   d.Status,
		"to":     to,
		"user":   actor.UserID,
		"role":   actor.Role,
	}).Info("docket status changed")
	return updated, nil
}

// UpdateCharges replaces the freight charge breakdown and recomputes the
// stored total so it can never go stale.
func (s *DocketService) UpdateCharges(docketNumber string, charges models.FreightChargeBreakdown, actor models.Actor) (*models.Docket, error) {
	if !actor.Role.IsOffice() {
		return nil, models.UnauthorizedTransitionError("only office roles may edit charges")
	}

	d, err := s.Dockets.GetDocketByNumber(docketNumber)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, models.ErrDocketNotFound
	}
	if d.Status.IsTerminal() {
		return nil, models.TerminalStateError(d.Status)
	}

	total := ComputeTotal(charges)
	return s.Dockets.UpdateCharges(docketNumber, d.Version, charges, total, time.Now().UTC())
}

// DriverDocketPage is one page of a driver's docket listing.
type DriverDocketPage struct {
	Invoices []*models.Docket `json:"invoices"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
}

// ListForDriver returns the dockets assigned to a driver, newest first.
// search matches on docket number.
func (s *DocketService) ListForDriver(driverID int64, page, limit int, search string) (*DriverDocketPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	invoices, total, err := s.Dockets.ListForDriver(driverID, page, limit, search)
	if err != nil {
		return nil, err
	}
	if invoices == nil {
		invoices = []*models.Docket{}
	}
	return &DriverDocketPage{
		Invoices: invoices,
		Total:    total,
		Page:     page,
		Limit:    limit,
	}, nil
}

// ListRecent returns a driver's dockets created within the given window.
func (s *DocketService) ListRecent(driverID int64, withinHours int) ([]*models.Docket, error) {
	if withinHours <= 0 {
		withinHours = 24
	}
	dockets, err := s.Dockets.ListRecent(driverID, time.Duration(withinHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	if dockets == nil {
		dockets = []*models.Docket{}
	}
	return dockets, nil
}
