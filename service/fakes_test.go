package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/adarsht2308/dellcube-lms-sub000/models"
)

// fakeDocketRepo is an in-memory DocketRepository honouring the same version
// contract as the real backends.
type fakeDocketRepo struct {
	seq     int64
	dockets map[string]*models.Docket
}

func newFakeDocketRepo() *fakeDocketRepo {
	return &fakeDocketRepo{dockets: map[string]*models.Docket{}}
}

// put stores a copy of d and returns a second copy detached from the store,
// so callers hold a read snapshot, never the live record.
func (f *fakeDocketRepo) put(d *models.Docket) *models.Docket {
	stored := *d
	f.dockets[d.DocketNumber] = &stored
	snapshot := stored
	return &snapshot
}

// seed stores a minimal valid docket, optionally adjusted by mutate.
func (f *fakeDocketRepo) seed(mutate func(*models.Docket)) *models.Docket {
	f.seq++
	line := "Gala 4, MIDC"
	d := &models.Docket{
		ID:           f.seq,
		DocketNumber: fmt.Sprintf("DCK-%06d", f.seq),
		Consignor:    "Acme Traders",
		Consignee:    "Bharat Mills",
		CompanyID:    1,
		BranchID:     1,
		GoodsTypeID:  7,
		FromAddress:  models.DocketAddress{AddressLine: line},
		ToAddress:    models.DocketAddress{AddressLine: "Plot 9, Talegaon"},
		PaymentType:  models.PaymentToPay,
		Status:       models.StatusCreated,
		CreatedAt:    time.Now().UTC(),
		Version:      1,
	}
	if mutate != nil {
		mutate(d)
	}
	return f.put(d)
}

func (f *fakeDocketRepo) CreateDocket(d *models.Docket) error {
	f.seq++
	d.ID = f.seq
	d.DocketNumber = fmt.Sprintf("DCK-%06d", f.seq)
	f.put(d)
	return nil
}

func (f *fakeDocketRepo) GetDocket(filters map[string]interface{}, single bool) ([]*models.Docket, error) {
	var out []*models.Docket
	for _, d := range f.dockets {
		cp := *d
		out = append(out, &cp)
		if single {
			break
		}
	}
	return out, nil
}

func (f *fakeDocketRepo) GetDocketByNumber(docketNumber string) (*models.Docket, error) {
	d, ok := f.dockets[docketNumber]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDocketRepo) lockVersion(docketNumber string, version int64) (*models.Docket, error) {
	d, ok := f.dockets[docketNumber]
	if !ok {
		return nil, models.ErrDocketNotFound
	}
	if d.Version != version {
		return nil, models.ErrDocketVersionConflict
	}
	return d, nil
}

func (f *fakeDocketRepo) UpdateStatus(docketNumber string, version int64, status models.DocketStatus, updatedAt time.Time) (*models.Docket, error) {
	d, err := f.lockVersion(docketNumber, version)
	if err != nil {
		return nil, err
	}
	d.Status = status
	d.UpdatedAt = &updatedAt
	d.Version++
	cp := *d
	return &cp, nil
}

func (f *fakeDocketRepo) UpdateCharges(docketNumber string, version int64, charges models.FreightChargeBreakdown, total float64, updatedAt time.Time) (*models.Docket, error) {
	d, err := f.lockVersion(docketNumber, version)
	if err != nil {
		return nil, err
	}
	d.FreightCharges = charges
	d.Total = total
	d.UpdatedAt = &updatedAt
	d.Version++
	cp := *d
	return &cp, nil
}

func (f *fakeDocketRepo) SetDelivered(docketNumber string, version int64, proof *models.DeliveryProof) (*models.Docket, error) {
	d, err := f.lockVersion(docketNumber, version)
	if err != nil {
		return nil, err
	}
	at := proof.DeliveredAt
	d.Status = models.StatusDelivered
	d.Proof = proof
	d.DeliveredAt = &at
	d.UpdatedAt = &at
	d.Version++
	cp := *d
	return &cp, nil
}

func (f *fakeDocketRepo) ListForDriver(driverID int64, page, limit int, search string) ([]*models.Docket, int64, error) {
	var out []*models.Docket
	for _, d := range f.dockets {
		if d.DriverID == nil || *d.DriverID != driverID {
			continue
		}
		if search != "" && !strings.Contains(d.DocketNumber, search) {
			continue
		}
		cp := *d
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (f *fakeDocketRepo) ListRecent(driverID int64, within time.Duration) ([]*models.Docket, error) {
	cutoff := time.Now().Add(-within)
	var out []*models.Docket
	for _, d := range f.dockets {
		if d.DriverID != nil && *d.DriverID == driverID && d.CreatedAt.After(cutoff) {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeDocketRepo) UpdatePDFInfo(docketNumber string, path string, createdAt time.Time) error {
	d, ok := f.dockets[docketNumber]
	if !ok {
		return models.ErrDocketNotFound
	}
	d.PdfPath = &path
	d.PdfCreatedAt = &createdAt
	return nil
}

type stubRegions struct {
	byCity map[int64]*models.ResolvedRegion
	err    error
}

func (s *stubRegions) Resolve(a models.DocketAddress) (*models.ResolvedRegion, error) {
	if s.err != nil {
		return nil, s.err
	}
	if a.CityID != nil {
		if r, ok := s.byCity[*a.CityID]; ok {
			return r, nil
		}
	}
	return &models.ResolvedRegion{}, nil
}

type stubGoods struct {
	goods map[int64]*models.GoodsType
}

func (s *stubGoods) GetGoodsType(id int64) (*models.GoodsType, error) {
	g, ok := s.goods[id]
	if !ok {
		return nil, models.ErrGoodsTypeNotFound
	}
	return g, nil
}

type stubSignatures struct {
	uploads         int
	lastName        string
	lastContentType string
}

func (s *stubSignatures) UploadSignature(data []byte, filename, contentType string) (string, error) {
	s.uploads++
	s.lastName = filename
	s.lastContentType = contentType
	return "https://cdn.example.test/" + filename, nil
}

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }
