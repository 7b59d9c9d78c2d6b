package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adarsht2308/dellcube-lms-sub000/models"
)

func newTestService(repo *fakeDocketRepo) *DocketService {
	return NewDocketService(repo, &stubRegions{}, &stubGoods{}, nil)
}

func validDocket() *models.Docket {
	return &models.Docket{
		Consignor:   "Acme Traders",
		Consignee:   "Bharat Mills",
		CompanyID:   1,
		BranchID:    1,
		GoodsTypeID: 7,
		FromAddress: models.DocketAddress{CityID: i64(1)},
		ToAddress:   models.DocketAddress{AddressLine: "Plot 9, Talegaon"},
		FreightCharges: models.FreightChargeBreakdown{
			FreightRs: f64(1000),
			AOC:       f64(50),
			Hamali:    f64(20),
			RatePerKg: f64(10),
			Paid:      f64(1070),
		},
	}
}

func TestCreateDocket(t *testing.T) {
	operation := models.Actor{UserID: 20, Role: models.RoleOperation}

	t.Run("stores a valid docket in created state", func(t *testing.T) {
		repo := newFakeDocketRepo()
		svc := newTestService(repo)

		d := validDocket()
		require.NoError(t, svc.CreateDocket(d, operation))

		assert.Equal(t, "DCK-000001", d.DocketNumber)
		assert.Equal(t, models.StatusCreated, d.Status)
		assert.Equal(t, models.PaymentToPay, d.PaymentType)
		assert.Equal(t, 1070.00, d.Total)
		assert.Equal(t, int64(1), d.Version)
		assert.Equal(t, int64(20), d.CreatedBy)
		assert.Nil(t, d.Proof)
		assert.False(t, d.CreatedAt.IsZero())

		stored, err := repo.GetDocketByNumber("DCK-000001")
		require.NoError(t, err)
		require.NotNil(t, stored)
	})

	t.Run("numbers are sequential", func(t *testing.T) {
		repo := newFakeDocketRepo()
		svc := newTestService(repo)

		first := validDocket()
		second := validDocket()
		require.NoError(t, svc.CreateDocket(first, operation))
		require.NoError(t, svc.CreateDocket(second, operation))

		assert.Equal(t, "DCK-000001", first.DocketNumber)
		assert.Equal(t, "DCK-000002", second.DocketNumber)
	})

	t.Run("driver may not create", func(t *testing.T) {
		svc := newTestService(newFakeDocketRepo())
		err := svc.CreateDocket(validDocket(), models.Actor{Role: models.RoleDriver, DriverID: 42})
		assert.ErrorIs(t, err, models.ErrUnauthorizedTransition)
	})

	t.Run("missing consignor fails validation", func(t *testing.T) {
		svc := newTestService(newFakeDocketRepo())
		d := validDocket()
		d.Consignor = ""
		assert.ErrorIs(t, svc.CreateDocket(d, operation), models.ErrValidation)
	})

	t.Run("both vehicle references fail validation", func(t *testing.T) {
		svc := newTestService(newFakeDocketRepo())
		d := validDocket()
		d.VehicleID = i64(3)
		d.VendorVehicleID = i64(8)
		assert.ErrorIs(t, svc.CreateDocket(d, operation), models.ErrValidation)
	})

	t.Run("empty addresses fail validation", func(t *testing.T) {
		svc := newTestService(newFakeDocketRepo())
		d := validDocket()
		d.ToAddress = models.DocketAddress{}
		assert.ErrorIs(t, svc.CreateDocket(d, operation), models.ErrValidation)
	})
}

func TestUpdateStatus(t *testing.T) {
	driver := models.Actor{UserID: 10, Role: models.RoleDriver, DriverID: 42}
	operation := models.Actor{UserID: 20, Role: models.RoleOperation}

	t.Run("driver moves assigned docket forward", func(t *testing.T) {
		repo := newFakeDocketRepo()
		seeded := repo.seed(func(d *models.Docket) {
			d.Status = models.StatusDispatched
			d.DriverID = i64(42)
		})
		svc := newTestService(repo)

		updated, err := svc.UpdateStatus(seeded.DocketNumber, models.StatusInTransit, driver)
		require.NoError(t, err)
		assert.Equal(t, models.StatusInTransit, updated.Status)
		assert.Equal(t, seeded.Version+1, updated.Version)
		require.NotNil(t, updated.UpdatedAt)
	})

	t.Run("delivered is never reachable without proof", func(t *testing.T) {
		repo := newFakeDocketRepo()
		seeded := repo.seed(func(d *models.Docket) {
			d.Status = models.StatusArrived
			d.DriverID = i64(42)
		})
		svc := newTestService(repo)

		_, err := svc.UpdateStatus(seeded.DocketNumber, models.StatusDelivered, driver)
		assert.ErrorIs(t, err, models.ErrPrecondition)

		_, err = svc.UpdateStatus(seeded.DocketNumber, models.StatusDelivered, operation)
		assert.ErrorIs(t, err, models.ErrPrecondition)

		stored, _ := repo.GetDocketByNumber(seeded.DocketNumber)
		assert.Equal(t, models.StatusArrived, stored.Status)
	})

	t.Run("unknown docket", func(t *testing.T) {
		svc := newTestService(newFakeDocketRepo())
		_, err := svc.UpdateStatus("DCK-009999", models.StatusDispatched, operation)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("terminal docket rejects every change", func(t *testing.T) {
		repo := newFakeDocketRepo()
		seeded := repo.seed(func(d *models.Docket) {
			d.Status = models.StatusCancelled
		})
		svc := newTestService(repo)

		_, err := svc.UpdateStatus(seeded.DocketNumber, models.StatusInTransit, operation)
		assert.ErrorIs(t, err, models.ErrTerminalState)
	})

	t.Run("concurrent writer loses on version", func(t *testing.T) {
		repo := newFakeDocketRepo()
		seeded := repo.seed(func(d *models.Docket) {
			d.Status = models.StatusCreated
		})
		svc := newTestService(repo)

		// Another writer bumps the stored version after our read.
		_, err := repo.UpdateStatus(seeded.DocketNumber, seeded.Version, models.StatusDispatched, time.Now())
		require.NoError(t, err)

		// Our read snapshot still carries the version we saw, so retrying
		// with it must lose.
		assert.Equal(t, int64(1), seeded.Version)
		_, err = repo.UpdateStatus(seeded.DocketNumber, seeded.Version, models.StatusDispatched, time.Now())
		assert.ErrorIs(t, err, models.ErrConflict)

		// The service path sees the fresh version and succeeds.
		_, err = svc.UpdateStatus(seeded.DocketNumber, models.StatusInTransit, operation)
		assert.NoError(t, err)
	})
}

func TestUpdateCharges(t *testing.T) {
	operation := models.Actor{UserID: 20, Role: models.RoleOperation}

	t.Run("replaces breakdown and recomputes total", func(t *testing.T) {
		repo := newFakeDocketRepo()
		seeded := repo.seed(func(d *models.Docket) {
			d.FreightCharges = models.FreightChargeBreakdown{FreightRs: f64(500)}
			d.Total = 500
		})
		svc := newTestService(repo)

		updated, err := svc.UpdateCharges(seeded.DocketNumber, models.FreightChargeBreakdown{
			FreightRs:     f64(800),
			ServiceCharge: f64(40.55),
		}, operation)
		require.NoError(t, err)
		assert.Equal(t, 840.55, updated.Total)
		assert.Equal(t, seeded.Version+1, updated.Version)
		assert.Nil(t, updated.FreightCharges.AOC)
	})

	t.Run("driver may not edit charges", func(t *testing.T) {
		repo := newFakeDocketRepo()
		seeded := repo.seed(nil)
		svc := newTestService(repo)

		_, err := svc.UpdateCharges(seeded.DocketNumber, models.FreightChargeBreakdown{}, models.Actor{Role: models.RoleDriver, DriverID: 42})
		assert.ErrorIs(t, err, models.ErrUnauthorizedTransition)
	})

	t.Run("terminal docket keeps its charges", func(t *testing.T) {
		repo := newFakeDocketRepo()
		seeded := repo.seed(func(d *models.Docket) {
			d.Status = models.StatusDelivered
		})
		svc := newTestService(repo)

		_, err := svc.UpdateCharges(seeded.DocketNumber, models.FreightChargeBreakdown{FreightRs: f64(1)}, operation)
		assert.ErrorIs(t, err, models.ErrTerminalState)
	})
}

func TestListForDriver(t *testing.T) {
	repo := newFakeDocketRepo()
	repo.seed(func(d *models.Docket) { d.DriverID = i64(42) })
	repo.seed(func(d *models.Docket) { d.DriverID = i64(42) })
	repo.seed(func(d *models.Docket) { d.DriverID = i64(99) })
	svc := newTestService(repo)

	page, err := svc.ListForDriver(42, 0, 0, "")
	require.NoError(t, err)
	assert.Len(t, page.Invoices, 2)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.Limit)

	empty, err := svc.ListForDriver(7, 1, 20, "")
	require.NoError(t, err)
	assert.NotNil(t, empty.Invoices)
	assert.Empty(t, empty.Invoices)
}

func TestListRecentDefaultsWindow(t *testing.T) {
	repo := newFakeDocketRepo()
	repo.seed(func(d *models.Docket) { d.DriverID = i64(42) })
	repo.seed(func(d *models.Docket) {
		d.DriverID = i64(42)
		d.CreatedAt = time.Now().Add(-48 * time.Hour)
	})
	svc := newTestService(repo)

	dockets, err := svc.ListRecent(42, 0)
	require.NoError(t, err)
	assert.Len(t, dockets, 1)
}
