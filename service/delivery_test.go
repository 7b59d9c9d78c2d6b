package service

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adarsht2308/dellcube-lms-sub000/models"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
var jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}

func pngPayload() string {
	return base64.StdEncoding.EncodeToString(pngHeader)
}

func TestDecodeSignature(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"plain base64 png", pngPayload(), false},
		{"plain base64 jpeg", base64.StdEncoding.EncodeToString(jpegHeader), false},
		{"png data uri", "data:image/png;base64," + pngPayload(), false},
		{"empty payload", "", true},
		{"whitespace payload", "   ", true},
		{"data uri without base64 marker", "data:image/png,rawbytes", true},
		{"not base64", "this is not base64!!!", true},
		{"base64 but not an image", base64.StdEncoding.EncodeToString([]byte("hello world")), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := DecodeSignature(tt.payload)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrInvalidSignature)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}
}

func TestSubmitDeliveryProof(t *testing.T) {
	driver := models.Actor{UserID: 10, Role: models.RoleDriver, DriverID: 42}
	operation := models.Actor{UserID: 20, Role: models.RoleOperation}

	proof := ProofInput{
		ReceiverName:   "Suresh Patil",
		ReceiverMobile: "9876543210",
		Signature:      pngPayload(),
	}

	t.Run("driver delivers an arrived docket", func(t *testing.T) {
		repo := newFakeDocketRepo()
		seeded := repo.seed(func(d *models.Docket) {
			d.Status = models.StatusArrived
			d.DriverID = i64(42)
		})
		signatures := &stubSignatures{}
		svc := NewDocketService(repo, &stubRegions{}, &stubGoods{}, signatures)

		updated, err := svc.SubmitDeliveryProof(seeded.DocketNumber, proof, driver)
		require.NoError(t, err)

		assert.Equal(t, models.StatusDelivered, updated.Status)
		require.NotNil(t, updated.Proof)
		assert.Equal(t, "Suresh Patil", updated.Proof.ReceiverName)
		assert.Equal(t, "9876543210", updated.Proof.ReceiverMobile)
		assert.Contains(t, updated.Proof.Signature, "https://cdn.example.test/")
		assert.False(t, updated.Proof.DeliveredAt.IsZero())
		require.NotNil(t, updated.DeliveredAt)
		assert.Equal(t, seeded.Version+1, updated.Version)
		assert.Equal(t, 1, signatures.uploads)

		// Status and proof were written by the same call.
		stored, _ := repo.GetDocketByNumber(seeded.DocketNumber)
		assert.Equal(t, models.StatusDelivered, stored.Status)
		require.NotNil(t, stored.Proof)
	})

	t.Run("stored object matches the signature format", func(t *testing.T) {
		repo := newFakeDocketRepo()
		seeded := repo.seed(func(d *models.Docket) {
			d.Status = models.StatusArrived
			d.DriverID = i64(42)
		})
		signatures := &stubSignatures{}
		svc := NewDocketService(repo, &stubRegions{}, &stubGoods{}, signatures)

		pngInput := proof
		_, err := svc.SubmitDeliveryProof(seeded.DocketNumber, pngInput, driver)
		require.NoError(t, err)
		assert.Equal(t, "image/png", signatures.lastContentType)
		assert.True(t, strings.HasSuffix(signatures.lastName, ".png"), signatures.lastName)

		seeded = repo.seed(func(d *models.Docket) {
			d.Status = models.StatusArrived
			d.DriverID = i64(42)
		})
		jpegInput := proof
		jpegInput.Signature = base64.StdEncoding.EncodeToString(jpegHeader)
		_, err = svc.SubmitDeliveryProof(seeded.DocketNumber, jpegInput, driver)
		require.NoError(t, err)
		assert.Equal(t, "image/jpeg", signatures.lastContentType)
		assert.True(t, strings.HasSuffix(signatures.lastName, ".jpg"), signatures.lastName)
	})

	t.Run("without a store the raw payload is kept", func(t *testing.T) {
		repo := newFakeDocketRepo()
		seeded := repo.seed(func(d *models.Docket) {
			d.Status = models.StatusArrived
			d.DriverID = i64(42)
		})
		svc := NewDocketService(repo, &stubRegions{}, &stubGoods{}, nil)

		updated, err := svc.SubmitDeliveryProof(seeded.DocketNumber, proof, driver)
		require.NoError(t, err)
		assert.Equal(t, proof.Signature, updated.Proof.Signature)
	})

	t.Run("driver cannot deliver before arrival", func(t *testing.T) {
		repo := newFakeDocketRepo()
		seeded := repo.seed(func(d *models.Docket) {
			d.Status = models.StatusInTransit
			d.DriverID = i64(42)
		})
		svc := NewDocketService(repo, &stubRegions{}, &stubGoods{}, nil)

		_, err := svc.SubmitDeliveryProof(seeded.DocketNumber, proof, driver)
		assert.ErrorIs(t, err, models.ErrPrecondition)

		stored, _ := repo.GetDocketByNumber(seeded.DocketNumber)
		assert.Equal(t, models.StatusInTransit, stored.Status)
		assert.Nil(t, stored.Proof)
	})

	t.Run("office may force capture before arrival", func(t *testing.T) {
		repo := newFakeDocketRepo()
		seeded := repo.seed(func(d *models.Docket) {
			d.Status = models.StatusInTransit
			d.DriverID = i64(42)
		})
		svc := NewDocketService(repo, &stubRegions{}, &stubGoods{}, nil)

		updated, err := svc.SubmitDeliveryProof(seeded.DocketNumber, proof, operation)
		require.NoError(t, err)
		assert.Equal(t, models.StatusDelivered, updated.Status)
	})

	t.Run("unassigned driver is rejected", func(t *testing.T) {
		repo := newFakeDocketRepo()
		seeded := repo.seed(func(d *models.Docket) {
			d.Status = models.StatusArrived
			d.DriverID = i64(99)
		})
		svc := NewDocketService(repo, &stubRegions{}, &stubGoods{}, nil)

		_, err := svc.SubmitDeliveryProof(seeded.DocketNumber, proof, driver)
		assert.ErrorIs(t, err, models.ErrUnauthorizedTransition)
	})

	t.Run("terminal docket rejects proof", func(t *testing.T) {
		repo := newFakeDocketRepo()
		seeded := repo.seed(func(d *models.Docket) {
			d.Status = models.StatusReturned
			d.DriverID = i64(42)
		})
		svc := NewDocketService(repo, &stubRegions{}, &stubGoods{}, nil)

		_, err := svc.SubmitDeliveryProof(seeded.DocketNumber, proof, driver)
		assert.ErrorIs(t, err, models.ErrTerminalState)
	})

	t.Run("receiver fields are required", func(t *testing.T) {
		repo := newFakeDocketRepo()
		seeded := repo.seed(func(d *models.Docket) {
			d.Status = models.StatusArrived
			d.DriverID = i64(42)
		})
		svc := NewDocketService(repo, &stubRegions{}, &stubGoods{}, nil)

		input := proof
		input.ReceiverName = ""
		_, err := svc.SubmitDeliveryProof(seeded.DocketNumber, input, driver)
		assert.ErrorIs(t, err, models.ErrValidation)

		input = proof
		input.ReceiverMobile = ""
		_, err = svc.SubmitDeliveryProof(seeded.DocketNumber, input, driver)
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("bad signature leaves the docket untouched", func(t *testing.T) {
		repo := newFakeDocketRepo()
		seeded := repo.seed(func(d *models.Docket) {
			d.Status = models.StatusArrived
			d.DriverID = i64(42)
		})
		svc := NewDocketService(repo, &stubRegions{}, &stubGoods{}, nil)

		input := proof
		input.Signature = "not an image"
		_, err := svc.SubmitDeliveryProof(seeded.DocketNumber, input, driver)
		assert.ErrorIs(t, err, models.ErrInvalidSignature)

		stored, _ := repo.GetDocketByNumber(seeded.DocketNumber)
		assert.Equal(t, models.StatusArrived, stored.Status)
		assert.Nil(t, stored.Proof)
	})

	t.Run("unknown docket", func(t *testing.T) {
		svc := NewDocketService(newFakeDocketRepo(), &stubRegions{}, &stubGoods{}, nil)
		_, err := svc.SubmitDeliveryProof("DCK-009999", proof, driver)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}
