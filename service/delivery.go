package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adarsht2308/dellcube-lms-sub000/models"
)

// SignatureStore persists receiver signature images and returns a URL for the
// stored object. File storage lives outside the docket core.
type SignatureStore interface {
	UploadSignature(data []byte, filename, contentType string) (string, error)
}

// ProofInput is the raw delivery proof submitted by the driver UI. Signature
// is a base64 image payload, optionally wrapped in a data URI.
type ProofInput struct {
	ReceiverName   string `json:"receiver_name"`
	ReceiverMobile string `json:"receiver_mobile"`
	Signature      string `json:"signature"`
}

var pngMagic = []byte{0x89, 'P', 'N', 'G'}
var jpegMagic = []byte{0xFF, 0xD8, 0xFF}

// DecodeSignature validates and decodes a signature payload. PNG and JPEG are
// the accepted encodings.
func DecodeSignature(payload string) ([]byte, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, models.InvalidSignatureError("signature payload is empty")
	}
	if strings.HasPrefix(payload, "data:") {
		idx := strings.Index(payload, ";base64,")
		if idx < 0 {
			return nil, models.InvalidSignatureError("signature data URI is not base64 encoded")
		}
		payload = payload[idx+len(";base64,"):]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, models.InvalidSignatureError("signature payload is not valid base64")
	}
	if len(data) == 0 {
		return nil, models.InvalidSignatureError("signature image is empty")
	}
	if !bytes.HasPrefix(data, pngMagic) && !bytes.HasPrefix(data, jpegMagic) {
		return nil, models.InvalidSignatureError("signature image must be PNG or JPEG")
	}
	return data, nil
}

// signatureFormat returns the file extension and content type for a decoded
// signature image.
func signatureFormat(data []byte) (ext, contentType string) {
	if bytes.HasPrefix(data, jpegMagic) {
		return "jpg", "image/jpeg"
	}
	return "png", "image/png"
}

// SubmitDeliveryProof captures the delivery proof and moves the docket to
// Delivered in one operation: either both the proof fields and the status are
// written, or neither is. deliveredAt is stamped with the capture time.
func (s *DocketService) SubmitDeliveryProof(docketNumber string, input ProofInput, actor models.Actor) (*models.Docket, error) {
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

	if actor.Role == models.RoleDriver {
		if d.DriverID == nil || *d.DriverID != actor.DriverID {
			return nil, models.UnauthorizedTransitionError("docket is not assigned to this driver")
		}
		if d.Status != models.StatusArrived {
			return nil, models.PreconditionError(
				fmt.Sprintf("delivery can only be captured after arrival, docket is %s", d.Status))
		}
	} else if !actor.Role.IsOffice() {
		return nil, models.UnauthorizedTransitionError(fmt.Sprintf("role %q is not recognised", actor.Role))
	}
	// Office roles may force delivery capture from any non-terminal state.

	if input.ReceiverName == "" {
		return nil, models.ValidationError("receiver_name", "is required")
	}
	if input.ReceiverMobile == "" {
		return nil, models.ValidationError("receiver_mobile", "is required")
	}

	img, err := DecodeSignature(input.Signature)
	if err != nil {
		return nil, err
	}

	signatureRef := input.Signature
	if s.Signatures != nil {
		ext, contentType := signatureFormat(img)
		name := fmt.Sprintf("signature_%s_%d.%s", docketNumber, time.Now().Unix(), ext)
		url, err := s.Signatures.UploadSignature(img, name, contentType)
		if err != nil {
			return nil, err
		}
		signatureRef = url
	}

	proof := &models.DeliveryProof{
		ReceiverName:   input.ReceiverName,
		ReceiverMobile: input.ReceiverMobile,
		Signature:      signatureRef,
		DeliveredAt:    time.Now().UTC(),
	}

	updated, err := s.Dockets.SetDelivered(docketNumber, d.Version, proof)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"docket":   docketNumber,
		"receiver": input.ReceiverName,
		"user":     actor.UserID,
	}).Info("delivery proof captured")
	return updated, nil
}
