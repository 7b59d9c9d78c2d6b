package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/adarsht2308/dellcube-lms-sub000/models"
	"github.com/adarsht2308/dellcube-lms-sub000/service"
)

type DocketHandler struct {
	Service *service.DocketService
}

// CreateDocket handler
func (h *DocketHandler) CreateDocket(w http.ResponseWriter, r *http.Request) {
	var docket models.Docket
	if err := json.NewDecoder(r.Body).Decode(&docket); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if err := h.Service.CreateDocket(&docket, ActorFrom(r)); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Docket created",
		Data:    docket,
	})
}

// GetAllDockets handler
func (h *DocketHandler) GetAllDockets(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]interface{})
	q := r.URL.Query()
	for key, values := range q {
		if len(values) > 0 && values[0] != "" {
			// Attempt to convert numeric values to int if possible
			if intVal, err := strconv.Atoi(values[0]); err == nil {
				filters[key] = intVal
			} else {
				filters[key] = values[0]
			}
		}
	}

	list, err := h.Service.Dockets.GetDocket(filters, false)
	if err != nil {
		writeError(w, err)
		return
	}
	if list == nil {
		list = []*models.Docket{}
	}

	writeJSON(w, http.StatusOK, list)
}

// GetDocketByNumber handler
func (h *DocketHandler) GetDocketByNumber(w http.ResponseWriter, r *http.Request, number string) {
	docket, err := h.Service.Dockets.GetDocketByNumber(number)
	if err != nil {
		writeError(w, err)
		return
	}
	if docket == nil {
		writeError(w, models.ErrDocketNotFound)
		return
	}

	writeJSON(w, http.StatusOK, docket)
}

// UpdateStatus handler
func (h *DocketHandler) UpdateStatus(w http.ResponseWriter, r *http.Request, number string) {
	var body struct {
		Status models.DocketStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	docket, err := h.Service.UpdateStatus(number, body.Status, ActorFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Status updated",
		Data:    docket,
	})
}

// UpdateCharges handler
func (h *DocketHandler) UpdateCharges(w http.ResponseWriter, r *http.Request, number string) {
	var charges models.FreightChargeBreakdown
	if err := json.NewDecoder(r.Body).Decode(&charges); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	docket, err := h.Service.UpdateCharges(number, charges, ActorFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Charges updated",
		Data:    docket,
	})
}

// SubmitDeliveryProof handler
func (h *DocketHandler) SubmitDeliveryProof(w http.ResponseWriter, r *http.Request, number string) {
	var input service.ProofInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	docket, err := h.Service.SubmitDeliveryProof(number, input, ActorFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Delivery proof captured",
		Data:    docket,
	})
}

// RenderCopies returns the four copy views of a docket as JSON.
func (h *DocketHandler) RenderCopies(w http.ResponseWriter, r *http.Request, number string) {
	views, err := h.Service.AssembleCopies(number)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, views)
}

// ListForDriver lists the authenticated driver's dockets with paging.
func (h *DocketHandler) ListForDriver(w http.ResponseWriter, r *http.Request) {
	actor := ActorFrom(r)

	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	result, err := h.Service.ListForDriver(actor.DriverID, page, limit, q.Get("search"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ListRecent lists the authenticated driver's dockets from the last hours.
func (h *DocketHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	actor := ActorFrom(r)

	hours, _ := strconv.Atoi(r.URL.Query().Get("hours"))
	dockets, err := h.Service.ListRecent(actor.DriverID, hours)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dockets)
}
