package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/adarsht2308/dellcube-lms-sub000/models"
	"github.com/adarsht2308/dellcube-lms-sub000/repository"
)

type BranchHandler struct {
	Repo repository.BranchProfileRepository
}

func (h *BranchHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.BranchProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if err := h.Repo.SaveProfile(&profile); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, profile)
}

func (h *BranchHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Repo.GetProfile()
	if err != nil {
		writeError(w, err)
		return
	}
	if profile == nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{
			Success: false,
			Message: "Branch profile not found",
		})
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
