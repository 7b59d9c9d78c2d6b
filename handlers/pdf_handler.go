package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adarsht2308/dellcube-lms-sub000/repository"
	"github.com/adarsht2308/dellcube-lms-sub000/service"
	"github.com/adarsht2308/dellcube-lms-sub000/utils"
)

type PDFHandler struct {
	Service  *service.DocketService
	Repo     *repository.PDFRepository
	SavePath string
	UploadR2 bool
}

// DocketPDF generates the four printed copies of a docket as one PDF file.
func (h *PDFHandler) DocketPDF(w http.ResponseWriter, r *http.Request) {
	number := r.URL.Query().Get("number")
	if number == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "missing docket number",
		})
		return
	}

	saveDir := h.SavePath
	if saveDir == "" {
		saveDir = "./pdfs"
	}
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		writeError(w, err)
		return
	}

	views, err := h.Service.AssembleCopies(number)
	if err != nil {
		writeError(w, err)
		return
	}

	branch, err := h.Repo.GetBranchForPDF()
	if err != nil {
		writeError(w, err)
		return
	}

	pdfBytes, err := utils.GenerateDocketPDF(branch, views)
	if err != nil {
		writeError(w, err)
		return
	}

	filename := fmt.Sprintf("docket_%s_%d.pdf", number, time.Now().Unix())
	savePath := filepath.Join(saveDir, filename)

	if err := os.WriteFile(savePath, pdfBytes, 0644); err != nil {
		writeError(w, err)
		return
	}

	fileRef := filename
	if h.UploadR2 {
		url, err := utils.UploadToR2(pdfBytes, filename, "application/pdf")
		if err != nil {
			// Keep the local copy usable even when the upload fails.
			logrus.WithField("docket", number).Warnf("R2 upload failed: %v", err)
		} else {
			fileRef = url
		}
	}

	if err := h.Repo.DocketRepo.UpdatePDFInfo(number, fileRef, time.Now().UTC()); err != nil {
		logrus.WithField("docket", number).Warnf("failed to update pdf info: %v", err)
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Data:    map[string]string{"file": fileRef},
	})
}
