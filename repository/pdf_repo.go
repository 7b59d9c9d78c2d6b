package repository

import (
	"github.com/adarsht2308/dellcube-lms-sub000/models"
)

// PDFRepository provides the read side for docket PDF generation.
type PDFRepository struct {
	DocketRepo DocketRepository
	BranchRepo BranchProfileRepository
}

func NewPDFRepository(docketRepo DocketRepository, branchRepo BranchProfileRepository) *PDFRepository {
	return &PDFRepository{
		DocketRepo: docketRepo,
		BranchRepo: branchRepo,
	}
}

// GetDocketForPDF fetches a single docket by number for PDF rendering.
func (r *PDFRepository) GetDocketForPDF(docketNumber string) (*models.Docket, error) {
	return r.DocketRepo.GetDocketByNumber(docketNumber)
}

// GetBranchForPDF fetches the branch letterhead details.
func (r *PDFRepository) GetBranchForPDF() (*models.BranchProfile, error) {
	return r.BranchRepo.GetProfile()
}
