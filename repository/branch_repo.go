package repository

import "github.com/adarsht2308/dellcube-lms-sub000/models"

type BranchProfileRepository interface {
	SaveProfile(profile *models.BranchProfile) error
	GetProfile() (*models.BranchProfile, error)
}
