package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/adarsht2308/dellcube-lms-sub000/models"
)

type PostgresBranchRepo struct {
	DB *sql.DB
}

func NewPostgresBranchRepo(db *sql.DB) *PostgresBranchRepo {
	return &PostgresBranchRepo{DB: db}
}

// SaveProfile inserts or updates the branch letterhead details
func (r *PostgresBranchRepo) SaveProfile(profile *models.BranchProfile) error {
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}

	mobileJSON, err := json.Marshal(profile.Mobile)
	if err != nil {
		return err
	}

	if profile.ID > 0 {
		_, err = r.DB.Exec(`
			UPDATE branch_profile
			SET company_name=$1, branch_name=$2, gstin=$3, address=$4, city=$5, state=$6,
				pincode=$7, mobile=$8, footnote=$9
			WHERE id=$10
		`, profile.CompanyName, profile.BranchName, profile.GSTIN, profile.Address, profile.City,
			profile.State, profile.Pincode, mobileJSON, profile.Footnote, profile.ID)
		return err
	}

	return r.DB.QueryRow(`
		INSERT INTO branch_profile
		(company_name, branch_name, gstin, address, city, state, pincode, mobile, footnote, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id
	`, profile.CompanyName, profile.BranchName, profile.GSTIN, profile.Address, profile.City,
		profile.State, profile.Pincode, mobileJSON, profile.Footnote, profile.CreatedAt).Scan(&profile.ID)
}

// GetProfile fetches the latest branch profile
func (r *PostgresBranchRepo) GetProfile() (*models.BranchProfile, error) {
	profile := &models.BranchProfile{}
	var mobileJSON []byte

	err := r.DB.QueryRow(`
		SELECT id, company_name, branch_name, address, city, state, pincode, gstin, footnote, mobile, created_at
		FROM branch_profile
		ORDER BY id DESC LIMIT 1
	`).Scan(&profile.ID, &profile.CompanyName, &profile.BranchName, &profile.Address, &profile.City,
		&profile.State, &profile.Pincode, &profile.GSTIN, &profile.Footnote, &mobileJSON, &profile.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if len(mobileJSON) > 0 {
		if err := json.Unmarshal(mobileJSON, &profile.Mobile); err != nil {
			return nil, err
		}
	}
	return profile, nil
}
