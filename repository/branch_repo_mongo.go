package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/adarsht2308/dellcube-lms-sub000/models"
)

type MongoBranchRepo struct {
	DB *mongo.Client
}

func NewMongoBranchRepo(db *mongo.Client) *MongoBranchRepo {
	return &MongoBranchRepo{DB: db}
}

func (r *MongoBranchRepo) SaveProfile(profile *models.BranchProfile) error {
	ctx := context.Background()

	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}
	_, err := r.DB.Database(mongoDatabase).Collection("branch_profile").InsertOne(ctx, profile)
	return err
}

func (r *MongoBranchRepo) GetProfile() (*models.BranchProfile, error) {
	ctx := context.Background()

	var profile models.BranchProfile
	err := r.DB.Database(mongoDatabase).Collection("branch_profile").
		FindOne(ctx, bson.M{}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
