package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/adarsht2308/dellcube-lms-sub000/models"
)

// MongoRegionRepo resolves region reference IDs against the region master
// collections maintained by the back-office CRUD (outside this core).
type MongoRegionRepo struct {
	DB *mongo.Client
}

func NewMongoRegionRepo(db *mongo.Client) *MongoRegionRepo {
	return &MongoRegionRepo{DB: db}
}

func (r *MongoRegionRepo) lookupName(ctx context.Context, collection string, id *int64) (string, error) {
	if id == nil {
		return "", nil
	}
	var doc struct {
		Name string `bson:"name"`
	}
	err := r.DB.Database(mongoDatabase).Collection(collection).
		FindOne(ctx, bson.M{"_id": *id, "active": true}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil
		}
		return "", models.ResolverUnavailableError(err)
	}
	return doc.Name, nil
}

func (r *MongoRegionRepo) Resolve(addr models.DocketAddress) (*models.ResolvedRegion, error) {
	ctx := context.Background()

	resolved := &models.ResolvedRegion{}
	var err error
	if resolved.Country, err = r.lookupName(ctx, "countries", addr.CountryID); err != nil {
		return nil, err
	}
	if resolved.State, err = r.lookupName(ctx, "states", addr.StateID); err != nil {
		return nil, err
	}
	if resolved.City, err = r.lookupName(ctx, "cities", addr.CityID); err != nil {
		return nil, err
	}
	if resolved.Locality, err = r.lookupName(ctx, "localities", addr.LocalityID); err != nil {
		return nil, err
	}
	if resolved.Pincode, err = r.lookupName(ctx, "pincodes", addr.PincodeID); err != nil {
		return nil, err
	}
	return resolved, nil
}

type MongoGoodsTypeRepo struct {
	DB *mongo.Client
}

func NewMongoGoodsTypeRepo(db *mongo.Client) *MongoGoodsTypeRepo {
	return &MongoGoodsTypeRepo{DB: db}
}

func (r *MongoGoodsTypeRepo) GetGoodsType(id int64) (*models.GoodsType, error) {
	ctx := context.Background()

	var g models.GoodsType
	err := r.DB.Database(mongoDatabase).Collection("goods_type").
		FindOne(ctx, bson.M{"_id": id}).Decode(&g)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrGoodsTypeNotFound
		}
		return nil, err
	}
	return &g, nil
}
