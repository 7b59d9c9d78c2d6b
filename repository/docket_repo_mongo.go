package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adarsht2308/dellcube-lms-sub000/models"
)

const mongoDatabase = "dellcube"

type MongoDocketRepo struct {
	DB *mongo.Client
}

func NewMongoDocketRepo(db *mongo.Client) *MongoDocketRepo {
	return &MongoDocketRepo{DB: db}
}

func (r *MongoDocketRepo) database() *mongo.Database {
	return r.DB.Database(mongoDatabase)
}

// nextDocketNumber allocates the next docket sequence value from the counters
// collection and formats the operator-visible number.
func (r *MongoDocketRepo) nextDocketNumber(ctx context.Context, db *mongo.Database) (int64, string, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := db.Collection("counters").FindOneAndUpdate(ctx,
		bson.M{"_id": "docket"},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, "", err
	}
	return counter.Seq, formatDocketNumber(counter.Seq), nil
}

// CreateDocket inserts a docket document with a freshly allocated number.
func (r *MongoDocketRepo) CreateDocket(d *models.Docket) error {
	ctx := context.Background()
	db := r.database()

	id, number, err := r.nextDocketNumber(ctx, db)
	if err != nil {
		return err
	}
	d.ID = id
	d.DocketNumber = number

	_, err = db.Collection("docket").InsertOne(ctx, d)
	return err
}

// GetDocket fetches dockets from MongoDB; single=true fetches one record.
func (r *MongoDocketRepo) GetDocket(filters map[string]interface{}, single bool) ([]*models.Docket, error) {
	ctx := context.Background()
	db := r.database()

	bsonFilter := bson.M{}
	for k, v := range filters {
		if !allowedDocketFilter(k) {
			continue
		}
		bsonFilter[k] = v
	}

	if single {
		var d models.Docket
		err := db.Collection("docket").FindOne(ctx, bsonFilter).Decode(&d)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return []*models.Docket{}, nil
			}
			return nil, err
		}
		return []*models.Docket{&d}, nil
	}

	cur, err := db.Collection("docket").Find(ctx, bsonFilter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Docket
	for cur.Next(ctx) {
		var d models.Docket
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, &d)
	}
	return out, cur.Err()
}

func (r *MongoDocketRepo) GetDocketByNumber(docketNumber string) (*models.Docket, error) {
	ctx := context.Background()

	var d models.Docket
	err := r.database().Collection("docket").
		FindOne(ctx, bson.M{"docket_number": docketNumber}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

// conditionalUpdate applies update only when the stored version still matches
// and returns the new document.
func (r *MongoDocketRepo) conditionalUpdate(docketNumber string, version int64, set bson.M) (*models.Docket, error) {
	ctx := context.Background()
	db := r.database()

	var d models.Docket
	err := db.Collection("docket").FindOneAndUpdate(ctx,
		bson.M{"docket_number": docketNumber, "version": version},
		bson.M{"$set": set, "$inc": bson.M{"version": int64(1)}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&d)
	if err == nil {
		return &d, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	count, err := db.Collection("docket").CountDocuments(ctx, bson.M{"docket_number": docketNumber})
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, models.ErrDocketNotFound
	}
	return nil, models.ErrDocketVersionConflict
}

func (r *MongoDocketRepo) UpdateStatus(docketNumber string, version int64, status models.DocketStatus, updatedAt time.Time) (*models.Docket, error) {
	return r.conditionalUpdate(docketNumber, version, bson.M{
		"status":     status,
		"updated_at": updatedAt,
	})
}

func (r *MongoDocketRepo) UpdateCharges(docketNumber string, version int64, charges models.FreightChargeBreakdown, total float64, updatedAt time.Time) (*models.Docket, error) {
	return r.conditionalUpdate(docketNumber, version, bson.M{
		"freight_charges": charges,
		"total":           total,
		"updated_at":      updatedAt,
	})
}

func (r *MongoDocketRepo) SetDelivered(docketNumber string, version int64, proof *models.DeliveryProof) (*models.Docket, error) {
	return r.conditionalUpdate(docketNumber, version, bson.M{
		"status":         models.StatusDelivered,
		"delivery_proof": proof,
		"delivered_at":   proof.DeliveredAt,
		"updated_at":     proof.DeliveredAt,
	})
}

func (r *MongoDocketRepo) ListForDriver(driverID int64, page, limit int, search string) ([]*models.Docket, int64, error) {
	ctx := context.Background()
	db := r.database()

	filter := bson.M{"driver_id": driverID}
	if search != "" {
		filter["docket_number"] = primitive.Regex{Pattern: search, Options: "i"}
	}

	total, err := db.Collection("docket").CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	cur, err := db.Collection("docket").Find(ctx, filter,
		options.Find().
			SetSort(bson.D{{Key: "created_at", Value: -1}}).
			SetSkip(int64((page-1)*limit)).
			SetLimit(int64(limit)))
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var out []*models.Docket
	for cur.Next(ctx) {
		var d models.Docket
		if err := cur.Decode(&d); err != nil {
			return nil, 0, err
		}
		out = append(out, &d)
	}
	return out, total, cur.Err()
}

func (r *MongoDocketRepo) ListRecent(driverID int64, within time.Duration) ([]*models.Docket, error) {
	ctx := context.Background()

	cutoff := time.Now().UTC().Add(-within)
	cur, err := r.database().Collection("docket").Find(ctx,
		bson.M{"driver_id": driverID, "created_at": bson.M{"$gte": cutoff}},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Docket
	for cur.Next(ctx) {
		var d models.Docket
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, &d)
	}
	return out, cur.Err()
}

func (r *MongoDocketRepo) UpdatePDFInfo(docketNumber string, path string, createdAt time.Time) error {
	ctx := context.Background()
	_, err := r.database().Collection("docket").UpdateOne(ctx,
		bson.M{"docket_number": docketNumber},
		bson.M{"$set": bson.M{"pdf_path": path, "pdf_created_at": createdAt}})
	return err
}
