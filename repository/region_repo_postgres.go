package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/adarsht2308/dellcube-lms-sub000/models"
)

// PostgresRegionRepo resolves region reference IDs against the region master
// tables maintained by the back-office CRUD (outside this core).
type PostgresRegionRepo struct {
	DB *sql.DB
}

func NewPostgresRegionRepo(db *sql.DB) *PostgresRegionRepo {
	return &PostgresRegionRepo{DB: db}
}

func (r *PostgresRegionRepo) lookupName(table string, id *int64) (string, error) {
	if id == nil {
		return "", nil
	}
	var name string
	err := r.DB.QueryRow(
		fmt.Sprintf(`SELECT name FROM %s WHERE id=$1 AND active`, table), *id,
	).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", models.ResolverUnavailableError(err)
	}
	return name, nil
}

func (r *PostgresRegionRepo) Resolve(addr models.DocketAddress) (*models.ResolvedRegion, error) {
	resolved := &models.ResolvedRegion{}
	var err error
	if resolved.Country, err = r.lookupName("countries", addr.CountryID); err != nil {
		return nil, err
	}
	if resolved.State, err = r.lookupName("states", addr.StateID); err != nil {
		return nil, err
	}
	if resolved.City, err = r.lookupName("cities", addr.CityID); err != nil {
		return nil, err
	}
	if resolved.Locality, err = r.lookupName("localities", addr.LocalityID); err != nil {
		return nil, err
	}
	if resolved.Pincode, err = r.lookupName("pincodes", addr.PincodeID); err != nil {
		return nil, err
	}
	return resolved, nil
}

type PostgresGoodsTypeRepo struct {
	DB *sql.DB
}

func NewPostgresGoodsTypeRepo(db *sql.DB) *PostgresGoodsTypeRepo {
	return &PostgresGoodsTypeRepo{DB: db}
}

func (r *PostgresGoodsTypeRepo) GetGoodsType(id int64) (*models.GoodsType, error) {
	g := &models.GoodsType{}
	err := r.DB.QueryRow(`SELECT id, name FROM goods_type WHERE id=$1`, id).Scan(&g.ID, &g.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrGoodsTypeNotFound
		}
		return nil, err
	}

	rows, err := r.DB.Query(`SELECT label FROM goods_type_item WHERE goods_type_id=$1 ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, err
		}
		g.Items = append(g.Items, label)
	}
	return g, rows.Err()
}
