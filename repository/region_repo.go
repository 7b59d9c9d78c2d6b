package repository

import "github.com/adarsht2308/dellcube-lms-sub000/models"

// RegionResolver looks up display names for the region references embedded in
// a docket address. Region master data is owned elsewhere; the docket core
// only ever reads it, lazily, at document-assembly time.
type RegionResolver interface {
	Resolve(addr models.DocketAddress) (*models.ResolvedRegion, error)
}

// GoodsTypeRepository reads the goods catalog referenced by dockets.
type GoodsTypeRepository interface {
	GetGoodsType(id int64) (*models.GoodsType, error)
}
