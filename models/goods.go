package models

// GoodsType is a catalog entry describing the kind of cargo on a docket.
type GoodsType struct {
	ID    int64    `json:"id" bson:"_id,omitempty" db:"id"`
	Name  string   `json:"name" bson:"name" db:"name"`
	Items []string `json:"items" bson:"items"`
}
