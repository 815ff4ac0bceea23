package models

import "github.com/shopspring/decimal"

// CylinderType is the kind of LPG cylinder. Each type has one fixed capacity.
type CylinderType string

const (
	CylinderCommercial CylinderType = "COMMERCIAL"
	CylinderDomestic   CylinderType = "DOMESTIC"
)

// fixed capacities in kg
var cylinderCapacity = map[CylinderType]float64{
	CylinderCommercial: 18.5,
	CylinderDomestic:   14.5,
}

// Capacity returns the fixed capacity of the type and whether the type is known.
func (t CylinderType) Capacity() (float64, bool) {
	c, ok := cylinderCapacity[t]
	return c, ok
}

func (t CylinderType) Valid() bool {
	_, ok := cylinderCapacity[t]
	return ok
}

// Matches reports whether weight is the fixed capacity of t.
func (t CylinderType) Matches(weight float64) bool {
	c, ok := cylinderCapacity[t]
	return ok && c == weight
}

// Cylinder is a stock-keeping unit identified by (type, weight).
type Cylinder struct {
	ID            uint            `gorm:"primaryKey"`
	Type          CylinderType    `gorm:"size:32;not null;uniqueIndex:idx_cylinder_type_weight"`
	Weight        float64         `gorm:"not null;uniqueIndex:idx_cylinder_type_weight"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	StockQuantity int             `gorm:"not null;default:0"`
}

func (Cylinder) TableName() string { return "lpg_cylinders" }
