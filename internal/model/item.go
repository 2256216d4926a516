package model

import (
	"math"
	"time"
)

// Item — серверная модель позиции каталога.
type Item struct {
	ID       string  `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name     string  `gorm:"not null;index" json:"name"`
	Category string  `gorm:"not null;index" json:"category"`
	Price    float64 `gorm:"type:numeric(10,2);not null" json:"price"`
	Favorite bool    `gorm:"not null;default:false;index" json:"favorite"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// MaxPrice — первое значение, которое не помещается в numeric(10,2).
const MaxPrice = 1e8

// RoundPrice приводит цену к двум знакам после запятой (как numeric(10,2)).
func RoundPrice(p float64) float64 {
	return math.Round(p*100) / 100
}
