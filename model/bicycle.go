// model/bicycle.go
package model

import "time"

type BicycleStatus string

const (
	BicycleAvailable   BicycleStatus = "available"
	BicycleRented      BicycleStatus = "rented"
	BicycleMaintenance BicycleStatus = "maintenance"
)

type BicycleType string

const (
	TypeMountain BicycleType = "mountain"
	TypeRoad     BicycleType = "road"
	TypeHybrid   BicycleType = "hybrid"
	TypeElectric BicycleType = "electric"
)

type Bicycle struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Type         BicycleType   `json:"type"`
	Description  string        `json:"description"`
	Price        float64       `json:"price"`
	PricePerHour float64       `json:"price_per_hour"`
	PricePerDay  float64       `json:"price_per_day"`
	Status       BicycleStatus `json:"status"`
	Location     string        `json:"location"`
	Image        *string       `json:"image,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
