package models

import "time"

// Product represents a computer-hardware product in the catalog.
// The ID is assigned by the database on insert and never changes.
type Product struct {
	ID                  uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name                string    `json:"name" gorm:"uniqueIndex;type:varchar(255)" validate:"required"`
	Description         string    `json:"description"`
	Price               float64   `json:"price" validate:"gt=0"`
	ImageURL            string    `json:"imageUrl" validate:"omitempty,url"`
	Brand               string    `json:"brand"`
	Model               string    `json:"model"`
	Processor           string    `json:"processor"`
	ProcessorGeneration string    `json:"processorGeneration"`
	Ram                 string    `json:"ram"`
	StorageType         string    `json:"storageType"`
	StorageCapacity     string    `json:"storageCapacity"`
	GraphicsCard        string    `json:"graphicsCard"`
	OperatingSystem     string    `json:"operatingSystem"`
	DisplaySize         string    `json:"displaySize"`
	DisplayResolution   string    `json:"displayResolution"`
	IsTouchscreen       bool      `json:"isTouchscreen"`
	HasOpticalDrive     bool      `json:"hasOpticalDrive"`
	Connectivity        string    `json:"connectivity"`
	Weight              float64   `json:"weight" validate:"gt=0"`
	ReleaseDate         time.Time `json:"releaseDate"`
}
