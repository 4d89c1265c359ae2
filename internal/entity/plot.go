package entity

import (
	"time"

	"github.com/google/uuid"
)

type PlotStatus string

const (
	PlotStatusAvailable PlotStatus = "Available"
	PlotStatusBooked    PlotStatus = "Booked"
	PlotStatusHold      PlotStatus = "Hold"
	PlotStatusSold      PlotStatus = "Sold"
)

func (s PlotStatus) Valid() bool {
	switch s {
	case PlotStatusAvailable, PlotStatusBooked, PlotStatusHold, PlotStatusSold:
		return true
	}
	return false
}

// Bookable reports whether a plot in this status may still be booked.
func (s PlotStatus) Bookable() bool {
	return s == PlotStatusAvailable || s == PlotStatusHold
}

type Plot struct {
	ID         string     `json:"id"`
	ProjectID  string     `json:"project_id"`
	PlotNumber string     `json:"plot_number"` // unique within a project
	Size       string     `json:"size"`
	Price      int64      `json:"price"`
	Facing     string     `json:"facing,omitempty"`
	Status     PlotStatus `json:"status"`
	BookedBy   string     `json:"booked_by,omitempty"` // Lead.ID once Booked/Sold
	Category   string     `json:"category,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func NewPlot(projectID, plotNumber, size string, price int64, facing string, status PlotStatus, category string) *Plot {
	if status == "" {
		status = PlotStatusAvailable
	}
	return &Plot{
		ID:         uuid.New().String(),
		ProjectID:  projectID,
		PlotNumber: plotNumber,
		Size:       size,
		Price:      price,
		Facing:     facing,
		Status:     status,
		Category:   category,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}
