package entity

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	TotalPlots  int       `json:"total_plots"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewProject(name, location string, totalPlots int, description string) *Project {
	return &Project{
		ID:          uuid.New().String(),
		Name:        name,
		Location:    location,
		TotalPlots:  totalPlots,
		Description: description,
		CreatedAt:   time.Now(),
	}
}
