package entity

import (
	"time"

	"github.com/google/uuid"
)

type LeadStatus string

const (
	LeadStatusNew        LeadStatus = "New"
	LeadStatusContacted  LeadStatus = "Contacted"
	LeadStatusInterested LeadStatus = "Interested"
	LeadStatusSiteVisit  LeadStatus = "Site Visit"
	LeadStatusBooked     LeadStatus = "Booked"
	LeadStatusLost       LeadStatus = "Lost"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusInterested,
		LeadStatusSiteVisit, LeadStatusBooked, LeadStatusLost:
		return true
	}
	return false
}

type LeadRating string

const (
	LeadRatingUrgent LeadRating = "Urgent"
	LeadRatingHigh   LeadRating = "High"
	LeadRatingLow    LeadRating = "Low"
)

func (r LeadRating) Valid() bool {
	return r == LeadRatingUrgent || r == LeadRatingHigh || r == LeadRatingLow
}

type LeadSource string

const (
	LeadSourceWebsite   LeadSource = "Website"
	LeadSourceFacebook  LeadSource = "Facebook"
	LeadSourceGoogleAds LeadSource = "Google Ads"
	LeadSourceReferral  LeadSource = "Referral"
	LeadSourceWalkIn    LeadSource = "Walk-in"
	LeadSourceOther     LeadSource = "Other"
)

func (s LeadSource) Valid() bool {
	switch s {
	case LeadSourceWebsite, LeadSourceFacebook, LeadSourceGoogleAds,
		LeadSourceReferral, LeadSourceWalkIn, LeadSourceOther:
		return true
	}
	return false
}

type Lead struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email,omitempty"`
	Phone        string     `json:"phone"`
	Source       LeadSource `json:"source"`
	Status       LeadStatus `json:"status"`
	Rating       LeadRating `json:"rating"`
	AssignedTo   string     `json:"assigned_to,omitempty"` // User.ID, set by admin only
	AssignedBy   string     `json:"assigned_by,omitempty"`
	FollowUpDate *time.Time `json:"follow_up_date,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func NewLead(name, email, phone string, source LeadSource, status LeadStatus, rating LeadRating) *Lead {
	if status == "" {
		status = LeadStatusNew
	}
	if rating == "" {
		rating = LeadRatingHigh
	}
	return &Lead{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Source:    source,
		Status:    status,
		Rating:    rating,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}
