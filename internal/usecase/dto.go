package usecase

import "github.com/plotvista/plotvista/internal/entity"

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthUser struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  entity.Role `json:"role"`
}

type AuthOutput struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

type CreateUserInput struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     entity.Role `json:"role"`
	Phone    string      `json:"phone,omitempty"`
}

type CreateLeadInput struct {
	Name         string            `json:"name"`
	Email        string            `json:"email,omitempty"`
	Phone        string            `json:"phone"`
	Source       entity.LeadSource `json:"source"`
	Status       entity.LeadStatus `json:"status,omitempty"`
	Rating       entity.LeadRating `json:"rating,omitempty"`
	AssignedTo   string            `json:"assigned_to,omitempty"`
	FollowUpDate string            `json:"follow_up_date,omitempty"` // YYYY-MM-DD or RFC3339
	Notes        string            `json:"notes,omitempty"`
}

type AssignLeadInput struct {
	SalespersonID string `json:"salesperson_id"`
}

type CreateProjectInput struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	TotalPlots  int    `json:"total_plots"`
	Description string `json:"description,omitempty"`
}

type CreatePlotInput struct {
	ProjectID  string            `json:"project_id"`
	PlotNumber string            `json:"plot_number"`
	Size       string            `json:"size"`
	Price      int64             `json:"price"`
	Facing     string            `json:"facing,omitempty"`
	Status     entity.PlotStatus `json:"status,omitempty"`
	Category   string            `json:"category,omitempty"`
}

type CreateBookingInput struct {
	LeadID        string             `json:"lead_id"`
	PlotID        string             `json:"plot_id"`
	Amount        int64              `json:"amount"`
	Mode          entity.PaymentMode `json:"mode"`
	BookingType   entity.BookingType `json:"booking_type"`
	TransactionID string             `json:"transaction_id,omitempty"`
	Notes         string             `json:"notes,omitempty"`
}

type CreateBuyerInterestInput struct {
	PlotID        string `json:"plot_id"`
	BuyerName     string `json:"buyer_name"`
	BuyerContact  string `json:"buyer_contact"`
	BuyerEmail    string `json:"buyer_email,omitempty"`
	OfferedPrice  int64  `json:"offered_price"`
	SalespersonID string `json:"salesperson_id"`
	Notes         string `json:"notes,omitempty"`
}

type DashboardStats struct {
	TotalLeads      int   `json:"total_leads"`
	ConvertedLeads  int   `json:"converted_leads"`
	LostLeads       int   `json:"lost_leads"`
	UnassignedLeads int   `json:"unassigned_leads"`
	TotalProjects   int   `json:"total_projects"`
	TotalPlots      int   `json:"total_plots"`
	AvailablePlots  int   `json:"available_plots"`
	BookedPlots     int   `json:"booked_plots"` // Booked + Sold
	TotalRevenue    int64 `json:"total_revenue"`
	TodayFollowUps  int   `json:"today_follow_ups"`
}

type SalespersonStats struct {
	AssignedLeads  int   `json:"assigned_leads"`
	TodayFollowUps int   `json:"today_follow_ups"`
	ConvertedLeads int   `json:"converted_leads"`
	TotalRevenue   int64 `json:"total_revenue"`
}

type SalespersonRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type PlotOverview struct {
	entity.Plot
	BuyerInterestCount int                     `json:"buyer_interest_count"`
	HighestOffer       int64                   `json:"highest_offer"`
	Salespersons       []SalespersonRef        `json:"salespersons"`
	BuyerInterests     []*entity.BuyerInterest `json:"buyer_interests"`
}

type ProjectOverview struct {
	entity.Project
	TotalPlots            int            `json:"total_plots"`
	AvailablePlots        int            `json:"available_plots"`
	BookedPlots           int            `json:"booked_plots"`
	SoldPlots             int            `json:"sold_plots"`
	TotalInterestedBuyers int            `json:"total_interested_buyers"`
	Plots                 []PlotOverview `json:"plots"`
}

type PlotStats struct {
	TotalInterestedBuyers int                     `json:"total_interested_buyers"`
	AverageOfferedPrice   float64                 `json:"average_offered_price"`
	HighestOffer          int64                   `json:"highest_offer"`
	BuyerInterests        []*entity.BuyerInterest `json:"buyer_interests"`
}
