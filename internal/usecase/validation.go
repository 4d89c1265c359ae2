package usecase

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var nonDigits = regexp.MustCompile(`\D`)

func ValidateLoginInput(input LoginInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}
	if input.Password == "" {
		errors = append(errors, ValidationError{"password", "is required"})
	}

	return errors
}

func ValidateCreateUserInput(input CreateUserInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if len(input.Password) < 6 {
		errors = append(errors, ValidationError{"password", "must have at least 6 characters"})
	}

	if !input.Role.Valid() {
		errors = append(errors, ValidationError{"role", "must be admin or salesperson"})
	}

	return errors
}

func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}

	if input.Email != "" {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			errors = append(errors, ValidationError{"email", "is invalid"})
		}
	}

	if !isValidPhoneNumber(input.Phone) {
		errors = append(errors, ValidationError{"phone", "must have at least 10 digits"})
	}

	if !input.Source.Valid() {
		errors = append(errors, ValidationError{"source", "is not a known lead source"})
	}
	if input.Status != "" && !input.Status.Valid() {
		errors = append(errors, ValidationError{"status", "is not a known lead status"})
	}
	if input.Rating != "" && !input.Rating.Valid() {
		errors = append(errors, ValidationError{"rating", "is not a known lead rating"})
	}

	if input.FollowUpDate != "" && !isValidDate(input.FollowUpDate) {
		errors = append(errors, ValidationError{"follow_up_date", "must be a valid date (YYYY-MM-DD)"})
	}

	return errors
}

func ValidateAssignLeadInput(input AssignLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.SalespersonID) == "" {
		errors = append(errors, ValidationError{"salesperson_id", "is required"})
	}

	return errors
}

func ValidateCreateProjectInput(input CreateProjectInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}
	if strings.TrimSpace(input.Location) == "" {
		errors = append(errors, ValidationError{"location", "is required"})
	}
	if input.TotalPlots < 1 {
		errors = append(errors, ValidationError{"total_plots", "must be at least 1"})
	}

	return errors
}

func ValidateCreatePlotInput(input CreatePlotInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.ProjectID) == "" {
		errors = append(errors, ValidationError{"project_id", "is required"})
	}
	if strings.TrimSpace(input.PlotNumber) == "" {
		errors = append(errors, ValidationError{"plot_number", "is required"})
	}
	if strings.TrimSpace(input.Size) == "" {
		errors = append(errors, ValidationError{"size", "is required"})
	}
	if input.Price <= 0 {
		errors = append(errors, ValidationError{"price", "must be positive"})
	}
	if input.Status != "" && !input.Status.Valid() {
		errors = append(errors, ValidationError{"status", "is not a known plot status"})
	}

	return errors
}

func ValidateCreateBookingInput(input CreateBookingInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.LeadID) == "" {
		errors = append(errors, ValidationError{"lead_id", "is required"})
	}
	if strings.TrimSpace(input.PlotID) == "" {
		errors = append(errors, ValidationError{"plot_id", "is required"})
	}
	if input.Amount < 0 {
		errors = append(errors, ValidationError{"amount", "must not be negative"})
	}
	if !input.Mode.Valid() {
		errors = append(errors, ValidationError{"mode", "must be Cash, UPI, Cheque or Bank Transfer"})
	}
	if !input.BookingType.Valid() {
		errors = append(errors, ValidationError{"booking_type", "must be Token or Full"})
	}

	return errors
}

func ValidateCreateBuyerInterestInput(input CreateBuyerInterestInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.PlotID) == "" {
		errors = append(errors, ValidationError{"plot_id", "is required"})
	}
	if strings.TrimSpace(input.BuyerName) == "" {
		errors = append(errors, ValidationError{"buyer_name", "is required"})
	}
	if !isValidPhoneNumber(input.BuyerContact) {
		errors = append(errors, ValidationError{"buyer_contact", "must be a valid phone number"})
	}
	if input.BuyerEmail != "" {
		if _, err := mail.ParseAddress(input.BuyerEmail); err != nil {
			errors = append(errors, ValidationError{"buyer_email", "is invalid"})
		}
	}
	if input.OfferedPrice <= 0 {
		errors = append(errors, ValidationError{"offered_price", "must be positive"})
	}
	if strings.TrimSpace(input.SalespersonID) == "" {
		errors = append(errors, ValidationError{"salesperson_id", "is required"})
	}

	return errors
}

func isValidPhoneNumber(phone string) bool {
	cleaned := nonDigits.ReplaceAllString(phone, "")
	return len(cleaned) >= 10 && len(cleaned) <= 13
}

func isValidDate(dateStr string) bool {
	if _, err := time.Parse("2006-01-02", dateStr); err == nil {
		return true
	}
	if _, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return true
	}
	return false
}

// parseOptionalDate returns nil for an empty string. Callers validate the
// format beforehand.
func parseOptionalDate(dateStr string) *time.Time {
	if dateStr == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", dateStr); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return &t
	}
	return nil
}
