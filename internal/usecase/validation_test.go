package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plotvista/plotvista/internal/entity"
)

func fieldNames(errs []ValidationError) []string {
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	return fields
}

func TestValidateCreateLeadInput(t *testing.T) {
	valid := CreateLeadInput{
		Name:   "Rajesh Kumar",
		Phone:  "9876543212",
		Source: entity.LeadSourceWebsite,
	}
	assert.Empty(t, ValidateCreateLeadInput(valid))

	t.Run("missing name", func(t *testing.T) {
		input := valid
		input.Name = "  "
		assert.Contains(t, fieldNames(ValidateCreateLeadInput(input)), "name")
	})

	t.Run("short phone", func(t *testing.T) {
		input := valid
		input.Phone = "12345"
		assert.Contains(t, fieldNames(ValidateCreateLeadInput(input)), "phone")
	})

	t.Run("phone with punctuation still counts digits", func(t *testing.T) {
		input := valid
		input.Phone = "+91 98765-43212"
		assert.Empty(t, ValidateCreateLeadInput(input))
	})

	t.Run("bad email", func(t *testing.T) {
		input := valid
		input.Email = "not-an-email"
		assert.Contains(t, fieldNames(ValidateCreateLeadInput(input)), "email")
	})

	t.Run("unknown source", func(t *testing.T) {
		input := valid
		input.Source = "Carrier Pigeon"
		assert.Contains(t, fieldNames(ValidateCreateLeadInput(input)), "source")
	})

	t.Run("unknown rating", func(t *testing.T) {
		input := valid
		input.Rating = "Medium"
		assert.Contains(t, fieldNames(ValidateCreateLeadInput(input)), "rating")
	})

	t.Run("date formats", func(t *testing.T) {
		input := valid
		input.FollowUpDate = "2026-08-28"
		assert.Empty(t, ValidateCreateLeadInput(input))

		input.FollowUpDate = "2026-08-28T10:00:00Z"
		assert.Empty(t, ValidateCreateLeadInput(input))

		input.FollowUpDate = "28/08/2026"
		assert.Contains(t, fieldNames(ValidateCreateLeadInput(input)), "follow_up_date")
	})
}

func TestValidateCreateUserInput(t *testing.T) {
	valid := CreateUserInput{
		Name:     "John Sales",
		Email:    "sales@example.com",
		Password: "password123",
		Role:     entity.RoleSalesperson,
	}
	assert.Empty(t, ValidateCreateUserInput(valid))

	t.Run("short password", func(t *testing.T) {
		input := valid
		input.Password = "12345"
		assert.Contains(t, fieldNames(ValidateCreateUserInput(input)), "password")
	})

	t.Run("unknown role", func(t *testing.T) {
		input := valid
		input.Role = "manager"
		assert.Contains(t, fieldNames(ValidateCreateUserInput(input)), "role")
	})
}

func TestValidateCreateBookingInput(t *testing.T) {
	valid := CreateBookingInput{
		LeadID:      "lead-1",
		PlotID:      "plot-1",
		Amount:      500000,
		Mode:        entity.PaymentModeCash,
		BookingType: entity.BookingTypeToken,
	}
	assert.Empty(t, ValidateCreateBookingInput(valid))

	t.Run("zero amount allowed", func(t *testing.T) {
		input := valid
		input.Amount = 0
		assert.Empty(t, ValidateCreateBookingInput(input))
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		input := valid
		input.Amount = -1
		assert.Contains(t, fieldNames(ValidateCreateBookingInput(input)), "amount")
	})

	t.Run("unknown mode", func(t *testing.T) {
		input := valid
		input.Mode = "Barter"
		assert.Contains(t, fieldNames(ValidateCreateBookingInput(input)), "mode")
	})

	t.Run("unknown booking type", func(t *testing.T) {
		input := valid
		input.BookingType = "Partial"
		assert.Contains(t, fieldNames(ValidateCreateBookingInput(input)), "booking_type")
	})

	t.Run("everything wrong at once reports each field", func(t *testing.T) {
		errs := ValidateCreateBookingInput(CreateBookingInput{Amount: -5})
		fields := fieldNames(errs)
		assert.Contains(t, fields, "lead_id")
		assert.Contains(t, fields, "plot_id")
		assert.Contains(t, fields, "amount")
		assert.Contains(t, fields, "mode")
		assert.Contains(t, fields, "booking_type")
	})
}

func TestValidateCreateProjectInput(t *testing.T) {
	valid := CreateProjectInput{Name: "Green Valley Plots", Location: "Bangalore", TotalPlots: 50}
	assert.Empty(t, ValidateCreateProjectInput(valid))

	input := valid
	input.TotalPlots = 0
	assert.Contains(t, fieldNames(ValidateCreateProjectInput(input)), "total_plots")
}

func TestValidateCreatePlotInput(t *testing.T) {
	valid := CreatePlotInput{ProjectID: "proj-1", PlotNumber: "A-001", Size: "1000 sq.ft", Price: 2000000}
	assert.Empty(t, ValidateCreatePlotInput(valid))

	input := valid
	input.Price = 0
	assert.Contains(t, fieldNames(ValidateCreatePlotInput(input)), "price")

	input = valid
	input.Status = "Reserved"
	assert.Contains(t, fieldNames(ValidateCreatePlotInput(input)), "status")
}

func TestValidateCreateBuyerInterestInput(t *testing.T) {
	valid := CreateBuyerInterestInput{
		PlotID:        "plot-1",
		BuyerName:     "Rajesh Kumar",
		BuyerContact:  "9876543212",
		OfferedPrice:  1900000,
		SalespersonID: "sp-1",
	}
	assert.Empty(t, ValidateCreateBuyerInterestInput(valid))

	input := valid
	input.OfferedPrice = 0
	assert.Contains(t, fieldNames(ValidateCreateBuyerInterestInput(input)), "offered_price")
}

func TestValidateLoginInput(t *testing.T) {
	assert.Empty(t, ValidateLoginInput(LoginInput{Email: "admin@example.com", Password: "password123"}))

	errs := ValidateLoginInput(LoginInput{})
	fields := fieldNames(errs)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}
