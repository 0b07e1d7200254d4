package payments

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platforme-educatif/app/models"
)

func validConfigRequest() ConfigurationRequest {
	return ConfigurationRequest{
		AcademicYearID: "3f9f6f4e-8b7a-4f5c-9a1d-2e3b4c5d6e7f",
		Amounts:        models.ClassGroupAmounts{Ecole: 500, College: 700, Lycee: 900},
		StartMonth:     9,
		EndMonth:       5,
	}
}

func TestValidateConfigurationAccepts(t *testing.T) {
	req := validConfigRequest()
	assert.NoError(t, validateConfiguration(&req))

	req.Discount = models.AnnualDiscount{Enabled: true, Percentage: 10}
	assert.NoError(t, validateConfiguration(&req))
}

func TestValidateConfigurationRejectsBadMonths(t *testing.T) {
	req := validConfigRequest()
	req.StartMonth = 0
	err := validateConfiguration(&req)
	require.Error(t, err)
	ferr, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, ferr.Code)
}

func TestValidateConfigurationRejectsExclusiveDiscount(t *testing.T) {
	req := validConfigRequest()
	req.Discount = models.AnnualDiscount{Enabled: true, Percentage: 10, Amount: 50}
	err := validateConfiguration(&req)
	require.Error(t, err)
	ferr, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, ferr.Code)
}

func TestValidateConfigurationRejectsMissingYear(t *testing.T) {
	req := validConfigRequest()
	req.AcademicYearID = ""
	assert.Error(t, validateConfiguration(&req))
}

func TestRecordRequestValidation(t *testing.T) {
	cases := []struct {
		name string
		req  RecordRequest
		ok   bool
	}{
		{"valid", RecordRequest{Component: "tuition", Amount: 100, PaymentMethod: "cash"}, true},
		{"bad component", RecordRequest{Component: "library", Amount: 100, PaymentMethod: "cash"}, false},
		{"zero amount", RecordRequest{Component: "tuition", Amount: 0, PaymentMethod: "cash"}, false},
		{"bad method", RecordRequest{Component: "tuition", Amount: 100, PaymentMethod: "barter"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate.Struct(tc.req)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
