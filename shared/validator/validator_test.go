package validator_test

import (
	"strings"
	"testing"

	"orchid/shared/validator"
)

// Test structs for validation
type ValidTestStruct struct {
	Name     string `validate:"required" json:"name"`
	Email    string `validate:"required,email" json:"email"`
	Nights   int    `validate:"gte=1,lte=365" json:"nights"`
	Category string `validate:"oneof=Starter Main Dessert Beverage" json:"category"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *ValidTestStruct
		expectError bool
	}{
		{
			name: "valid struct",
			data: &ValidTestStruct{
				Name:     "Jane Smith",
				Email:    "jane@example.com",
				Nights:   3,
				Category: "Main",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &ValidTestStruct{
				Email:    "jane@example.com",
				Nights:   3,
				Category: "Main",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &ValidTestStruct{
				Name:     "Jane Smith",
				Email:    "invalid-email",
				Nights:   3,
				Category: "Main",
			},
			expectError: true,
		},
		{
			name: "nights below range",
			data: &ValidTestStruct{
				Name:     "Jane Smith",
				Email:    "jane@example.com",
				Nights:   0,
				Category: "Main",
			},
			expectError: true,
		},
		{
			name: "invalid category",
			data: &ValidTestStruct{
				Name:     "Jane Smith",
				Email:    "jane@example.com",
				Nights:   3,
				Category: "Breakfast",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidate_DecodesAndValidates(t *testing.T) {
	body := strings.NewReader(`{"name":"Jane Smith","email":"jane@example.com","nights":3,"category":"Main"}`)

	data := ValidTestStruct{}
	if err := validator.Validate(body, &data); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if data.Name != "Jane Smith" {
		t.Errorf("expected name to be 'Jane Smith', got %s", data.Name)
	}
}

func TestValidate_InvalidJSON(t *testing.T) {
	body := strings.NewReader(`{"name":`)

	data := ValidTestStruct{}
	if err := validator.Validate(body, &data); err == nil {
		t.Error("expected decode error, got nil")
	}
}

func TestValidate_MessageTemplating(t *testing.T) {
	body := strings.NewReader(`{"email":"jane@example.com","nights":3,"category":"Main"}`)

	data := ValidTestStruct{}
	err := validator.Validate(body, &data)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}

	if !strings.Contains(err.Error(), "Name is required") {
		t.Errorf("expected templated message, got %s", err.Error())
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("jane@example.com", "email"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if err := validator.ValidateVar("not-an-email", "email"); err == nil {
		t.Error("expected validation error, got nil")
	}
}
