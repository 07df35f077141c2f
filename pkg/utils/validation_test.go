package utils

import (
	"strings"
	"testing"
)

type sampleRequest struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
}

func TestValidateStruct_Valid(t *testing.T) {
	errs := ValidateStruct(&sampleRequest{Name: "laptop", Email: "a@b.com"})
	if errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateStruct_FieldMessages(t *testing.T) {
	errs := ValidateStruct(&sampleRequest{Email: "not-an-email"})
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs)
	}
	if errs["Name"] != "This field is required" {
		t.Fatalf("unexpected Name message: %q", errs["Name"])
	}
	if errs["Email"] != "Invalid email format" {
		t.Fatalf("unexpected Email message: %q", errs["Email"])
	}
}

func TestFormatValidationErrors(t *testing.T) {
	out := FormatValidationErrors(map[string]string{"Name": "This field is required"})
	if !strings.Contains(out, "Name: This field is required") {
		t.Fatalf("unexpected formatted output: %q", out)
	}
}
