package validator

import "testing"

type sampleRequest struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
}

func TestValidate_Passes(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{Name: "a", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MissingAndMalformedFields(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{Email: "not-an-email"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	errs := cv.FormatValidationErrors(err)
	if errs["Name"] != "Name is required" {
		t.Errorf("unexpected message for Name: %q", errs["Name"])
	}
	if errs["Email"] != "Email must be a valid email address" {
		t.Errorf("unexpected message for Email: %q", errs["Email"])
	}
}
