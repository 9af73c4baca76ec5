package review

import (
	"errors"
	"testing"
)

func TestValidationErrorFields(t *testing.T) {
	errs := Errors{}
	errs.Add(FieldTitle, "too long")
	errs.Add(FieldBase, "duplicate")

	err := errs.Err()
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}

	var fields interface{ FieldErrors() map[string][]string }
	if !errors.As(err, &fields) {
		t.Fatalf("%T does not expose field errors", err)
	}
	got := fields.FieldErrors()
	if len(got) != 2 || got[FieldTitle][0] != "too long" || got[FieldBase][0] != "duplicate" {
		t.Errorf("FieldErrors() = %v", got)
	}

	if (Errors{}).Err() != nil {
		t.Error("empty Errors should not produce an error")
	}
}
