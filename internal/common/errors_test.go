package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationErrors_WrapErrorValidation(t *testing.T) {
	for _, err := range []error{
		ErrorNoEmail,
		ErrorInvalidFilename,
		ErrorInvalidPrice,
		ErrorInvalidTime,
		ErrorEmptyName,
		ErrorNoOwner,
	} {
		if !errors.Is(err, ErrorValidation) {
			t.Fatalf("%v does not wrap ErrorValidation", err)
		}
	}
}

func TestErrorNoEmail_SurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("error creating account: %w", ErrorNoEmail)
	if !errors.Is(err, ErrorNoEmail) {
		t.Fatalf("expected ErrorNoEmail in chain, got %v", err)
	}
	if errors.Is(err, ErrorAlreadyExists) {
		t.Fatalf("unexpected ErrorAlreadyExists in chain")
	}
}
