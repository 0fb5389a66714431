package fields_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/nomadlabs/nomadforms/pkg/fields"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNormalizeRejectsReservedName(t *testing.T) {
	f := fields.Field{Name: fields.ReservedName, Type: fields.TypeText}

	err := fields.Normalize(&f, discard())
	var cfgErr *fields.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected a configuration error, got %v", err)
	}
}

func TestNormalizeRejectsAbstractInput(t *testing.T) {
	f := fields.Field{Name: "raw", Type: fields.TypeInput}

	err := fields.Normalize(&f, discard())
	var cfgErr *fields.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected a configuration error, got %v", err)
	}
}

func TestNormalizeBooleanDefault(t *testing.T) {
	for _, typ := range []fields.Type{fields.TypeCheckbox, fields.TypeRadio, fields.TypeToggle} {
		f := fields.Field{Name: "flag", Type: typ}
		if err := fields.Normalize(&f, discard()); err != nil {
			t.Fatalf("Normalize(%s): %v", typ, err)
		}
		if f.Value != fields.TruthySentinel {
			t.Fatalf("Normalize(%s) value = %v, want %q", typ, f.Value, fields.TruthySentinel)
		}
	}
}

func TestNormalizeKeepsExplicitBooleanValue(t *testing.T) {
	f := fields.Field{Name: "flag", Type: fields.TypeCheckbox, Value: "yes"}
	if err := fields.Normalize(&f, discard()); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if f.Value != "yes" {
		t.Fatalf("value = %v, want %q", f.Value, "yes")
	}
}

func TestNormalizeDegradedFieldsAreNotFatal(t *testing.T) {
	hidden := fields.Field{Name: "token", Type: fields.TypeHidden}
	if err := fields.Normalize(&hidden, discard()); err != nil {
		t.Fatalf("hidden without value should not be fatal: %v", err)
	}

	choice := fields.Field{Name: "color", Type: fields.TypeSelect}
	if err := fields.Normalize(&choice, discard()); err != nil {
		t.Fatalf("select without options should not be fatal: %v", err)
	}
}
