package fields_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nomadlabs/nomadforms/pkg/fields"
)

func TestIsEmptyValue(t *testing.T) {
	cases := []struct {
		value any
		empty bool
	}{
		{nil, true},
		{"", true},
		{[]string{}, true},
		{"0", false},
		{"x", false},
		{[]string{""}, false},
	}

	for _, tc := range cases {
		if got := fields.IsEmptyValue(tc.value); got != tc.empty {
			t.Fatalf("IsEmptyValue(%#v) = %v, want %v", tc.value, got, tc.empty)
		}
	}
}

func TestEffectiveValue(t *testing.T) {
	f := fields.Field{Value: "v", Default: "d"}
	if got := f.EffectiveValue(); got != "v" {
		t.Fatalf("EffectiveValue = %v, want v", got)
	}

	f = fields.Field{Default: "d"}
	if got := f.EffectiveValue(); got != "d" {
		t.Fatalf("EffectiveValue = %v, want d", got)
	}

	f = fields.Field{}
	if got := f.EffectiveValue(); got != nil {
		t.Fatalf("EffectiveValue = %v, want nil", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	original := fields.Field{
		Name:            "days",
		Type:            fields.TypeCheckboxes,
		Value:           []string{"mon"},
		Options:         fields.Options{fields.Opt("mon", "Monday")},
		DisabledOptions: []string{"tue"},
		Validate:        []string{"required"},
		ErrorMessages:   map[string]string{"required": "pick a day"},
		Attrs:           map[string]string{"size": "3"},
	}

	clone := original.Clone()
	clone.Options[0] = fields.Opt("sun", "Sunday")
	clone.DisabledOptions[0] = "wed"
	clone.Validate[0] = "numeric"
	clone.ErrorMessages["required"] = "changed"
	clone.Attrs["size"] = "9"
	if slice, ok := clone.Value.([]string); ok {
		slice[0] = "fri"
	}

	if original.Options[0].Value != "mon" {
		t.Fatalf("options were shared with the clone")
	}
	if original.DisabledOptions[0] != "tue" {
		t.Fatalf("disabled options were shared with the clone")
	}
	if original.Validate[0] != "required" {
		t.Fatalf("rules were shared with the clone")
	}
	if original.ErrorMessages["required"] != "pick a day" {
		t.Fatalf("error messages were shared with the clone")
	}
	if original.Attrs["size"] != "3" {
		t.Fatalf("attrs were shared with the clone")
	}
	if diff := cmp.Diff([]string{"mon"}, original.Value); diff != "" {
		t.Fatalf("value was shared with the clone (-want +got):\n%s", diff)
	}
}

func TestOptionsKeys(t *testing.T) {
	options := fields.Options{fields.Opt("a", "A"), fields.Opt("b", "B")}
	if diff := cmp.Diff([]string{"a", "b"}, options.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if !options.Contains("b") || options.Contains("c") {
		t.Fatalf("unexpected membership results")
	}
}
