package main

import (
	"reflect"
	"testing"

	"github.com/ironsheep/image-vault/internal/attach"
)

func TestParseInvocations(t *testing.T) {
	cases := []struct {
		name  string
		specs []string
		want  []attach.Invocation
	}{
		{"none", nil, []attach.Invocation{}},
		{"bare name", []string{"grayscale"}, []attach.Invocation{
			{Name: "grayscale"},
		}},
		{"single arg", []string{"resize=400x300"}, []attach.Invocation{
			{Name: "resize", Args: []string{"400x300"}},
		}},
		{"multiple args", []string{"crop=0,0,100,50"}, []attach.Invocation{
			{Name: "crop", Args: []string{"0", "0", "100", "50"}},
		}},
		{"ordered chain", []string{"resize=200x0", "grayscale", "rotate=90"}, []attach.Invocation{
			{Name: "resize", Args: []string{"200x0"}},
			{Name: "grayscale"},
			{Name: "rotate", Args: []string{"90"}},
		}},
		{"empty arg preserved", []string{"tint="}, []attach.Invocation{
			{Name: "tint", Args: []string{""}},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseInvocations(tc.specs)
			if err != nil {
				t.Fatalf("parseInvocations(%v): %v", tc.specs, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("parseInvocations(%v) = %v, want %v", tc.specs, got, tc.want)
			}
		})
	}
}

func TestParseInvocationsRejectsEmptyName(t *testing.T) {
	for _, spec := range []string{"", "=400x300"} {
		if _, err := parseInvocations([]string{spec}); err == nil {
			t.Errorf("parseInvocations(%q) accepted empty operator name", spec)
		}
	}
}
