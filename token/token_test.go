/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token_test

import (
	"errors"
	"testing"

	"bennypowers.dev/typescale/token"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    token.Token
		wantErr bool
	}{
		{name: "kind", input: "text", want: token.Kind("text")},
		{name: "value", input: "size:lg", want: token.Value("size", "lg")},
		{name: "numeric value", input: "weight:700", want: token.Value("weight", "700")},
		{name: "empty", input: "", wantErr: true},
		{name: "missing key", input: ":x", wantErr: true},
		{name: "missing value", input: "x:", wantErr: true},
		{name: "two separators", input: "a:b:c", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := token.Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %v", tt.input, got)
				}
				if !errors.Is(err, token.ErrParse) {
					t.Errorf("Parse(%q) error = %v, want ErrParse", tt.input, err)
				}
				var pe *token.ParseError
				if !errors.As(err, &pe) || pe.Input != tt.input {
					t.Errorf("Parse(%q) ParseError.Input = %v, want %q", tt.input, pe, tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got.String() != tt.input {
				t.Errorf("Parse(%q).String() = %q", tt.input, got.String())
			}
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr string
	}{
		{name: "blank", input: "   ", want: []string{}},
		{name: "empty", input: "", want: []string{}},
		{name: "spaces", input: "text role:ui size:lg", want: []string{"text", "role:ui", "size:lg"}},
		{name: "commas", input: "role:ui,size:lg", want: []string{"role:ui", "size:lg"}},
		{name: "mixed", input: " role:ui ,\tsize:lg\n", want: []string{"role:ui", "size:lg"}},
		{name: "bad token reports substring", input: "role:ui a:b:c", wantErr: "a:b:c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := token.Split(tt.input)
			if tt.wantErr != "" {
				var pe *token.ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("Split(%q) error = %v, want ParseError", tt.input, err)
				}
				if pe.Input != tt.wantErr {
					t.Errorf("ParseError.Input = %q, want %q", pe.Input, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Split(%q) unexpected error: %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Split(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i].String() != tt.want[i] {
					t.Errorf("Split(%q)[%d] = %v, want %v", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}
