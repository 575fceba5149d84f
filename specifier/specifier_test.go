/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"slices"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec    string
		kind    Kind
		pkg     string
		file    string
		command []string
	}{
		{"npm:@rhds/typography/settings.json", KindNPM, "@rhds/typography", "settings.json", nil},
		{"npm:typescale-presets/a/b.yaml", KindNPM, "typescale-presets", "a/b.yaml", nil},
		{"npm:pkg", KindNPM, "pkg", "", nil},
		{"./typography.yaml", KindLocal, "", "./typography.yaml", nil},
		{"/abs/typography.json", KindLocal, "", "/abs/typography.json", nil},
		{"https://example.com/t.json", KindURL, "", "", nil},
		{"http://localhost:8080/t.json", KindURL, "", "", nil},
		{"exec:deno run settings.ts", KindExec, "", "", []string{"deno", "run", "settings.ts"}},
		{`exec:deno run "my settings.ts" --flag='a b'`, KindExec, "", "", []string{"deno", "run", "my settings.ts", "--flag=a b"}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			s, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", s.Kind, tt.kind)
			}
			if s.Package != tt.pkg {
				t.Errorf("Package = %q, want %q", s.Package, tt.pkg)
			}
			if s.File != tt.file {
				t.Errorf("File = %q, want %q", s.File, tt.file)
			}
			if !slices.Equal(s.Command, tt.command) {
				t.Errorf("Command = %q, want %q", s.Command, tt.command)
			}
			if s.Raw != tt.spec {
				t.Errorf("Raw = %q, want %q", s.Raw, tt.spec)
			}
			if KindOf(tt.spec) != tt.kind {
				t.Errorf("KindOf(%q) = %v, want %v", tt.spec, KindOf(tt.spec), tt.kind)
			}
		})
	}
}

func TestParse_InvalidCommand(t *testing.T) {
	for _, spec := range []string{"exec:", "exec:   ", `exec:deno run "unterminated`} {
		if _, err := Parse(spec); err == nil {
			t.Errorf("Parse(%q) expected error", spec)
		}
	}
}

func TestSpecifier_IsRemote(t *testing.T) {
	tests := map[string]bool{
		"typography.yaml":      false,
		"npm:pkg/t.json":       false,
		"https://x.dev/t.json": true,
		"exec:cat t.json":      true,
	}
	for spec, want := range tests {
		s, err := Parse(spec)
		if err != nil {
			t.Fatalf("Parse(%q): %v", spec, err)
		}
		if s.IsRemote() != want {
			t.Errorf("IsRemote(%q) = %v, want %v", spec, s.IsRemote(), want)
		}
		if s.IsLocal() != (s.Kind == KindLocal) {
			t.Errorf("IsLocal(%q) inconsistent with Kind %v", spec, s.Kind)
		}
	}
}
