/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"slices"
	"testing"
	"time"

	"bennypowers.dev/typescale/internal/mapfs"
	"bennypowers.dev/typescale/specifier"
	"bennypowers.dev/typescale/testutil"
)

func TestLoad_SimpleYAML(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/simple", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	want := []string{"./typography.yaml", "npm:@rhds/typography/settings.json", "exec:deno run -A settings.ts"}
	if got := cfg.InputPaths(); !slices.Equal(got, want) {
		t.Errorf("InputPaths() = %v, want %v", got, want)
	}

	if len(cfg.Outputs) != 2 {
		t.Fatalf("expected 2 outputs, got %d", len(cfg.Outputs))
	}
	if cfg.Outputs[1].Format != "figma" || cfg.Outputs[1].Path != "dist/figma.json" {
		t.Errorf("unexpected output: %+v", cfg.Outputs[1])
	}

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		t.Fatalf("unexpected timeout error: %v", err)
	}
	if timeout != 45*time.Second {
		t.Errorf("TimeoutDuration() = %v, want 45s", timeout)
	}

	if cfg.QueryKind() != "type" {
		t.Errorf("QueryKind() = %q, want %q", cfg.QueryKind(), "type")
	}
}

func TestLoad_JSONWithComments(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/json", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	want := []string{"typography.json", "https://example.com/typography.json"}
	if got := cfg.InputPaths(); !slices.Equal(got, want) {
		t.Errorf("InputPaths() = %v, want %v", got, want)
	}
	if cfg.Prefix != "font" {
		t.Errorf("Prefix = %q, want %q", cfg.Prefix, "font")
	}
	if cfg.Outputs[0].Prefix != "type" {
		t.Errorf("output Prefix = %q, want %q", cfg.Outputs[0].Prefix, "type")
	}
	if cfg.QueryKind() != DefaultQueryKind {
		t.Errorf("QueryKind() = %q, want default %q", cfg.QueryKind(), DefaultQueryKind)
	}
}

func TestLoad_NotFound(t *testing.T) {
	cfg, err := Load(mapfs.New(), "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config, got %+v", cfg)
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/bad-timeout", "/project")

	if _, err := Load(mfs, "/project"); err == nil {
		t.Fatal("expected error for invalid timeout")
	}
	cfg := LoadOrDefault(mfs, "/project")
	if cfg.QueryKind() != DefaultQueryKind || len(cfg.Inputs) != 0 {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestConfig_ExpandInputs(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/globs", "/project")
	cfg := LoadOrDefault(mfs, "/project")

	got, err := cfg.ExpandInputs(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"/project/settings/brand/typography.yaml",
		"/project/settings/product/typography.yaml",
		"npm:presets/base.yaml",
	}
	if !slices.Equal(got, want) {
		t.Errorf("ExpandInputs() = %v, want %v", got, want)
	}
}

func TestConfig_ResolveInputs(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/simple", "/project")
	mfs.AddFile("/project/node_modules/@rhds/typography/settings.json", `{}`, 0644)
	cfg := LoadOrDefault(mfs, "/project")

	resolved, err := cfg.ResolveInputs(specifier.NewDefaultResolver(mfs, "/project"), mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resolved) != 3 {
		t.Fatalf("expected 3 inputs, got %d", len(resolved))
	}

	kinds := []specifier.Kind{specifier.KindLocal, specifier.KindNPM, specifier.KindExec}
	for i, rf := range resolved {
		if rf.Kind != kinds[i] {
			t.Errorf("input %d Kind = %v, want %v", i, rf.Kind, kinds[i])
		}
	}
	if resolved[0].Path != "/project/typography.yaml" {
		t.Errorf("local Path = %q", resolved[0].Path)
	}
	if resolved[2].Path != "/project" {
		t.Errorf("exec working dir = %q, want /project", resolved[2].Path)
	}
}

func TestInputSpec_ObjectForm(t *testing.T) {
	var spec InputSpec
	if err := spec.UnmarshalJSON([]byte(`{"path": "a.yaml"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Path != "a.yaml" {
		t.Errorf("Path = %q, want a.yaml", spec.Path)
	}
}
