/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package pipeline_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/typescale/cmd/internal/pipeline"
	"bennypowers.dev/typescale/load"
	"bennypowers.dev/typescale/testutil"
)

func TestRun_ExplicitInput(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/input/basic", "/project")

	res, err := pipeline.Run(t.Context(), pipeline.Options{
		Root:   "/project",
		FS:     mfs,
		Inputs: []string{"typography.yaml"},
	})
	require.NoError(t, err)
	assert.Positive(t, res.Lookup.Len())
	assert.Equal(t, "text", res.FormatterOptions().QueryKind)
	assert.Empty(t, res.FormatterOptions().Prefix)
}

func TestRun_ConfigSuppliesInputsAndOptions(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/input/basic", "/project")
	mfs.AddFile("/project/.config/typescale.yaml", "inputs:\n  - typography.json\nprefix: font\nfigma:\n  queryKind: type\n", 0644)

	res, err := pipeline.Run(t.Context(), pipeline.Options{Root: "/project", FS: mfs})
	require.NoError(t, err)
	assert.Len(t, res.Input.Families, 2)
	opts := res.FormatterOptions()
	assert.Equal(t, "type", opts.QueryKind)
	assert.Equal(t, "font", opts.Prefix)
}

func TestRun_NoInputs(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/input/basic", "/project")

	_, err := pipeline.Run(t.Context(), pipeline.Options{Root: "/project", FS: mfs})
	assert.ErrorIs(t, err, load.ErrNoInputs)
}

func TestFromViper(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set(pipeline.KeyConfigDir, "/project")
	viper.Set(pipeline.KeyInput, []string{"a.yaml", "b.yaml"})
	viper.Set(pipeline.KeyTimeout, "45s")

	opts := pipeline.FromViper(nil)
	assert.Equal(t, "/project", opts.Root)
	assert.Equal(t, []string{"a.yaml", "b.yaml"}, opts.Inputs)
	assert.Equal(t, 45*time.Second, opts.Timeout)

	opts = pipeline.FromViper([]string{"c.yaml"})
	assert.Equal(t, []string{"c.yaml"}, opts.Inputs)
}
