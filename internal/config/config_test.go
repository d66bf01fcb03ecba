// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/transcript-tui/internal/policy"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, []string{"https", "http"}, cfg.Links.AllowedSchemes)
	assert.Nil(t, cfg.Links.AllowedHosts, "default link hosts must be unrestricted (nil)")
	assert.Equal(t, ImageModeTapToLoad, cfg.Images.Mode)
	assert.Equal(t, []string{"https"}, cfg.Images.AllowedSchemes)
	assert.True(t, cfg.Index.Enabled)
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
version = "1"

[links]
allowed_schemes = ["https"]
allowed_hosts = ["docs.example.com"]

[images]
mode = "disabled"

[ui]
max_width = 80
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg := Default()
	require.NoError(t, LoadTOML(cfg, path))
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []string{"https"}, cfg.Links.AllowedSchemes)
	assert.Equal(t, []string{"docs.example.com"}, cfg.Links.AllowedHosts)
	assert.Equal(t, ImageModeDisabled, cfg.Images.Mode)
	assert.Equal(t, 80, cfg.UI.MaxWidth)
}

func TestLoadTOML_AbsentHostListStaysNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[links]
allowed_schemes = ["https"]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg := Default()
	require.NoError(t, LoadTOML(cfg, path))

	// "no allowed_hosts key" means unrestricted; it must not collapse
	// into an empty (block-everything) list.
	assert.Nil(t, cfg.Links.AllowedHosts)
}

func TestLoadTOML_EmptyHostListStaysEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[links]
allowed_schemes = ["https"]
allowed_hosts = []
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg := Default()
	require.NoError(t, LoadTOML(cfg, path))

	require.NotNil(t, cfg.Links.AllowedHosts)
	assert.Empty(t, cfg.Links.AllowedHosts)
	assert.False(t, cfg.LinkPolicy().Allows("https://anywhere.com"),
		"explicit empty host list must block all hosts")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Images.Mode = "sometimes"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Images.Mode = ""
	cfg.UI.MaxWidth = -5
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ImageModeTapToLoad, cfg.Images.Mode)
	assert.Equal(t, 0, cfg.UI.MaxWidth)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("TRANSCRIPT_TUI_LINK_HOSTS", "a.com, b.com")
	t.Setenv("TRANSCRIPT_TUI_IMAGE_MODE", ImageModeAllow)
	t.Setenv("TRANSCRIPT_TUI_NO_INDEX", "true")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, []string{"a.com", "b.com"}, cfg.Links.AllowedHosts)
	assert.Equal(t, ImageModeAllow, cfg.Images.Mode)
	assert.False(t, cfg.Index.Enabled)
}

func TestImagePolicyConstruction(t *testing.T) {
	cfg := Default()

	cfg.Images.Mode = ImageModeDisabled
	assert.IsType(t, policy.ImagesDisabled{}, cfg.ImagePolicy())

	cfg.Images.Mode = ImageModeTapToLoad
	assert.IsType(t, policy.ImagesTapToLoad{}, cfg.ImagePolicy())

	cfg.Images.Mode = ImageModeAllow
	ip, ok := cfg.ImagePolicy().(policy.ImagesAllow)
	require.True(t, ok)
	assert.True(t, ip.Allows("https://example.com/x.png"))
	assert.False(t, ip.Allows("http://example.com/x.png"))
}
