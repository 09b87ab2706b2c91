package render

import (
	theme "github.com/goliatone/go-theme"
)

// RendererConfigFromSelection flattens a theme selection into the renderer
// configuration templates consume: variant values overlay the base manifest,
// fallbacks fill partials neither layer declares, and tokens are mirrored as
// CSS custom properties.
func RendererConfigFromSelection(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	if selection == nil {
		return nil
	}

	cfg := &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: map[string]string{},
		Tokens:   map[string]string{},
		CSSVars:  map[string]string{},
	}
	for key, value := range fallbacks {
		cfg.Partials[key] = value
	}

	manifest := selection.Manifest
	if manifest == nil {
		return cfg
	}

	for key, value := range manifest.Templates {
		cfg.Partials[key] = value
	}
	for key, value := range manifest.Tokens {
		cfg.Tokens[key] = value
	}

	assetFiles := map[string]string{}
	for key, value := range manifest.Assets.Files {
		assetFiles[key] = value
	}

	if variant, ok := manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Templates {
			cfg.Partials[key] = value
		}
		for key, value := range variant.Tokens {
			cfg.Tokens[key] = value
		}
		for key, value := range variant.Assets.Files {
			assetFiles[key] = value
		}
	}

	for key, value := range cfg.Tokens {
		cfg.CSSVars["--"+key] = value
	}

	prefix := manifest.Assets.Prefix
	cfg.AssetURL = func(key string) string {
		if key == "" {
			return ""
		}
		file, ok := assetFiles[key]
		if !ok {
			return ""
		}
		if prefix == "" {
			return file
		}
		return prefix + "/" + file
	}

	return cfg
}
