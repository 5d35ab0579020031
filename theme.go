package viewkit

import (
	"strings"

	theme "github.com/goliatone/go-theme"
)

// rendererConfig flattens a theme selection into the renderer view used by
// components. Variant templates, tokens and asset files override the
// manifest's; fallbacks fill partial keys neither defines.
func rendererConfig(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	if selection == nil {
		if len(fallbacks) == 0 {
			return nil
		}
		return &theme.RendererConfig{Partials: cloneStrings(fallbacks)}
	}

	partials := make(map[string]string)
	tokens := make(map[string]string)
	files := make(map[string]string)
	prefix := ""

	for key, value := range fallbacks {
		partials[key] = value
	}

	if manifest := selection.Manifest; manifest != nil {
		mergeStrings(partials, manifest.Templates)
		mergeStrings(tokens, manifest.Tokens)
		mergeStrings(files, manifest.Assets.Files)
		prefix = manifest.Assets.Prefix

		if variant, ok := manifest.Variants[selection.Variant]; ok {
			mergeStrings(partials, variant.Templates)
			mergeStrings(tokens, variant.Tokens)
			mergeStrings(files, variant.Assets.Files)
			if variant.Assets.Prefix != "" {
				prefix = variant.Assets.Prefix
			}
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}

	return &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: assetResolver(prefix, files),
	}
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	return func(key string) string {
		file := strings.TrimSpace(files[key])
		if file == "" {
			return ""
		}
		if prefix == "" || strings.HasPrefix(file, "/") || strings.Contains(file, "://") {
			return file
		}
		return prefix + "/" + strings.TrimLeft(file, "/")
	}
}

func mergeStrings(dst, src map[string]string) {
	for key, value := range src {
		dst[key] = value
	}
}
