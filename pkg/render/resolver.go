package render

import (
	"fmt"
	"io/fs"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-displaykit/pkg/shapes"
)

// Resolution is the outcome of template resolution for one shape: the
// template name to hand to the engine plus the theme configuration derived
// while resolving it.
type Resolution struct {
	Template string
	Theme    *theme.RendererConfig
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// Resolver maps a shape's metadata to a concrete template. Candidates are
// tried most specific first: alternates from last to first, then the shape
// type itself. A theme partial override wins over a probed template of the
// same name.
type Resolver struct {
	probe     func(name string) bool
	selector  theme.ThemeSelector
	themeName string
	variant   string
	fallbacks map[string]string
}

// WithProbe installs a template existence check.
func WithProbe(probe func(name string) bool) ResolverOption {
	return func(r *Resolver) {
		if probe != nil {
			r.probe = probe
		}
	}
}

// WithFSProbe probes templates on fsys, appending ext to candidate names.
func WithFSProbe(fsys fs.FS, ext string) ResolverOption {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return func(r *Resolver) {
		if fsys == nil {
			return
		}
		r.probe = func(name string) bool {
			if name == "" {
				return false
			}
			_, err := fs.Stat(fsys, name+ext)
			return err == nil
		}
	}
}

// WithThemeSelector resolves name/variant through a go-theme selector before
// probing so manifest template overrides take part in resolution.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) ResolverOption {
	return func(r *Resolver) {
		r.selector = selector
		r.themeName = name
		r.variant = variant
	}
}

// WithThemeFallbacks supplies partials used when neither the manifest nor its
// variant override a candidate.
func WithThemeFallbacks(fallbacks map[string]string) ResolverOption {
	return func(r *Resolver) {
		if len(fallbacks) == 0 {
			return
		}
		if r.fallbacks == nil {
			r.fallbacks = make(map[string]string, len(fallbacks))
		}
		for key, value := range fallbacks {
			r.fallbacks[key] = value
		}
	}
}

// NewResolver constructs a resolver from the provided options.
func NewResolver(options ...ResolverOption) *Resolver {
	r := &Resolver{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Resolve picks the template for the shape described by meta.
func (r *Resolver) Resolve(meta *shapes.Metadata) (Resolution, error) {
	if meta == nil {
		return Resolution{}, fmt.Errorf("render: shape metadata is required")
	}

	cfg, err := r.themeConfig()
	if err != nil {
		return Resolution{}, err
	}

	candidates := candidateNames(meta)
	for _, candidate := range candidates {
		if cfg != nil {
			if partial, ok := cfg.Partials[candidate]; ok && partial != "" {
				return Resolution{Template: partial, Theme: cfg}, nil
			}
		}
		if r.probe != nil && r.probe(candidate) {
			return Resolution{Template: candidate, Theme: cfg}, nil
		}
	}
	return Resolution{}, fmt.Errorf("render: no template for shape %q (tried %s)", meta.Type, strings.Join(candidates, ", "))
}

// ResolveName resolves a single template name with no alternate fallback. A
// theme partial override still wins. Wrapper templates resolve through it.
func (r *Resolver) ResolveName(name string) (Resolution, error) {
	if name == "" {
		return Resolution{}, fmt.Errorf("render: template name is required")
	}
	cfg, err := r.themeConfig()
	if err != nil {
		return Resolution{}, err
	}
	if cfg != nil {
		if partial, ok := cfg.Partials[name]; ok && partial != "" {
			return Resolution{Template: partial, Theme: cfg}, nil
		}
	}
	if r.probe != nil && r.probe(name) {
		return Resolution{Template: name, Theme: cfg}, nil
	}
	return Resolution{}, fmt.Errorf("render: no template named %q", name)
}

func (r *Resolver) themeConfig() (*theme.RendererConfig, error) {
	if r.selector == nil {
		return nil, nil
	}
	selection, err := r.selector.Select(r.themeName, r.variant)
	if err != nil {
		return nil, fmt.Errorf("render: select theme %q: %w", r.themeName, err)
	}
	return RendererConfigFromSelection(selection, r.fallbacks), nil
}

// candidateNames orders resolution candidates most specific first. Alternates
// accumulate most general first, so they are walked from the back, and the
// bare shape type is the final fallback.
func candidateNames(meta *shapes.Metadata) []string {
	alternates := meta.Alternates.Values()
	out := make([]string, 0, len(alternates)+1)
	seen := make(map[string]struct{}, len(alternates)+1)
	for i := len(alternates) - 1; i >= 0; i-- {
		name := alternates[i]
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	if meta.Type != "" {
		if _, dup := seen[meta.Type]; !dup {
			out = append(out, meta.Type)
		}
	}
	return out
}
