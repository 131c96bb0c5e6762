// Package render turns a symbol matrix plus encode options into output
// bytes in one of the supported formats. Renderers are selected through
// an immutable extension registry built once at startup; a renderer is
// only registered when the current platform can actually produce its
// format.
package render

import (
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/qrforge/qrforge/internal/config"
	"github.com/qrforge/qrforge/internal/matrix"
)

// Renderer produces output bytes for one symbol matrix.
type Renderer interface {
	Render(m matrix.Matrix, opts config.EncodeOptions) ([]byte, error)
}

// UnsupportedFormatError reports a requested output extension with no
// registered renderer on this platform.
type UnsupportedFormatError struct {
	Ext       string
	Supported []string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported output format %q (supported: %s)", e.Ext, strings.Join(e.Supported, ", "))
}

// candidate pairs a renderer with the extensions it serves and the
// platforms it runs on. An empty platform list means every GOOS.
type candidate struct {
	exts      []string
	platforms []string
	renderer  Renderer
}

func (c candidate) availableOn(goos string) bool {
	if len(c.platforms) == 0 {
		return true
	}
	for _, p := range c.platforms {
		if p == goos {
			return true
		}
	}
	return false
}

// Registry maps output extensions to renderers. It is immutable after
// construction and safe for concurrent use.
type Registry struct {
	byExt map[string]Renderer
}

func candidates() []candidate {
	return []candidate{
		{exts: []string{".txt"}, renderer: &textRenderer{}},
		{exts: []string{".png"}, renderer: &rasterRenderer{encode: encodePNG}},
		{exts: []string{".bmp"}, renderer: &rasterRenderer{encode: encodeBMP}},
		{exts: []string{".gif"}, renderer: &rasterRenderer{encode: encodeGIF}},
		{exts: []string{".tif"}, renderer: &rasterRenderer{encode: encodeTIFF}},
		{exts: []string{".svg"}, renderer: &svgRenderer{}},
		{exts: []string{".pdf"}, renderer: &pdfRenderer{}},
	}
}

// NewRegistry builds a registry containing the renderers available on
// the current platform.
func NewRegistry() *Registry {
	return newRegistryFor(runtime.GOOS)
}

func newRegistryFor(goos string) *Registry {
	byExt := make(map[string]Renderer)
	for _, c := range candidates() {
		if !c.availableOn(goos) {
			continue
		}
		for _, ext := range c.exts {
			byExt[ext] = c.renderer
		}
	}
	return &Registry{byExt: byExt}
}

var defaultRegistry = sync.OnceValue(NewRegistry)

// DefaultRegistry returns the shared process-wide registry.
func DefaultRegistry() *Registry { return defaultRegistry() }

// Supported returns the registered extensions in sorted order.
func (r *Registry) Supported() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Lookup resolves an extension or bare format token ("png", ".PNG", ...)
// to its renderer. Unknown extensions yield an UnsupportedFormatError
// naming the full supported set.
func (r *Registry) Lookup(ext string) (Renderer, error) {
	key := NormalizeExt(ext)
	renderer, ok := r.byExt[key]
	if !ok {
		return nil, &UnsupportedFormatError{Ext: key, Supported: r.Supported()}
	}
	return renderer, nil
}

// NormalizeExt lowercases an extension or format token and ensures the
// leading dot, so ".PNG", "png" and ".png" all select the same renderer.
func NormalizeExt(ext string) string {
	key := strings.ToLower(strings.TrimSpace(ext))
	if key == "" {
		return key
	}
	if !strings.HasPrefix(key, ".") {
		key = "." + key
	}
	return key
}
