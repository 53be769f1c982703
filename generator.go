package tailgen

import (
	"strings"

	"go.uber.org/zap"

	"github.com/aethelur/tailgen/internal/parser"
	"github.com/aethelur/tailgen/internal/stylesheet"
	"github.com/aethelur/tailgen/internal/variant"
)

// Generator is one generation session: class strings in, stylesheet text
// out. Not safe for concurrent mutation; independent sessions may run in
// parallel since the underlying tables are immutable.
type Generator struct {
	config   Config
	registry *parser.Registry
	store    *stylesheet.Store
	used     map[string]bool // keyframe names referenced by animate- classes
	log      *zap.Logger
}

// New builds a session for the given config. A nil logger disables
// logging.
func New(config Config, log *zap.Logger) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{
		config:   config,
		registry: parser.NewRegistry(config.categoryEnabled),
		store:    stylesheet.NewStore(),
		used:     make(map[string]bool),
		log:      log.Named("generator"),
	}, nil
}

// SetConfig swaps the session config. Rules already added stay as they
// are; the new toggles govern subsequent AddClass calls only.
func (g *Generator) SetConfig(config Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	g.config = config
	g.registry = parser.NewRegistry(config.categoryEnabled)
	return nil
}

// AddClass parses one class string and merges its rule into the store.
// Unknown classes return a ParseError wrapping ErrUnrecognizedClass;
// the session stays usable. Re-adding a class is a no-op on output.
func (g *Generator) AddClass(class string) error {
	class = strings.TrimSpace(class)
	if class == "" {
		return &ParseError{Class: class, Err: ErrUnrecognizedClass}
	}

	variants, base := variant.Split(class)
	props := g.registry.Parse(base)
	if props == nil {
		g.log.Debug("no parser matched", zap.String("class", class))
		return &ParseError{Class: class, Err: ErrUnrecognizedClass}
	}

	selector, media := variant.Apply(stylesheet.ClassSelector(class), variants)
	g.store.Upsert(selector, media, props)

	for _, name := range parser.CustomPropertyRefs(base) {
		g.store.CustomProperty(name, "initial")
	}
	g.markKeyframes(base)

	g.log.Debug("class added",
		zap.String("class", class),
		zap.String("selector", selector),
		zap.Int("properties", len(props)))
	return nil
}

// AddClasses feeds every class through AddClass and reports per-class
// outcomes. It never stops early.
func (g *Generator) AddClasses(classes []string) BatchReport {
	var report BatchReport
	for _, class := range classes {
		if err := g.AddClass(class); err != nil {
			pe, ok := err.(*ParseError)
			if !ok {
				pe = &ParseError{Class: class, Err: err}
			}
			report.Failed = append(report.Failed, BatchFailure{Class: class, Err: pe})
			continue
		}
		report.Succeeded++
	}
	return report
}

// GenerateCSS serializes the current store as pretty-printed CSS. Pure
// read; callable repeatedly.
func (g *Generator) GenerateCSS() string {
	return g.serialize(false)
}

// GenerateMinifiedCSS serializes the current store without optional
// whitespace.
func (g *Generator) GenerateMinifiedCSS() string {
	return g.serialize(true)
}

// CSS emits according to the session's Minify toggle.
func (g *Generator) CSS() string {
	return g.serialize(g.config.Minify)
}

// RuleCount returns the number of distinct rules currently stored.
func (g *Generator) RuleCount() int {
	return g.store.RuleCount()
}

// Reset drops all accumulated rules, keeping the config.
func (g *Generator) Reset() {
	g.store.Reset()
	g.used = make(map[string]bool)
}

func (g *Generator) serialize(minify bool) string {
	return stylesheet.Serialize(g.store, stylesheet.SerializeOptions{
		Minify:             minify,
		TreeShakeKeyframes: g.config.TreeShakeKeyframes,
		UsedKeyframes:      g.used,
	})
}

// markKeyframes records which built-in keyframes an animate- class pulls
// in, for the optional tree-shaking pass.
func (g *Generator) markKeyframes(base string) {
	name, ok := strings.CutPrefix(base, "animate-")
	if !ok {
		return
	}
	for _, kf := range stylesheet.KeyframeNames() {
		if name == kf {
			g.used[kf] = true
			return
		}
	}
}
