package parser

import (
	"strings"

	"github.com/aethelur/tailgen/internal/scale"
	"github.com/aethelur/tailgen/internal/stylesheet"
)

// transitionParser owns transition, duration, delay, easing and the
// animate-* utilities backed by the keyframes preamble.
type transitionParser struct{}

func (p *transitionParser) Metadata() Metadata {
	return Metadata{
		Priority: 820,
		Category: CategoryTransitions,
		Patterns: []string{
			"transition", "transition-{preset}", "duration-{ms}",
			"delay-{ms}", "ease-{fn}", "animate-{name}",
		},
	}
}

func (p *transitionParser) TryParse(class string) []stylesheet.Property {
	if class == "transition" {
		return p.transition("")
	}
	if body, ok := strings.CutPrefix(class, "transition-"); ok {
		return p.transition(body)
	}
	if body, ok := strings.CutPrefix(class, "duration-"); ok {
		if v, ok := scale.Duration(body); ok {
			return single("transition-duration", v)
		}
		if v, ok := rawValue(body); ok {
			return single("transition-duration", v)
		}
		return nil
	}
	if body, ok := strings.CutPrefix(class, "delay-"); ok {
		if v, ok := scale.Duration(body); ok {
			return single("transition-delay", v)
		}
		if v, ok := rawValue(body); ok {
			return single("transition-delay", v)
		}
		return nil
	}
	if body, ok := strings.CutPrefix(class, "ease-"); ok {
		if v, ok := scale.Easing(body); ok {
			return single("transition-timing-function", v)
		}
		if v, ok := rawValue(body); ok {
			return single("transition-timing-function", v)
		}
		return nil
	}
	if body, ok := strings.CutPrefix(class, "animate-"); ok {
		if v, ok := scale.Animation(body); ok {
			return single("animation", v)
		}
		if v, ok := rawValue(body); ok {
			return single("animation", v)
		}
		return nil
	}
	return nil
}

func (p *transitionParser) transition(preset string) []stylesheet.Property {
	v, ok := scale.TransitionProperty(preset)
	if !ok {
		return nil
	}
	if v == "none" {
		return single("transition-property", "none")
	}
	return props(
		"transition-property", v,
		"transition-timing-function", "cubic-bezier(0.4, 0, 0.2, 1)",
		"transition-duration", "150ms",
	)
}
