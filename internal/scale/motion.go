package scale

var duration = map[string]string{
	"0":    "0s",
	"75":   "75ms",
	"100":  "100ms",
	"150":  "150ms",
	"200":  "200ms",
	"300":  "300ms",
	"500":  "500ms",
	"700":  "700ms",
	"1000": "1000ms",
}

var easing = map[string]string{
	"linear": "linear",
	"in":     "cubic-bezier(0.4, 0, 1, 1)",
	"out":    "cubic-bezier(0, 0, 0.2, 1)",
	"in-out": "cubic-bezier(0.4, 0, 0.2, 1)",
}

// transitionProperty maps transition-* presets to their property lists.
// The empty token is the bare "transition" default.
var transitionProperty = map[string]string{
	"": "color, background-color, border-color, text-decoration-color, fill, stroke, opacity, box-shadow, transform, filter, backdrop-filter",
	"none":      "none",
	"all":       "all",
	"colors":    "color, background-color, border-color, text-decoration-color, fill, stroke",
	"opacity":   "opacity",
	"shadow":    "box-shadow",
	"transform": "transform",
}

// animation maps animate-* tokens to animation shorthands. Every name
// referenced here has a matching block in the keyframes preamble.
var animation = map[string]string{
	"none":   "none",
	"spin":   "spin 1s linear infinite",
	"ping":   "ping 1s cubic-bezier(0, 0, 0.2, 1) infinite",
	"pulse":  "pulse 2s cubic-bezier(0.4, 0, 0.6, 1) infinite",
	"bounce": "bounce 1s infinite",
	"wiggle":    "wiggle 1s ease-in-out infinite",
	"fade-in":   "fade-in 0.5s ease-out both",
	"fade-out":  "fade-out 0.5s ease-in both",
	"zoom-in":   "zoom-in 0.3s cubic-bezier(0, 0, 0.2, 1) both",
	"slide-up":  "slide-up 0.4s cubic-bezier(0, 0, 0.2, 1) both",
}

// Duration returns the time for a duration-*/delay-* step ("150" -> "150ms").
func Duration(token string) (string, bool) {
	v, ok := duration[token]
	return v, ok
}

// Easing returns the timing function for an ease-* token.
func Easing(token string) (string, bool) {
	v, ok := easing[token]
	return v, ok
}

// TransitionProperty returns the property list for a transition-* preset;
// the empty token is the bare "transition" default.
func TransitionProperty(token string) (string, bool) {
	v, ok := transitionProperty[token]
	return v, ok
}

// Animation returns the animation shorthand for an animate-* token.
func Animation(token string) (string, bool) {
	v, ok := animation[token]
	return v, ok
}

// AnimationNames returns the keyframe names referenced by the animation
// table, used by the serializer's optional keyframe tree-shake.
func AnimationNames() []string {
	names := make([]string, 0, len(animation))
	for k := range animation {
		if k == "none" {
			continue
		}
		names = append(names, k)
	}
	return names
}
