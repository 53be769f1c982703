package stylesheet

// keyframeBlock is one named @keyframes definition from the fixed
// preamble. Bodies are stored pre-formatted for the pretty printer and
// re-flowed by the minifier.
type keyframeBlock struct {
	Name string
	Body string
}

// keyframePreamble is the hand-authored set of @keyframes blocks emitted
// ahead of all rules. The built-in animation utilities reference these by
// name; the serializer emits the full set unless keyframe tree-shaking is
// requested.
var keyframePreamble = []keyframeBlock{
	{"spin", `  from {
    transform: rotate(0deg);
  }
  to {
    transform: rotate(360deg);
  }`},
	{"ping", `  75%, 100% {
    transform: scale(2);
    opacity: 0;
  }`},
	{"pulse", `  0%, 100% {
    opacity: 1;
  }
  50% {
    opacity: 0.5;
  }`},
	{"bounce", `  0%, 100% {
    transform: translateY(-25%);
    animation-timing-function: cubic-bezier(0.8, 0, 1, 1);
  }
  50% {
    transform: translateY(0);
    animation-timing-function: cubic-bezier(0, 0, 0.2, 1);
  }`},
	{"wiggle", `  0%, 100% {
    transform: rotate(-3deg);
  }
  50% {
    transform: rotate(3deg);
  }`},
	{"fade-in", `  from {
    opacity: 0;
  }
  to {
    opacity: 1;
  }`},
	{"fade-out", `  from {
    opacity: 1;
  }
  to {
    opacity: 0;
  }`},
	{"zoom-in", `  from {
    opacity: 0;
    transform: scale(0.95);
  }
  to {
    opacity: 1;
    transform: scale(1);
  }`},
	{"slide-up", `  from {
    opacity: 0;
    transform: translateY(1rem);
  }
  to {
    opacity: 1;
    transform: translateY(0);
  }`},
}

// KeyframeNames returns the names in the fixed preamble, in emission order.
func KeyframeNames() []string {
	names := make([]string, 0, len(keyframePreamble))
	for _, kf := range keyframePreamble {
		names = append(names, kf.Name)
	}
	return names
}
