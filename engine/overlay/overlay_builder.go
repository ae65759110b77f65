package overlay

import (
	"github.com/Carmen-Shannon/oxy-tree/common"
	"github.com/tanema/gween/ease"
)

// OverlayBuilderOption is a functional option for configuring an Overlay.
type OverlayBuilderOption func(*overlay)

// WithTitle sets the heading line. An empty title keeps the default.
//
// Parameters:
//   - title: the heading
//
// Returns:
//   - OverlayBuilderOption: a function that applies the title to the overlay
func WithTitle(title string) OverlayBuilderOption {
	return func(o *overlay) {
		o.title = common.Coalesce(title, o.title)
	}
}

// WithSubtitle sets the line under the heading. An empty subtitle keeps the default.
func WithSubtitle(subtitle string) OverlayBuilderOption {
	return func(o *overlay) {
		o.subtitle = common.Coalesce(subtitle, o.subtitle)
	}
}

// WithFadeDuration sets the length of a full cross-fade in seconds: half fading out, half fading in.
// Non-positive values make the swap instant.
//
// Parameters:
//   - seconds: the fade length
//
// Returns:
//   - OverlayBuilderOption: a function that applies the duration to the overlay
func WithFadeDuration(seconds float32) OverlayBuilderOption {
	return func(o *overlay) {
		o.duration = max(seconds, 0)
	}
}

// WithEasing replaces the InOutQuad easing of the fade.
func WithEasing(fn ease.TweenFunc) OverlayBuilderOption {
	return func(o *overlay) {
		if fn != nil {
			o.easing = fn
		}
	}
}
