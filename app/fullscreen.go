package app

import "github.com/gdamore/tcell/v2"

// Fullscreener requests entering or leaving fullscreen presentation
// The request resolves later by a FullscreenResult delivered through the
// event loop as a tcell interrupt event; the app flag changes only then
type Fullscreener interface {
	RequestFullscreen(on bool)
}

// FullscreenResult is the payload of the resolving interrupt event
type FullscreenResult struct {
	On  bool
	Err error
}

// PostFunc delivers an event to the owning loop, as tcell.Screen.PostEvent
type PostFunc func(ev tcell.Event) error

// PresentationMode is the terminal Fullscreener
// A terminal cannot resize itself, so the request resolves at once and only
// the fullscreen button label changes
type PresentationMode struct {
	post PostFunc
}

// NewPresentationMode creates the terminal presenter posting through post
func NewPresentationMode(post PostFunc) *PresentationMode {
	return &PresentationMode{post: post}
}

// RequestFullscreen resolves immediately by posting the result
// A post failure drops the resolution; the flag then stays as it was
func (p *PresentationMode) RequestFullscreen(on bool) {
	if p.post == nil {
		return
	}
	_ = p.post(tcell.NewEventInterrupt(FullscreenResult{On: on}))
}
