package tui

import "github.com/gdamore/tcell/v2"

// ModalOpts configures a bordered modal frame
type ModalOpts struct {
	Title      string
	Border     LineType
	FrameStyle tcell.Style // Border and fill
	TitleStyle tcell.Style
}

// Modal fills region, draws border with centered title, returns content region
func (r Region) Modal(opts ModalOpts) Region {
	if r.W < 5 || r.H < 3 {
		return r.Sub(1, 1, 0, 0)
	}

	r.Fill(opts.FrameStyle)
	r.Box(opts.Border, opts.FrameStyle)

	if opts.Title != "" {
		title := " " + opts.Title + " "
		if RuneLen(title) > r.W-4 {
			title = Truncate(title, r.W-4)
		}
		r.Text((r.W-RuneLen(title))/2, 0, title, opts.TitleStyle)
	}

	return r.Inset(2)
}

// Truncate shortens s to at most n runes, marking the cut with an ellipsis
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(runes[:n-1]) + "…"
}
