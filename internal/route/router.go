// Package route maps paths to in-memory route descriptors and keeps the
// navigation history for the session. It is the terminal counterpart of a
// client-side router: pushes go on an in-memory stack, back/forward walk it
// without pushing, and link hrefs are classified so external targets keep
// their default behavior instead of being routed.
package route

import "strings"

// Route describes one navigable page. Routes are declared at startup and
// never mutated; Path is the unique identifier.
type Route struct {
	Path   string
	Label  string
	Markup string
}

// LinkKind classifies an href for interception.
type LinkKind int

const (
	// KindRoute is a same-origin path handled by the router.
	KindRoute LinkKind = iota
	// KindExternal is an absolute http(s) link, left to the terminal.
	KindExternal
	// KindAnchor is an in-page fragment link.
	KindAnchor
	// KindDocument is a non-navigable document such as a PDF.
	KindDocument
)

// Classify decides whether an href is routed or passed through. External
// links (http prefix), in-page anchors (# prefix) and PDFs keep their
// default behavior; everything else is intercepted.
func Classify(href string) LinkKind {
	switch {
	case strings.HasPrefix(href, "http"):
		return KindExternal
	case strings.HasPrefix(href, "#"):
		return KindAnchor
	case strings.HasSuffix(href, ".pdf"):
		return KindDocument
	default:
		return KindRoute
	}
}

// Router owns the immutable route table, the history stack, and the single
// callback fired with the new path on every navigation event.
type Router struct {
	routes     []Route
	stack      []string
	pos        int
	onNavigate func(path string)
}

// New builds a router over the given table. The callback may be nil.
func New(routes []Route, onNavigate func(string)) *Router {
	return &Router{routes: routes, pos: -1, onNavigate: onNavigate}
}

// Routes returns the route table in declaration order.
func (r *Router) Routes() []Route { return r.routes }

// Resolve returns the route exactly matching path, or nil. Falling back on
// an unresolved path is the caller's responsibility.
func (r *Router) Resolve(path string) *Route {
	for i := range r.routes {
		if r.routes[i].Path == path {
			return &r.routes[i]
		}
	}
	return nil
}

// Current returns the path at the top of the history, or "" before Start.
func (r *Router) Current() string {
	if r.pos < 0 || r.pos >= len(r.stack) {
		return ""
	}
	return r.stack[r.pos]
}

// Start seeds the history with the initial location and fires the callback.
func (r *Router) Start(path string) {
	r.stack = []string{path}
	r.pos = 0
	r.fire(path)
}

// Push navigates to path: a history entry is added, any forward entries are
// dropped, and the callback fires. Pushing the current path is a no-op;
// neither history nor callback is touched.
func (r *Router) Push(path string) {
	if path == r.Current() {
		return
	}
	r.stack = append(r.stack[:r.pos+1], path)
	r.pos = len(r.stack) - 1
	r.fire(path)
}

// Back moves one entry back in history, firing the callback without
// pushing. Reports whether a move happened.
func (r *Router) Back() bool {
	if r.pos <= 0 {
		return false
	}
	r.pos--
	r.fire(r.stack[r.pos])
	return true
}

// Forward is the inverse of Back.
func (r *Router) Forward() bool {
	if r.pos < 0 || r.pos >= len(r.stack)-1 {
		return false
	}
	r.pos++
	r.fire(r.stack[r.pos])
	return true
}

// SetMarkup refreshes the markup payload of matching routes in place.
// Paths and labels stay fixed; this exists only for live content reloads.
func (r *Router) SetMarkup(routes []Route) {
	for _, fresh := range routes {
		for i := range r.routes {
			if r.routes[i].Path == fresh.Path {
				r.routes[i].Markup = fresh.Markup
			}
		}
	}
}

func (r *Router) fire(path string) {
	if r.onNavigate != nil {
		r.onNavigate(path)
	}
}
