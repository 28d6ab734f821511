package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"folio/internal/config"
	"folio/internal/content"
	"folio/internal/effect"
	"folio/internal/route"
)

const clockRefresh = 2 * time.Second

// Messages driving the app's timers.
type (
	frameMsg  time.Time
	clockMsg  time.Time
	reloadMsg string
)

type transitionPhase int

const (
	phaseIdle transitionPhase = iota
	phaseHiding
	phaseShowing
)

// navLink is one interactive chrome entry: a nav route or a social link.
type navLink struct {
	frag   *effect.Fragment
	href   string
	kind   route.LinkKind
	cancel func() // active focus sweep, nil when none
}

// App is the composition root: it builds the chrome, owns the router and
// the current page, and drives every animation from one timeline.
type App struct {
	cfg      *config.Config
	styles   Styles
	logger   *zap.Logger
	provider *content.Provider
	watcher  *content.Watcher

	tl     *effect.Timeline
	router *route.Router
	loc    *time.Location

	// navigation state; transitions are serialized through phase
	page       *Page
	phase      transitionPhase
	pending    string
	activePath string

	// chrome fragments
	brand    *effect.Fragment
	links    []*navLink
	clock    *effect.Fragment
	location *effect.Fragment
	quote    *effect.Fragment
	tagline  *effect.Fragment
	focus    int // index into links, -1 for none

	viewport viewport.Model
	parallax Parallax
	tickers  []*effect.Ticker

	styledMD *glamour.TermRenderer
	plainMD  *glamour.TermRenderer

	width, height int
	lastFrame     time.Time
	quitting      bool
}

// NewApp wires the whole front-end and performs the initial navigation.
// A provider that cannot produce the route table is fatal: no page can
// render without it.
func NewApp(cfg *config.Config, logger *zap.Logger, provider *content.Provider, initialPath string) (*App, error) {
	routes, err := provider.Routes()
	if err != nil {
		return nil, fmt.Errorf("building route table: %w", err)
	}
	if len(routes) == 0 {
		return nil, fmt.Errorf("empty route table: no page can render")
	}
	loc, err := cfg.TimezoneLocation()
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:      cfg,
		styles:   NewStyles(ThemeByName(cfg.Theme)),
		logger:   logger,
		provider: provider,
		tl:       effect.NewTimeline(),
		loc:      loc,
		focus:    -1,
		width:    80,
		height:   24,
	}
	a.viewport = viewport.New(ContentWidth(a.width), ContentHeight(a.height))
	a.buildRenderers()
	a.buildChrome(routes)

	a.router = route.New(routes, a.navigate)
	a.router.Start(initialPath)

	a.startBootEffects()

	if w, err := provider.Watch(); err != nil {
		logger.Warn("content watch disabled", zap.Error(err))
	} else {
		a.watcher = w
	}
	return a, nil
}

// buildChrome splits the static nav and footer text into fragments. All of
// it is built synchronously before the first navigation.
func (a *App) buildChrome(routes []route.Route) {
	fakes := a.cfg.Effects.FakeCount
	muted := a.styles.Theme.Muted

	a.brand = effect.Split("folio")

	for _, r := range routes {
		f := effect.Split(r.Label)
		f.SetColor(muted)
		effect.Prepare(f, fakes)
		a.links = append(a.links, &navLink{frag: f, href: r.Path, kind: route.Classify(r.Path)})
	}
	for _, s := range a.cfg.Social {
		f := effect.Split(s.Label)
		f.SetColor(muted)
		effect.Prepare(f, fakes)
		a.links = append(a.links, &navLink{frag: f, href: s.URL, kind: route.Classify(s.URL)})
	}

	a.clock = effect.Split(a.clockString())
	a.location = effect.Split(a.cfg.Location)
	a.quote = effect.Split(a.cfg.Quote)
	a.tagline = effect.Split(a.cfg.Tagline)
}

// startBootEffects kicks off the scramble reveals for the clock, location,
// quote and tagline with one shared start delay, plus the brand shine. The
// returned tickers are stopped on teardown.
func (a *App) startBootEffects() {
	ef := a.cfg.Effects
	shared := time.Duration(ef.RevealDelayMS) * time.Millisecond
	reveal := effect.RevealOptions{
		StartDelay:     shared,
		CharStagger:    time.Duration(ef.CharStaggerMS) * time.Millisecond,
		FakeDuration:   time.Duration(ef.FakeDurationMS) * time.Millisecond,
		FakeStagger:    time.Duration(ef.FakeStaggerMS) * time.Millisecond,
		RevealDuration: time.Duration(ef.RevealDurationMS) * time.Millisecond,
	}
	for _, f := range []*effect.Fragment{a.clock, a.location, a.quote, a.tagline} {
		effect.Prepare(f, ef.FakeCount)
		effect.Reveal(a.tl, f, reveal)
	}

	interval := time.Duration(ef.ShineIntervalMS) * time.Millisecond
	frag, tk := effect.Shine(a.tl, a.brand, effect.ShineOptions{
		BaseOpacity:  0.55,
		ShineOpacity: 1,
		Duration:     900 * time.Millisecond,
		StaggerDelay: 70 * time.Millisecond,
		Interval:     interval,
		InitialDelay: shared,
	})
	// second pass over the same cells, faster and out of phase
	_, tk2 := effect.Shine(a.tl, frag, effect.ShineOptions{
		BaseOpacity:  0.55,
		ShineOpacity: 0.85,
		Duration:     500 * time.Millisecond,
		StaggerDelay: 40 * time.Millisecond,
		Interval:     interval,
		InitialDelay: shared + interval/2,
	})
	a.tickers = append(a.tickers, tk, tk2)
}

func (a *App) buildRenderers() {
	wrap := ContentWidth(a.width)
	style := "light"
	if a.styles.Theme.IsDark {
		style = "dark"
	}
	a.styledMD, _ = glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	a.plainMD, _ = glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(wrap),
	)
}

// navigate is the router callback. Transitions are serialized: a path
// arriving mid-transition is queued and replayed once the current fade
// finishes, so cross-fades never overlap.
func (a *App) navigate(path string) {
	r := a.router.Resolve(path)
	if r == nil {
		// unknown paths silently fall back to the first declared route
		r = &a.router.Routes()[0]
	}
	if a.phase != phaseIdle {
		a.pending = r.Path
		return
	}
	a.transitionTo(r)
}

func (a *App) transitionTo(r *route.Route) {
	a.logger.Debug("navigate", zap.String("path", r.Path))
	if a.page == nil {
		a.page = NewPage()
		a.inject(r)
		a.phase = phaseShowing
		a.page.Show(a.tl, a.finishTransition)
		return
	}
	a.phase = phaseHiding
	a.page.Hide(a.tl, func() {
		a.page = NewPage()
		a.inject(r)
		a.phase = phaseShowing
		a.page.Show(a.tl, a.finishTransition)
	})
}

func (a *App) finishTransition() {
	a.phase = phaseIdle
	if a.pending != "" {
		next := a.pending
		a.pending = ""
		a.navigate(next)
	}
}

// inject replaces the content container's markup synchronously.
func (a *App) inject(r *route.Route) {
	styled, err := a.styledMD.Render(r.Markup)
	if err != nil {
		styled = r.Markup
	}
	plain, err := a.plainMD.Render(r.Markup)
	if err != nil {
		plain = r.Markup
	}
	a.page.Create(styled, plain)
	a.activePath = r.Path
	a.viewport.GotoTop()
}

func (a *App) clockString() string {
	return time.Now().In(a.loc).Format("15:04:05")
}

// refreshClock sweeps the clock fragment whenever the displayed characters
// no longer match the wall clock. In-flight sweeps are not cancelled; at a
// 2s refresh they have long since settled.
func (a *App) refreshClock() {
	now := a.clockString()
	if now == a.clock.Chars() {
		return
	}
	ef := a.cfg.Effects
	effect.Sweep(a.tl, a.clock, []rune(now), effect.SweepOptions{
		CharStagger:  time.Duration(ef.CharStaggerMS) * time.Millisecond,
		FakeDuration: time.Duration(ef.FakeDurationMS) * time.Millisecond,
		FakeStagger:  time.Duration(ef.FakeStaggerMS) * time.Millisecond,
	}, nil)
}

// moveFocus blurs the old link and focuses the new one. Focusing starts a
// sweep that paints the link in the accent color; blurring cancels only the
// transform (the flicker runs out on its own) and force-resets the color.
func (a *App) moveFocus(delta int) {
	if len(a.links) == 0 {
		return
	}
	next := a.focus + delta
	if next < 0 {
		next = len(a.links) - 1
	}
	if next >= len(a.links) {
		next = 0
	}
	a.setFocus(next)
}

func (a *App) setFocus(i int) {
	if a.focus == i {
		return
	}
	if a.focus >= 0 {
		a.blur(a.links[a.focus])
	}
	a.focus = i
	if i < 0 {
		return
	}
	link := a.links[i]
	accent := a.styles.Theme.Accent
	ef := a.cfg.Effects
	s := effect.Sweep(a.tl, link.frag, nil, effect.SweepOptions{
		CharStagger:  time.Duration(ef.CharStaggerMS) * time.Millisecond,
		FakeDuration: time.Duration(ef.FakeDurationMS) * time.Millisecond,
		FakeStagger:  time.Duration(ef.FakeStaggerMS) * time.Millisecond,
	}, func(c *effect.Cell) {
		c.Color = accent
	})
	link.cancel = s.Cancel
}

func (a *App) blur(link *navLink) {
	if link.cancel != nil {
		link.cancel()
		link.cancel = nil
	}
	link.frag.SetColor(a.styles.Theme.Muted)
}

// activate follows the focused link. Only routed links touch the router;
// external, anchor and document links keep their default (inert) behavior.
func (a *App) activate() {
	if a.focus < 0 || a.focus >= len(a.links) {
		return
	}
	link := a.links[a.focus]
	if link.kind != route.KindRoute {
		a.logger.Debug("link passed through", zap.String("href", link.href))
		return
	}
	a.router.Push(link.href)
}

func (a *App) frameTick() tea.Cmd {
	return tea.Tick(a.cfg.FrameInterval(), func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (a *App) clockTick() tea.Cmd {
	return tea.Tick(clockRefresh, func(t time.Time) tea.Msg { return clockMsg(t) })
}

func (a *App) waitForReload() tea.Cmd {
	if a.watcher == nil {
		return nil
	}
	ch := a.watcher.Changes()
	return func() tea.Msg {
		path, ok := <-ch
		if !ok {
			return nil
		}
		return reloadMsg(path)
	}
}

// Init starts the frame loop, the clock refresh, and the reload listener.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.frameTick(), a.clockTick(), a.waitForReload())
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		now := time.Time(msg)
		dt := a.cfg.FrameInterval()
		if !a.lastFrame.IsZero() {
			if real := now.Sub(a.lastFrame); real > 0 && real < 250*time.Millisecond {
				dt = real
			}
		}
		a.lastFrame = now
		a.tl.Advance(dt)
		a.parallax.Step()
		if a.quitting {
			return a, nil
		}
		return a, a.frameTick()

	case clockMsg:
		a.refreshClock()
		if a.quitting {
			return a, nil
		}
		return a, a.clockTick()

	case reloadMsg:
		if msg != "" {
			a.reload(string(msg))
		}
		return a, a.waitForReload()

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.viewport.Width = ContentWidth(msg.Width)
		a.viewport.Height = ContentHeight(msg.Height)
		a.buildRenderers()
		if r := a.router.Resolve(a.activePath); r != nil && a.page != nil {
			a.inject(r)
		}
		return a, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion {
			a.parallax.SetTarget(msg.X, msg.Y, a.width, a.height)
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		a.shutdown()
		return a, tea.Quit
	case "tab", "right", "l":
		a.moveFocus(1)
	case "shift+tab", "left", "h":
		a.moveFocus(-1)
	case "enter":
		a.activate()
	case "[":
		a.router.Back()
	case "]":
		a.router.Forward()
	case "j", "down":
		a.viewport.LineDown(1)
	case "k", "up":
		a.viewport.LineUp(1)
	case "pgup":
		a.viewport.HalfViewUp()
	case "pgdown":
		a.viewport.HalfViewDown()
	default:
		// digits jump straight to a nav route
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if n := int(s[0] - '0'); n <= len(a.router.Routes()) {
				a.router.Push(a.router.Routes()[n-1].Path)
			}
		}
	}
	return a, nil
}

// reload re-reads the route table after a content file change and swaps
// the active page's markup in place.
func (a *App) reload(path string) {
	routes, err := a.provider.Routes()
	if err != nil {
		a.logger.Warn("content reload failed", zap.Error(err))
		return
	}
	a.router.SetMarkup(routes)
	a.logger.Info("content reloaded", zap.String("path", path))
	if path == a.activePath && a.page != nil {
		if r := a.router.Resolve(path); r != nil {
			a.inject(r)
		}
	}
}

// shutdown stops every repeating task the app owns.
func (a *App) shutdown() {
	a.quitting = true
	for _, tk := range a.tickers {
		tk.Stop()
	}
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
}

// View renders the chrome and the current page.
func (a *App) View() string {
	if a.width < MinimumTerminalWidth || a.height < MinimumTerminalHeight {
		return a.styles.Hint.Render("terminal too small — need at least 60x16")
	}
	pal := a.styles.Palette()

	nav := a.renderNav(pal)
	footer := a.renderFooter(pal)

	var body string
	if a.page != nil {
		body = a.page.View(pal)
	}
	a.viewport.SetContent(body)

	dx, dy := a.parallax.Offset()
	contentStyle := a.styles.Content.
		PaddingLeft(2 + MaxParallaxShift + dx).
		PaddingTop(1 + MaxParallaxShift + dy)

	return lipgloss.JoinVertical(lipgloss.Left,
		nav,
		a.styles.RenderDivider(a.width),
		contentStyle.Render(a.viewport.View()),
		footer,
	)
}

func (a *App) renderNav(pal effect.Palette) string {
	left := a.brand.Render(pal)

	var mid []string
	for i, link := range a.links {
		if link.kind != route.KindRoute {
			continue
		}
		label := link.frag.Render(pal)
		if i == a.focus {
			label = "[" + label + "]"
		} else {
			label = " " + label + " "
		}
		mid = append(mid, label)
	}
	middle := strings.Join(mid, " ")

	right := a.clock.Render(pal) + a.styles.DateTime.Render(" · ") + a.location.Render(pal)

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(middle) - lipgloss.Width(right) - 4
	if gap < 2 {
		gap = 2
	}
	pad := strings.Repeat(" ", gap/2)
	return a.styles.Nav.Render(left + pad + middle + pad + right)
}

func (a *App) renderFooter(pal effect.Palette) string {
	var social []string
	for i, link := range a.links {
		if link.kind == route.KindRoute {
			continue
		}
		label := link.frag.Render(pal)
		if i == a.focus {
			label = "[" + label + "]"
		}
		social = append(social, label)
	}

	quoteLine := a.styles.Quote.Render("“") + a.quote.Render(pal) + a.styles.Quote.Render("”") +
		"  —  " + a.tagline.Render(pal)
	socialLine := strings.Join(social, "   ")
	hint := a.styles.Hint.Render("tab/arrows move · enter follows · [ ] history · q quits")

	return a.styles.Footer.Render(quoteLine + "\n" + socialLine + "   " + hint)
}
