package ui

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/couchindex/internal/config"
	"github.com/depeter/couchindex/internal/indexview"
	"github.com/depeter/couchindex/internal/jellyfin"
	"github.com/depeter/couchindex/internal/library"
)

// ListScreen shows a library as a sectioned list with an index bar for fast
// scrubbing. It is the host of the IndexView.
type ListScreen struct {
	source jellyfin.Source

	items   []library.Item
	pending []library.Item // loaded off the game loop, applied in Update
	index   *library.Index
	tops    []float64 // row offsets from the top of the list
	height  float64   // total list height

	groupBy      library.GroupBy
	fullAlphabet bool

	view    *indexview.IndexView
	bar     *IndexBar
	haptics *Haptics

	flashOnEnter  bool
	flashDelay    time.Duration
	flashDuration time.Duration
	flashPending  bool

	scroll    ScrollState
	focused   int // row index of the focused item, -1 for none
	scrubbing bool
	status    string

	loaded    bool
	loading   bool
	loadError string
	cancel    context.CancelFunc

	OnItemSelected func(item library.Item)

	errDisplay ErrorDisplay
	mu         sync.Mutex
}

// NewListScreen creates the list for source using the index settings in cfg.
// A nil clock means the wall clock.
func NewListScreen(source jellyfin.Source, cfg config.IndexConfig, clock indexview.Clock) *ListScreen {
	l := &ListScreen{
		source:  source,
		focused: -1,
		haptics: &Haptics{},
	}
	l.view = indexview.New(l, indexview.Options{
		Clock:  clock,
		Haptic: l.haptics,
	})
	l.bar = NewIndexBar(l.view)
	l.bar.ItemCount = l.ItemCount
	l.index = library.Build(nil, library.Options{})
	l.ApplyIndexConfig(cfg)
	l.bar.Layout(l.listArea())
	return l
}

func (l *ListScreen) Name() string { return "List: " + l.source.Name() }

// IndexView exposes the control for the debug overlay.
func (l *ListScreen) IndexView() *indexview.IndexView { return l.view }

// ApplyIndexConfig re-applies index bar settings, e.g. after a config reload.
func (l *ListScreen) ApplyIndexConfig(cfg config.IndexConfig) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.applyIndexConfig(cfg)
}

func (l *ListScreen) applyIndexConfig(cfg config.IndexConfig) {
	l.view.SetEdge(indexview.ParseEdge(cfg.Edge))
	l.view.SetScrollsToSectionTop(cfg.ScrollsToSectionTop)
	l.view.SetFadeDuration(cfg.FadeDuration())
	l.view.SetAlwaysVisible(!cfg.HideWhenInactive)

	l.haptics.Enabled = cfg.Haptics
	l.haptics.Duration = cfg.HapticDuration()

	l.flashOnEnter = cfg.FlashOnEnter
	l.flashDelay = cfg.FlashDelay()
	l.flashDuration = cfg.FlashDuration()

	groupBy := library.ParseGroupBy(cfg.GroupBy)
	if groupBy != l.groupBy || cfg.FullAlphabet != l.fullAlphabet {
		l.groupBy = groupBy
		l.fullAlphabet = cfg.FullAlphabet
		l.rebuild()
	}
	l.bar.Layout(l.listArea())
}

func (l *ListScreen) OnEnter() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.flashOnEnter {
		l.flashPending = true
	}
	if !l.loaded && !l.loading {
		l.startLoad()
	}
	l.flashIfReady()
}

func (l *ListScreen) OnExit() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.loading = false
}

func (l *ListScreen) startLoad() {
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.loading = true
	l.loadError = ""
	go l.loadData(ctx)
}

func (l *ListScreen) loadData(ctx context.Context) {
	media, err := l.source.Items(ctx)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		log.Printf("Failed to load library items: %v", err)
		l.mu.Lock()
		l.loading = false
		l.loadError = "Failed to load: " + err.Error()
		l.mu.Unlock()
		return
	}

	items := toLibraryItems(media)
	l.mu.Lock()
	l.pending = items
	l.loading = false
	l.mu.Unlock()
}

func toLibraryItems(media []jellyfin.MediaItem) []library.Item {
	items := make([]library.Item, len(media))
	for i, m := range media {
		items[i] = library.Item{ID: m.ID, Title: m.Name, SortTitle: m.SortName, Year: m.Year}
	}
	return items
}

// applyPending swaps in items loaded in the background. The index view is
// only touched from the game loop.
func (l *ListScreen) applyPending() {
	if l.pending == nil {
		return
	}
	l.items, l.pending = l.pending, nil
	l.loaded = true
	l.rebuild()
	l.flashIfReady()
}

// rebuild regroups the items and reloads the index bar.
func (l *ListScreen) rebuild() {
	l.index = library.Build(l.items, library.Options{
		GroupBy:      l.groupBy,
		FullAlphabet: l.fullAlphabet,
	})
	l.tops, l.height = layoutRows(l.index)
	l.view.Setup()

	area := l.listArea()
	l.scroll.SetContent(l.height, area.H)
	if l.focused >= l.index.Len() || (l.focused >= 0 && l.index.Row(l.focused).Header()) {
		l.focused = l.nextItemRow(-1, 1)
	}
}

func rowHeight(r library.Row) float64 {
	if r.Header() {
		return SectionHeaderHeight
	}
	return RowHeight
}

// layoutRows returns the top offset of every row and the total height.
func layoutRows(idx *library.Index) ([]float64, float64) {
	tops := make([]float64, idx.Len())
	y := 0.0
	for i := range tops {
		tops[i] = y
		y += rowHeight(idx.Row(i))
	}
	return tops, y
}

// rowAt returns the row under list offset y, or -1.
func (l *ListScreen) rowAt(y float64) int {
	if y < 0 || y >= l.height {
		return -1
	}
	i := sort.Search(len(l.tops), func(i int) bool { return l.tops[i] > y })
	return i - 1
}

func (l *ListScreen) listArea() Rect {
	return Rect{
		X: ListPadding,
		Y: HeaderHeight,
		W: ScreenWidth - 2*ListPadding,
		H: ScreenHeight - HeaderHeight - FooterHeight,
	}
}

// contentArea is the list area minus the space the index bar takes.
func (l *ListScreen) contentArea() Rect {
	r := l.listArea()
	r.W -= l.bar.Reserved()
	if l.view.Edge() == indexview.EdgeLeft {
		r.X += l.bar.Reserved()
	}
	return r
}

func (l *ListScreen) flashIfReady() {
	if !l.flashPending || !l.loaded {
		return
	}
	l.flashPending = false
	l.view.Flash(l.flashDelay, l.flashDuration)
}

// SectionLabels, ItemCount and TargetSelected make ListScreen the delegate of
// its IndexView. They run inside Update with the lock held.

func (l *ListScreen) SectionLabels() []string   { return l.index.SectionLabels() }
func (l *ListScreen) ExtendedTitles() []string  { return l.index.ExtendedTitles() }
func (l *ListScreen) ItemCount(section int) int { return l.index.ItemCount(section) }

func (l *ListScreen) TargetSelected(section, item int) {
	row := l.index.RowIndex(section, item)
	if row >= l.index.Len() {
		return
	}
	top := row
	if item == 0 {
		top = l.index.RowIndex(section, -1)
	}
	l.scroll.JumpTo(l.tops[top])
	l.focused = row
}

func (l *ListScreen) DragBegan() { l.scrubbing = true }
func (l *ListScreen) DragEnded() { l.scrubbing = false }

// nextItemRow returns the first item row after from in direction step, or
// from when there is none.
func (l *ListScreen) nextItemRow(from, step int) int {
	for i := from + step; i >= 0 && i < l.index.Len(); i += step {
		if !l.index.Row(i).Header() {
			return i
		}
	}
	return from
}

func (l *ListScreen) moveFocus(dir Direction) {
	if l.index.Len() == 0 {
		return
	}
	area := l.contentArea()
	page := int(area.H / RowHeight)
	switch dir {
	case DirUp:
		l.focused = l.nextItemRow(l.focused, -1)
	case DirDown:
		l.focused = l.nextItemRow(l.focused, 1)
	case DirPageUp:
		for i := 0; i < page; i++ {
			l.focused = l.nextItemRow(l.focused, -1)
		}
	case DirPageDown:
		for i := 0; i < page; i++ {
			l.focused = l.nextItemRow(l.focused, 1)
		}
	case DirHome:
		l.focused = l.nextItemRow(-1, 1)
	case DirEnd:
		l.focused = l.nextItemRow(l.index.Len(), -1)
	}
	if l.focused < 0 {
		return
	}
	top := l.tops[l.focused]
	if l.focused > 0 && l.index.Row(l.focused-1).Header() {
		top = l.tops[l.focused-1]
	}
	l.scroll.EnsureVisible(top, l.tops[l.focused]+RowHeight, area.H)
}

func (l *ListScreen) selectRow(row int) {
	if row < 0 || row >= l.index.Len() {
		return
	}
	r := l.index.Row(row)
	it, ok := l.index.Item(r.Section, r.Item)
	if !ok {
		return
	}
	l.focused = row
	l.status = "Selected: " + it.Title
	if it.Year > 0 {
		l.status += fmt.Sprintf(" (%d)", it.Year)
	}
	if l.OnItemSelected != nil {
		l.OnItemSelected(it)
	}
}

func (l *ListScreen) toggleGrouping() {
	if l.groupBy == library.GroupByYear {
		l.groupBy = library.GroupByLetter
	} else {
		l.groupBy = library.GroupByYear
	}
	l.rebuild()
	l.scroll.Reset()
}

func (l *ListScreen) handleKeys() {
	switch {
	case KeyJustPressed(ebiten.KeyF):
		l.view.Flash(0, l.flashDuration)
	case KeyJustPressed(ebiten.KeyS):
		if l.view.Visibility().State() == indexview.Hidden {
			l.view.Show()
		} else {
			l.view.Hide()
		}
	case KeyJustPressed(ebiten.KeyE):
		if l.view.Edge() == indexview.EdgeLeft {
			l.view.SetEdge(indexview.EdgeRight)
		} else {
			l.view.SetEdge(indexview.EdgeLeft)
		}
		l.bar.Layout(l.listArea())
	case KeyJustPressed(ebiten.KeyT):
		l.view.SetScrollsToSectionTop(!l.view.ScrollsToSectionTop())
	case KeyJustPressed(ebiten.KeyG):
		l.toggleGrouping()
	case KeyJustPressed(ebiten.KeyR):
		if !l.loading {
			l.startLoad()
		}
	}
}

func (l *ListScreen) Update() (*ScreenTransition, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.applyPending()
	l.view.Update()
	if l.bar.Update() {
		return nil, nil
	}

	dir, enter, back := InputState()
	if back {
		return &ScreenTransition{Type: TransitionPop}, nil
	}

	mx, my, clicked := MouseJustClicked()
	if clicked && l.errDisplay.HandleClick(mx, my, l.loadError) {
		return nil, nil
	}

	l.handleKeys()
	if !l.loaded {
		return nil, nil
	}

	l.scroll.HandleMouseWheel()

	if clicked {
		area := l.contentArea()
		if area.Contains(float64(mx), float64(my)) {
			l.selectRow(l.rowAt(float64(my) - area.Y + l.scroll.ScrollY))
		}
	}

	if dir != DirNone {
		l.moveFocus(dir)
	}
	if enter {
		l.selectRow(l.focused)
	}
	return nil, nil
}

func (l *ListScreen) Draw(dst *ebiten.Image) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.scroll.Animate()

	// Title bar
	DrawText(dst, l.source.Name(), ListPadding, 20, FontSizeTitle, ColorText)
	if l.loaded {
		info := fmt.Sprintf("%d titles · %d sections · by %s", l.index.Total(), len(l.index.Sections), l.groupBy)
		w, _ := MeasureText(info, FontSizeSmall)
		DrawText(dst, info, float64(ScreenWidth)-ListPadding-w, 32, FontSizeSmall, ColorTextMuted)
	}

	if l.loadError != "" && !l.loaded {
		errX := float64(ScreenWidth)/2 - 300
		errY := float64(ScreenHeight)/2 - 20
		l.errDisplay.Draw(dst, l.loadError, errX, errY, FontSizeBody)
		DrawTextCentered(dst, "Press R to retry or Esc to quit", float64(ScreenWidth)/2, float64(ScreenHeight)/2+30,
			FontSizeSmall, ColorTextMuted)
		return
	}
	if !l.loaded {
		DrawTextCentered(dst, "Loading…", float64(ScreenWidth)/2, float64(ScreenHeight)/2, FontSizeHeading, ColorTextSecondary)
		return
	}
	if l.index.Total() == 0 {
		DrawTextCentered(dst, "Nothing to show", float64(ScreenWidth)/2, float64(ScreenHeight)/2, FontSizeHeading, ColorTextSecondary)
	}

	l.drawRows(dst)
	l.bar.Draw(dst)
	l.drawFooter(dst)
}

func (l *ListScreen) drawRows(dst *ebiten.Image) {
	area := l.contentArea()
	view := clip(dst, area)

	first := l.rowAt(l.scroll.ScrollY)
	if first < 0 {
		first = 0
	}
	for i := first; i < l.index.Len(); i++ {
		y := area.Y + l.tops[i] - l.scroll.ScrollY
		if y > area.Y+area.H {
			break
		}
		r := l.index.Row(i)
		if r.Header() {
			sec := l.index.Sections[r.Section]
			DrawText(view, sec.Label, area.X+12, y+10, FontSizeHeading, ColorPrimary)
			vector.DrawFilledRect(view, float32(area.X), float32(y+SectionHeaderHeight-2), float32(area.W), 1, ColorSurfaceHover, false)
			continue
		}

		it, _ := l.index.Item(r.Section, r.Item)
		if i == l.focused {
			DrawFilledRoundRect(view, float32(area.X), float32(y+2), float32(area.W), RowHeight-4, 8, ColorSurfaceHover)
		}
		yearW := 0.0
		if it.Year > 0 {
			year := fmt.Sprintf("%d", it.Year)
			yearW, _ = MeasureText(year, FontSizeSmall)
			DrawText(view, year, area.X+area.W-16-yearW, y+14, FontSizeSmall, ColorTextMuted)
		}
		title := truncateText(it.Title, area.W-60-yearW, FontSizeBody)
		DrawText(view, title, area.X+24, y+11, FontSizeBody, ColorText)
	}

	// Pin the header of the section at the top of the viewport.
	if l.index.Len() > 0 && l.tops[first] < l.scroll.ScrollY {
		sec := l.index.Sections[l.index.SectionAt(first)]
		vector.DrawFilledRect(view, float32(area.X), float32(area.Y), float32(area.W), SectionHeaderHeight, ColorBackground, false)
		DrawText(view, sec.Label, area.X+12, area.Y+10, FontSizeHeading, ColorPrimary)
		vector.DrawFilledRect(view, float32(area.X), float32(area.Y+SectionHeaderHeight-2), float32(area.W), 1, ColorSurfaceHover, false)
	}
}

func (l *ListScreen) drawFooter(dst *ebiten.Image) {
	y := float64(ScreenHeight - FooterHeight + 12)
	if l.status != "" {
		DrawText(dst, l.status, ListPadding, y, FontSizeSmall, ColorTextSecondary)
	}
	hints := "F flash · S show/hide · E edge · T section top · G group · R reload · F12 debug"
	w, _ := MeasureText(hints, FontSizeSmall)
	DrawText(dst, hints, float64(ScreenWidth)-ListPadding-w, y, FontSizeSmall, ColorTextMuted)
}
