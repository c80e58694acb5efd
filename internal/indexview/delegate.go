package indexview

// Delegate is the host of an IndexView. It owns the list being scrubbed.
type Delegate interface {
	// SectionLabels returns the short labels drawn on the bar, one per section.
	SectionLabels() []string
	// ItemCount returns the number of items in a section. It is called on
	// every pointer move and must be cheap and side-effect free.
	ItemCount(section int) int
	// TargetSelected is called with the position the pointer maps to. The
	// host scrolls its list there; it must not call back into the IndexView.
	TargetSelected(section, item int)
}

// ExtendedTitler is implemented by delegates that want the enlarged preview
// label. Titles are index-aligned with SectionLabels.
type ExtendedTitler interface {
	ExtendedTitles() []string
}

// DragObserver is implemented by delegates that care about drag lifecycle.
type DragObserver interface {
	DragBegan()
	DragEnded()
}

// BaseDelegate supplies no-op optional methods. Embed it in a host type to
// opt out of the preview and lifecycle callbacks.
type BaseDelegate struct{}

func (BaseDelegate) ExtendedTitles() []string { return nil }
func (BaseDelegate) DragBegan()               {}
func (BaseDelegate) DragEnded()               {}

// DelegateFuncs adapts plain functions to Delegate, ExtendedTitler and
// DragObserver. Nil fields behave as no-ops.
type DelegateFuncs struct {
	Labels   func() []string
	Count    func(section int) int
	Selected func(section, item int)
	Titles   func() []string
	Began    func()
	Ended    func()
}

func (f DelegateFuncs) SectionLabels() []string {
	if f.Labels == nil {
		return nil
	}
	return f.Labels()
}

func (f DelegateFuncs) ItemCount(section int) int {
	if f.Count == nil {
		return 0
	}
	return f.Count(section)
}

func (f DelegateFuncs) TargetSelected(section, item int) {
	if f.Selected != nil {
		f.Selected(section, item)
	}
}

func (f DelegateFuncs) ExtendedTitles() []string {
	if f.Titles == nil {
		return nil
	}
	return f.Titles()
}

func (f DelegateFuncs) DragBegan() {
	if f.Began != nil {
		f.Began()
	}
}

func (f DelegateFuncs) DragEnded() {
	if f.Ended != nil {
		f.Ended()
	}
}
