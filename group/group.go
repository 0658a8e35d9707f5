package group

import (
	"strings"

	"github.com/google/uuid"
)

// Item is one choice in a group. The controller only reads Key and
// Disabled; Label and Meta pass through to presentation untouched. Keys
// must be unique within a group; duplicate keys are a caller error, though
// the value model tolerates them without growing the selection.
type Item struct {
	Key      string
	Label    string
	Meta     string
	Disabled bool
}

// AggregateOptions carries the caller-overridable settings of the
// aggregate control. The computed fields (checked, indeterminate, label,
// change handling) are owned by the controller and have no representation
// here.
type AggregateOptions struct {
	// Indented offsets the item rows beneath the aggregate control.
	// Nil means indented.
	Indented *bool
}

// Options is the construction contract of a choice group.
type Options struct {
	// ID identifies the group and derives the helper text reference.
	// Empty IDs are tolerated: a random one is minted.
	ID    string
	Name  string
	Items []Item

	Input        InputType
	Presentation PresentationType

	// Value and OnChange together put the group under external control:
	// the supplied value is authoritative for every read and the group
	// never persists. Either one alone leaves the group uncontrolled,
	// with OnChange (if present) still invoked as a notification.
	Value    *Value
	OnChange func(Value)

	// DefaultValue seeds the owned state of an uncontrolled group once,
	// at first read. Ignored when controlled.
	DefaultValue *Value

	// AggregateLabelFunc takes precedence over AggregateLabel. Presence
	// of either gates whether the aggregate control exists at all; it is
	// only honored for checkbox input with default presentation.
	AggregateLabel     string
	AggregateLabelFunc func(AggregateState) string
	Aggregate          AggregateOptions
}

// Group is the selection-state controller. It reconciles an externally
// controlled value with internally owned state and exposes the two
// mutation entry points, ToggleItem and ToggleAggregate. All methods are
// synchronous; the group is not safe for concurrent use and does not need
// to be (single event loop, one writer).
type Group struct {
	opts     Options
	external *Value
	owned    Value
	seeded   bool
}

// New builds a group from opts. Input and presentation are fixed from this
// point on. A supplied Value or DefaultValue whose semantics do not match
// Input is treated as absent.
func New(opts Options) *Group {
	if strings.TrimSpace(opts.ID) == "" {
		opts.ID = uuid.NewString()
	}
	if opts.Value != nil && opts.Value.Input() != opts.Input {
		opts.Value = nil
	}
	if opts.DefaultValue != nil && opts.DefaultValue.Input() != opts.Input {
		opts.DefaultValue = nil
	}
	g := &Group{opts: opts}
	if opts.Value != nil {
		v := *opts.Value
		g.external = &v
	}
	return g
}

func (g *Group) ID() string {
	if g == nil {
		return ""
	}
	return g.opts.ID
}

func (g *Group) Name() string {
	if g == nil {
		return ""
	}
	return g.opts.Name
}

// HelperID derives the helper text reference from the group ID.
func (g *Group) HelperID() string {
	if g == nil {
		return ""
	}
	return g.opts.ID + "-helper"
}

func (g *Group) Input() InputType {
	if g == nil {
		return InputRadio
	}
	return g.opts.Input
}

func (g *Group) Presentation() PresentationType {
	if g == nil {
		return PresentationDefault
	}
	return g.opts.Presentation
}

// Items returns the group's items in caller order.
func (g *Group) Items() []Item {
	if g == nil {
		return nil
	}
	return append([]Item(nil), g.opts.Items...)
}

// Controlled reports whether the external owner is authoritative, which
// requires both a change callback and a supplied value.
func (g *Group) Controlled() bool {
	return g != nil && g.resolveAuthority() == authorityExternal
}

// SetValue re-supplies the external value. Controlled owners call this
// after observing OnChange; it is how the next read comes to reflect the
// mutation. Values with mismatched semantics are ignored.
func (g *Group) SetValue(v Value) {
	if g == nil || v.Input() != g.opts.Input {
		return
	}
	g.external = &v
}

// CurrentValue is the single source of truth for what is selected: the
// external value when controlled, the owned state otherwise. Owned state
// is seeded lazily from DefaultValue on first read.
func (g *Group) CurrentValue() Value {
	if g == nil {
		return Value{}
	}
	if g.resolveAuthority() == authorityExternal {
		return *g.external
	}
	g.seedOwned()
	return g.owned
}

// EligibleCount counts the non-disabled items.
func (g *Group) EligibleCount() int {
	if g == nil {
		return 0
	}
	n := 0
	for _, item := range g.opts.Items {
		if !item.Disabled {
			n++
		}
	}
	return n
}

// EligibleKeys returns the keys of non-disabled items in item order.
func (g *Group) EligibleKeys() []string {
	if g == nil {
		return nil
	}
	out := make([]string, 0, len(g.opts.Items))
	for _, item := range g.opts.Items {
		if !item.Disabled {
			out = append(out, item.Key)
		}
	}
	return out
}

// Aggregate derives the tri-state fresh from the current selection and the
// eligible count.
func (g *Group) Aggregate() AggregateState {
	if g == nil {
		return AggregateNone
	}
	return DeriveAggregate(g.CurrentValue().Size(), g.EligibleCount())
}

// AggregateEnabled reports whether the aggregate control exists: checkbox
// input, default presentation, and an aggregate label policy declared.
func (g *Group) AggregateEnabled() bool {
	if g == nil {
		return false
	}
	if g.opts.Input != InputCheckbox || g.opts.Presentation != PresentationDefault {
		return false
	}
	return g.opts.AggregateLabelFunc != nil || g.opts.AggregateLabel != ""
}

// AggregateLabelText resolves the aggregate label for the current
// tri-state.
func (g *Group) AggregateLabelText() string {
	if g == nil {
		return ""
	}
	if g.opts.AggregateLabelFunc != nil {
		return g.opts.AggregateLabelFunc(g.Aggregate())
	}
	return g.opts.AggregateLabel
}

// AggregateIndented reports the layout offset flag for item rows beneath
// the aggregate control.
func (g *Group) AggregateIndented() bool {
	if g == nil || g.opts.Aggregate.Indented == nil {
		return true
	}
	return *g.opts.Aggregate.Indented
}

// ToggleItem is the per-item mutation entry point. Checkbox groups toggle
// key on or off per checked; radio groups always select key, ignoring
// checked. The computed next value is committed to owned state when
// uncontrolled, and OnChange (if present) is always invoked with it;
// commit and notification are independent effects of the same value.
func (g *Group) ToggleItem(key string, checked bool) {
	if g == nil {
		return
	}
	cur := g.CurrentValue()
	var next Value
	if g.opts.Input == InputRadio {
		next = cur.ToggleOn(key)
	} else if checked {
		next = cur.ToggleOn(key)
	} else {
		next = cur.ToggleOff(key)
	}
	g.commit(next)
}

// ToggleAggregate is the select-all/none entry point. From All the next
// value is empty; from None or any Some state it is the full eligible key
// set, replacing the current selection outright. A no-op unless the
// aggregate control is enabled.
func (g *Group) ToggleAggregate() {
	if g == nil || !g.AggregateEnabled() {
		return
	}
	var next Value
	if g.Aggregate() == AggregateAll {
		next = MultiValue()
	} else {
		next = MultiValue(g.EligibleKeys()...)
	}
	g.commit(next)
}

// Context is the immutable per-render snapshot handed to item widgets:
// everything an item needs to compute its own checked state and forward a
// raw toggle.
type Context struct {
	Name     string
	Input    InputType
	HelperID string
	Value    Value
	OnChange func(key string, checked bool)
}

// Context snapshots the group for one render pass.
func (g *Group) Context() Context {
	if g == nil {
		return Context{}
	}
	return Context{
		Name:     g.opts.Name,
		Input:    g.opts.Input,
		HelperID: g.HelperID(),
		Value:    g.CurrentValue(),
		OnChange: g.ToggleItem,
	}
}

func (g *Group) commit(next Value) {
	if g.resolveAuthority() == authorityOwned {
		g.seedOwned()
		g.owned = next
	}
	if g.opts.OnChange != nil {
		g.opts.OnChange(next)
	}
}

func (g *Group) seedOwned() {
	if g.seeded {
		return
	}
	if g.opts.DefaultValue != nil {
		g.owned = *g.opts.DefaultValue
	} else {
		g.owned = emptyValue(g.opts.Input)
	}
	g.seeded = true
}
