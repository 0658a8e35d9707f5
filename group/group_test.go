package group

import (
	"reflect"
	"strings"
	"testing"
)

func toppingsItems() []Item {
	return []Item{
		{Key: "a", Label: "Anchovies"},
		{Key: "b", Label: "Basil"},
		{Key: "c", Label: "Capers", Disabled: true},
	}
}

func TestUncontrolledCheckboxScenario(t *testing.T) {
	// items a, b, c(disabled); defaultValue empty.
	var notified []Value
	dv := MultiValue()
	g := New(Options{
		ID:           "toppings",
		Items:        toppingsItems(),
		Input:        InputCheckbox,
		DefaultValue: &dv,
		OnChange:     func(v Value) { notified = append(notified, v) },
	})
	if g.Controlled() {
		t.Fatal("callback without value must stay uncontrolled")
	}
	if g.EligibleCount() != 2 {
		t.Fatalf("eligible count = %d, want 2 (disabled item excluded)", g.EligibleCount())
	}

	g.ToggleItem("a", true)
	if keys := g.CurrentValue().Keys(); !reflect.DeepEqual(keys, []string{"a"}) {
		t.Fatalf("after toggling a: keys = %v, want [a]", keys)
	}
	if g.Aggregate() != AggregateSome {
		t.Fatalf("after toggling a: state = %v, want some", g.Aggregate())
	}

	g.ToggleItem("b", true)
	if keys := g.CurrentValue().Keys(); !reflect.DeepEqual(keys, []string{"a", "b"}) {
		t.Fatalf("after toggling b: keys = %v, want [a b]", keys)
	}
	if g.Aggregate() != AggregateAll {
		t.Fatalf("after toggling b: state = %v, want all (eligible=2)", g.Aggregate())
	}

	// aggregate toggle is gated on a label policy
	g2 := New(Options{
		ID:             "toppings",
		Items:          toppingsItems(),
		Input:          InputCheckbox,
		DefaultValue:   &dv,
		OnChange:       func(v Value) { notified = append(notified, v) },
		AggregateLabel: "All toppings",
	})
	g2.ToggleItem("a", true)
	g2.ToggleItem("b", true)
	g2.ToggleAggregate()
	if g2.CurrentValue().Size() != 0 {
		t.Fatalf("aggregate toggle from all: size = %d, want 0", g2.CurrentValue().Size())
	}
	if g2.Aggregate() != AggregateNone {
		t.Fatalf("aggregate toggle from all: state = %v, want none", g2.Aggregate())
	}

	// every mutation notified with the committed value
	if len(notified) != 5 {
		t.Fatalf("onChange called %d times, want 5", len(notified))
	}
	last := notified[len(notified)-1]
	if !last.Equal(g2.CurrentValue()) {
		t.Fatalf("last notification %v does not match committed value %v", last.Keys(), g2.CurrentValue().Keys())
	}
}

func TestAggregateToggleFromSomeSelectsAllEligible(t *testing.T) {
	g := New(Options{
		ID:             "g",
		Items:          toppingsItems(),
		Input:          InputCheckbox,
		AggregateLabel: "All",
	})
	g.ToggleItem("a", true)
	if g.Aggregate() != AggregateSome {
		t.Fatalf("state = %v, want some", g.Aggregate())
	}
	g.ToggleAggregate()
	if keys := g.CurrentValue().Keys(); !reflect.DeepEqual(keys, []string{"a", "b"}) {
		t.Fatalf("aggregate from some: keys = %v, want [a b] (eligible only)", keys)
	}
	if g.CurrentValue().Contains("c") {
		t.Fatal("disabled item selected by aggregate toggle")
	}
}

func TestAggregateToggleFromNoneSelectsAllEligible(t *testing.T) {
	g := New(Options{
		ID:             "g",
		Items:          toppingsItems(),
		Input:          InputCheckbox,
		AggregateLabel: "All",
	})
	g.ToggleAggregate()
	if keys := g.CurrentValue().Keys(); !reflect.DeepEqual(keys, []string{"a", "b"}) {
		t.Fatalf("aggregate from none: keys = %v, want [a b]", keys)
	}
}

func TestAggregateToggleRequiresCheckboxDefaultAndLabel(t *testing.T) {
	base := Options{ID: "g", Items: toppingsItems(), Input: InputCheckbox, AggregateLabel: "All"}

	radio := base
	radio.Input = InputRadio
	if New(radio).AggregateEnabled() {
		t.Fatal("radio group exposes aggregate control")
	}

	selector := base
	selector.Presentation = PresentationSelector
	if New(selector).AggregateEnabled() {
		t.Fatal("selector presentation exposes aggregate control")
	}

	unlabeled := base
	unlabeled.AggregateLabel = ""
	g := New(unlabeled)
	if g.AggregateEnabled() {
		t.Fatal("aggregate control without a label policy")
	}
	g.ToggleAggregate()
	if g.CurrentValue().Size() != 0 {
		t.Fatal("disabled aggregate toggle mutated the selection")
	}

	if !New(base).AggregateEnabled() {
		t.Fatal("checkbox + default + label did not enable the aggregate control")
	}
}

func TestRadioSelectionReplaces(t *testing.T) {
	g := New(Options{
		ID:    "speed",
		Items: []Item{{Key: "slow"}, {Key: "fast"}},
		Input: InputRadio,
	})
	g.ToggleItem("slow", true)
	// radios ignore checked: false still selects
	g.ToggleItem("fast", false)
	if key, ok := g.CurrentValue().SingleKey(); !ok || key != "fast" {
		t.Fatalf("selection = %q (%v), want fast only", key, ok)
	}
	if g.CurrentValue().Size() != 1 {
		t.Fatalf("size = %d, want 1", g.CurrentValue().Size())
	}
}

func TestControlledGroupNeverPersists(t *testing.T) {
	var got []Value
	v := MultiValue("a")
	g := New(Options{
		ID:       "g",
		Items:    toppingsItems(),
		Input:    InputCheckbox,
		Value:    &v,
		OnChange: func(next Value) { got = append(got, next) },
	})
	if !g.Controlled() {
		t.Fatal("value + callback must be controlled")
	}

	g.ToggleItem("b", true)
	if len(got) != 1 {
		t.Fatalf("onChange called %d times, want exactly 1", len(got))
	}
	if !reflect.DeepEqual(got[0].Keys(), []string{"a", "b"}) {
		t.Fatalf("onChange value = %v, want [a b]", got[0].Keys())
	}
	// current value unchanged until the owner re-supplies
	if keys := g.CurrentValue().Keys(); !reflect.DeepEqual(keys, []string{"a"}) {
		t.Fatalf("controlled value mutated in place: %v, want [a]", keys)
	}

	g.SetValue(got[0])
	if keys := g.CurrentValue().Keys(); !reflect.DeepEqual(keys, []string{"a", "b"}) {
		t.Fatalf("after re-supply: keys = %v, want [a b]", keys)
	}
}

func TestValueWithoutCallbackIsUncontrolled(t *testing.T) {
	v := MultiValue("a")
	g := New(Options{ID: "g", Items: toppingsItems(), Input: InputCheckbox, Value: &v})
	if g.Controlled() {
		t.Fatal("value without callback must be uncontrolled")
	}
	g.ToggleItem("b", true)
	if keys := g.CurrentValue().Keys(); !reflect.DeepEqual(keys, []string{"b"}) {
		// owned state seeds from DefaultValue (absent here), not Value
		t.Fatalf("keys = %v, want [b]", keys)
	}
}

func TestUncontrolledSeedsOnceFromDefault(t *testing.T) {
	dv := MultiValue("b")
	g := New(Options{ID: "g", Items: toppingsItems(), Input: InputCheckbox, DefaultValue: &dv})
	if keys := g.CurrentValue().Keys(); !reflect.DeepEqual(keys, []string{"b"}) {
		t.Fatalf("seeded keys = %v, want [b]", keys)
	}
	g.ToggleItem("a", true)
	if keys := g.CurrentValue().Keys(); !reflect.DeepEqual(keys, []string{"b", "a"}) {
		t.Fatalf("keys = %v, want [b a]", keys)
	}
}

func TestMismatchedValueSemanticsTreatedAsAbsent(t *testing.T) {
	radio := SingleValue("a")
	g := New(Options{
		ID:       "g",
		Items:    toppingsItems(),
		Input:    InputCheckbox,
		Value:    &radio,
		OnChange: func(Value) {},
	})
	if g.Controlled() {
		t.Fatal("radio value supplied to checkbox group must be dropped")
	}
	if g.CurrentValue().Input() != InputCheckbox {
		t.Fatalf("current value semantics = %v, want checkbox", g.CurrentValue().Input())
	}
}

func TestAggregateLabelFuncReceivesTriState(t *testing.T) {
	var seen []string
	g := New(Options{
		ID:    "g",
		Items: toppingsItems(),
		Input: InputCheckbox,
		AggregateLabelFunc: func(s AggregateState) string {
			seen = append(seen, s.String())
			return "Toppings: " + s.String()
		},
	})
	if got := g.AggregateLabelText(); got != "Toppings: none" {
		t.Fatalf("label = %q, want %q", got, "Toppings: none")
	}
	g.ToggleItem("a", true)
	if got := g.AggregateLabelText(); got != "Toppings: some" {
		t.Fatalf("label = %q, want %q", got, "Toppings: some")
	}
	g.ToggleItem("b", true)
	if got := g.AggregateLabelText(); got != "Toppings: all" {
		t.Fatalf("label = %q, want %q", got, "Toppings: all")
	}
	if !reflect.DeepEqual(seen, []string{"none", "some", "all"}) {
		t.Fatalf("states seen = %v, want [none some all]", seen)
	}
}

func TestAggregateIndentedDefaultsTrue(t *testing.T) {
	g := New(Options{ID: "g", Input: InputCheckbox, AggregateLabel: "All"})
	if !g.AggregateIndented() {
		t.Fatal("indented must default to true")
	}
	off := false
	g = New(Options{ID: "g", Input: InputCheckbox, AggregateLabel: "All", Aggregate: AggregateOptions{Indented: &off}})
	if g.AggregateIndented() {
		t.Fatal("indented override ignored")
	}
}

func TestHelperIDDerivedFromGroupID(t *testing.T) {
	g := New(Options{ID: "toppings"})
	if g.HelperID() != "toppings-helper" {
		t.Fatalf("helper id = %q, want toppings-helper", g.HelperID())
	}
}

func TestEmptyIDMintsOne(t *testing.T) {
	g := New(Options{})
	if strings.TrimSpace(g.ID()) == "" {
		t.Fatal("empty ID not minted")
	}
	if !strings.HasSuffix(g.HelperID(), "-helper") {
		t.Fatalf("helper id = %q, want -helper suffix", g.HelperID())
	}
}

func TestContextSnapshotsCurrentValue(t *testing.T) {
	g := New(Options{ID: "g", Name: "toppings", Items: toppingsItems(), Input: InputCheckbox})
	ctx := g.Context()
	if ctx.Name != "toppings" || ctx.Input != InputCheckbox || ctx.HelperID != "g-helper" {
		t.Fatalf("context = %+v, want name/input/helper populated", ctx)
	}
	if ctx.Value.Size() != 0 {
		t.Fatalf("snapshot size = %d, want 0", ctx.Value.Size())
	}

	ctx.OnChange("a", true)
	// the old snapshot is immutable; a fresh one sees the mutation
	if ctx.Value.Size() != 0 {
		t.Fatal("snapshot mutated in place")
	}
	if got := g.Context().Value.Keys(); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("fresh snapshot keys = %v, want [a]", got)
	}
}
