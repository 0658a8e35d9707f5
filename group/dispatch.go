package group

// ItemKind is the closed set of item rendering contracts. Exactly one kind
// is resolved per render from (presentation, input); selector and filter
// presentations ignore input.
type ItemKind int

const (
	KindAggregateCheckbox ItemKind = iota
	KindRadio
	KindSelector
	KindFilter
)

func (k ItemKind) String() string {
	switch k {
	case KindRadio:
		return "radio"
	case KindSelector:
		return "selector"
	case KindFilter:
		return "filter"
	default:
		return "aggregate_checkbox"
	}
}

// ResolveItemKind is the dispatch table. It is total over the reachable
// combinations; there is no runtime fallback because the enums are closed.
func ResolveItemKind(p PresentationType, in InputType) ItemKind {
	switch p {
	case PresentationSelector:
		return KindSelector
	case PresentationFilter:
		return KindFilter
	}
	if in == InputCheckbox {
		return KindAggregateCheckbox
	}
	return KindRadio
}

// ItemKind resolves the rendering contract for this group.
func (g *Group) ItemKind() ItemKind {
	if g == nil {
		return KindRadio
	}
	return ResolveItemKind(g.opts.Presentation, g.opts.Input)
}
