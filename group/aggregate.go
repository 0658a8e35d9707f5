package group

// AggregateState is the tri-state summary of a group's selection against
// its eligible (non-disabled) items.
type AggregateState int

const (
	AggregateNone AggregateState = iota
	AggregateSome
	AggregateAll
)

func (s AggregateState) String() string {
	switch s {
	case AggregateAll:
		return "all"
	case AggregateSome:
		return "some"
	default:
		return "none"
	}
}

// DeriveAggregate computes the tri-state from the selection size and the
// eligible item count. It is a pure function and is recomputed on every
// read; nothing caches it. An empty group reports None, never All.
func DeriveAggregate(selected, eligible int) AggregateState {
	if selected <= 0 {
		return AggregateNone
	}
	if selected == eligible {
		return AggregateAll
	}
	return AggregateSome
}
