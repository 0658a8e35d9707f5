package group

// authority says who owns the value for the interaction being processed.
// It is resolved fresh at the start of every read and mutation rather than
// stored, so a host that starts supplying (or stops supplying) a value gets
// a well-defined answer each time instead of a stale one.
type authority int

const (
	// authorityOwned: the group persists the value itself.
	authorityOwned authority = iota
	// authorityExternal: the host's value is authoritative; the group
	// only notifies and never writes.
	authorityExternal
)

// resolveAuthority requires both a callback and a supplied value for
// external control. A callback without a value (or a value without a
// callback) degrades to owned state with notification, never an error.
func (g *Group) resolveAuthority() authority {
	if g.opts.OnChange != nil && g.external != nil {
		return authorityExternal
	}
	return authorityOwned
}
