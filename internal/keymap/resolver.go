package keymap

import "slices"

// Conflict is a key bound to more than one action. The last binding wins.
type Conflict struct {
	Key     string
	Actions []Action
}

// Resolver answers key lookups for the radio.
type Resolver struct {
	actions   map[string]Action
	keys      map[Action][]string
	conflicts []Conflict
}

// NewResolver indexes bindings in order.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action),
		keys:    make(map[Action][]string),
	}
	claimed := make(map[string][]Action)
	var order []string
	for _, b := range bindings {
		for _, k := range b.Keys {
			if _, seen := claimed[k]; !seen {
				order = append(order, k)
			}
			if !slices.Contains(claimed[k], b.Action) {
				claimed[k] = append(claimed[k], b.Action)
			}
			r.actions[k] = b.Action
			if !slices.Contains(r.keys[b.Action], k) {
				r.keys[b.Action] = append(r.keys[b.Action], k)
			}
		}
	}
	for _, k := range order {
		if len(claimed[k]) > 1 {
			r.conflicts = append(r.conflicts, Conflict{Key: k, Actions: claimed[k]})
		}
	}
	return r
}

// Default returns a resolver over Bindings.
func Default() *Resolver {
	return NewResolver(Bindings)
}

// Resolve returns the action bound to key, or "" when unbound.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// KeysFor returns the keys bound to action in binding order.
func (r *Resolver) KeysFor(action Action) []string {
	return r.keys[action]
}

// Conflicts lists keys claimed by several actions, in first-seen order.
func (r *Resolver) Conflicts() []Conflict {
	return r.conflicts
}
