// Package fixtures holds the showcase item sets for the demo program.
package fixtures

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/choices/group"
)

// Story is one showcase configuration. Build returns a fresh controller so
// revisiting a story starts from its default state; notify receives every
// committed or observed mutation for display.
type Story struct {
	Name    string
	Helper  string
	Columns int
	Build   func(notify func(group.Value)) *group.Group
}

// Stories returns the showcase in display order.
func Stories() []Story {
	return []Story{
		{
			Name:   "checkbox-aggregate",
			Helper: "Pick as many as you like",
			Build: func(notify func(group.Value)) *group.Group {
				return group.New(group.Options{
					ID:   "toppings",
					Name: "Toppings",
					Items: []group.Item{
						{Key: "anchovies", Label: "Anchovies"},
						{Key: "basil", Label: "Basil"},
						{Key: "capers", Label: "Capers", Meta: "out of stock", Disabled: true},
						{Key: "mushrooms", Label: "Mushrooms"},
					},
					Input:    group.InputCheckbox,
					OnChange: notify,
					AggregateLabelFunc: func(s group.AggregateState) string {
						switch s {
						case group.AggregateAll:
							return "All toppings picked"
						case group.AggregateSome:
							return "Some toppings picked"
						default:
							return "Pick all toppings"
						}
					},
				})
			},
		},
		{
			Name:   "radio",
			Helper: "Exactly one speed applies",
			Build: func(notify func(group.Value)) *group.Group {
				dv := group.SingleValue("normal")
				return group.New(group.Options{
					ID:   "speed",
					Name: "Playback speed",
					Items: []group.Item{
						{Key: "slow", Label: "0.5x"},
						{Key: "normal", Label: "1x"},
						{Key: "fast", Label: "2x"},
					},
					Input:        group.InputRadio,
					DefaultValue: &dv,
					OnChange:     notify,
				})
			},
		},
		{
			Name:    "checkbox-columns",
			Helper:  "Generated hosts, two columns",
			Columns: 2,
			Build: func(notify func(group.Value)) *group.Group {
				return group.New(group.Options{
					ID:       "hosts",
					Name:     "Hosts",
					Items:    generatedHosts(8),
					Input:    group.InputCheckbox,
					OnChange: notify,
				})
			},
		},
		{
			Name:   "selector",
			Helper: "Selector presentation never shows the aggregate control",
			Build: func(notify func(group.Value)) *group.Group {
				return group.New(group.Options{
					ID:   "env",
					Name: "Environments",
					Items: []group.Item{
						{Key: "dev", Label: "Development"},
						{Key: "staging", Label: "Staging"},
						{Key: "prod", Label: "Production"},
					},
					Input:        group.InputCheckbox,
					Presentation: group.PresentationSelector,
					// the aggregate label is declared but the selector
					// presentation must ignore it
					AggregateLabel: "All environments",
					OnChange:       notify,
				})
			},
		},
		{
			Name:   "filter",
			Helper: "Type to narrow; selection survives the query",
			Build: func(notify func(group.Value)) *group.Group {
				return group.New(group.Options{
					ID:   "tags",
					Name: "Tags",
					Items: []group.Item{
						{Key: "groceries", Label: "groceries"},
						{Key: "transport", Label: "transport"},
						{Key: "utilities", Label: "utilities"},
						{Key: "dining", Label: "dining"},
						{Key: "travel", Label: "travel"},
					},
					Input:        group.InputCheckbox,
					Presentation: group.PresentationFilter,
					OnChange:     notify,
				})
			},
		},
		{
			Name:   "controlled",
			Helper: "The host owns the value and re-supplies it on change",
			Build: func(notify func(group.Value)) *group.Group {
				v := group.MultiValue("basil")
				var g *group.Group
				g = group.New(group.Options{
					ID:   "controlled-toppings",
					Name: "Toppings (controlled)",
					Items: []group.Item{
						{Key: "anchovies", Label: "Anchovies"},
						{Key: "basil", Label: "Basil"},
						{Key: "mushrooms", Label: "Mushrooms"},
					},
					Input: group.InputCheckbox,
					Value: &v,
					OnChange: func(next group.Value) {
						// external owner: observe, then re-supply
						notify(next)
						g.SetValue(next)
					},
					AggregateLabel: "Everything",
				})
				return g
			},
		},
	}
}

// Find returns the story with the given name, falling back to the first.
func Find(name string) (Story, int) {
	stories := Stories()
	for i, s := range stories {
		if s.Name == name {
			return s, i
		}
	}
	return stories[0], 0
}

func generatedHosts(n int) []group.Item {
	items := make([]group.Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, group.Item{
			Key:   uuid.NewString(),
			Label: fmt.Sprintf("host-%02d", i+1),
		})
	}
	return items
}
