// Package calculator prices a kitchen configuration from a fixed option
// catalog. Prices are starting-point estimates in EUR, not binding offers.
package calculator

// Item is one selectable option with its price contribution.
type Item struct {
	ID    string `json:"id"`
	Price int64  `json:"price"`
}

// Group is a set of options sharing a selection rule.
type Group struct {
	Items    []Item
	Multiple bool
}

func (g Group) find(id string) (Item, bool) {
	for _, it := range g.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Config holds every option group the wizard offers.
type Config struct {
	Sizes         Group
	Layouts       Group
	Colors        Group
	Worktops      Group
	Plumbing      Group
	Appliances    Group
	Installations Group
}

// DefaultConfig returns the production pricing table.
func DefaultConfig() Config {
	return Config{
		Sizes: Group{Items: []Item{
			{ID: "size_small", Price: 0},
			{ID: "size_medium", Price: 2000},
			{ID: "size_large", Price: 5000},
		}},
		Layouts: Group{Items: []Item{
			{ID: "layout_linear", Price: 0},
			{ID: "layout_l_shaped", Price: 800},
			{ID: "layout_u_shaped", Price: 1500},
			{ID: "layout_island", Price: 2500},
		}},
		Colors: Group{Items: []Item{
			{ID: "color_classic_white", Price: 0},
			{ID: "color_natural_wood", Price: 400},
			{ID: "color_graphite_grey", Price: 300},
			{ID: "color_anthracite", Price: 500},
		}},
		Worktops: Group{Items: []Item{
			{ID: "worktop_laminate", Price: 0},
			{ID: "worktop_quartz", Price: 1200},
			{ID: "worktop_granite", Price: 1800},
		}},
		Plumbing: Group{Items: []Item{
			{ID: "plumbing_standard", Price: 0},
			{ID: "plumbing_premium", Price: 600},
		}},
		Appliances: Group{Multiple: true, Items: []Item{
			{ID: "appliance_hob", Price: 800},
			{ID: "appliance_oven", Price: 600},
			{ID: "appliance_dishwasher", Price: 700},
			{ID: "appliance_fridge", Price: 900},
		}},
		Installations: Group{Items: []Item{
			{ID: "install_basic", Price: 810},
			{ID: "install_standard", Price: 1200},
			{ID: "install_premium", Price: 2000},
		}},
	}
}
