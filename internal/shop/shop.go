package shop

// Category groups items in the shop sidebar.
type Category struct {
	ID   string
	Name string
	Icon string
}

// Item is one product in the catalog.
type Item struct {
	ID            string
	Name          string
	Price         float64
	Icon          string
	Category      string
	Description   string
	InventoryName string
}

// Catalog is the shop content pushed by the host.
type Catalog struct {
	Title      string
	Categories []Category
	Items      []Item
}

// ItemsFor returns the items in a category, or everything for an empty id.
func (c Catalog) ItemsFor(categoryID string) []Item {
	if categoryID == "" {
		return c.Items
	}
	var out []Item
	for _, item := range c.Items {
		if item.Category == categoryID {
			out = append(out, item)
		}
	}
	return out
}
