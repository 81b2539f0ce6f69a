package catalog

// Item is a single rated statement within a dimension. Reverse marks a risk
// indicator: a high rating is undesirable rather than desirable.
type Item struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	SubLabel string `json:"subLabel,omitempty"`
	Reverse  bool   `json:"reverse,omitempty"`
}

type Dimension struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Items       []Item `json:"items"`
}

// Catalog is the ordered questionnaire. It is never mutated after construction.
type Catalog struct {
	Dimensions []Dimension `json:"dimensions"`
}

func (c Catalog) Len() int {
	return len(c.Dimensions)
}

// Dimension returns the dimension at index, or false when out of range.
func (c Catalog) Dimension(index int) (Dimension, bool) {
	if index < 0 || index >= len(c.Dimensions) {
		return Dimension{}, false
	}
	return c.Dimensions[index], true
}

func (c Catalog) DimensionIndex(id string) int {
	for i, dim := range c.Dimensions {
		if dim.ID == id {
			return i
		}
	}
	return -1
}

func (c Catalog) ItemCount() int {
	n := 0
	for _, dim := range c.Dimensions {
		n += len(dim.Items)
	}
	return n
}

// Items returns every item in catalog order.
func (c Catalog) Items() []Item {
	out := make([]Item, 0, c.ItemCount())
	for _, dim := range c.Dimensions {
		out = append(out, dim.Items...)
	}
	return out
}

func (c Catalog) Lookup(itemID string) (Item, bool) {
	for _, dim := range c.Dimensions {
		for _, it := range dim.Items {
			if it.ID == itemID {
				return it, true
			}
		}
	}
	return Item{}, false
}

// Clone returns a deep copy so callers can never share item slices.
func (c Catalog) Clone() Catalog {
	out := Catalog{Dimensions: make([]Dimension, len(c.Dimensions))}
	for i, dim := range c.Dimensions {
		dim.Items = append([]Item(nil), dim.Items...)
		out.Dimensions[i] = dim
	}
	return out
}
