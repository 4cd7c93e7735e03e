package catalog

// DefaultTemplates lists the ingredients available when no config overrides them.
func DefaultTemplates() []Template {
	return []Template{
		{ID: "top-bun", Name: "Top Bun", Icon: "🍞", Color: "#e2ab6f"},
		{ID: "lettuce", Name: "Lettuce", Icon: "🥬", Color: "#90ee90"},
		{ID: "tomato", Name: "Tomato", Icon: "🍅", Color: "#ff6347"},
		{ID: "cheese", Name: "Cheese", Icon: "🧀", Color: "#ffcc00"},
		{ID: "patty", Name: "Patty", Icon: "🍔", Color: "#a0522d"},
		{ID: "bottom-bun", Name: "Bottom Bun", Icon: "🍞", Color: "#e2ab6f"},
		{ID: "onion", Name: "Onion", Icon: "🧅", Color: "#d8bfd8"},
		{ID: "pickles", Name: "Pickles", Icon: "🥒", Color: "#8fbc8f"},
	}
}
