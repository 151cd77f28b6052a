package catalog

// Default returns the produce list every franchise sells. The slice is
// rebuilt per call so callers can never mutate the reference data of
// another caller.
func Default() []Item {
	return []Item{
		{ID: "1", Name: "Apple", Category: CategoryFruit, PricePaise: 299, Unit: "kg", Emoji: "🍎", Stock: 150},
		{ID: "2", Name: "Banana", Category: CategoryFruit, PricePaise: 149, Unit: "kg", Emoji: "🍌", Stock: 200},
		{ID: "3", Name: "Orange", Category: CategoryFruit, PricePaise: 349, Unit: "kg", Emoji: "🍊", Stock: 180},
		{ID: "4", Name: "Grapes", Category: CategoryFruit, PricePaise: 499, Unit: "kg", Emoji: "🍇", Stock: 80},
		{ID: "5", Name: "Tomato", Category: CategoryVegetable, PricePaise: 249, Unit: "kg", Emoji: "🍅", Stock: 120},
		{ID: "6", Name: "Potato", Category: CategoryVegetable, PricePaise: 199, Unit: "kg", Emoji: "🥔", Stock: 300},
		{ID: "7", Name: "Pepper", Category: CategoryVegetable, PricePaise: 399, Unit: "kg", Emoji: "🌶️", Stock: 90},
		{ID: "8", Name: "Mango", Category: CategoryFruit, PricePaise: 599, Unit: "kg", Emoji: "🥭", Stock: 60},
		{ID: "9", Name: "Strawberry", Category: CategoryFruit, PricePaise: 699, Unit: "kg", Emoji: "🍓", Stock: 45},
		{ID: "10", Name: "Lemon", Category: CategoryFruit, PricePaise: 279, Unit: "kg", Emoji: "🍋", Stock: 110},
		{ID: "11", Name: "Watermelon", Category: CategoryFruit, PricePaise: 449, Unit: "piece", Emoji: "🍉", Stock: 25},
		{ID: "12", Name: "Carrot", Category: CategoryVegetable, PricePaise: 179, Unit: "kg", Emoji: "🥕", Stock: 160},
	}
}

// FindByID returns the matching item and true, or a zero Item and
// false when the id is unknown.
func FindByID(items []Item, id string) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
