package reward

// ItemType identifies a growth-resource item.
type ItemType string

const (
	ItemSeed       ItemType = "seed"
	ItemWater      ItemType = "water"
	ItemSunlight   ItemType = "sunlight"
	ItemNutrients  ItemType = "nutrients"
	ItemFertilizer ItemType = "fertilizer"
	ItemLove       ItemType = "love"
)

// AllItemTypes returns all item types in display order.
func AllItemTypes() []ItemType {
	return []ItemType{ItemSeed, ItemWater, ItemSunlight, ItemNutrients, ItemFertilizer, ItemLove}
}

// IsValid reports whether t is one of the known item types.
func (t ItemType) IsValid() bool {
	switch t {
	case ItemSeed, ItemWater, ItemSunlight, ItemNutrients, ItemFertilizer, ItemLove:
		return true
	}
	return false
}

// DisplayName returns a human-readable label for the item type.
func (t ItemType) DisplayName() string {
	switch t {
	case ItemSeed:
		return "Seed"
	case ItemWater:
		return "Water"
	case ItemSunlight:
		return "Sunlight"
	case ItemNutrients:
		return "Nutrients"
	case ItemFertilizer:
		return "Fertilizer"
	case ItemLove:
		return "Love"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the item type.
func (t ItemType) Icon() string {
	switch t {
	case ItemSeed:
		return "🌰"
	case ItemWater:
		return "💧"
	case ItemSunlight:
		return "☀️"
	case ItemNutrients:
		return "🧪"
	case ItemFertilizer:
		return "🌿"
	case ItemLove:
		return "❤️"
	default:
		return "✦"
	}
}
