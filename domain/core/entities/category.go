package entities

// Category is a sidebar entry accumulated as classification runs produce
// new category ids. ID is the join key to Document.PrimaryCategoryID and
// Document.Categories entries.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	IsNew bool   `json:"isNew"`
}

// MergeCategories unions two category lists by id. Existing entries keep
// their position and flags; genuinely new entries are appended after them
// with IsNew set. The result contains each id exactly once.
func MergeCategories(existing, incoming []Category) []Category {
	merged := make([]Category, 0, len(existing)+len(incoming))
	seen := make(map[string]bool, len(existing))

	for _, c := range existing {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		merged = append(merged, c)
	}

	for _, c := range incoming {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		c.IsNew = true
		merged = append(merged, c)
	}

	return merged
}
