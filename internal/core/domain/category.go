package domain

// Category is a fixed classification tag for an expense.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryOther is the designated fallback category for unknown ids.
const CategoryOther = "other"

// expenseCategories is the fixed category set. Immutable for the process
// lifetime; order matters for UI display.
var expenseCategories = []Category{
	{ID: "food", Name: "Food & Dining"},
	{ID: "transport", Name: "Transportation"},
	{ID: "shopping", Name: "Shopping"},
	{ID: "bills", Name: "Bills & Utilities"},
	{ID: "entertainment", Name: "Entertainment"},
	{ID: "healthcare", Name: "Healthcare"},
	{ID: CategoryOther, Name: "Other"},
}

// Categories returns the fixed category set.
func Categories() []Category {
	out := make([]Category, len(expenseCategories))
	copy(out, expenseCategories)
	return out
}

// IsValidCategory reports whether id is a member of the fixed category set.
func IsValidCategory(id string) bool {
	for _, c := range expenseCategories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// CategoryByID resolves a category id to its display metadata. Unknown ids
// resolve to the "other" category; the stored id is never rewritten.
func CategoryByID(id string) Category {
	for _, c := range expenseCategories {
		if c.ID == id {
			return c
		}
	}
	return expenseCategories[len(expenseCategories)-1]
}
