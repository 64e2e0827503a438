package models

import "time"

// Normalization fills caller-omitted fields once, when an entity enters the
// store, so every downstream derivation can assume fully populated records.

// NormalizeIngredient applies defaults and clamps stock to a non-negative
// value. now seeds LastRestocked when the caller left it unset.
func NormalizeIngredient(ing *Ingredient, now time.Time) {
	if ing.CurrentStock < 0 {
		ing.CurrentStock = 0
	}
	if ing.Category == "" {
		ing.Category = CategoryFresh
	}
	if ing.Priority == "" {
		ing.Priority = PriorityMedium
	}
	if ing.Unit == "" {
		ing.Unit = "pc"
	}
	if ing.LastRestocked.IsZero() {
		ing.LastRestocked = now
	}
}

// NormalizeProduct applies defaults for an elaborated product.
func NormalizeProduct(p *ElaboratedProduct, now time.Time) {
	if p.CurrentStock < 0 {
		p.CurrentStock = 0
	}
	if p.Category == "" {
		p.Category = CategoryMains
	}
	if p.YieldUnit == "" {
		p.YieldUnit = "portions"
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	for i := range p.Ingredients {
		r := &p.Ingredients[i]
		if r.WasteFactor < 0 {
			r.WasteFactor = 0
		}
		if r.WasteFactor > 1 {
			r.WasteFactor = 1
		}
		if r.TotalCost == 0 {
			r.TotalCost = r.Quantity * r.CostPerUnit
		}
	}
}

// NormalizeLocation applies defaults for a storage location.
func NormalizeLocation(l *StorageLocation) {
	if l.Type == "" {
		l.Type = LocationPantry
	}
	if l.CurrentUsage < 0 {
		l.CurrentUsage = 0
	}
}
