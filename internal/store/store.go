package store

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"brigade/internal/derive"
	"brigade/internal/models"

	"github.com/google/uuid"
)

// Store owns the raw entity collections and their persistence. Every
// mutation saves the affected collections, re-runs the derivation pipeline
// over one consistent snapshot, and notifies subscribers with the result.
// Derivation components only ever see read-only snapshots.
type Store struct {
	mu      sync.RWMutex
	backend Backend
	cfg     derive.AlertConfig
	now     func() time.Time

	chefs        []models.Chef
	ingredients  []models.Ingredient
	locations    []models.StorageLocation
	products     []models.ElaboratedProduct
	batches      []models.ProductionBatch
	consumptions []models.ConsumptionRecord

	shopping     []models.ShoppingItem
	weeklyBudget float64
	dismissed    map[string]bool

	derived    derive.Result
	alertStats models.AlertStats

	subs []func(derive.Result, time.Duration)
}

// New loads every collection from the backend and runs an initial recompute.
// A missing or unreadable key degrades to an empty collection; persistence
// problems never stop the pipeline.
func New(backend Backend, cfg derive.AlertConfig, defaultBudget float64) *Store {
	s := &Store{
		backend:      backend,
		cfg:          cfg,
		now:          time.Now,
		weeklyBudget: defaultBudget,
		dismissed:    make(map[string]bool),
	}

	loadJSON(backend, KeyChefs, &s.chefs)
	loadJSON(backend, KeyIngredients, &s.ingredients)
	loadJSON(backend, KeyLocations, &s.locations)
	loadJSON(backend, KeyProducts, &s.products)
	loadJSON(backend, KeyBatches, &s.batches)
	loadJSON(backend, KeyConsumptions, &s.consumptions)
	loadJSON(backend, KeyShopping, &s.shopping)

	var budget float64
	if loadJSON(backend, KeyBudget, &budget) {
		s.weeklyBudget = budget
	}
	var dismissed []string
	loadJSON(backend, KeyDismissed, &dismissed)
	for _, id := range dismissed {
		s.dismissed[id] = true
	}

	s.mu.Lock()
	s.recompute()
	s.mu.Unlock()
	return s
}

// Subscribe registers fn to run after every recompute with the fresh result
// and the time the derivation pass took. Subscribers are invoked
// synchronously, outside the store lock.
func (s *Store) Subscribe(fn func(derive.Result, time.Duration)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// ── Chefs ──

// AddChef creates a chef, generating an id when the caller left it empty.
// Chefs are never deleted.
func (s *Store) AddChef(chef models.Chef) models.Chef {
	if chef.ID == "" {
		chef.ID = uuid.NewString()
	}
	s.mutate(func() {
		s.chefs = append(s.chefs, chef)
		s.save(KeyChefs, s.chefs)
	})
	return chef
}

// UpdateChef replaces the chef with the same id.
func (s *Store) UpdateChef(chef models.Chef) error {
	return s.mutateErr(func() error {
		for i := range s.chefs {
			if s.chefs[i].ID == chef.ID {
				s.chefs[i] = chef
				s.save(KeyChefs, s.chefs)
				return nil
			}
		}
		return fmt.Errorf("chef %s not found", chef.ID)
	})
}

// Chefs returns a copy of the chef collection.
func (s *Store) Chefs() []models.Chef {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Chef(nil), s.chefs...)
}

// ── Ingredients ──

// AddIngredient normalizes and stores a new ingredient.
func (s *Store) AddIngredient(ing models.Ingredient) models.Ingredient {
	if ing.ID == "" {
		ing.ID = uuid.NewString()
	}
	models.NormalizeIngredient(&ing, s.now())
	s.mutate(func() {
		s.ingredients = append(s.ingredients, ing)
		s.save(KeyIngredients, s.ingredients)
	})
	return ing
}

// UpdateIngredient replaces the ingredient with the same id, re-applying
// normalization so the stock clamp holds on every edit.
func (s *Store) UpdateIngredient(ing models.Ingredient) error {
	models.NormalizeIngredient(&ing, s.now())
	return s.mutateErr(func() error {
		for i := range s.ingredients {
			if s.ingredients[i].ID == ing.ID {
				s.ingredients[i] = ing
				s.save(KeyIngredients, s.ingredients)
				return nil
			}
		}
		return fmt.Errorf("ingredient %s not found", ing.ID)
	})
}

// UpdateIngredientStock sets an ingredient's stock level, clamped at zero.
func (s *Store) UpdateIngredientStock(id string, stock float64) error {
	if stock < 0 {
		stock = 0
	}
	return s.mutateErr(func() error {
		for i := range s.ingredients {
			if s.ingredients[i].ID == id {
				s.ingredients[i].CurrentStock = stock
				s.save(KeyIngredients, s.ingredients)
				return nil
			}
		}
		return fmt.Errorf("ingredient %s not found", id)
	})
}

// MoveIngredient reassigns an ingredient to another storage location.
func (s *Store) MoveIngredient(id, locationID string) error {
	return s.mutateErr(func() error {
		for i := range s.ingredients {
			if s.ingredients[i].ID == id {
				s.ingredients[i].StorageLocationID = locationID
				s.save(KeyIngredients, s.ingredients)
				return nil
			}
		}
		return fmt.Errorf("ingredient %s not found", id)
	})
}

// DeleteIngredient removes an ingredient; its shopping item disappears on
// the recompute that follows.
func (s *Store) DeleteIngredient(id string) error {
	return s.mutateErr(func() error {
		for i := range s.ingredients {
			if s.ingredients[i].ID == id {
				s.ingredients = append(s.ingredients[:i], s.ingredients[i+1:]...)
				s.save(KeyIngredients, s.ingredients)
				return nil
			}
		}
		return fmt.Errorf("ingredient %s not found", id)
	})
}

// Ingredients returns a copy of the ingredient collection.
func (s *Store) Ingredients() []models.Ingredient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Ingredient(nil), s.ingredients...)
}

// ── Storage locations ──

// AddLocation normalizes and stores a new storage location.
func (s *Store) AddLocation(loc models.StorageLocation) models.StorageLocation {
	if loc.ID == "" {
		loc.ID = uuid.NewString()
	}
	models.NormalizeLocation(&loc)
	s.mutate(func() {
		s.locations = append(s.locations, loc)
		s.save(KeyLocations, s.locations)
	})
	return loc
}

// UpdateLocation replaces the location with the same id.
func (s *Store) UpdateLocation(loc models.StorageLocation) error {
	models.NormalizeLocation(&loc)
	return s.mutateErr(func() error {
		for i := range s.locations {
			if s.locations[i].ID == loc.ID {
				s.locations[i] = loc
				s.save(KeyLocations, s.locations)
				return nil
			}
		}
		return fmt.Errorf("storage location %s not found", loc.ID)
	})
}

// DeleteLocation removes a storage location. References from ingredients and
// products are left dangling and degrade to "Unknown" in derived views.
func (s *Store) DeleteLocation(id string) error {
	return s.mutateErr(func() error {
		for i := range s.locations {
			if s.locations[i].ID == id {
				s.locations = append(s.locations[:i], s.locations[i+1:]...)
				s.save(KeyLocations, s.locations)
				return nil
			}
		}
		return fmt.Errorf("storage location %s not found", id)
	})
}

// Locations returns a copy of the storage location collection.
func (s *Store) Locations() []models.StorageLocation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.StorageLocation(nil), s.locations...)
}

// ── Elaborated products ──

// AddProduct normalizes and stores a new elaborated product, active by
// default.
func (s *Store) AddProduct(p models.ElaboratedProduct) models.ElaboratedProduct {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.IsActive = true
	models.NormalizeProduct(&p, s.now())
	s.mutate(func() {
		s.products = append(s.products, p)
		s.save(KeyProducts, s.products)
	})
	return p
}

// UpdateProduct replaces the product with the same id, refreshing UpdatedAt.
func (s *Store) UpdateProduct(p models.ElaboratedProduct) error {
	models.NormalizeProduct(&p, s.now())
	return s.mutateErr(func() error {
		for i := range s.products {
			if s.products[i].ID == p.ID {
				p.CreatedAt = s.products[i].CreatedAt
				s.products[i] = p
				s.save(KeyProducts, s.products)
				return nil
			}
		}
		return fmt.Errorf("product %s not found", p.ID)
	})
}

// DeleteProduct removes an elaborated product.
func (s *Store) DeleteProduct(id string) error {
	return s.mutateErr(func() error {
		for i := range s.products {
			if s.products[i].ID == id {
				s.products = append(s.products[:i], s.products[i+1:]...)
				s.save(KeyProducts, s.products)
				return nil
			}
		}
		return fmt.Errorf("product %s not found", id)
	})
}

// Products returns a copy of the elaborated product collection.
func (s *Store) Products() []models.ElaboratedProduct {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ElaboratedProduct(nil), s.products...)
}

// ── Production and consumption ──

// CreateBatch records one production run of a product. The batch expiry is
// the production date plus the product's shelf life, its cost the sum of the
// ingredient costs, and the product's stock rises by the batch quantity.
// Batches are immutable once created.
func (s *Store) CreateBatch(productID, chefID string, quantity float64, used []models.BatchIngredient, notes string) (models.ProductionBatch, error) {
	now := s.now()
	id := uuid.NewString()

	var totalCost float64
	for _, u := range used {
		totalCost += u.Cost
	}

	var batch models.ProductionBatch
	err := s.mutateErr(func() error {
		for i := range s.products {
			if s.products[i].ID != productID {
				continue
			}
			p := &s.products[i]
			batch = models.ProductionBatch{
				ID:                id,
				ProductID:         productID,
				BatchNumber:       "B-" + id[:8],
				Quantity:          quantity,
				Unit:              p.YieldUnit,
				IngredientsUsed:   used,
				ProductionDate:    now,
				ExpiryDate:        now.AddDate(0, 0, p.ShelfLife),
				ResponsibleChefID: chefID,
				QualityCheck:      true,
				Notes:             notes,
				TotalCost:         totalCost,
				Efficiency:        100,
			}
			s.batches = append(s.batches, batch)
			p.CurrentStock += quantity
			p.UpdatedAt = now
			s.save(KeyBatches, s.batches)
			s.save(KeyProducts, s.products)
			return nil
		}
		return fmt.Errorf("product %s not found", productID)
	})
	return batch, err
}

// Batches returns a copy of the production batch collection.
func (s *Store) Batches() []models.ProductionBatch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ProductionBatch(nil), s.batches...)
}

// RecordConsumption records stock leaving a product's inventory. Revenue is
// quantity times the product's price; the cost share is allocated from the
// batch proportionally to the quantity taken. The product's stock drops by
// the quantity, floored at zero.
func (s *Store) RecordConsumption(productID, batchID string, quantity float64, customerType models.CustomerType, customerID, notes string) (models.ConsumptionRecord, error) {
	now := s.now()

	var rec models.ConsumptionRecord
	err := s.mutateErr(func() error {
		var batch *models.ProductionBatch
		for i := range s.batches {
			if s.batches[i].ID == batchID {
				batch = &s.batches[i]
				break
			}
		}
		if batch == nil {
			return fmt.Errorf("batch %s not found", batchID)
		}

		for i := range s.products {
			if s.products[i].ID != productID {
				continue
			}
			p := &s.products[i]

			revenue := quantity * p.Price
			var allocatedCost float64
			if batch.Quantity > 0 {
				allocatedCost = quantity / batch.Quantity * batch.TotalCost
			}

			rec = models.ConsumptionRecord{
				ID:              uuid.NewString(),
				ProductID:       productID,
				BatchID:         batchID,
				Quantity:        quantity,
				Unit:            p.YieldUnit,
				ConsumptionDate: now,
				CustomerType:    customerType,
				CustomerID:      customerID,
				Notes:           notes,
				Revenue:         revenue,
				Profit:          revenue - allocatedCost,
			}
			if customerType == models.ConsumerWaste {
				rec.WasteReason = notes
			}

			s.consumptions = append(s.consumptions, rec)
			p.CurrentStock -= quantity
			if p.CurrentStock < 0 {
				p.CurrentStock = 0
			}
			p.UpdatedAt = now
			s.save(KeyConsumptions, s.consumptions)
			s.save(KeyProducts, s.products)
			return nil
		}
		return fmt.Errorf("product %s not found", productID)
	})
	return rec, err
}

// Consumptions returns a copy of the consumption record collection.
func (s *Store) Consumptions() []models.ConsumptionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ConsumptionRecord(nil), s.consumptions...)
}

// ── Shopping list ──

// ToggleShoppingItem flips the completed flag of the item for an ingredient.
// The flag survives every later regeneration of the list.
func (s *Store) ToggleShoppingItem(ingredientID string) error {
	return s.mutateErr(func() error {
		for i := range s.shopping {
			if s.shopping[i].IngredientID == ingredientID {
				s.shopping[i].Completed = !s.shopping[i].Completed
				return nil
			}
		}
		return fmt.Errorf("no shopping item for ingredient %s", ingredientID)
	})
}

// CompleteChefItems marks every shopping item owned by a chef as completed.
func (s *Store) CompleteChefItems(chefID string) {
	s.mutate(func() {
		for i := range s.shopping {
			if s.shopping[i].ResponsibleChefID == chefID {
				s.shopping[i].Completed = true
			}
		}
	})
}

// ShoppingList returns the current derived shopping list.
func (s *Store) ShoppingList() []models.ShoppingItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ShoppingItem(nil), s.shopping...)
}

// ── Alerts ──

// DismissAlert adds an alert id to the durable dismissed set; the alert is
// filtered out of every recompute from now on.
func (s *Store) DismissAlert(id string) {
	s.mutate(func() {
		s.dismissed[id] = true
		s.saveDismissed()
	})
}

// Alerts returns the current alert list with dismissed alerts filtered out.
func (s *Store) Alerts() []models.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Alert(nil), s.derived.Alerts...)
}

// AlertStats returns alert totals by severity, including how many generated
// alerts are currently dismissed.
func (s *Store) AlertStats() models.AlertStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.alertStats
}

// ── Budget and derived state ──

// WeeklyBudget returns the configured weekly shopping budget.
func (s *Store) WeeklyBudget() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.weeklyBudget
}

// SetWeeklyBudget updates and persists the weekly shopping budget.
func (s *Store) SetWeeklyBudget(budget float64) {
	s.mutate(func() {
		s.weeklyBudget = budget
		s.save(KeyBudget, s.weeklyBudget)
	})
}

// Derived returns the result of the latest recompute pass.
func (s *Store) Derived() derive.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.derived
}

// Stats returns the aggregate stats from the latest recompute pass.
func (s *Store) Stats() models.KitchenStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.derived.Stats
}

// ── Internals ──

// mutate runs fn under the write lock, recomputes, then notifies
// subscribers outside the lock.
func (s *Store) mutate(fn func()) {
	s.mu.Lock()
	fn()
	start := time.Now()
	s.recompute()
	elapsed := time.Since(start)
	result := s.derived
	subs := s.subs
	s.mu.Unlock()

	for _, sub := range subs {
		sub(result, elapsed)
	}
}

func (s *Store) mutateErr(fn func() error) error {
	s.mu.Lock()
	err := fn()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	start := time.Now()
	s.recompute()
	elapsed := time.Since(start)
	result := s.derived
	subs := s.subs
	s.mu.Unlock()

	for _, sub := range subs {
		sub(result, elapsed)
	}
	return nil
}

// recompute re-derives every downstream collection from the raw state.
// Caller must hold the write lock, which is what makes the snapshot
// consistent for the whole pass.
func (s *Store) recompute() {
	snap := derive.Snapshot{
		Chefs:        s.chefs,
		Ingredients:  s.ingredients,
		Locations:    s.locations,
		Products:     s.products,
		Batches:      s.batches,
		Consumptions: s.consumptions,
	}

	result := derive.All(snap, s.shopping, s.weeklyBudget, s.cfg, s.now())

	// Dismissals are applied as a post-generation filter, never inside the
	// engine itself.
	stats := models.AlertStats{Total: len(result.Alerts)}
	kept := result.Alerts[:0]
	for _, alert := range result.Alerts {
		if s.dismissed[alert.ID] {
			stats.Dismissed++
			continue
		}
		switch alert.Severity {
		case models.SeverityCritical:
			stats.Critical++
		case models.SeverityWarning:
			stats.Warning++
		case models.SeverityInfo:
			stats.Info++
		}
		kept = append(kept, alert)
	}
	result.Alerts = kept

	s.shopping = result.ShoppingList
	s.save(KeyShopping, s.shopping)

	s.derived = result
	s.alertStats = stats
}

func (s *Store) save(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("store: marshal %s: %v", key, err)
		return
	}
	if err := s.backend.Save(key, data); err != nil {
		log.Printf("store: save %s: %v", key, err)
	}
}

func (s *Store) saveDismissed() {
	ids := make([]string, 0, len(s.dismissed))
	for id := range s.dismissed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	s.save(KeyDismissed, ids)
}

// loadJSON reads and decodes one key into v, reporting whether data was
// present. Read or decode failures are logged and treated as "no data".
func loadJSON(backend Backend, key string, v any) bool {
	data, err := backend.Load(key)
	if err != nil {
		log.Printf("store: load %s: %v", key, err)
		return false
	}
	if len(data) == 0 {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("store: decode %s: %v", key, err)
		return false
	}
	return true
}
