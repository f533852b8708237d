// Package catalog holds the immutable recipe book: what each flan is made
// of, how it is baked, and the staged pipeline an order walks through.
package catalog

import (
	"fmt"
	"sort"
	"time"

	"bakehouse/internal/models"
)

// Ingredient is one recipe component with its quantity as displayed.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// BakeSpec describes how a recipe goes through the oven.
type BakeSpec struct {
	Mode         string `json:"mode"`
	TemperatureC int    `json:"temperature_c"`
	OvenTime     string `json:"oven_time"` // display value, e.g. "40min"
}

// Stage is one pipeline step: where progress lands when the step begins and
// how long the simulated work takes.
type Stage struct {
	ID          models.OrderStage `json:"id"`
	Description string            `json:"description"`
	Checkpoint  int               `json:"checkpoint"` // progress % on entry
	Duration    time.Duration     `json:"duration"`
}

// Recipe is a single entry of the book. Callers must treat it as read-only.
type Recipe struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Icon        string       `json:"icon"`
	Ingredients []Ingredient `json:"ingredients"`
	Bake        BakeSpec     `json:"bake"`
	Stages      []Stage      `json:"stages"`
}

// Catalog is the recipe book. Immutable once built, safe for concurrent use.
type Catalog struct {
	recipes map[string]Recipe
	ids     []string // listing order
}

// defaultStages is the classic flan pipeline. Only the oven time varies
// between recipes.
func defaultStages(bake time.Duration) []Stage {
	return []Stage{
		{models.StageGathering, "Gathering ingredients", 10, 500 * time.Millisecond},
		{models.StageCaramelizing, "Caramelizing the mold", 25, 800 * time.Millisecond},
		{models.StageMixing, "Mixing the custard", 50, 600 * time.Millisecond},
		{models.StagePouring, "Pouring into the mold", 60, 300 * time.Millisecond},
		{models.StageBaking, "Baking in a bain-marie", 85, bake},
		{models.StageCooling, "Cooling", 95, 700 * time.Millisecond},
		{models.StageUnmolding, "Unmolding", 100, 400 * time.Millisecond},
	}
}

// builtins returns the four house recipes.
func builtins() []Recipe {
	return []Recipe{
		{
			ID:   "flan_vanilla",
			Name: "Vanilla Flan",
			Icon: "🍮",
			Ingredients: []Ingredient{
				{"eggs", "4"}, {"milk", "500mL"}, {"sugar", "100g"}, {"vanilla", "1 pod"},
			},
			Bake:   BakeSpec{Mode: "bain-marie", TemperatureC: 150, OvenTime: "40min"},
			Stages: defaultStages(1500 * time.Millisecond),
		},
		{
			ID:   "flan_orange",
			Name: "Orange Flan",
			Icon: "🍊",
			Ingredients: []Ingredient{
				{"eggs", "4"}, {"milk", "500mL"}, {"sugar", "100g"}, {"oranges", "2"}, {"vanilla", "1 pod"},
			},
			Bake:   BakeSpec{Mode: "bain-marie", TemperatureC: 150, OvenTime: "45min"},
			Stages: defaultStages(1600 * time.Millisecond),
		},
		{
			ID:   "flan_chocolate",
			Name: "Chocolate Flan",
			Icon: "🍫",
			Ingredients: []Ingredient{
				{"eggs", "4"}, {"milk", "500mL"}, {"sugar", "80g"}, {"chocolate", "150g"},
			},
			Bake:   BakeSpec{Mode: "bain-marie", TemperatureC: 160, OvenTime: "50min"},
			Stages: defaultStages(1700 * time.Millisecond),
		},
		{
			ID:   "flan_caramel",
			Name: "Caramel Flan",
			Icon: "🥧",
			Ingredients: []Ingredient{
				{"eggs", "6"}, {"milk", "750mL"}, {"sugar", "150g"}, {"caramel", "100g"},
			},
			Bake:   BakeSpec{Mode: "bain-marie", TemperatureC: 150, OvenTime: "55min"},
			Stages: defaultStages(1800 * time.Millisecond),
		},
	}
}

// New builds a catalog from the house recipes plus any extras. An extra with
// a known id replaces the house version in place; new ids are appended.
func New(extra ...Recipe) (*Catalog, error) {
	c := &Catalog{recipes: make(map[string]Recipe)}
	for _, r := range builtins() {
		c.recipes[r.ID] = r
		c.ids = append(c.ids, r.ID)
	}
	for _, r := range extra {
		if err := validate(r); err != nil {
			return nil, err
		}
		if _, known := c.recipes[r.ID]; !known {
			c.ids = append(c.ids, r.ID)
		}
		c.recipes[r.ID] = r
	}
	return c, nil
}

// validate rejects recipes whose stage table cannot drive an order to done.
func validate(r Recipe) error {
	if r.ID == "" || r.Name == "" {
		return fmt.Errorf("recipe %q: id and name are required", r.ID)
	}
	if len(r.Stages) == 0 {
		return fmt.Errorf("recipe %q: empty stage table", r.ID)
	}
	prev := 0
	for i, st := range r.Stages {
		if st.ID == "" {
			return fmt.Errorf("recipe %q: stage %d has no id", r.ID, i)
		}
		if st.Checkpoint <= prev || st.Checkpoint > 100 {
			return fmt.Errorf("recipe %q: stage %q checkpoint %d not in ascending (0,100]", r.ID, st.ID, st.Checkpoint)
		}
		if st.Duration < 0 {
			return fmt.Errorf("recipe %q: stage %q has negative duration", r.ID, st.ID)
		}
		prev = st.Checkpoint
	}
	if prev != 100 {
		return fmt.Errorf("recipe %q: last checkpoint is %d, want 100", r.ID, prev)
	}
	return nil
}

// Get returns the recipe by id.
func (c *Catalog) Get(id string) (Recipe, bool) {
	r, ok := c.recipes[id]
	return r, ok
}

// List returns every recipe in listing order.
func (c *Catalog) List() []Recipe {
	out := make([]Recipe, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.recipes[id])
	}
	return out
}

// Len reports the number of recipes in the book.
func (c *Catalog) Len() int {
	return len(c.ids)
}

// ExtraRecipe is the shape accepted from configuration for additional
// recipes. It reuses the classic pipeline with a custom oven duration.
type ExtraRecipe struct {
	ID           string            `mapstructure:"id"`
	Name         string            `mapstructure:"name"`
	Icon         string            `mapstructure:"icon"`
	Mode         string            `mapstructure:"mode"`
	TemperatureC int               `mapstructure:"temperature_c"`
	OvenTime     string            `mapstructure:"oven_time"`
	BakeMs       int               `mapstructure:"bake_ms"`
	Ingredients  map[string]string `mapstructure:"ingredients"`
}

// FromExtra converts a configured recipe onto the classic pipeline.
func FromExtra(e ExtraRecipe) Recipe {
	if e.Icon == "" {
		e.Icon = "🍮"
	}
	if e.Mode == "" {
		e.Mode = "bain-marie"
	}
	if e.TemperatureC == 0 {
		e.TemperatureC = 150
	}
	if e.BakeMs <= 0 {
		e.BakeMs = 1500
	}

	names := make([]string, 0, len(e.Ingredients))
	for name := range e.Ingredients {
		names = append(names, name)
	}
	sort.Strings(names)
	ingredients := make([]Ingredient, 0, len(names))
	for _, name := range names {
		ingredients = append(ingredients, Ingredient{Name: name, Quantity: e.Ingredients[name]})
	}

	return Recipe{
		ID:          e.ID,
		Name:        e.Name,
		Icon:        e.Icon,
		Ingredients: ingredients,
		Bake:        BakeSpec{Mode: e.Mode, TemperatureC: e.TemperatureC, OvenTime: e.OvenTime},
		Stages:      defaultStages(time.Duration(e.BakeMs) * time.Millisecond),
	}
}
