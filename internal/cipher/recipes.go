package cipher

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Recipe is a named, reusable pipeline.
type Recipe struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Pipeline    Pipeline `json:"pipeline" yaml:"pipeline"`
}

// RecipeBook holds recipes in memory. It never writes them anywhere; the
// book is filled from configuration at startup.
type RecipeBook struct {
	recipes map[string]*Recipe
	mu      sync.RWMutex
}

// NewRecipeBook creates an empty recipe book.
func NewRecipeBook() *RecipeBook {
	return &RecipeBook{
		recipes: make(map[string]*Recipe),
	}
}

// recipeKey folds a recipe name. Config keys arrive lowercased, so names
// are matched without regard to case.
func recipeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Add validates recipe and stores it under its lowercased name.
func (rb *RecipeBook) Add(recipe *Recipe) error {
	if recipe == nil {
		return fmt.Errorf("cannot add nil recipe")
	}
	name := recipeKey(recipe.Name)
	if name == "" {
		return fmt.Errorf("recipe name cannot be empty")
	}
	if err := recipe.Pipeline.Validate(); err != nil {
		return fmt.Errorf("recipe %s: %w", name, err)
	}

	rb.mu.Lock()
	defer rb.mu.Unlock()

	if _, exists := rb.recipes[name]; exists {
		return fmt.Errorf("recipe %s is already defined", name)
	}

	recipe.Name = name
	rb.recipes[name] = recipe
	return nil
}

// Get retrieves a recipe by name, ignoring case.
func (rb *RecipeBook) Get(name string) (*Recipe, bool) {
	rb.mu.RLock()
	defer rb.mu.RUnlock()

	recipe, exists := rb.recipes[recipeKey(name)]
	return recipe, exists
}

// List returns all recipes sorted by name
func (rb *RecipeBook) List() []*Recipe {
	rb.mu.RLock()
	defer rb.mu.RUnlock()

	recipes := make([]*Recipe, 0, len(rb.recipes))
	for _, recipe := range rb.recipes {
		recipes = append(recipes, recipe)
	}

	sort.Slice(recipes, func(i, j int) bool {
		return recipes[i].Name < recipes[j].Name
	})

	return recipes
}

// Len returns the number of recipes.
func (rb *RecipeBook) Len() int {
	rb.mu.RLock()
	defer rb.mu.RUnlock()

	return len(rb.recipes)
}
