package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/juanmaberdugo/reto-7/internal/models"
)

var (
	ErrItemExists      = errors.New("item already exists in the menu")
	ErrItemNotFound    = errors.New("item does not exist in the menu")
	ErrInvalidCategory = errors.New("invalid category")
)

// Record is the persisted form of a menu item: the catalog keeps only the
// name and price, grouped by category.
type Record struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}

// Catalog maps each category to its records in insertion order. All three
// category keys are always present, empty when unused.
type Catalog map[models.Category][]Record

// Store persists the menu catalog to a JSON file. Every mutation rewrites
// the whole file; a single process and a single writer are assumed.
type Store struct {
	path     string
	catalog  Catalog
	logger   *slog.Logger
	validate *validator.Validate
}

// Open loads the catalog at path. A missing or unreadable or malformed file
// yields an empty catalog rather than an error: startup never fails on a
// bad menu file.
func Open(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		path:     path,
		logger:   logger,
		validate: validator.New(),
	}
	s.catalog = s.load()
	return s
}

// Records returns the records of a category in insertion order.
func (s *Store) Records(category models.Category) []Record {
	return s.catalog[category]
}

func emptyCatalog() Catalog {
	c := make(Catalog, 3)
	for _, category := range models.Categories() {
		c[category] = []Record{}
	}
	return c
}

func (s *Store) load() Catalog {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.logger.Info("menu file not readable, starting with empty catalog",
			"path", s.path, "error", err)
		return emptyCatalog()
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		s.logger.Warn("menu file malformed, starting with empty catalog",
			"path", s.path, "error", err)
		return emptyCatalog()
	}

	// Categories missing from the file are filled in empty.
	for _, category := range models.Categories() {
		if _, ok := c[category]; !ok {
			c[category] = []Record{}
		}
	}
	return c
}

// Save rewrites the whole catalog file with human-readable indentation.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.catalog, "", "    ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// AddItem appends the item's record to its category and persists, unless an
// identical (name, price) record is already present, in which case nothing
// is written and ErrItemExists is returned. Field validation is advisory: a
// bad record is reported and stored regardless.
func (s *Store) AddItem(item models.MenuItem) error {
	rec := Record{Name: item.Name(), Price: item.Price()}
	if err := s.validate.Struct(rec); err != nil {
		s.logger.Warn("menu record failed validation, storing anyway",
			"name", rec.Name, "price", rec.Price, "error", err)
	}

	category := item.Category()
	for _, existing := range s.catalog[category] {
		if existing == rec {
			s.logger.Info("item already exists in the menu",
				"category", category, "name", rec.Name)
			return ErrItemExists
		}
	}

	s.catalog[category] = append(s.catalog[category], rec)
	return s.Save()
}

// UpdateItem sets a new price on the first record matching name within the
// category. The match is by name only; when duplicate names exist, only the
// oldest record is touched.
func (s *Store) UpdateItem(category models.Category, name string, newPrice float64) error {
	records, ok := s.catalog[category]
	if !ok {
		s.logger.Warn("invalid category", "category", category)
		return ErrInvalidCategory
	}

	for i := range records {
		if records[i].Name == name {
			records[i].Price = newPrice
			s.logger.Info("menu item updated",
				"category", category, "name", name, "price", newPrice)
			return s.Save()
		}
	}

	s.logger.Info("menu item not found", "category", category, "name", name)
	return ErrItemNotFound
}

// DeleteItem removes the first record matching name within the category.
// Same lookup contract as UpdateItem.
func (s *Store) DeleteItem(category models.Category, name string) error {
	records, ok := s.catalog[category]
	if !ok {
		s.logger.Warn("invalid category", "category", category)
		return ErrInvalidCategory
	}

	for i := range records {
		if records[i].Name == name {
			s.catalog[category] = append(records[:i], records[i+1:]...)
			s.logger.Info("menu item deleted", "category", category, "name", name)
			return s.Save()
		}
	}

	s.logger.Info("menu item not found", "category", category, "name", name)
	return ErrItemNotFound
}
