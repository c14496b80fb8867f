package models

import "fmt"

// Category classifies a menu item. The set is closed: exactly three
// categories exist, and an item's category is fixed at construction.
type Category string

const (
	CategoryBeverage   Category = "Beverage"
	CategoryAppetizer  Category = "Appetizer"
	CategoryMainCourse Category = "MainCourse"
)

// Categories returns the three menu categories in canonical order.
func Categories() []Category {
	return []Category{CategoryBeverage, CategoryAppetizer, CategoryMainCourse}
}

// MenuItem is implemented by the three menu item variants: Beverage,
// Appetizer and MainCourse.
type MenuItem interface {
	Name() string
	Price() float64
	Category() Category
	// CalculatePrice returns price × quantity.
	CalculatePrice(quantity int) float64
	// Details returns a one-line human-readable description of the item.
	Details() string
}

// base holds the fields shared by every variant.
type base struct {
	name     string
	price    float64
	category Category
}

func (b base) Name() string { return b.name }

func (b base) Price() float64 { return b.price }

func (b base) Category() Category { return b.category }

func (b base) CalculatePrice(quantity int) float64 {
	return b.price * float64(quantity)
}

func (b base) details() string {
	return fmt.Sprintf("%s: COP %v", b.name, b.price)
}

// yesNo renders a boolean field for display. Booleans are stored as bool
// and localized only here, at the presentation boundary.
func yesNo(v bool) string {
	if v {
		return "Sí"
	}
	return "No"
}

// Beverage is a drink with a volume in millilitres.
type Beverage struct {
	base
	sizeML     int
	carbonated bool
}

func NewBeverage(name string, price float64, sizeML int, carbonated bool) *Beverage {
	return &Beverage{
		base:       base{name: name, price: price, category: CategoryBeverage},
		sizeML:     sizeML,
		carbonated: carbonated,
	}
}

func (b *Beverage) Size() int { return b.sizeML }

// SetSize accepts any value; range checks are the caller's responsibility.
func (b *Beverage) SetSize(sizeML int) { b.sizeML = sizeML }

func (b *Beverage) IsCarbonated() bool { return b.carbonated }

func (b *Beverage) SetCarbonated(v bool) { b.carbonated = v }

func (b *Beverage) Details() string {
	return fmt.Sprintf("%s, Tamaño: %dml, Carbonatada: %s",
		b.base.details(), b.sizeML, yesNo(b.carbonated))
}

// Appetizer is a starter with a portion descriptor.
type Appetizer struct {
	base
	portionSize string
	hasSauces   bool
}

func NewAppetizer(name string, price float64, portionSize string, hasSauces bool) *Appetizer {
	return &Appetizer{
		base:        base{name: name, price: price, category: CategoryAppetizer},
		portionSize: portionSize,
		hasSauces:   hasSauces,
	}
}

func (a *Appetizer) PortionSize() string { return a.portionSize }

func (a *Appetizer) SetPortionSize(size string) { a.portionSize = size }

func (a *Appetizer) HasSauces() bool { return a.hasSauces }

func (a *Appetizer) SetHasSauces(v bool) { a.hasSauces = v }

func (a *Appetizer) Details() string {
	return fmt.Sprintf("%s, Porcion: %s, Con salsas: %s",
		a.base.details(), a.portionSize, yesNo(a.hasSauces))
}

// MainCourse is a dish with an origin and a preparation time in minutes.
type MainCourse struct {
	base
	origin             string
	cookingTimeMinutes int
}

func NewMainCourse(name string, price float64, origin string, cookingTimeMinutes int) *MainCourse {
	return &MainCourse{
		base:               base{name: name, price: price, category: CategoryMainCourse},
		origin:             origin,
		cookingTimeMinutes: cookingTimeMinutes,
	}
}

func (m *MainCourse) Origin() string { return m.origin }

func (m *MainCourse) SetOrigin(origin string) { m.origin = origin }

func (m *MainCourse) CookingTime() int { return m.cookingTimeMinutes }

// SetCookingTime accepts any value; range checks are the caller's responsibility.
func (m *MainCourse) SetCookingTime(minutes int) { m.cookingTimeMinutes = minutes }

func (m *MainCourse) Details() string {
	return fmt.Sprintf("%s, Origen: %s, Tiempo de preparacion: %d min",
		m.base.details(), m.origin, m.cookingTimeMinutes)
}
