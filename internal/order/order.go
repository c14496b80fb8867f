package order

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/juanmaberdugo/reto-7/internal/models"
)

// beverageDiscount applies to beverage lines when the order contains at
// least one main course.
const beverageDiscount = 0.8

var validate = validator.New()

// Line is one (item, quantity) pair within an order.
type Line struct {
	Item     models.MenuItem `validate:"required"`
	Quantity int             `validate:"gte=1"`
}

// Order aggregates menu items for a single customer. Lines are only ever
// appended, and the main-course flag is monotonic: once set it stays set
// for the order's lifetime.
type Order struct {
	id            string
	lines         []Line
	hasMainCourse bool
	logger        *slog.Logger
}

// New creates an empty order with a generated ID.
func New(logger *slog.Logger) *Order {
	if logger == nil {
		logger = slog.Default()
	}
	return &Order{
		id:     uuid.New().String(),
		logger: logger,
	}
}

func (o *Order) ID() string { return o.id }

// Lines returns the order's lines in insertion order.
func (o *Order) Lines() []Line { return o.lines }

func (o *Order) HasMainCourse() bool { return o.hasMainCourse }

// AddItem appends a line to the order. Validation is advisory: a quantity
// below 1 is reported and still applied, contributing a zero or negative
// amount to the total.
func (o *Order) AddItem(item models.MenuItem, quantity int) {
	line := Line{Item: item, Quantity: quantity}
	if err := validate.Struct(line); err != nil {
		o.logger.Warn("order line failed validation, applying anyway",
			"order_id", o.id,
			"item", item.Name(),
			"quantity", quantity,
			"error", err,
		)
	}

	o.lines = append(o.lines, line)
	if item.Category() == models.CategoryMainCourse {
		o.hasMainCourse = true
	}
}

// CalculateTotal sums the line totals in insertion order. Beverage lines
// are discounted iff the order has ever contained a main course.
func (o *Order) CalculateTotal() float64 {
	var total float64
	for _, line := range o.lines {
		price := line.Item.CalculatePrice(line.Quantity)
		if o.hasMainCourse && line.Item.Category() == models.CategoryBeverage {
			price *= beverageDiscount
		}
		total += price
	}
	return total
}

// Details renders the receipt: a header, one line per item and the total.
// Line totals are undiscounted; the discount shows up only in the total.
func (o *Order) Details() string {
	var sb strings.Builder
	sb.WriteString("Detalles de la Orden:\n")
	for _, line := range o.lines {
		fmt.Fprintf(&sb, "%s x%d: COP %v\n",
			line.Item.Details(), line.Quantity, line.Item.CalculatePrice(line.Quantity))
	}
	fmt.Fprintf(&sb, "Total: COP %v", o.CalculateTotal())
	return sb.String()
}
