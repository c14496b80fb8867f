package payment

import (
	"fmt"
	"log/slog"
)

// Processor narrates payments against a single amount due. Payment attempts
// only report an outcome; they never mutate or clear the stored amount.
type Processor struct {
	amountDue float64
	logger    *slog.Logger
}

// NewProcessor creates a processor with no amount due.
func NewProcessor(logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{logger: logger}
}

// SetAmount stores the amount due. A negative amount is reported but still
// applied.
func (p *Processor) SetAmount(amount float64) {
	if amount < 0 {
		p.logger.Warn("negative amount due accepted", "amount", amount)
	}
	p.amountDue = amount
}

// Amount returns the current amount due.
func (p *Processor) Amount() float64 { return p.amountDue }

// PayByCard narrates a card payment using the last four characters of the
// card number. No authorization is performed. Numbers shorter than four
// characters are reported and narrated with what is available.
func (p *Processor) PayByCard(number, cvv string) string {
	if len(number) < 4 {
		p.logger.Warn("card number shorter than 4 digits", "length", len(number))
	}

	last := number
	if len(number) > 4 {
		last = number[len(number)-4:]
	}
	return fmt.Sprintf("Pagando COP %v con tarjeta %s", p.amountDue, last)
}

// Result reports the outcome of a cash payment attempt.
type Result struct {
	Paid    bool
	Change  float64
	Message string
}

// PayByCash compares the tendered cash against the amount due and reports
// either the shortfall or the change.
func (p *Processor) PayByCash(tendered float64) Result {
	if tendered < p.amountDue {
		deficit := p.amountDue - tendered
		return Result{
			Message: fmt.Sprintf("Fondos insuficientes. Faltan COP %v para completar el pago.", deficit),
		}
	}

	change := tendered - p.amountDue
	return Result{
		Paid:    true,
		Change:  change,
		Message: fmt.Sprintf("Pago realizado en efectivo. Cambio: COP %v", change),
	}
}
