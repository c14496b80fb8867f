package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/juanmaberdugo/reto-7/internal/config"
	"github.com/juanmaberdugo/reto-7/internal/models"
	"github.com/juanmaberdugo/reto-7/internal/order"
	"github.com/juanmaberdugo/reto-7/internal/payment"
	"github.com/juanmaberdugo/reto-7/internal/store"
	"github.com/juanmaberdugo/reto-7/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting restaurant demo",
		"menu_file", cfg.MenuFile,
		"log_level", cfg.LogLevel,
	)

	menu := store.Open(cfg.MenuFile, log)

	seed := []models.MenuItem{
		models.NewBeverage("Jugo de Naranja", 5000.00, 300, false),
		models.NewMainCourse("Pizza", 15000.00, "Italia", 20),
	}
	for _, item := range seed {
		if err := menu.AddItem(item); err != nil {
			log.Info("seed item skipped", "name", item.Name(), "reason", err)
		}
	}

	if err := menu.UpdateItem(models.CategoryBeverage, "Jugo de Naranja", 5500.00); err != nil {
		log.Warn("price update failed", "error", err)
	}

	// The name belongs to the Beverage category on purpose: the mismatch
	// exercises the not-found path.
	if err := menu.DeleteItem(models.CategoryMainCourse, "Jugo de Naranja"); err != nil {
		log.Warn("delete failed", "error", err)
	}

	fmt.Printf("Menú actualizado en '%s'\n", cfg.MenuFile)

	order1 := order.New(log)
	order1.AddItem(models.NewBeverage("Coca Cola", 3000.00, 500, true), 2)

	order2 := order.New(log)
	order2.AddItem(models.NewMainCourse("Hamburguesa", 12000.00, "EE.UU", 15), 1)

	queue := order.NewQueue(log)
	queue.Enqueue(order1)
	queue.Enqueue(order2)

	fmt.Println("\nProcesando órdenes:")
	for {
		o, ok := queue.Dequeue()
		if !ok {
			break
		}
		fmt.Println(o.Details())
	}

	// Payment narration against the last order's total.
	proc := payment.NewProcessor(log)
	proc.SetAmount(order2.CalculateTotal())
	fmt.Println(proc.PayByCard("1234567890123456", "123"))
	fmt.Println(proc.PayByCash(15000).Message)
}
