// Debug tool that prints the food catalog with resolved reference objects.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/raine/portionvision/config"
	"github.com/raine/portionvision/internal/catalog"
)

func main() {
	config.LoadEnvFile()
	cfg := config.FromEnv()

	cat, err := catalog.Load(context.Background(), cfg.CatalogURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: remote catalog unavailable (%v), using builtin\n", err)
	}

	for _, food := range cat.All() {
		obj := catalog.VisualObjectFor(food)
		fmt.Printf("%-4s %-22s %-10s %4d cal  %-18s %s %s\n",
			food.ID, food.Name, food.Category, food.Calories,
			food.PortionSize, obj.Emoji, obj.Name)
	}
	fmt.Printf("\n%d foods\n", cat.Len())
}
