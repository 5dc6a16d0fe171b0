// Command stress fires concurrent order placements at an in-process
// service stack and checks that stock is never oversold.
package main

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ltnam/fashion-store/internal/adapter/storage"
	"github.com/ltnam/fashion-store/internal/core/domain"
	"github.com/ltnam/fashion-store/internal/core/service"
)

const (
	initialStock  = 20
	totalRequests = 50
)

func main() {
	ctx := context.Background()

	store := storage.NewMemoryStore()
	inventory := service.NewInventoryService(store)
	products := service.NewProductService(store, inventory)
	orders := service.NewOrderService(store, store, inventory)

	product, err := products.Create(ctx, domain.Product{
		Name:     "Limited Drop Tee",
		Category: domain.CategoryMen,
		Price:    decimal.NewFromFloat(39.99),
		Sizes:    []string{"M"},
		Colors:   []string{"Black"},
		Variants: []domain.Variant{
			{Size: "M", Color: "Black", SKU: "DROP-M-BK", Stock: initialStock},
		},
	})
	if err != nil {
		log.Fatalf("create product: %v", err)
	}

	shipping := domain.Address{
		FullName: "Load Tester",
		Line1:    "1 Bench St",
		City:     "Hanoi",
		Country:  "VN",
	}

	var successCount atomic.Int32
	var failCount atomic.Int32

	var wg sync.WaitGroup
	start := time.Now()
	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := orders.PlaceOrder(ctx, fmt.Sprintf("user-%d", n), []service.ItemRequest{
				{ProductID: product.ID, Size: "M", Color: "Black", Quantity: 1},
			}, shipping)
			if err == nil {
				successCount.Add(1)
			} else {
				failCount.Add(1)
			}
		}(i)
	}
	wg.Wait()
	elapsed := time.Since(start)

	success := successCount.Load()
	fail := failCount.Load()

	fmt.Println("========== STRESS RESULTS ==========")
	fmt.Printf("Initial Stock:    %d\n", initialStock)
	fmt.Printf("Total Requests:   %d\n", totalRequests)
	fmt.Printf("Successful:       %d\n", success)
	fmt.Printf("Failed:           %d\n", fail)
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("====================================")

	if success == initialStock && fail == totalRequests-initialStock {
		fmt.Printf("PASS: exactly %d orders succeeded\n", initialStock)
	} else {
		fmt.Printf("FAIL: expected %d success/%d fail, got %d/%d\n",
			initialStock, totalRequests-initialStock, success, fail)
	}

	final, err := products.Get(ctx, product.ID)
	if err != nil {
		log.Fatalf("reload product: %v", err)
	}
	remaining := final.Variants[0].Stock
	fmt.Printf("Final Stock: %d\n", remaining)
	if remaining == 0 {
		fmt.Println("PASS: stock depleted to 0")
	} else {
		fmt.Printf("FAIL: expected stock 0, got %d\n", remaining)
	}
}
