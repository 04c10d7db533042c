package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rl1809/storefront/internal/core/domain"
)

// Fires concurrent single-unit sales against a running server and checks
// that exactly the available stock was sold.
func main() {
	baseURL := flag.String("url", "http://localhost:8080", "server base URL")
	initialStock := flag.Int("stock", 20, "stock of the product created for the run")
	totalRequests := flag.Int("requests", 50, "number of concurrent sales")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	var customer domain.Customer
	mustPost(client, *baseURL+"/customers", domain.NewCustomer{Name: "stress-test"}, &customer)

	stock := *initialStock
	productPrice := decimal.RequireFromString("1.00")
	var product domain.Product
	mustPost(client, *baseURL+"/products", domain.NewProduct{
		Name:  fmt.Sprintf("stress-item-%d", time.Now().UnixNano()),
		Price: &productPrice,
		Stock: &stock,
	}, &product)

	var successCount, rejectCount, errorCount atomic.Int32
	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < *totalRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			body, _ := json.Marshal(domain.SaleRequest{
				CustomerID: customer.ID,
				Items:      []domain.SaleLine{{ProductID: product.ID, Quantity: 1}},
			})
			resp, err := client.Post(*baseURL+"/sales", "application/json", bytes.NewReader(body))
			if err != nil {
				errorCount.Add(1)
				return
			}
			resp.Body.Close()

			switch resp.StatusCode {
			case http.StatusCreated:
				successCount.Add(1)
			case http.StatusBadRequest:
				rejectCount.Add(1)
			default:
				errorCount.Add(1)
			}
		}()
	}

	wg.Wait()
	elapsed := time.Since(start)

	success := int(successCount.Load())
	rejected := int(rejectCount.Load())
	expectedSuccess := min(*initialStock, *totalRequests)

	fmt.Println("========== STRESS TEST RESULTS ==========")
	fmt.Printf("Initial Stock:    %d\n", *initialStock)
	fmt.Printf("Total Requests:   %d\n", *totalRequests)
	fmt.Printf("Successful:       %d\n", success)
	fmt.Printf("Rejected:         %d\n", rejected)
	fmt.Printf("Errors:           %d\n", errorCount.Load())
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("==========================================")

	if success == expectedSuccess && rejected == *totalRequests-expectedSuccess {
		fmt.Printf("PASS: %d sales recorded, %d rejected\n", success, rejected)
	} else {
		fmt.Printf("FAIL: expected %d success/%d rejected, got %d/%d\n",
			expectedSuccess, *totalRequests-expectedSuccess, success, rejected)
	}

	finalStock := fetchStock(client, *baseURL, product.ID)
	fmt.Printf("Final Stock:      %d\n", finalStock)
	if finalStock == *initialStock-success {
		fmt.Println("PASS: stock matches recorded sales")
	} else {
		fmt.Printf("FAIL: expected stock %d, got %d\n", *initialStock-success, finalStock)
	}
}

func mustPost(client *http.Client, url string, payload, out any) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Fatalf("encode %s: %v", url, err)
	}
	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("post %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		log.Fatalf("post %s: unexpected status %d", url, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Fatalf("decode %s: %v", url, err)
	}
}

func fetchStock(client *http.Client, baseURL string, productID int64) int {
	resp, err := client.Get(baseURL + "/products")
	if err != nil {
		log.Fatalf("list products: %v", err)
	}
	defer resp.Body.Close()

	var products []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		log.Fatalf("decode products: %v", err)
	}
	for _, p := range products {
		if p.ID == productID {
			return p.Stock
		}
	}
	log.Fatalf("product %d not found", productID)
	return 0
}
