// Command client is a small interactive terminal client for the back
// office API, handy for poking at a locally running server.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"resty.dev/v3"
)

func main() {
	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json")
	defer client.Close()

	reader := bufio.NewReader(os.Stdin)

	fmt.Printf("Back office client (%s)\n", baseURL)

	for {
		fmt.Println()
		fmt.Println("1) List products")
		fmt.Println("2) Show product")
		fmt.Println("3) Create product")
		fmt.Println("4) List categories")
		fmt.Println("5) Create category")
		fmt.Println("6) List sales")
		fmt.Println("7) Show sale")
		fmt.Println("8) Create sale")
		fmt.Println("9) Sales summary")
		fmt.Println("0) Quit")

		switch prompt(reader, "> ") {
		case "1":
			show(client.R().Get("/api/v1/products"))
		case "2":
			id := prompt(reader, "product id: ")
			show(client.R().Get("/api/v1/products/" + id))
		case "3":
			createProduct(client, reader)
		case "4":
			show(client.R().Get("/api/v1/categories"))
		case "5":
			body := map[string]string{
				"name":        prompt(reader, "name: "),
				"description": prompt(reader, "description: "),
			}
			show(client.R().SetBody(body).Post("/api/v1/categories"))
		case "6":
			show(client.R().Get("/api/v1/sales"))
		case "7":
			id := prompt(reader, "sale id: ")
			show(client.R().Get("/api/v1/sales/" + id))
		case "8":
			createSale(client, reader)
		case "9":
			show(client.R().Get("/api/v1/sales/summary"))
		case "0", "q":
			return
		default:
			fmt.Println("unknown choice")
		}
	}
}

func createProduct(client *resty.Client, reader *bufio.Reader) {
	price, err := strconv.ParseInt(prompt(reader, "price (cents): "), 10, 64)
	if err != nil {
		fmt.Println("invalid price:", err)
		return
	}
	stock, err := strconv.ParseInt(prompt(reader, "initial stock: "), 10, 64)
	if err != nil {
		fmt.Println("invalid stock:", err)
		return
	}

	body := map[string]any{
		"category_id": prompt(reader, "category id: "),
		"name":        prompt(reader, "name: "),
		"description": prompt(reader, "description: "),
		"price_cents": price,
		"stock":       stock,
	}
	show(client.R().SetBody(body).Post("/api/v1/products"))
}

func createSale(client *resty.Client, reader *bufio.Reader) {
	body := map[string]any{
		"customer_name":    prompt(reader, "customer name: "),
		"customer_email":   prompt(reader, "customer email: "),
		"customer_address": prompt(reader, "customer address: "),
	}

	var items []map[string]any
	for {
		productID := prompt(reader, "product id (empty to finish): ")
		if productID == "" {
			break
		}
		qty, err := strconv.ParseInt(prompt(reader, "quantity: "), 10, 64)
		if err != nil {
			fmt.Println("invalid quantity:", err)
			continue
		}
		items = append(items, map[string]any{"product_id": productID, "quantity": qty})
	}
	body["items"] = items

	show(client.R().SetBody(body).Post("/api/v1/sales"))
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func show(res *resty.Response, err error) {
	if err != nil {
		fmt.Println("request failed:", err)
		return
	}
	fmt.Printf("HTTP %d\n%s\n", res.StatusCode(), res.String())
}
