package m_sale

import (
	"time"
)

// Data represents the database model for the sales table.
type Data struct {
	SaleID          string    `spanner:"sale_id"`
	SaleDate        time.Time `spanner:"sale_date"`
	CustomerName    string    `spanner:"customer_name"`
	CustomerEmail   string    `spanner:"customer_email"`
	CustomerAddress string    `spanner:"customer_address"`
	TotalCents      int64     `spanner:"total_cents"`
	CreatedAt       time.Time `spanner:"created_at"`
	UpdatedAt       time.Time `spanner:"updated_at"`
}
