package entities

import "github.com/shopspring/decimal"

type Product struct {
	ID          int64
	SKU         string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	ImageURL    string
	Active      bool
}

type StockCheck struct {
	ProductID          int64
	RequestedQuantity  int
	AvailableStock     int
	HasSufficientStock bool
}

type User struct {
	ID          int64
	Email       string
	FullName    string
	Active      bool
	IsSuperuser bool
}
