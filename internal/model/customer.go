package model

// Customer is customer record relayed to collector
type Customer struct {
	ID      int    `json:"id"`
	Name    string `json:"name" validate:"required"`
	Surname string `json:"surname" validate:"required"`
}
