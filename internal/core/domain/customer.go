package domain

type Customer struct {
	ID    int64   `json:"id" db:"id"`
	Name  string  `json:"name" db:"name"`
	Phone *string `json:"phone" db:"phone"`
	Mail  *string `json:"mail" db:"mail"`
}

type NewCustomer struct {
	Name  string  `json:"name" validate:"required"`
	Phone *string `json:"phone"`
	Mail  *string `json:"mail"`
}
