package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// Password holds a bcrypt hash; it is never serialized back to callers.
// Orders are embedded and owned exclusively by this user.
type User struct {
	UserID    string
	Username  string
	Password  string
	FullName  FullName
	Age       int
	Email     string
	IsActive  bool
	Hobbies   []string
	Address   Address
	IsDeleted bool
	Orders    []Order
	CreatedAt time.Time
	UpdatedAt time.Time
}

type FullName struct {
	FirstName string
	LastName  string
}

type Address struct {
	Street  string
	City    string
	Country string
}

// Order is an embedded line item. It has no identity of its own and is
// created only by appending to a user's order sequence.
type Order struct {
	ProductName string
	Price       float64
	Quantity    int
}

// Total returns price multiplied by quantity for this line item.
func (o Order) Total() float64 {
	return o.Price * float64(o.Quantity)
}
