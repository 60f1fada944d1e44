package handlers

import (
	"time"

	"github.com/imnahmed17/user-order-api/internal/domain/entity"
)

// Request bodies wrap the document under a top-level key, e.g.
// {"user": {...}} and {"order": {...}}.

type userRequest struct {
	User userPayload `json:"user" validate:"required"`
}

type orderRequest struct {
	Order orderPayload `json:"order" validate:"required"`
}

type userPayload struct {
	UserID   string          `json:"userId" validate:"required"`
	Username string          `json:"username" validate:"required,max=20"`
	Password string          `json:"password" validate:"required,max=20"`
	FullName fullNamePayload `json:"fullName" validate:"required"`
	Age      int             `json:"age" validate:"required,gte=15"`
	Email    string          `json:"email" validate:"required,email"`
	IsActive *bool           `json:"isActive"`
	Hobbies  []string        `json:"hobbies" validate:"required"`
	Address  addressPayload  `json:"address" validate:"required"`
	Orders   []orderPayload  `json:"orders" validate:"omitempty,dive"`
}

type fullNamePayload struct {
	FirstName string `json:"firstName" validate:"required,max=20,upperfirst"`
	LastName  string `json:"lastName" validate:"required,max=20"`
}

type addressPayload struct {
	Street  string `json:"street" validate:"required,max=20"`
	City    string `json:"city" validate:"required,max=20"`
	Country string `json:"country" validate:"required,max=20,upperfirst"`
}

type orderPayload struct {
	ProductName string  `json:"productName" validate:"required"`
	Price       float64 `json:"price" validate:"required,gte=1"`
	Quantity    int     `json:"quantity" validate:"required,gte=1"`
}

// toEntity applies the schema defaults: isActive true when absent,
// orders empty when absent.
func (p *userPayload) toEntity() *entity.User {
	isActive := true
	if p.IsActive != nil {
		isActive = *p.IsActive
	}
	hobbies := p.Hobbies
	if hobbies == nil {
		hobbies = []string{}
	}
	orders := make([]entity.Order, 0, len(p.Orders))
	for _, o := range p.Orders {
		orders = append(orders, o.toEntity())
	}
	return &entity.User{
		UserID:   p.UserID,
		Username: p.Username,
		Password: p.Password,
		FullName: entity.FullName{FirstName: p.FullName.FirstName, LastName: p.FullName.LastName},
		Age:      p.Age,
		Email:    p.Email,
		IsActive: isActive,
		Hobbies:  hobbies,
		Address:  entity.Address{Street: p.Address.Street, City: p.Address.City, Country: p.Address.Country},
		Orders:   orders,
	}
}

func (p orderPayload) toEntity() entity.Order {
	return entity.Order{ProductName: p.ProductName, Price: p.Price, Quantity: p.Quantity}
}

// userResponse is the stored form surfaced to callers. It deliberately
// has no password field.
type userResponse struct {
	UserID    string            `json:"userId"`
	Username  string            `json:"username"`
	FullName  fullNameResponse  `json:"fullName"`
	Age       int               `json:"age"`
	Email     string            `json:"email"`
	IsActive  bool              `json:"isActive"`
	Hobbies   []string          `json:"hobbies"`
	Address   addressResponse   `json:"address"`
	Orders    []orderResponse   `json:"orders"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

type fullNameResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type addressResponse struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type orderResponse struct {
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

func toUserResponse(u *entity.User) userResponse {
	hobbies := u.Hobbies
	if hobbies == nil {
		hobbies = []string{}
	}
	return userResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		FullName:  fullNameResponse{FirstName: u.FullName.FirstName, LastName: u.FullName.LastName},
		Age:       u.Age,
		Email:     u.Email,
		IsActive:  u.IsActive,
		Hobbies:   hobbies,
		Address:   addressResponse{Street: u.Address.Street, City: u.Address.City, Country: u.Address.Country},
		Orders:    toOrderResponses(u.Orders),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toOrderResponses(orders []entity.Order) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderResponse{ProductName: o.ProductName, Price: o.Price, Quantity: o.Quantity})
	}
	return out
}
