package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Role is the coarse access level attached to a user. The SDK carries it
// around but never interprets it; view gating is the embedding app's job.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// User represents the authenticated identity
type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	Role        Role   `json:"role"`
}

// Product is the informational product reference carried on cart lines.
// Unit price here is advisory; the server reprices at order time.
type Product struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Price    string `json:"price"`
	Category string `json:"category,omitempty"`
	Image    string `json:"image,omitempty"`
	Slug     string `json:"slug,omitempty"`
	Stock    int    `json:"stock,omitempty"`
}

// CartItem is a single cart line. ID is the server-assigned line id; it is
// zero only for an optimistic add whose round trip has not completed yet.
type CartItem struct {
	ID       int64   `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Subtotal string  `json:"subtotal,omitempty"`
}

// Cart is the aggregate shape the server returns: the line items plus a
// server-computed total.
type Cart struct {
	ID         int64      `json:"id"`
	Items      []CartItem `json:"cart_items"`
	TotalPrice string     `json:"total_price,omitempty"`
}

// ItemCount sums quantities across all lines.
func (c Cart) ItemCount() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// OrderItem is a confirmed order line.
type OrderItem struct {
	ID        int64  `json:"id"`
	Product   int64  `json:"product"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal,omitempty"`
}

// Order represents a server-confirmed order.
type Order struct {
	ID          int64       `json:"id"`
	Status      string      `json:"status"`
	TotalAmount string      `json:"total_amount"`
	Currency    string      `json:"currency,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	Items       []OrderItem `json:"items,omitempty"`
}

// WishlistItem is a saved product reference.
type WishlistItem struct {
	ID      int64   `json:"id"`
	Product Product `json:"product"`
}
