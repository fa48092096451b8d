package types

// ------------------------------
// Request Types
// ------------------------------

// LoginRequest holds credentials for /auth/login/
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest holds parameters for /auth/register/. Role is optional;
// the server defaults to customer when it is empty.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	BusinessName    string `json:"business_name,omitempty"`
	Role            Role   `json:"role,omitempty"`
}

// RefreshRequest holds the refresh credential for /auth/token/refresh/
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// AddCartItemRequest holds parameters for /cart/add/
type AddCartItemRequest struct {
	Product  int64 `json:"product"`
	Quantity int   `json:"quantity"`
}

// UpdateCartItemRequest holds parameters for /cart/update/{itemId}/
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CreateOrderItem is one (product, quantity) pair of an order submission.
type CreateOrderItem struct {
	Product  int64 `json:"product"`
	Quantity int   `json:"quantity"`
}

// CreateOrderRequest holds the full /orders/create/ payload.
type CreateOrderRequest struct {
	ShippingAddress string            `json:"shipping_address"`
	PaymentMethod   string            `json:"payment_method"`
	Items           []CreateOrderItem `json:"items"`
}

// AddWishlistRequest holds parameters for /wishlist/add/
type AddWishlistRequest struct {
	Product int64 `json:"product"`
}

// ProductQuery holds the filter parameters for /products/
type ProductQuery struct {
	Search   string
	Category string
	Ordering string
	Page     int
}
