package types

// ------------------------------
// Response Types
// ------------------------------

// LoginResponse mirrors the /auth/login/ success shape.
type LoginResponse struct {
	User    User   `json:"user"`
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RefreshResponse mirrors /auth/token/refresh/. Refresh is present only when
// the server rotates the refresh credential as well.
type RefreshResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

// AddCartItemResponse is the /cart/add/ success shape: the affected line
// plus the server's updated cart aggregate.
type AddCartItemResponse struct {
	Item CartItem `json:"item"`
	Cart Cart     `json:"cart"`
}

// EnqueueAck acknowledges that a cart mutation was accepted for background
// submission; server confirmation arrives asynchronously.
type EnqueueAck struct {
	Key    string `json:"key"`
	Status string `json:"status"`
}

// ListOrdersResponse wraps /orders/
type ListOrdersResponse struct {
	Orders []Order `json:"results"`
	Count  int     `json:"count"`
}

// ProductPage mirrors the paginated /products/ response.
type ProductPage struct {
	Results  []Product `json:"results"`
	Count    int       `json:"count"`
	Next     string    `json:"next,omitempty"`
	Previous string    `json:"previous,omitempty"`
}

// ListWishlistResponse wraps /wishlist/
type ListWishlistResponse struct {
	Items []WishlistItem `json:"items"`
	Count int            `json:"count"`
}
