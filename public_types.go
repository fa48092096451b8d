package storefront

import "github.com/shopwire/storefront-client/internal/types"

// Public type aliases so SDK consumers can import only this package.
type (
	// Domain entities
	User         = types.User
	Role         = types.Role
	Product      = types.Product
	CartItem     = types.CartItem
	Cart         = types.Cart
	Order        = types.Order
	OrderItem    = types.OrderItem
	WishlistItem = types.WishlistItem

	// Requests
	RegisterRequest = types.RegisterRequest
	ProductQuery    = types.ProductQuery

	// Responses
	EnqueueAck          = types.EnqueueAck
	AddCartItemResponse = types.AddCartItemResponse
	ProductPage         = types.ProductPage
)

// Role values carried on the user record.
const (
	RoleCustomer = types.RoleCustomer
	RoleVendor   = types.RoleVendor
	RoleManager  = types.RoleManager
	RoleAdmin    = types.RoleAdmin
)
