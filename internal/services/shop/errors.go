package shop

// ShopError is a custom error type for shop errors
type ShopError string

// Error implements the error interface
func (e ShopError) Error() string {
	return string(e)
}

const (
	ErrNilConfig     ShopError = "config cannot be nil"
	ErrNilRepository ShopError = "shop repository cannot be nil"
	ErrNilLedger     ShopError = "ledger service cannot be nil"
	ErrInvalidInput  ShopError = "input cannot be nil"
	ErrInvalidUserID ShopError = "user ID cannot be empty"
	ErrInvalidItemID ShopError = "item ID cannot be empty"
	ErrInvalidPrice  ShopError = "price must be positive"
	ErrInvalidRole   ShopError = "role ID cannot be empty"
	ErrItemNotFound  ShopError = "item not found"
	ErrAlreadyOwned  ShopError = "item already owned"
)
