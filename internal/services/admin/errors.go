package admin

// AdminError is a custom error type for admin errors
type AdminError string

// Error implements the error interface
func (e AdminError) Error() string {
	return string(e)
}

const (
	ErrNilConfig    AdminError = "config cannot be nil"
	ErrNilLedger    AdminError = "ledger service cannot be nil"
	ErrNilShop      AdminError = "shop service cannot be nil"
	ErrNilRegistry  AdminError = "session registry cannot be nil"
	ErrInvalidInput AdminError = "input cannot be nil"
	ErrInvalidUser  AdminError = "user ID cannot be empty"
	ErrInvalidKey   AdminError = "invalid admin key"
	ErrNotEnabled   AdminError = "admin key is not configured"
	ErrAccessDenied AdminError = "admin access required"
)
