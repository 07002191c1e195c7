package models

// TradeOffer is a pending exchange between two users
type TradeOffer struct {
	// SenderID proposed the trade
	SenderID string

	// TargetID must accept or decline
	TargetID string

	// OfferItemID is the item the sender gives, if any
	OfferItemID string

	// OfferCoins is the amount the sender gives
	OfferCoins int64

	// RequestItemID is the item the sender asks for, if any
	RequestItemID string

	// RequestCoins is the amount the sender asks for
	RequestCoins int64
}

// IsEmpty reports whether neither side gives anything
func (t *TradeOffer) IsEmpty() bool {
	return t.OfferItemID == "" && t.OfferCoins == 0 && t.RequestItemID == "" && t.RequestCoins == 0
}
