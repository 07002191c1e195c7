package models

import (
	"time"
)

// Session is a transient multi-step interaction held in memory
type Session struct {
	// Key uniquely identifies the session
	Key string

	// Kind is the game kind driving the session
	Kind GameKind

	// OwnerID is the only user allowed to act on the session
	OwnerID string

	// ChannelID is the channel the session was started in
	ChannelID string

	// MessageID is the message presenting the session, set once it is sent
	MessageID string

	// Wager is the amount at stake, zero for unwagered sessions
	Wager int64

	// TTL is the inactivity timeout
	TTL time.Duration

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// UpdatedAt is when the session last accepted an action
	UpdatedAt time.Time

	// Payload is the kind-specific engine state
	Payload any
}
