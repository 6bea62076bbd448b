package model

import (
	"time"
)

// Role is an agent's permission level.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleAgent      Role = "agent"
	RoleSupervisor Role = "supervisor"
)

// Presence is an agent's availability status.
type Presence string

const (
	PresenceOnline  Presence = "online"
	PresenceAway    Presence = "away"
	PresenceOffline Presence = "offline"
)

// User is a support agent.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	Avatar     string    `json:"avatar,omitempty"`
	Status     Presence  `json:"status"`
	Teams      []string  `json:"teams"`
	LastActive time.Time `json:"last_active"`
}

// Team groups users working the same queue.
type Team struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Members     []string  `json:"members"`
	CreatedAt   time.Time `json:"created_at"`
	Avatar      string    `json:"avatar,omitempty"`
}

// LoginResult is the payload returned by a successful login.
type LoginResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
