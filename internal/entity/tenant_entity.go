package entity

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionPlan string

const (
	SubscriptionFree SubscriptionPlan = "FREE"
	SubscriptionPro  SubscriptionPlan = "PRO"
)

// FreePlanMaxNotes is the note ceiling for FREE tenants.
const FreePlanMaxNotes = 3

// UnlimitedNotes marks a plan without a note ceiling (-1 means unlimited).
const UnlimitedNotes = -1

func (p SubscriptionPlan) MaxNotes() int {
	if p == SubscriptionPro {
		return UnlimitedNotes
	}
	return FreePlanMaxNotes
}

type Tenant struct {
	Id           uuid.UUID
	Slug         string
	Name         string
	Subscription SubscriptionPlan
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
