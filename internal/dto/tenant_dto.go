package dto

// NoteLimitStatus is the structured answer to "can this tenant create one
// more note right now".
type NoteLimitStatus struct {
	Allowed      bool   `json:"allowed"`
	CurrentCount int    `json:"current"`
	MaxNotes     int    `json:"limit"`
	Subscription string `json:"subscription"`
}

type UpgradeTenantResponse struct {
	Tenant TenantDTO `json:"tenant"`
}
