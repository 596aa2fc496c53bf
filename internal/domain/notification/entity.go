// Package notification covers the WhatsApp notifications the dashboard
// sends through the upstream API.
package notification

// Template is a pre-approved WhatsApp message template.
type Template struct {
	Name       string   `json:"name"`
	Body       string   `json:"body"`
	Parameters []string `json:"parameters"`
}

// Message is a sent notification as reported by the upstream API.
type Message struct {
	ID           string `json:"id"`
	To           string `json:"to"`
	TemplateName string `json:"templateName"`
	Status       string `json:"status"`
	SentAt       string `json:"sentAt"`
}
