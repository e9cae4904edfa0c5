package models

import "time"

// Relay event types understood by the automation workflows.
const (
	RelayTypeAuthCode     = "auth_code_request"
	RelayTypeWelcome      = "welcome_message"
	RelayTypeOrderCreated = "order_created"
	RelayTypeNewEnquiry   = "new_enquiry"
)

// RelayEvent is an outbound best-effort notification for the automation
// webhook. Body is merged with the type field when serialized.
type RelayEvent struct {
	Type string
	Body map[string]interface{}
}

// NewAuthCodeEvent builds the event carrying a one-time code to the delivery
// workflow. The code travels only through this channel, never in an API
// response.
func NewAuthCodeEvent(email, code, mode string, now time.Time) RelayEvent {
	return RelayEvent{
		Type: RelayTypeAuthCode,
		Body: map[string]interface{}{
			"email":     email,
			"code":      code,
			"mode":      mode,
			"timestamp": now.UTC().Format(time.RFC3339),
		},
	}
}

// NewWelcomeEvent builds the post-verification welcome event.
func NewWelcomeEvent(email string) RelayEvent {
	return RelayEvent{
		Type: RelayTypeWelcome,
		Body: map[string]interface{}{
			"email": email,
		},
	}
}

// NewOrderCreatedEvent builds the order notification event.
func NewOrderCreatedEvent(o *Order) RelayEvent {
	return RelayEvent{
		Type: RelayTypeOrderCreated,
		Body: map[string]interface{}{
			"order_id":        o.ID,
			"customer_name":   o.CustomerName,
			"customer_email":  o.CustomerEmail,
			"customer_phone":  o.CustomerPhone,
			"delivery_method": o.DeliveryMethod,
			"delivery_date":   o.DeliveryDate,
			"total_price":     o.TotalPrice,
			"items":           o.Items,
		},
	}
}

// NewEnquiryEvent builds the contact-form notification event.
func NewEnquiryEvent(e *Enquiry) RelayEvent {
	return RelayEvent{
		Type: RelayTypeNewEnquiry,
		Body: map[string]interface{}{
			"name":    e.Name,
			"email":   e.Email,
			"phone":   e.Phone,
			"subject": e.Subject,
			"message": e.Message,
		},
	}
}
