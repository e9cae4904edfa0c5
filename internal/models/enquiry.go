package models

import "time"

// Enquiry statuses
const (
	EnquiryStatusNew     = "new"
	EnquiryStatusRead    = "read"
	EnquiryStatusReplied = "replied"
)

// Enquiry is a contact-form message.
type Enquiry struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Subject   string    `bson:"subject" json:"subject"`
	Message   string    `bson:"message" json:"message"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// CreateEnquiryRequest is the body for POST /enquiries
type CreateEnquiryRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// UpdateEnquiryStatusRequest is the body for PATCH /admin/enquiries/:id/status
type UpdateEnquiryStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new read replied"`
}
