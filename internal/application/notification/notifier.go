// Package notification defines the mails sent to employees during the allocation workflow.
package notification

import (
	"context"
	"time"
)

// Line is one equipment listed in a mail.
type Line struct {
	Type         string
	Brand        string
	Model        string
	SerialNumber string
	InternalID   string
	Condition    string
}

// AllocationSigned is sent to the employee once they signed for their equipment.
type AllocationSigned struct {
	To           string
	EmployeeName string
	Reference    string
	SignerName   string
	SignedAt     time.Time
	DeliveryDate time.Time
	Lines        []Line
	Accessories  []string
	Notes        string
}

// ReturnRecorded confirms the equipment handed back.
type ReturnRecorded struct {
	To                  string
	EmployeeName        string
	Reference           string
	AllocationReference string
	ReturnDate          time.Time
	Lines               []Line
	RemovedSoftware     []string
	Completed           bool
	Notes               string
}

type Notifier interface {
	AllocationSigned(ctx context.Context, msg AllocationSigned) error
	ReturnRecorded(ctx context.Context, msg ReturnRecorded) error
}
