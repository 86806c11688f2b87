// Package allocation models dotations: equipment handed to an employee, signed for,
// and eventually returned.
package allocation

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	vo "github.com/GithubESPI/dotationsFrontend/internal/domain/allocation/valueobjects"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/biztime"
)

// Signature is the employee's acknowledgement of receipt.
type Signature struct {
	SignerName     string    `json:"signerName"`
	SignatureImage string    `json:"signatureImage"`
	Fingerprint    string    `json:"fingerprint"`
	Timestamp      time.Time `json:"timestamp"`
}

// Extras are the non-equipment parts of an allocation.
type Extras struct {
	Accessories        []string
	AdditionalSoftware []string
	StandardSoftware   []string
	Services           []string
	Notes              string
}

type Allocation struct {
	id           string
	reference    string
	userID       string
	userName     string
	userEmail    string
	items        []Item
	deliveryDate time.Time
	status       vo.AllocationStatus
	extras       Extras
	signature    *Signature
	signedAt     *time.Time
	createdBy    string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewAllocation(
	reference string,
	userID, userName, userEmail string,
	items []Item,
	deliveryDate time.Time,
	extras Extras,
	createdBy string,
) (*Allocation, error) {
	if reference == "" {
		return nil, fmt.Errorf("allocation reference is required")
	}
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(items) == 0 {
		return nil, ErrNoEquipment
	}

	seen := make(map[string]bool, len(items))
	for i, item := range items {
		if item.EquipmentID == "" {
			return nil, fmt.Errorf("item %d has no equipment id", i)
		}
		if seen[item.EquipmentID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEquipment, item.EquipmentID)
		}
		seen[item.EquipmentID] = true
		if !item.Condition.IsValid() {
			items[i].Condition = vo.ConditionGood
		}
	}

	now := biztime.NowUTC()
	if deliveryDate.IsZero() {
		deliveryDate = now
	}

	return &Allocation{
		id:           uuid.NewString(),
		reference:    reference,
		userID:       userID,
		userName:     userName,
		userEmail:    userEmail,
		items:        items,
		deliveryDate: deliveryDate,
		status:       vo.StatusInProgress,
		extras:       normalizeExtras(extras),
		createdBy:    createdBy,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructAllocation(
	id, reference string,
	userID, userName, userEmail string,
	items []Item,
	deliveryDate time.Time,
	status vo.AllocationStatus,
	extras Extras,
	signature *Signature,
	signedAt *time.Time,
	createdBy string,
	createdAt, updatedAt time.Time,
) (*Allocation, error) {
	if id == "" {
		return nil, fmt.Errorf("allocation ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid allocation status: %s", status)
	}

	return &Allocation{
		id:           id,
		reference:    reference,
		userID:       userID,
		userName:     userName,
		userEmail:    userEmail,
		items:        items,
		deliveryDate: deliveryDate,
		status:       status,
		extras:       normalizeExtras(extras),
		signature:    signature,
		signedAt:     signedAt,
		createdBy:    createdBy,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (a *Allocation) ID() string {
	return a.id
}

func (a *Allocation) Reference() string {
	return a.reference
}

func (a *Allocation) UserID() string {
	return a.userID
}

func (a *Allocation) UserName() string {
	return a.userName
}

func (a *Allocation) UserEmail() string {
	return a.userEmail
}

func (a *Allocation) Items() []Item {
	out := make([]Item, len(a.items))
	copy(out, a.items)
	return out
}

func (a *Allocation) DeliveryDate() time.Time {
	return a.deliveryDate
}

func (a *Allocation) Status() vo.AllocationStatus {
	return a.status
}

func (a *Allocation) Extras() Extras {
	return normalizeExtras(a.extras)
}

func (a *Allocation) Signature() *Signature {
	if a.signature == nil {
		return nil
	}
	s := *a.signature
	return &s
}

func (a *Allocation) SignedAt() *time.Time {
	return a.signedAt
}

func (a *Allocation) IsSigned() bool {
	return a.signature != nil
}

func (a *Allocation) CreatedBy() string {
	return a.createdBy
}

func (a *Allocation) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Allocation) UpdatedAt() time.Time {
	return a.updatedAt
}

// EquipmentIDs lists the equipment of every line.
func (a *Allocation) EquipmentIDs() []string {
	ids := make([]string, 0, len(a.items))
	for _, item := range a.items {
		ids = append(ids, item.EquipmentID)
	}
	return ids
}

// OutstandingEquipmentIDs lists the equipment not returned yet.
func (a *Allocation) OutstandingEquipmentIDs() []string {
	var ids []string
	for _, item := range a.items {
		if !item.IsReturned() {
			ids = append(ids, item.EquipmentID)
		}
	}
	return ids
}

// HasEquipment reports whether the equipment is an outstanding line of this allocation.
func (a *Allocation) HasEquipment(equipmentID string) bool {
	for _, item := range a.items {
		if item.EquipmentID == equipmentID && !item.IsReturned() {
			return true
		}
	}
	return false
}

// UpdateExtras replaces accessories, software, services and notes. Nil slices are kept.
func (a *Allocation) UpdateExtras(e Extras, notes *string) error {
	if !a.status.IsActive() {
		return fmt.Errorf("%w: %s", ErrNotActive, a.status)
	}
	if e.Accessories != nil {
		a.extras.Accessories = e.Accessories
	}
	if e.AdditionalSoftware != nil {
		a.extras.AdditionalSoftware = e.AdditionalSoftware
	}
	if e.StandardSoftware != nil {
		a.extras.StandardSoftware = e.StandardSoftware
	}
	if e.Services != nil {
		a.extras.Services = e.Services
	}
	if notes != nil {
		a.extras.Notes = strings.TrimSpace(*notes)
	}
	a.extras = normalizeExtras(a.extras)
	a.touch()
	return nil
}

// Sign records the employee signature. An allocation is signed once.
func (a *Allocation) Sign(signerName, signatureImage string) error {
	signerName = strings.TrimSpace(signerName)
	if signerName == "" {
		return fmt.Errorf("signer name is required")
	}
	if signatureImage == "" {
		return fmt.Errorf("signature image is required")
	}
	if a.signature != nil {
		return ErrAlreadySigned
	}
	if a.status == vo.StatusCancelled {
		return fmt.Errorf("%w: %s", ErrNotActive, a.status)
	}

	now := biztime.NowUTC()
	a.signature = &Signature{
		SignerName:     signerName,
		SignatureImage: signatureImage,
		Fingerprint:    Fingerprint(signatureImage),
		Timestamp:      now,
	}
	a.signedAt = &now
	a.touch()
	return nil
}

// Fingerprint is the hex blake2b-256 digest of a signature image.
func Fingerprint(signatureImage string) string {
	sum := blake2b.Sum256([]byte(signatureImage))
	return hex.EncodeToString(sum[:])
}

// Cancel voids the allocation. The caller releases the equipment.
func (a *Allocation) Cancel() error {
	if !a.status.CanTransitionTo(vo.StatusCancelled) {
		return fmt.Errorf("%w: cannot cancel from %s", ErrInvalidTransition, a.status)
	}
	a.status = vo.StatusCancelled
	a.touch()
	return nil
}

// MarkOverdue flags an active allocation as late.
func (a *Allocation) MarkOverdue() error {
	if !a.status.CanTransitionTo(vo.StatusOverdue) {
		return fmt.Errorf("%w: cannot mark %s as overdue", ErrInvalidTransition, a.status)
	}
	a.status = vo.StatusOverdue
	a.touch()
	return nil
}

// RegisterReturn marks the given equipment as returned. It reports whether every
// line is now returned, in which case the allocation is completed.
func (a *Allocation) RegisterReturn(equipmentIDs []string, returnedAt time.Time) (bool, error) {
	if !a.status.IsActive() {
		return false, fmt.Errorf("%w: %s", ErrNotActive, a.status)
	}

	for _, id := range equipmentIDs {
		if !a.HasEquipment(id) {
			return false, fmt.Errorf("%w: %s", ErrEquipmentNotInAllocation, id)
		}
	}

	for _, id := range equipmentIDs {
		for i := range a.items {
			if a.items[i].EquipmentID == id && a.items[i].ReturnedAt == nil {
				at := returnedAt
				a.items[i].ReturnedAt = &at
			}
		}
	}

	complete := len(a.OutstandingEquipmentIDs()) == 0
	if complete {
		a.status = vo.StatusCompleted
	}
	a.touch()
	return complete, nil
}

func (a *Allocation) touch() {
	a.updatedAt = biztime.NowUTC()
}

func normalizeExtras(e Extras) Extras {
	return Extras{
		Accessories:        nonNil(e.Accessories),
		AdditionalSoftware: nonNil(e.AdditionalSoftware),
		StandardSoftware:   nonNil(e.StandardSoftware),
		Services:           nonNil(e.Services),
		Notes:              e.Notes,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
