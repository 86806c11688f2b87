// Package equipment holds the local inventory aggregate and its reconciliation
// against Jira asset projections.
package equipment

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	vo "github.com/GithubESPI/dotationsFrontend/internal/domain/equipment/valueobjects"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/biztime"
)

type Equipment struct {
	id                  string
	jiraAssetID         string
	internalID          string
	equipmentType       vo.EquipmentType
	brand               string
	model               string
	serialNumber        string
	imei                string
	phoneLine           string
	status              vo.EquipmentStatus
	currentUserID       string
	location            string
	additionalSoftwares []string
	jiraAttributes      map[string]string
	createdAt           time.Time
	updatedAt           time.Time
}

// NewEquipment creates an available piece of equipment with a fresh id.
func NewEquipment(equipmentType vo.EquipmentType, brand, model, serialNumber string) (*Equipment, error) {
	brand = strings.TrimSpace(brand)
	model = strings.TrimSpace(model)
	serialNumber = strings.TrimSpace(serialNumber)

	if !equipmentType.IsValid() {
		return nil, fmt.Errorf("invalid equipment type: %s", equipmentType)
	}
	if brand == "" {
		return nil, fmt.Errorf("brand is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}
	if serialNumber == "" {
		return nil, fmt.Errorf("serial number is required")
	}

	now := biztime.NowUTC()
	return &Equipment{
		id:                  uuid.NewString(),
		equipmentType:       equipmentType,
		brand:               brand,
		model:               model,
		serialNumber:        serialNumber,
		status:              vo.StatusAvailable,
		additionalSoftwares: []string{},
		jiraAttributes:      map[string]string{},
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

// ReconstructEquipment rebuilds an equipment from persistence.
func ReconstructEquipment(
	id string,
	jiraAssetID string,
	internalID string,
	equipmentType vo.EquipmentType,
	brand, model, serialNumber string,
	imei, phoneLine string,
	status vo.EquipmentStatus,
	currentUserID string,
	location string,
	additionalSoftwares []string,
	jiraAttributes map[string]string,
	createdAt, updatedAt time.Time,
) (*Equipment, error) {
	if id == "" {
		return nil, fmt.Errorf("equipment ID is required")
	}
	if !equipmentType.IsValid() {
		return nil, fmt.Errorf("invalid equipment type: %s", equipmentType)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid equipment status: %s", status)
	}
	if additionalSoftwares == nil {
		additionalSoftwares = []string{}
	}
	if jiraAttributes == nil {
		jiraAttributes = map[string]string{}
	}

	return &Equipment{
		id:                  id,
		jiraAssetID:         jiraAssetID,
		internalID:          internalID,
		equipmentType:       equipmentType,
		brand:               brand,
		model:               model,
		serialNumber:        serialNumber,
		imei:                imei,
		phoneLine:           phoneLine,
		status:              status,
		currentUserID:       currentUserID,
		location:            location,
		additionalSoftwares: additionalSoftwares,
		jiraAttributes:      jiraAttributes,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}, nil
}

func (e *Equipment) ID() string {
	return e.id
}

func (e *Equipment) JiraAssetID() string {
	return e.jiraAssetID
}

func (e *Equipment) InternalID() string {
	return e.internalID
}

func (e *Equipment) Type() vo.EquipmentType {
	return e.equipmentType
}

func (e *Equipment) Brand() string {
	return e.brand
}

func (e *Equipment) Model() string {
	return e.model
}

func (e *Equipment) SerialNumber() string {
	return e.serialNumber
}

func (e *Equipment) IMEI() string {
	return e.imei
}

func (e *Equipment) PhoneLine() string {
	return e.phoneLine
}

func (e *Equipment) Status() vo.EquipmentStatus {
	return e.status
}

func (e *Equipment) CurrentUserID() string {
	return e.currentUserID
}

func (e *Equipment) Location() string {
	return e.location
}

func (e *Equipment) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Equipment) UpdatedAt() time.Time {
	return e.updatedAt
}

func (e *Equipment) AdditionalSoftwares() []string {
	out := make([]string, len(e.additionalSoftwares))
	copy(out, e.additionalSoftwares)
	return out
}

// JiraAttributes is the last attribute snapshot taken from the linked Jira asset,
// keyed by attribute id.
func (e *Equipment) JiraAttributes() map[string]string {
	out := make(map[string]string, len(e.jiraAttributes))
	for k, v := range e.jiraAttributes {
		out[k] = v
	}
	return out
}

// IsAssigned reports whether the equipment is held by an employee.
func (e *Equipment) IsAssigned() bool {
	return e.status == vo.StatusAssigned && e.currentUserID != ""
}

// Details carries the editable descriptive fields. Nil pointers are left untouched.
type Details struct {
	InternalID          *string
	Type                *vo.EquipmentType
	Brand               *string
	Model               *string
	SerialNumber        *string
	IMEI                *string
	PhoneLine           *string
	Location            *string
	AdditionalSoftwares []string
}

func (e *Equipment) UpdateDetails(d Details) error {
	if d.Type != nil {
		if !d.Type.IsValid() {
			return fmt.Errorf("invalid equipment type: %s", *d.Type)
		}
		e.equipmentType = *d.Type
	}
	if d.Brand != nil {
		if strings.TrimSpace(*d.Brand) == "" {
			return fmt.Errorf("brand is required")
		}
		e.brand = strings.TrimSpace(*d.Brand)
	}
	if d.Model != nil {
		if strings.TrimSpace(*d.Model) == "" {
			return fmt.Errorf("model is required")
		}
		e.model = strings.TrimSpace(*d.Model)
	}
	if d.SerialNumber != nil {
		if strings.TrimSpace(*d.SerialNumber) == "" {
			return fmt.Errorf("serial number is required")
		}
		e.serialNumber = strings.TrimSpace(*d.SerialNumber)
	}
	if d.InternalID != nil {
		e.internalID = strings.TrimSpace(*d.InternalID)
	}
	if d.IMEI != nil {
		e.imei = strings.TrimSpace(*d.IMEI)
	}
	if d.PhoneLine != nil {
		e.phoneLine = strings.TrimSpace(*d.PhoneLine)
	}
	if d.Location != nil {
		e.location = strings.TrimSpace(*d.Location)
	}
	if d.AdditionalSoftwares != nil {
		e.additionalSoftwares = append([]string{}, d.AdditionalSoftwares...)
	}
	e.touch()
	return nil
}

// SetStatus changes the status outside of the assign/release flow (inventory edits,
// Jira imports). Assigned equipment cannot be moved back without a release.
func (e *Equipment) SetStatus(status vo.EquipmentStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid equipment status: %s", status)
	}
	if status == vo.StatusAssigned && e.currentUserID == "" {
		return ErrNoAssignee
	}
	if status != vo.StatusAssigned {
		e.currentUserID = ""
	}
	e.status = status
	e.touch()
	return nil
}

// AssignTo hands the equipment to an employee.
func (e *Equipment) AssignTo(userID string) error {
	if userID == "" {
		return ErrNoAssignee
	}
	if e.status.IsTerminal() || e.status == vo.StatusInRepair {
		return fmt.Errorf("%w: status %s", ErrNotAssignable, e.status)
	}
	if e.IsAssigned() && e.currentUserID != userID {
		return ErrAlreadyAssigned
	}
	e.status = vo.StatusAssigned
	e.currentUserID = userID
	e.touch()
	return nil
}

// Release returns the equipment to the pool.
func (e *Equipment) Release() {
	e.status = vo.StatusAvailable
	e.currentUserID = ""
	e.touch()
}

// ReturnWith closes an assignment with the status derived from the return condition.
func (e *Equipment) ReturnWith(status vo.EquipmentStatus) error {
	if !status.IsValid() || status == vo.StatusAssigned {
		return fmt.Errorf("invalid return status: %s", status)
	}
	e.status = status
	e.currentUserID = ""
	e.touch()
	return nil
}

// LinkJiraAsset records the back-reference to a Jira asset and its attribute snapshot.
func (e *Equipment) LinkJiraAsset(jiraAssetID string, snapshot map[string]string) {
	e.jiraAssetID = jiraAssetID
	if snapshot != nil {
		e.jiraAttributes = make(map[string]string, len(snapshot))
		for k, v := range snapshot {
			e.jiraAttributes[k] = v
		}
	}
	e.touch()
}

// FillInternalID sets the internal id only when none is recorded yet.
func (e *Equipment) FillInternalID(internalID string) bool {
	internalID = strings.TrimSpace(internalID)
	if e.internalID != "" || internalID == "" {
		return false
	}
	e.internalID = internalID
	e.touch()
	return true
}

// CanDelete reports whether the equipment can be removed from the inventory.
func (e *Equipment) CanDelete() error {
	if e.IsAssigned() {
		return ErrAlreadyAssigned
	}
	return nil
}

func (e *Equipment) touch() {
	e.updatedAt = biztime.NowUTC()
}
