// Package employee is the staff directory that allocations are made to.
package employee

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/GithubESPI/dotationsFrontend/internal/shared/biztime"
)

// Profile holds the directory attributes copied from Office 365.
type Profile struct {
	GivenName          string   `json:"givenName,omitempty"`
	Surname            string   `json:"surname,omitempty"`
	JobTitle           string   `json:"jobTitle,omitempty"`
	Department         string   `json:"department,omitempty"`
	OfficeLocation     string   `json:"officeLocation,omitempty"`
	MobilePhone        string   `json:"mobilePhone,omitempty"`
	BusinessPhones     []string `json:"businessPhones,omitempty"`
	City               string   `json:"city,omitempty"`
	Country            string   `json:"country,omitempty"`
	CompanyName        string   `json:"companyName,omitempty"`
	EmployeeID         string   `json:"employeeId,omitempty"`
	EmployeeType       string   `json:"employeeType,omitempty"`
	ManagerDisplayName string   `json:"managerDisplayName,omitempty"`
	ManagerEmail       string   `json:"managerEmail,omitempty"`
	AccountEnabled     *bool    `json:"accountEnabled,omitempty"`
}

type Employee struct {
	id          string
	office365ID string
	email       string
	displayName string
	profile     Profile
	isActive    bool
	lastSync    *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewEmployee(office365ID, email, displayName string, profile Profile) (*Employee, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if office365ID == "" {
		return nil, fmt.Errorf("office365 ID is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email: %s", email)
	}
	if strings.TrimSpace(displayName) == "" {
		return nil, fmt.Errorf("display name is required")
	}

	now := biztime.NowUTC()
	e := &Employee{
		id:          uuid.NewString(),
		office365ID: office365ID,
		email:       email,
		displayName: strings.TrimSpace(displayName),
		profile:     profile,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}
	if profile.AccountEnabled != nil {
		e.isActive = *profile.AccountEnabled
	}
	return e, nil
}

func ReconstructEmployee(
	id, office365ID, email, displayName string,
	profile Profile,
	isActive bool,
	lastSync *time.Time,
	createdAt, updatedAt time.Time,
) (*Employee, error) {
	if id == "" {
		return nil, fmt.Errorf("employee ID is required")
	}
	return &Employee{
		id:          id,
		office365ID: office365ID,
		email:       email,
		displayName: displayName,
		profile:     profile,
		isActive:    isActive,
		lastSync:    lastSync,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (e *Employee) ID() string {
	return e.id
}

func (e *Employee) Office365ID() string {
	return e.office365ID
}

func (e *Employee) Email() string {
	return e.email
}

func (e *Employee) DisplayName() string {
	return e.displayName
}

func (e *Employee) Profile() Profile {
	p := e.profile
	p.BusinessPhones = append([]string(nil), e.profile.BusinessPhones...)
	return p
}

func (e *Employee) IsActive() bool {
	return e.isActive
}

func (e *Employee) LastSync() *time.Time {
	return e.lastSync
}

func (e *Employee) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Employee) UpdatedAt() time.Time {
	return e.updatedAt
}

// ApplyDirectory refreshes the record from a directory entry and stamps the sync time.
// A disabled directory account deactivates the employee.
func (e *Employee) ApplyDirectory(email, displayName string, profile Profile) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email: %s", email)
	}
	if strings.TrimSpace(displayName) != "" {
		e.displayName = strings.TrimSpace(displayName)
	}
	e.email = email
	e.profile = profile
	if profile.AccountEnabled != nil {
		e.isActive = *profile.AccountEnabled
	}
	now := biztime.NowUTC()
	e.lastSync = &now
	e.updatedAt = now
	return nil
}

// UpdateContact changes the locally editable fields.
func (e *Employee) UpdateContact(jobTitle, department, officeLocation, mobilePhone *string) {
	if jobTitle != nil {
		e.profile.JobTitle = strings.TrimSpace(*jobTitle)
	}
	if department != nil {
		e.profile.Department = strings.TrimSpace(*department)
	}
	if officeLocation != nil {
		e.profile.OfficeLocation = strings.TrimSpace(*officeLocation)
	}
	if mobilePhone != nil {
		e.profile.MobilePhone = strings.TrimSpace(*mobilePhone)
	}
	e.updatedAt = biztime.NowUTC()
}

func (e *Employee) Deactivate() {
	e.isActive = false
	e.updatedAt = biztime.NowUTC()
}
