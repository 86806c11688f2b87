package dto

import (
	"time"

	"github.com/GithubESPI/dotationsFrontend/internal/domain/employee"
)

type EmployeeDTO struct {
	ID          string `json:"_id"`
	Office365ID string `json:"office365Id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	employee.Profile
	IsActive  bool       `json:"isActive"`
	LastSync  *time.Time `json:"lastSync,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func ToEmployeeDTO(e *employee.Employee) *EmployeeDTO {
	if e == nil {
		return nil
	}
	return &EmployeeDTO{
		ID:          e.ID(),
		Office365ID: e.Office365ID(),
		Email:       e.Email(),
		DisplayName: e.DisplayName(),
		Profile:     e.Profile(),
		IsActive:    e.IsActive(),
		LastSync:    e.LastSync(),
		CreatedAt:   e.CreatedAt(),
		UpdatedAt:   e.UpdatedAt(),
	}
}

func ToEmployeeDTOs(list []*employee.Employee) []*EmployeeDTO {
	out := make([]*EmployeeDTO, 0, len(list))
	for _, e := range list {
		out = append(out, ToEmployeeDTO(e))
	}
	return out
}

type ListEmployeesDTO struct {
	Items []*EmployeeDTO
	Total int64
	Page  int
	Limit int
}

type StatsDTO struct {
	Total        int64                      `json:"total"`
	Active       int64                      `json:"active"`
	Inactive     int64                      `json:"inactive"`
	ByDepartment []employee.DepartmentCount `json:"byDepartment"`
}

func ToStatsDTO(s *employee.Stats) *StatsDTO {
	out := &StatsDTO{ByDepartment: []employee.DepartmentCount{}}
	if s == nil {
		return out
	}
	out.Total = s.Total
	out.Active = s.Active
	out.Inactive = s.Inactive
	if s.ByDepartment != nil {
		out.ByDepartment = s.ByDepartment
	}
	return out
}

// UpsertResultDTO has the shape of the directory sync report.
type UpsertResultDTO struct {
	Synced  int `json:"synced"`
	Created int `json:"created"`
	Errors  int `json:"errors"`
	Skipped int `json:"skipped"`
}
