package request

import (
	"cotacao_ia/internal/domain/entities"
	"errors"
	"strings"
)

const maxAge = 130

var (
	ErrInvalidAge           = errors.New("invalid age")
	ErrInvalidPlanType      = errors.New("invalid plan_type")
	ErrInvalidHouseholdSize = errors.New("invalid household_size")
	ErrInvalidDependentAge  = errors.New("invalid dependent age")
)

// QuoteRequest is the customer profile submitted for quoting.
type QuoteRequest struct {
	Name          string `json:"name" binding:"required"`
	Age           *int   `json:"age" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Email         string `json:"email" binding:"required"`
	City          string `json:"city" binding:"required"`
	State         string `json:"state" binding:"required"`
	PlanType      string `json:"plan_type" binding:"required" example:"individual"`
	HouseholdSize *int   `json:"household_size" example:"1"`
	DependentAges []int  `json:"dependent_ages"`
}

// ToProfile validates ranges and normalizes defaults: household_size falls
// back to 1 and dependent_ages to an empty list.
func (r QuoteRequest) ToProfile() (entities.CustomerProfile, error) {
	if r.Age == nil || *r.Age < 0 || *r.Age > maxAge {
		return entities.CustomerProfile{}, ErrInvalidAge
	}
	planType, ok := entities.ParseQuotePlanType(r.PlanType)
	if !ok {
		return entities.CustomerProfile{}, ErrInvalidPlanType
	}
	household := 1
	if r.HouseholdSize != nil {
		if *r.HouseholdSize < 1 {
			return entities.CustomerProfile{}, ErrInvalidHouseholdSize
		}
		household = *r.HouseholdSize
	}
	dependents := make([]int, 0, len(r.DependentAges))
	for _, a := range r.DependentAges {
		if a < 0 || a > maxAge {
			return entities.CustomerProfile{}, ErrInvalidDependentAge
		}
		dependents = append(dependents, a)
	}

	return entities.CustomerProfile{
		Name:          strings.TrimSpace(r.Name),
		Age:           *r.Age,
		Phone:         strings.TrimSpace(r.Phone),
		Email:         strings.TrimSpace(r.Email),
		City:          strings.TrimSpace(r.City),
		State:         strings.TrimSpace(r.State),
		PlanType:      planType,
		HouseholdSize: household,
		DependentAges: dependents,
	}, nil
}
