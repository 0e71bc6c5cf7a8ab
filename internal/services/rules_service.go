package services

import (
	"errors"
	"fmt"

	"leadgrid/internal/availability"
	"leadgrid/internal/domain"
	"leadgrid/internal/repos"

	"github.com/google/uuid"
)

var (
	ErrRuleNeedsPostalCode = errors.New("postal-code rule requires a postal code")
	ErrRuleNeedsStreet     = errors.New("street-range rule requires a street")
)

// RulesService fronts rule authoring. The engine tolerates malformed rules
// (they just never match); authoring rejects them early so dead rules don't
// accumulate.
type RulesService struct {
	Rules *repos.RuleRepo
}

func NewRulesService(rules *repos.RuleRepo) *RulesService {
	return &RulesService{Rules: rules}
}

func (s *RulesService) List() ([]domain.AvailabilityRule, error) {
	return s.Rules.List()
}

func (s *RulesService) Create(rule domain.AvailabilityRule) (domain.AvailabilityRule, error) {
	switch rule.Type {
	case domain.RuleTypePostalCode:
		if availability.NormalizePostalCode(rule.PostalCode) == "" {
			return rule, ErrRuleNeedsPostalCode
		}
	case domain.RuleTypeStreetRange:
		if availability.NormalizeStreet(rule.Street) == "" {
			return rule, ErrRuleNeedsStreet
		}
	default:
		return rule, fmt.Errorf("unknown rule type %q", rule.Type)
	}
	if rule.Effect != domain.EffectAllow && rule.Effect != domain.EffectDeny {
		return rule, fmt.Errorf("unknown rule effect %q", rule.Effect)
	}

	if rule.ID == "" {
		rule.ID = uuid.NewString()
	}
	return rule, s.Rules.Create(rule)
}

func (s *RulesService) Delete(id string) error {
	return s.Rules.Delete(id)
}
