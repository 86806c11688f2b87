package permission

import (
	"fmt"

	"github.com/GithubESPI/dotationsFrontend/internal/domain/permission"
)

// SeedDefaultPolicies adds the built-in role policies and role inheritance.
// Existing rules are left untouched, so it is safe to run at every start.
func (e *Enforcer) SeedDefaultPolicies() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, p := range permission.DefaultPolicies() {
		if _, err := e.enforcer.AddPolicy(p.Role.String(), p.Resource.String(), p.Action.String()); err != nil {
			e.logger.Errorw("failed to add permission policy",
				"error", err,
				"role", p.Role,
				"resource", p.Resource,
				"action", p.Action)
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", p.Role, p.Resource, p.Action, err)
		}
	}

	for _, inh := range permission.DefaultInheritance() {
		if _, err := e.enforcer.AddGroupingPolicy(inh.Role.String(), inh.Parent.String()); err != nil {
			return fmt.Errorf("failed to add role inheritance %s -> %s: %w", inh.Role, inh.Parent, err)
		}
	}

	e.logger.Info("default permissions seeded")
	return nil
}
