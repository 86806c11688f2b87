package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/GithubESPI/dotationsFrontend/internal/domain/equipment"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/jiraasset"
)

// loadCandidates fetches the local equipment that could match any of the forms,
// by serial number or by Jira back-reference, without duplicates.
func loadCandidates(ctx context.Context, repo equipment.Repository, forms []jiraasset.EquipmentFormData) ([]*equipment.Equipment, error) {
	serials := make([]string, 0, len(forms))
	assetIDs := make([]string, 0, len(forms))
	for _, f := range forms {
		if strings.TrimSpace(f.SerialNumber) != "" {
			serials = append(serials, f.SerialNumber)
		}
		if f.JiraAssetID != "" {
			assetIDs = append(assetIDs, f.JiraAssetID)
		}
	}

	bySerial, err := repo.FindBySerialNumbers(ctx, serials)
	if err != nil {
		return nil, fmt.Errorf("failed to load equipment by serial number: %w", err)
	}
	byLink, err := repo.FindByJiraAssetIDs(ctx, assetIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load equipment by jira asset id: %w", err)
	}

	seen := make(map[string]bool, len(bySerial)+len(byLink))
	out := make([]*equipment.Equipment, 0, len(bySerial)+len(byLink))
	for _, list := range [][]*equipment.Equipment{bySerial, byLink} {
		for _, e := range list {
			if e == nil || seen[e.ID()] {
				continue
			}
			seen[e.ID()] = true
			out = append(out, e)
		}
	}
	return out, nil
}
