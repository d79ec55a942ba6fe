package shipping

import (
	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/shopspring/decimal"
)

// BuildManifest groups units by name in first-seen order and sums the weight of every unit.
// It returns nil when there is nothing to ship.
func BuildManifest(units []domain.Shippable) *domain.Manifest {
	if len(units) == 0 {
		return nil
	}

	manifest := &domain.Manifest{TotalWeight: decimal.Zero}
	index := make(map[string]int)

	for _, unit := range units {
		name := unit.Name()
		i, seen := index[name]
		if !seen {
			i = len(manifest.Entries)
			index[name] = i
			manifest.Entries = append(manifest.Entries, domain.ManifestEntry{Name: name})
		}
		manifest.Entries[i].Count++
		manifest.TotalWeight = manifest.TotalWeight.Add(unit.Weight())
	}

	return manifest
}
