package gamedata

import (
	"errors"
	"strings"
)

// Intn is the random source used to pick species.
type Intn interface {
	Intn(n int) int
}

// SpeciesRegistry holds loaded species definitions.
type SpeciesRegistry struct {
	species []SpeciesDef
}

// NewSpeciesRegistry creates a registry from loaded species definitions.
func NewSpeciesRegistry(species []SpeciesDef) *SpeciesRegistry {
	return &SpeciesRegistry{species: species}
}

// LoadSpeciesRegistry loads and creates a registry from the embedded species.json.
func LoadSpeciesRegistry() (*SpeciesRegistry, error) {
	species, err := LoadSpecies()
	if err != nil {
		return nil, err
	}
	if len(species) == 0 {
		return nil, errors.New("no species loaded from species.json")
	}
	return NewSpeciesRegistry(species), nil
}

// MustLoadSpeciesRegistry loads a registry, panicking on error.
func MustLoadSpeciesRegistry() *SpeciesRegistry {
	registry, err := LoadSpeciesRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Random selects a species uniformly at random, or nil if the registry is empty.
func (r *SpeciesRegistry) Random(rng Intn) *SpeciesDef {
	if len(r.species) == 0 {
		return nil
	}
	return &r.species[rng.Intn(len(r.species))]
}

// GetByName returns the species with the given display name (case-insensitive),
// or nil if not found.
func (r *SpeciesRegistry) GetByName(name string) *SpeciesDef {
	for i := range r.species {
		if strings.EqualFold(r.species[i].Name, name) {
			return &r.species[i]
		}
	}
	return nil
}

// All returns all species definitions.
func (r *SpeciesRegistry) All() []SpeciesDef {
	return r.species
}

// Count returns the number of species in the registry.
func (r *SpeciesRegistry) Count() int {
	return len(r.species)
}
