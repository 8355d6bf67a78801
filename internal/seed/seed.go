// Package seed loads the optional rows inserted by the setup command.
package seed

import (
	"fmt"
	"os"
	"strings"

	"clientmap-api/internal/models"

	"gopkg.in/yaml.v3"
)

// Entry is one seed row as written in a YAML seed file.
type Entry struct {
	Client     string   `yaml:"client"`
	LegalName  string   `yaml:"legal_name"`
	Address    string   `yaml:"address"`
	Longitude  *float64 `yaml:"longitude"`
	Latitude   *float64 `yaml:"latitude"`
	Identifier string   `yaml:"identifier"`
	Voided     bool     `yaml:"voided"`
}

type file struct {
	Clients []Entry `yaml:"clients"`
}

// LoadFile reads seed rows from a YAML file.
func LoadFile(path string) ([]models.Client, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %q: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML seed rows. Every entry needs a client name.
func Parse(data []byte) ([]models.Client, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("seed: parse yaml: %w", err)
	}

	clients := make([]models.Client, 0, len(f.Clients))
	for i, e := range f.Clients {
		name := strings.TrimSpace(e.Client)
		if name == "" {
			return nil, fmt.Errorf("seed: entry #%d: client cannot be empty", i+1)
		}
		clients = append(clients, models.Client{
			Name:       name,
			LegalName:  strings.TrimSpace(e.LegalName),
			Address:    strings.TrimSpace(e.Address),
			CoordX:     e.Longitude,
			CoordY:     e.Latitude,
			Identifier: strings.TrimSpace(e.Identifier),
			Voided:     e.Voided,
		})
	}
	return clients, nil
}

func float(v float64) *float64 { return &v }

// Sample returns three demo companies located in Lima.
func Sample() []models.Client {
	return []models.Client{
		{Name: "Empresa A", LegalName: "Empresa A S.A.", Address: "Av. Principal 123", CoordX: float(-77.0428), CoordY: float(-12.0464), Identifier: "EMP001"},
		{Name: "Empresa B", LegalName: "Empresa B S.R.L.", Address: "Jr. Comercio 456", CoordX: float(-77.0344), CoordY: float(-12.0544), Identifier: "EMP002"},
		{Name: "Empresa C", LegalName: "Empresa C E.I.R.L.", Address: "Av. Industrial 789", CoordX: float(-77.0264), CoordY: float(-12.0624), Identifier: "EMP003", Voided: true},
	}
}
