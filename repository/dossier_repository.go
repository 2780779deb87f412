package repository

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"

	"github.com/Aashish23092/e3w-credit-analysis/dto"
)

//go:embed dossiers.json
var demoDossiers []byte

// DossierRepository is the read-only dossier catalog. Returned values are
// copies, so callers may modify them freely.
type DossierRepository interface {
	List(query string, status dto.FileStatus) []dto.CreditFile
	Get(id int) (dto.CreditFile, error)
}

type dossierRepository struct {
	dossiers []dto.CreditFile
}

// NewDossierRepository loads the catalog from path, or the embedded demo
// dossiers when path is empty.
func NewDossierRepository(path string) (DossierRepository, error) {
	data := demoDossiers
	source := "embedded demo catalog"
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read dossiers file: %w", err)
		}
		source = path
	}

	dossiers, err := decodeDossiers(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", source, err)
	}

	log.WithFields(log.Fields{
		"source":   source,
		"dossiers": len(dossiers),
	}).Info("dossier catalog loaded")

	return &dossierRepository{dossiers: dossiers}, nil
}

func decodeDossiers(data []byte) ([]dto.CreditFile, error) {
	var dossiers []dto.CreditFile
	if err := json.Unmarshal(data, &dossiers); err != nil {
		return nil, fmt.Errorf("invalid dossier JSON: %w", err)
	}

	seen := make(map[int]bool, len(dossiers))
	for _, d := range dossiers {
		if seen[d.ID] {
			return nil, fmt.Errorf("duplicate dossier id %d", d.ID)
		}
		seen[d.ID] = true

		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("dossier %d: %w", d.ID, err)
		}
	}

	sort.SliceStable(dossiers, func(i, j int) bool { return dossiers[i].ID < dossiers[j].ID })
	return dossiers, nil
}

// List returns the dossiers whose client name or purpose contains query
// (case-insensitive) and, when status is set, whose status matches.
func (r *dossierRepository) List(query string, status dto.FileStatus) []dto.CreditFile {
	query = strings.ToLower(query)

	result := []dto.CreditFile{}
	for _, d := range r.dossiers {
		if status != "" && d.Status != status {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(d.ClientName), query) &&
			!strings.Contains(strings.ToLower(d.Purpose), query) {
			continue
		}
		result = append(result, clone(d))
	}
	return result
}

func (r *dossierRepository) Get(id int) (dto.CreditFile, error) {
	for _, d := range r.dossiers {
		if d.ID == id {
			return clone(d), nil
		}
	}
	return dto.CreditFile{}, fmt.Errorf("%w: %d", dto.ErrDossierNotFound, id)
}

func clone(d dto.CreditFile) dto.CreditFile {
	out := d
	out.RiskRecord.Incidents = append([]dto.RiskIncident(nil), d.RiskRecord.Incidents...)
	out.RiskFactors = append([]dto.RiskFactor(nil), d.RiskFactors...)
	out.Strengths = append([]string(nil), d.Strengths...)
	out.Weaknesses = append([]string(nil), d.Weaknesses...)
	out.Recommendations = append([]string(nil), d.Recommendations...)
	out.BlockingReasons = append([]string(nil), d.BlockingReasons...)
	return out
}
