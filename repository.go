package assets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Repository abstracts loading and persisting portfolio state. The reference
// implementation is backed by a YAML file, but the core only depends on this
// interface.
type Repository interface {
	LoadPortfolio() (*Portfolio, error)
	SavePortfolio(p *Portfolio) error
	SaveNextMonthPortfolio(data NextMonthData) error
}

// YAMLRepository persists a portfolio in a YAML file with one record list per
// asset-type code. Loading is tolerant per record: an unknown type code, a
// malformed record or an invalid asset skips that record with a warning
// instead of aborting the whole load. Duplicate names remain fatal.
type YAMLRepository struct {
	path string
	log  zerolog.Logger
}

// NewYAMLRepository creates a repository around the given .yaml/.yml file.
func NewYAMLRepository(path string, log zerolog.Logger) (*YAMLRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("asset file path cannot be empty")
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("asset file must be a YAML file: %q", path)
	}
	return &YAMLRepository{path: path, log: log}, nil
}

// Path returns the asset file path.
func (r *YAMLRepository) Path() string { return r.path }

// NextMonthPath returns the path the next-month template is written to,
// derived from the asset file path.
func (r *YAMLRepository) NextMonthPath() string {
	ext := filepath.Ext(r.path)
	stem := strings.TrimSuffix(r.path, ext)
	return stem + "_next_month" + ext
}

// LoadPortfolio reads and parses the asset file.
func (r *YAMLRepository) LoadPortfolio() (*Portfolio, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("could not open asset file %q: %w", r.path, err)
	}
	defer f.Close()

	p, err := r.decodePortfolio(f)
	if err != nil {
		return nil, fmt.Errorf("could not load portfolio from %q: %w", r.path, err)
	}
	r.log.Info().Int("assets", p.Size()).Str("file", r.path).Msg("loaded portfolio")
	return p, nil
}

// decodePortfolio parses the YAML document, skipping invalid records with a
// warning. Sections are visited in deterministic asset-type order.
func (r *YAMLRepository) decodePortfolio(src io.Reader) (*Portfolio, error) {
	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("malformed YAML: %w", err)
	}

	codes := make([]string, 0, len(doc))
	for code := range doc {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	sort.SliceStable(codes, func(i, j int) bool { return typeOrder(codes[i]) < typeOrder(codes[j]) })

	var list []Asset
	for _, code := range codes {
		assetType, err := ParseAssetType(code)
		if err != nil {
			r.log.Warn().Str("asset_type", code).Msg("unknown asset type, skipping section")
			continue
		}
		section := doc[code]
		if section.Kind != yaml.SequenceNode {
			r.log.Warn().Str("asset_type", code).Msg("section is not a list, skipping")
			continue
		}
		for _, item := range section.Content {
			var record AssetRecord
			if err := item.Decode(&record); err != nil {
				r.log.Warn().Str("asset_type", code).Err(err).Msg("malformed asset record, skipping")
				continue
			}
			asset, err := record.Asset(assetType)
			if err != nil {
				r.log.Warn().Str("asset_type", code).Err(err).Msg("invalid asset record, skipping")
				continue
			}
			list = append(list, asset)
		}
	}
	return NewPortfolio(list)
}

// SavePortfolio rewrites the asset file in canonical form.
func (r *YAMLRepository) SavePortfolio(p *Portfolio) error {
	if err := r.writeYAML(r.path, NextMonthDataFrom(p)); err != nil {
		return fmt.Errorf("could not save portfolio to %q: %w", r.path, err)
	}
	r.log.Info().Int("assets", p.Size()).Str("file", r.path).Msg("saved portfolio")
	return nil
}

// SaveNextMonthPortfolio writes the next-month template beside the asset
// file.
func (r *YAMLRepository) SaveNextMonthPortfolio(data NextMonthData) error {
	path := r.NextMonthPath()
	if err := r.writeYAML(path, data); err != nil {
		return fmt.Errorf("could not save next month portfolio to %q: %w", path, err)
	}
	r.log.Info().Int("assets", data.TotalAssets()).Str("file", path).Msg("saved next month portfolio")
	return nil
}

func (r *YAMLRepository) writeYAML(path string, data NextMonthData) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		f.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
