package input

import (
	"context"
	"fmt"

	"github.com/de-tools/profit-report/pkg/models/domain"
	"github.com/rs/zerolog"
	"gopkg.in/ini.v1"
)

// Profile is one company's figures loaded from an inputs file.
type Profile struct {
	Name    string
	Company string
	Inputs  domain.FinancialInputs
}

type ProfileRegistry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (*Profile, error)
}

type iniRegistry struct {
	cfg *ini.File
}

// NewProfileRegistry loads an INI inputs file, one section per company.
func NewProfileRegistry(path string) (ProfileRegistry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load inputs file %s: %w", path, err)
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (r *iniRegistry) GetProfile(ctx context.Context, name string) (*Profile, error) {
	section, err := r.cfg.GetSection(name)
	if err != nil || len(section.Keys()) == 0 {
		return nil, fmt.Errorf("profile %s not found", name)
	}

	company := name
	if section.HasKey("company") && section.Key("company").String() != "" {
		company = section.Key("company").String()
	}

	var in domain.FinancialInputs
	for _, f := range fields {
		if !section.HasKey(f.key) {
			return nil, fmt.Errorf("profile %s: %w", name,
				&InvalidNumericInputError{Field: f.key, Value: ""})
		}
		v, err := ParseAmount(f.key, section.Key(f.key).String())
		if err != nil {
			return nil, fmt.Errorf("profile %s: %w", name, err)
		}
		f.set(&in, v)
	}

	zerolog.Ctx(ctx).Debug().Str("profile", name).Str("company", company).Msg("profile loaded")

	return &Profile{Name: name, Company: company, Inputs: in}, nil
}

// ResolveProfile picks the named profile, or the only one when name is empty.
func ResolveProfile(ctx context.Context, registry ProfileRegistry, name string) (*Profile, error) {
	if name != "" {
		return registry.GetProfile(ctx, name)
	}

	profiles, err := registry.GetProfiles(ctx)
	if err != nil {
		return nil, err
	}
	switch len(profiles) {
	case 0:
		return nil, fmt.Errorf("inputs file has no profiles")
	case 1:
		return registry.GetProfile(ctx, profiles[0])
	default:
		return nil, fmt.Errorf("inputs file has %d profiles, choose one with --profile: %v", len(profiles), profiles)
	}
}
