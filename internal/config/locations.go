package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zapponejosh/zmanim/internal/geo"
)

// ErrInvalidCatalog is wrapped by every location catalog mapping failure.
var ErrInvalidCatalog = errors.New("invalid location catalog")

// YAMLCatalog is the on-disk form of a location catalog.
type YAMLCatalog struct {
	Locations []YAMLLocation `yaml:"locations"`
}

type YAMLLocation struct {
	Name      string   `yaml:"name"`
	Latitude  *float64 `yaml:"latitude"`
	Longitude *float64 `yaml:"longitude"`
	Elevation float64  `yaml:"elevation"`
	TimeZone  string   `yaml:"timezone"`
}

// CatalogError reports a failure to load or map a catalog file.
type CatalogError struct {
	Op   string
	Path string
	Err  error
}

func (e *CatalogError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s (path=%s): %v", e.Op, e.Path, e.Err)
}

func (e *CatalogError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// LoadLocations reads a YAML catalog of named locations.
func LoadLocations(path string) ([]geo.Location, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &CatalogError{Op: "config.load_locations", Path: path, Err: err}
	}

	var dto YAMLCatalog
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return nil, &CatalogError{Op: "config.load_locations", Path: path, Err: err}
	}

	return MapLocations(path, dto)
}

// MapLocations validates the catalog and converts it to locations. Names
// must be unique, ignoring case.
func MapLocations(path string, cat YAMLCatalog) ([]geo.Location, error) {
	out := make([]geo.Location, 0, len(cat.Locations))
	seen := make(map[string]int, len(cat.Locations))

	for i, l := range cat.Locations {
		field := fmt.Sprintf("locations[%d]", i)

		name := strings.TrimSpace(l.Name)
		if name == "" {
			return nil, invalidField(path, field+".name", "name is required")
		}
		if prev, ok := seen[strings.ToLower(name)]; ok {
			return nil, invalidField(path, field+".name", fmt.Sprintf("duplicate of locations[%d]", prev))
		}
		seen[strings.ToLower(name)] = i

		if l.Latitude == nil {
			return nil, invalidField(path, field+".latitude", "latitude is required")
		}
		if l.Longitude == nil {
			return nil, invalidField(path, field+".longitude", "longitude is required")
		}

		tz := l.TimeZone
		if tz == "" {
			tz = "UTC"
		}
		loc, err := geo.NewLocation(name, *l.Latitude, *l.Longitude, l.Elevation, tz)
		if err != nil {
			return nil, invalidField(path, field, err.Error())
		}
		out = append(out, loc)
	}

	return out, nil
}

// FindLocation returns the location whose name matches, ignoring case.
func FindLocation(locations []geo.Location, name string) (geo.Location, bool) {
	for _, l := range locations {
		if strings.EqualFold(l.Name, strings.TrimSpace(name)) {
			return l, true
		}
	}
	return geo.Location{}, false
}

func invalidField(path, field, msg string) error {
	return &CatalogError{
		Op:   "config.map_locations",
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, ErrInvalidCatalog),
	}
}
