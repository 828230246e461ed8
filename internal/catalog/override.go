package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// overrideRow mirrors the expected CSV columns. Header matching is
// case-insensitive; skills and value words are comma-separated within
// their cells.
type overrideRow struct {
	JobTitle       string `mapstructure:"jobtitle"`
	RequiredSkills string `mapstructure:"requiredskills"`
	ValueWords     string `mapstructure:"valuewords"`
	ExpMin         int    `mapstructure:"expmin"`
	ExpMax         int    `mapstructure:"expmax"`
}

// LoadOverrideFile reads a vacancy override CSV from disk and applies it to
// the given sector. On any error the original catalog is returned alongside
// the error so the caller can log a warning and continue with the defaults.
func LoadOverrideFile(path, sector string, base *Catalog) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return base, fmt.Errorf("open vacancy override: %w", err)
	}
	defer f.Close()

	return ApplyOverride(f, sector, base)
}

// ApplyOverride parses override rows from r and returns a catalog with the
// sector's profiles replaced. The base catalog is returned unchanged when
// the input cannot be parsed.
func ApplyOverride(r io.Reader, sector string, base *Catalog) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return base, fmt.Errorf("read vacancy override header: %w", err)
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	var profiles []Profile
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return base, fmt.Errorf("read vacancy override row: %w", err)
		}

		raw := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				raw[col] = strings.TrimSpace(record[i])
			}
		}

		var row overrideRow
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &row,
			WeaklyTypedInput: true,
		})
		if err != nil {
			return base, fmt.Errorf("build override decoder: %w", err)
		}
		if err := decoder.Decode(raw); err != nil {
			return base, fmt.Errorf("decode vacancy override line %d: %w", line, err)
		}

		if strings.TrimSpace(row.JobTitle) == "" {
			return base, fmt.Errorf("vacancy override line %d: JobTitle is required", line)
		}

		profiles = append(profiles, Profile{
			Sector:         sector,
			JobTitle:       row.JobTitle,
			RequiredSkills: splitList(row.RequiredSkills),
			ValueWords:     splitList(row.ValueWords),
			ExpMin:         row.ExpMin,
			ExpMax:         row.ExpMax,
		})
	}

	if len(profiles) == 0 {
		return base, fmt.Errorf("vacancy override contains no rows")
	}

	return base.WithSectorProfiles(sector, profiles), nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
