package storage

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/paqtool/paq/internal/pkg"
)

// ReadJSON parses a JSON array of records, e.g. the output of a package
// manager dump. Records without a name are rejected.
func ReadJSON(r io.Reader) ([]*pkg.Record, error) {
	var records []*pkg.Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("parse records: %w", err)
	}

	for i, rec := range records {
		if rec.Name == "" {
			return nil, fmt.Errorf("record %d has no name", i)
		}
		if rec.InstallState == "" {
			rec.InstallState = pkg.StateNotInstalled
		}
	}
	return records, nil
}
