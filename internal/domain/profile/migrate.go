package profile

import "encoding/json"

// Schema versions for persisted profile records.
const (
	// SchemaVersionSingleMajor is the legacy shape with a single "major"
	// string field. Records without a version tag are assumed to be this.
	SchemaVersionSingleMajor = 1

	// CurrentSchemaVersion is the multi-major list shape.
	CurrentSchemaVersion = 2
)

// storedProfile is the persisted envelope. It carries the legacy single-major
// field alongside the current shape so old records still decode.
type storedProfile struct {
	StudentProfile

	// Major is the legacy single-major field, upgraded on load.
	Major string `json:"major,omitempty"`
}

// DecodeRecord deserializes a persisted profile record, applying the
// single-major to major-list upgrade when needed. The second return value
// reports whether the record was migrated and should be re-persisted. The
// transform is pure and idempotent: a record already at the current version
// decodes unchanged.
func DecodeRecord(data []byte) (p *StudentProfile, migrated bool, err error) {
	var sp storedProfile
	if err := json.Unmarshal(data, &sp); err != nil {
		return nil, false, err
	}

	out := sp.StudentProfile
	if out.SchemaVersion >= CurrentSchemaVersion {
		return &out, false, nil
	}

	if len(out.Majors) == 0 && sp.Major != "" {
		out.Majors = []string{sp.Major}
	}
	out.SchemaVersion = CurrentSchemaVersion
	return &out, true, nil
}

// EncodeRecord serializes a profile for persistence at the current schema
// version.
func EncodeRecord(p *StudentProfile) ([]byte, error) {
	p.SchemaVersion = CurrentSchemaVersion
	return json.Marshal(p)
}
