package session

import (
	"encoding/json"
	"fmt"
)

const snapshotVersion = 1

type identitySnapshot struct {
	SchemaVersion int      `json:"schema_version,omitempty"`
	Identity      Identity `json:"identity"`
}

func encodeIdentity(id Identity) (string, error) {
	b, err := json.Marshal(identitySnapshot{SchemaVersion: snapshotVersion, Identity: id})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeIdentity(raw string) (Identity, error) {
	var snap identitySnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return Identity{}, err
	}

	if snap.SchemaVersion != 0 && snap.SchemaVersion != snapshotVersion {
		return Identity{}, fmt.Errorf("unknown snapshot schema_version %d", snap.SchemaVersion)
	}
	if snap.Identity.ID == "" || snap.Identity.Email == "" {
		return Identity{}, fmt.Errorf("incomplete identity snapshot")
	}

	return snap.Identity, nil
}
