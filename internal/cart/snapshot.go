package cart

import (
	"encoding/json"
	"fmt"
)

// snapshotVersion tags the persisted format. The browser app wrote a bare
// item array with no version field; a missing tag is read as version 1.
const snapshotVersion = 1

type snapshot struct {
	SchemaVersion int        `json:"schema_version,omitempty"`
	Items         []LineItem `json:"items"`
}

func encodeSnapshot(items []LineItem) (string, error) {
	if items == nil {
		items = []LineItem{}
	}
	b, err := json.Marshal(snapshot{SchemaVersion: snapshotVersion, Items: items})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeSnapshot(raw string) ([]LineItem, error) {
	var snap snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, err
	}

	if snap.SchemaVersion != 0 && snap.SchemaVersion != snapshotVersion {
		return nil, fmt.Errorf("unknown snapshot schema_version %d", snap.SchemaVersion)
	}

	for _, it := range snap.Items {
		if it.Book.ID == "" || it.Quantity < 1 {
			return nil, fmt.Errorf("invalid line item for book %q", it.Book.ID)
		}
	}

	return snap.Items, nil
}
