package snapshot

import (
	"encoding/json"
	"os"

	"github.com/sysdash/sysdash/internal/errors"
	"github.com/sysdash/sysdash/internal/logger"
)

// CollectorHint names the upstream command that produces the snapshot file.
// Shown when the input file is missing, so the fix is obvious.
const CollectorHint = "Run './scripts/monitor.sh -o' first to collect metrics"

var log = logger.NewEnvLogger("[snapshot]")

// Load reads and parses the snapshot file at path.
//
// A missing file and an unreadable/unparseable file are both reported as
// LOAD errors; the caller decides how fatal they are. The parsed document
// is returned as-is with no validation beyond the lenient field decoding.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrLoad,
				"Could not find "+path,
				CollectorHint)
		}
		return nil, errors.WrapWithCode(err, errors.ErrLoad,
			"Failed to read "+path,
			"Check the file exists and is readable")
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrLoad,
			"Failed to parse "+path,
			"Check the file contains a valid JSON metrics snapshot")
	}

	log.Debug("loaded snapshot from %s (%d bytes)", path, len(data))
	return &snap, nil
}
