package report

import (
	"strings"

	"github.com/sysdash/sysdash/internal/snapshot"
)

// pseudoFilesystemPrefixes mark virtual mounts that clutter the disk table.
// Prefix match, case-sensitive.
var pseudoFilesystemPrefixes = []string{"devfs", "map"}

// MainDisks returns the disk entries worth showing, dropping pseudo and
// virtual filesystems. Order is preserved; an empty result is valid and
// renders as a placeholder instead of a table.
func MainDisks(entries []snapshot.DiskEntry) []snapshot.DiskEntry {
	var main []snapshot.DiskEntry
	for _, entry := range entries {
		if isPseudoFilesystem(string(entry.Filesystem)) {
			continue
		}
		main = append(main, entry)
	}
	return main
}

func isPseudoFilesystem(fs string) bool {
	for _, prefix := range pseudoFilesystemPrefixes {
		if strings.HasPrefix(fs, prefix) {
			return true
		}
	}
	return false
}

// ActiveInterfaces returns interfaces with observed traffic: at least one
// received or transmitted byte. Order is preserved; an empty result renders
// as a placeholder instead of a table.
func ActiveInterfaces(entries []snapshot.Interface) []snapshot.Interface {
	var active []snapshot.Interface
	for _, entry := range entries {
		if entry.RxBytes > 0 || entry.TxBytes > 0 {
			active = append(active, entry)
		}
	}
	return active
}
