package registry

import (
	"fmt"
	"strings"
)

// integrityHexLen maps supported digest algorithms to the hex length of
// their output.
var integrityHexLen = map[string]int{
	"sha256": 64,
	"sha384": 96,
	"sha512": 128,
}

// Validate performs a full structural check of the registry and returns a
// *ValidationError listing every violation: duplicate names, empty names,
// malformed versions, malformed integrity strings, and missing integrity
// hashes when the registry was built with WithRequiredIntegrity. A nil
// return means the table is sound.
//
// The whole table is checked in one pass; validation never stops at the
// first violation.
func (r *Registry) Validate() error {
	var issues []Issue

	counts := make(map[string]int)
	for _, rec := range r.records {
		counts[rec.Name]++
	}
	reportedDup := make(map[string]struct{})

	for _, rec := range r.records {
		if rec.Name == "" {
			issues = append(issues, Issue{Reason: "record has an empty name"})
			continue
		}

		if counts[rec.Name] > 1 {
			if _, done := reportedDup[rec.Name]; !done {
				reportedDup[rec.Name] = struct{}{}
				issues = append(issues, Issue{
					Name:   rec.Name,
					Reason: fmt.Sprintf("registered %d times, names must be unique", counts[rec.Name]),
				})
			}
		}

		if reason, ok := checkVersion(rec.Version); !ok {
			issues = append(issues, Issue{Name: rec.Name, Reason: reason})
		}

		if rec.Integrity == "" {
			if r.requireIntegrity {
				issues = append(issues, Issue{Name: rec.Name, Reason: "missing required integrity hash"})
			}
		} else if reason, ok := checkIntegrity(rec.Integrity); !ok {
			issues = append(issues, Issue{Name: rec.Name, Reason: reason})
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// checkVersion validates the shape of a version string. Versions are
// otherwise opaque; only emptiness and stray whitespace are rejected.
func checkVersion(version string) (string, bool) {
	if version == "" {
		return "version is empty", false
	}
	if strings.TrimSpace(version) != version || strings.ContainsAny(version, " \t\n") {
		return fmt.Sprintf("version %q contains whitespace", version), false
	}
	return "", true
}

// checkIntegrity validates an "algo:hex" integrity string against the
// supported digest algorithms.
func checkIntegrity(integrity string) (string, bool) {
	algo, hexDigest, found := strings.Cut(integrity, ":")
	if !found {
		return fmt.Sprintf("integrity %q is not in algo:hex form", integrity), false
	}

	wantLen, ok := integrityHexLen[algo]
	if !ok {
		return fmt.Sprintf("integrity uses unsupported algorithm %q", algo), false
	}
	if len(hexDigest) != wantLen {
		return fmt.Sprintf("integrity digest has %d hex characters, %s requires %d", len(hexDigest), algo, wantLen), false
	}
	for _, c := range hexDigest {
		isHex := (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
		if !isHex {
			return fmt.Sprintf("integrity digest contains non-hex character %q", c), false
		}
	}
	return "", true
}
