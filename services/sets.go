// file: services/sets.go
package services

// Set-style helpers for the JSON-array fields, mirroring the
// addToSet/pull mutators the documents were written with.

func addToSet(set []string, v string) []string {
	for _, e := range set {
		if e == v {
			return set
		}
	}
	return append(set, v)
}

func pull(set []string, v string) []string {
	out := set[:0]
	for _, e := range set {
		if e != v {
			out = append(out, e)
		}
	}
	return out
}

func contains(set []string, v string) bool {
	for _, e := range set {
		if e == v {
			return true
		}
	}
	return false
}
