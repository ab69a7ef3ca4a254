package vanilla

import "strings"

// classList joins class tokens, dropping blanks and duplicates.
func classList(values ...string) string {
	seen := make(map[string]struct{})
	keep := make([]string, 0, len(values))
	for _, value := range values {
		for _, token := range strings.Fields(value) {
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			keep = append(keep, token)
		}
	}
	return strings.Join(keep, " ")
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
