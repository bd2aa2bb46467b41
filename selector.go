package distcheck

import "strings"

// SelectAll selects every registered validator.
const SelectAll = "all"

// ParseSelector resolves a selector string into a de-duplicated list of
// validator names. The selector is "all", a single name, or a comma
// separated list of names; it is matched case-insensitively and surrounding
// whitespace is ignored. A blank selector is treated as "all".
//
// Returns EINVALID listing every unknown name together with the valid options.
func ParseSelector(selector string, valid []string) ([]string, error) {
	clean := strings.ToLower(strings.TrimSpace(selector))
	if clean == "" || clean == SelectAll {
		return append([]string(nil), valid...), nil
	}

	known := make(map[string]bool, len(valid))
	for _, name := range valid {
		known[name] = true
	}

	var selected, invalid []string
	seen := make(map[string]bool)
	for _, item := range strings.Split(clean, ",") {
		name := strings.TrimSpace(item)
		if name == "" {
			continue
		}
		if !known[name] {
			invalid = append(invalid, name)
			continue
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		selected = append(selected, name)
	}

	if len(invalid) > 0 {
		return nil, Errorf(EINVALID, "Unknown validators: %s. Valid options: %s",
			strings.Join(invalid, ", "),
			strings.Join(append([]string{SelectAll}, valid...), ", "))
	}
	return selected, nil
}
