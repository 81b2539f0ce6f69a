package catalog

import "fmt"

type ValidationError struct {
	Path    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Validate checks that ids are present and unique across the whole catalog
// and that every dimension and item carries display text.
func Validate(c Catalog) []ValidationError {
	var errs []ValidationError

	if len(c.Dimensions) == 0 {
		return append(errs, ValidationError{Path: "$.dimensions", Message: "must contain at least one dimension"})
	}

	seen := map[string]string{}
	claim := func(id string, path string) {
		if prev, ok := seen[id]; ok {
			errs = append(errs, ValidationError{Path: path + ".id", Message: fmt.Sprintf("duplicate id %q (already used at %s)", id, prev)})
			return
		}
		seen[id] = path
	}

	for i, dim := range c.Dimensions {
		path := fmt.Sprintf("$.dimensions[%d]", i)
		if dim.ID == "" {
			errs = append(errs, ValidationError{Path: path + ".id", Message: "required"})
		} else {
			claim(dim.ID, path)
		}
		if dim.Title == "" {
			errs = append(errs, ValidationError{Path: path + ".title", Message: "required"})
		}

		for j, it := range dim.Items {
			itemPath := fmt.Sprintf("%s.items[%d]", path, j)
			if it.ID == "" {
				errs = append(errs, ValidationError{Path: itemPath + ".id", Message: "required"})
			} else {
				claim(it.ID, itemPath)
			}
			if it.Label == "" {
				errs = append(errs, ValidationError{Path: itemPath + ".label", Message: "required"})
			}
		}
	}

	return errs
}
