package spreadsheet

import "strings"

// Row is one data row keyed by the header cells of the source file. Values
// are untyped strings; domain mappers are responsible for producing typed
// records from them.
type Row map[string]string

// Get returns the first non-empty value among the candidate column names.
// Each candidate is tried as an exact key first, then case-insensitively,
// so "Name", "name" and "NAME" headers all satisfy a Get("Name").
func (r Row) Get(names ...string) string {
	for _, name := range names {
		if v, ok := r[name]; ok && strings.TrimSpace(v) != "" {
			return v
		}
		for k, v := range r {
			if strings.EqualFold(k, name) && strings.TrimSpace(v) != "" {
				return v
			}
		}
	}
	return ""
}

// ImportResult is the structured outcome every bulk import reports back to
// the upload trigger. Accepted+Rejected always equals the number of data
// rows in the file.
type ImportResult struct {
	Accepted int    `json:"accepted"`
	Rejected int    `json:"rejected"`
	Message  string `json:"message"`
}
