package post

import (
	"encoding/json"
	"os"
)

// indexRecord is the subset of a published post record consulted here. The
// listing file is produced by the rendering engine; only the author field is
// read back.
type indexRecord struct {
	Author string `json:"author"`
}

// DefaultAuthor infers the author for a new post from the generated posts
// listing. The listing is optional and read best-effort: a missing, empty, or
// malformed file yields the empty string rather than an error.
func DefaultAuthor(indexPath string) string {
	contents, err := os.ReadFile(indexPath)
	if err != nil {
		return ""
	}

	var records []indexRecord
	if err := json.Unmarshal(contents, &records); err != nil {
		return ""
	}

	for _, record := range records {
		if record.Author != "" {
			return record.Author
		}
	}
	return ""
}
