package domain

import "time"

// File is an uploaded avatar image stored on disk and referenced by users.
type File struct {
	ID        int64
	Name      string
	Path      string
	CreatedAt time.Time
}

// URL resolves the public URL for the stored file given the app base URL.
func (f *File) URL(baseURL string) string {
	if f == nil {
		return ""
	}
	return baseURL + "/files/" + f.Path
}
