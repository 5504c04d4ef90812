package users

import (
	"fmt"
	"sort"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Directory answers whether a username may log in
type Directory interface {
	IsValidUser(username string) bool
}

var (
	sanitizer     *bluemonday.Policy
	sanitizerOnce sync.Once
)

// Sanitize strips markup from `username` so that it is safe to compare,
// store and echo back. Whitespace and case are preserved
func Sanitize(username string) string {
	sanitizerOnce.Do(func() {
		sanitizer = bluemonday.StrictPolicy()
	})
	return sanitizer.Sanitize(username)
}

// NewFixedDirectory returns a Directory holding exactly `usernames`
func NewFixedDirectory(usernames []string) (*FixedDirectory, error) {
	if len(usernames) == 0 {
		return nil, fmt.Errorf("failed to receive at least one username")
	}
	directory := &FixedDirectory{members: make(map[string]struct{}, len(usernames))}
	for _, username := range usernames {
		if username == "" {
			return nil, fmt.Errorf("failed to receive a non-empty username")
		}
		if sanitized := Sanitize(username); sanitized != username {
			return nil, fmt.Errorf("username[%s] contains markup", sanitized)
		}
		directory.members[username] = struct{}{}
	}
	return directory, nil
}

// FixedDirectory is immutable after construction and safe for
// concurrent use
type FixedDirectory struct {
	members map[string]struct{}
}

// IsValidUser matches the sanitized form of `username` exactly
func (d *FixedDirectory) IsValidUser(username string) bool {
	if username == "" {
		return false
	}
	_, ok := d.members[Sanitize(username)]
	return ok
}

// List returns the members in lexical order
func (d *FixedDirectory) List() []string {
	output := make([]string, 0, len(d.members))
	for username := range d.members {
		output = append(output, username)
	}
	sort.Strings(output)
	return output
}
