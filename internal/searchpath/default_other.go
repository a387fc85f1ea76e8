//go:build !windows

package searchpath

// Default returns the profile-backed store at profilePath.
func Default(profilePath string) Store {
	return &ProfileStore{Path: profilePath}
}
