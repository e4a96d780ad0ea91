// Package storygo provides the version information for story-go.
package storygo

// Version is the current version of story-go.
const Version = "0.1.0"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}
