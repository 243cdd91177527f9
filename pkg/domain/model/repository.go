package model

// DefaultDistPath is the directory probed when a release has no attached assets
const DefaultDistPath = "dist"

// VersionPlaceholder is replaced by the release tag in RepositoryConfig.CustomURL
const VersionPlaceholder = "{version}"

// RepositoryConfig represents one tracked repository from the dependency list
type RepositoryConfig struct {
	Name      string // Repository identifier, "owner/name"
	CustomURL string // Optional asset URL template containing VersionPlaceholder
	DistPath  string // Optional build output directory, DefaultDistPath when empty
}

// DistPathOrDefault returns the configured distribution path or DefaultDistPath
func (c *RepositoryConfig) DistPathOrDefault() string {
	if c.DistPath == "" {
		return DefaultDistPath
	}
	return c.DistPath
}
