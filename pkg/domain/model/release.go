package model

// ReleaseInfo represents the latest published release of a tracked repository
type ReleaseInfo struct {
	TagName string         // Release tag name
	Body    string         // Release notes (free-form)
	Assets  []ReleaseAsset // Files attached to the release, in API order
}

// ReleaseAsset represents a file attached to a release
type ReleaseAsset struct {
	Name        string // Asset file name
	DownloadURL string // Browser download URL
}
