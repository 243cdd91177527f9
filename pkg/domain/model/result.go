package model

// NoVersion is rendered as the previous version of a repository without tracking history
const NoVersion = "None"

// CustomAssetName is the name of the asset reference built from RepositoryConfig.CustomURL
const CustomAssetName = "Custom Configuration Link"

// AssetReference represents a downloadable artifact discovered for a release
type AssetReference struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ResultRecord represents the check result of a single repository
type ResultRecord struct {
	Package         string           `json:"package"`
	PreviousVersion string           `json:"previous_version"`
	LatestVersion   string           `json:"latest_version"`
	IsNew           bool             `json:"is_new"`
	Assets          []AssetReference `json:"assets"`
	ReleaseNotes    string           `json:"release_notes"`
}
