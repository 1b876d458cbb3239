package version

// AppVersion is the helpctl release version.
const AppVersion = "0.1.0"
