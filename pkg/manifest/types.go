package manifest

// FileName is the manifest every vendored crate ships in
// its own directory.
const FileName = "Cargo.toml"

type Manifest struct {
	Package *Package `toml:"package"`
}

// Package holds the license fields of a crate manifest.
// See https://doc.rust-lang.org/cargo/reference/manifest.html#the-license-and-license-file-fields
type Package struct {
	Name        string  `toml:"name"`
	License     *string `toml:"license"`
	LicenseFile *string `toml:"license-file"`
}
