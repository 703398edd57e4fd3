package lockfile

// FileName is the name of the lockfile cargo writes
// next to the workspace manifest.
const FileName = "Cargo.lock"

type Lock struct {
	Packages []Package
}

type Package struct {
	Name         string
	Version      string
	Dependencies []string
	Source       string
	Checksum     string
}

// document is the on-disk shape of a Cargo.lock. Pointers
// distinguish a missing key from an empty value.
type document struct {
	Packages *[]entry `toml:"package"`
}

type entry struct {
	Name         *string  `toml:"name"`
	Version      *string  `toml:"version"`
	Dependencies []string `toml:"dependencies"`
	Source       string   `toml:"source"`
	Checksum     string   `toml:"checksum"`
}
