// Package cli defines the meta-dds command tree: manifest validation and
// inspection under `pkg`, user settings under `config`, and version info.
package cli
