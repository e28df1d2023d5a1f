package cli

// version is set at build time via -ldflags "-X ...cli.version=...".
var version = "dev"

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("linesift version {{.Version}}\n")
}

// SetVersion overrides the version reported by --version.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
