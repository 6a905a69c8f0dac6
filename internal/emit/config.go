package emit

// Config holds configuration for rendering.
type Config struct {
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// GenerateComments prefixes every impl with a comment naming its shape.
	GenerateComments bool
	// Indent is one level of indentation inside impl blocks.
	Indent string
	// FileSuffix is appended to the lowercased target name to form the filename.
	FileSuffix string
	// ManifestName is the manifest filename; empty disables the manifest.
	ManifestName string
}

// DefaultConfig returns the default rendering configuration.
func DefaultConfig() Config {
	return Config{
		OutputDir:        "./generated",
		GenerateComments: true,
		Indent:           "    ",
		FileSuffix:       "_items.rs",
		ManifestName:     "itemize.manifest.yaml",
	}
}

// Generator is the tool name stamped into generated files.
const Generator = "itemize-generator"
