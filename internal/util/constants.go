// Package util provides common helpers and constants shared across genssh.
// It stays dependency-free (no imports from other internal/* packages) so
// every other package can use it without creating an import cycle.
package util

const (
	// DefaultOutputFile is where the descriptor is written when neither
	// --output nor the config file names a path. The name is relative, so a
	// bare "genssh" run writes into the current working directory.
	//
	// Used by:
	//   - internal/cli/root.go (NewRootCommand): default of the -o/--output flag.
	//   - internal/appconfig/config.go (Default, normalize): default and
	//     fallback for the config's output field.
	DefaultOutputFile = "ssh.json"

	// DefaultSSHPort is the port used by the placeholder template. It is the
	// standard sshd port, so a template edited only for user and host still
	// works against a stock server.
	// Used by: internal/sshinfo/parser.go (Template).
	DefaultSSHPort = 22

	// JSONIndent is the indentation unit of the written descriptor. Four
	// spaces keep the file layout stable for tools and diffs that already
	// read descriptors in that shape.
	// Used by: internal/record/store.go (Marshal).
	JSONIndent = "    "
)
