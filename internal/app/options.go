package app

// GlobalOptions are the flags shared by every command.
type GlobalOptions struct {
	// JSON switches logging to JSON lines.
	JSON bool
	// Trace enables debug logging and span summaries.
	Trace bool
	// MetricsOut is the file facade metrics are written to after the command, if set.
	MetricsOut string
	// Offline disables remote repositories.
	Offline bool
	// LocalRepository overrides the configured local repository.
	LocalRepository string
}

// ResolveOptions configures Resolve.
type ResolveOptions struct {
	GlobalOptions
	Coordinates []string
	// Project is the path of a project descriptor whose dependencies are resolved.
	Project  string
	Scopes   []string
	Excludes []string
}

// Output formats understood by Collect.
const (
	FormatTree = "tree"
	FormatList = "list"
)

// CollectOptions configures Collect.
type CollectOptions struct {
	GlobalOptions
	Coordinate string
	Project    string
	// Scope collects Coordinate as a dependency of that scope.
	Scope  string
	Format string
}
