package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidArgument is matched by every InvalidArgumentError.
	ErrInvalidArgument = zerr.New("invalid argument")

	// ErrDependencyResolver is matched by every DependencyResolverError.
	ErrDependencyResolver = zerr.New("dependency resolution failed")

	// ErrDependencyCollector is matched by every DependencyCollectorError.
	ErrDependencyCollector = zerr.New("dependency collection failed")

	// ErrBackendNotRegistered is returned when no backend is registered for a generation.
	ErrBackendNotRegistered = zerr.New("no backend registered for engine generation")

	// ErrBackendConstructionFailed is returned when a registered backend cannot be constructed.
	ErrBackendConstructionFailed = zerr.New("failed to construct backend")

	// ErrInvalidCoordinate is returned when a coordinate string cannot be parsed.
	ErrInvalidCoordinate = zerr.New("invalid coordinate, expected groupId:artifactId:version[:type[:classifier]]")

	// ErrInvalidExclusion is returned when an exclusion string cannot be parsed.
	ErrInvalidExclusion = zerr.New("invalid exclusion, expected groupId:artifactId")

	// ErrArtifactNotFound is returned when no repository holds an artifact.
	ErrArtifactNotFound = zerr.New("artifact not found")

	// ErrArtifactTransferFailed is returned when downloading or copying an artifact fails.
	ErrArtifactTransferFailed = zerr.New("failed to transfer artifact")

	// ErrLocalRepositoryWriteFailed is returned when the local repository cannot be written.
	ErrLocalRepositoryWriteFailed = zerr.New("failed to write to local repository")

	// ErrChecksumFailed is returned when an artifact cannot be hashed.
	ErrChecksumFailed = zerr.New("failed to compute artifact checksum")

	// ErrUnsupportedRepositoryURL is returned for remote repositories with an unknown scheme.
	ErrUnsupportedRepositoryURL = zerr.New("unsupported repository url, expected file, http or https")

	// ErrDescriptorReadFailed is returned when a project descriptor cannot be read.
	ErrDescriptorReadFailed = zerr.New("failed to read project descriptor")

	// ErrDescriptorParseFailed is returned when a project descriptor cannot be parsed.
	ErrDescriptorParseFailed = zerr.New("failed to parse project descriptor")

	// ErrDescriptorTooDeep is returned when parent or import references nest beyond the supported depth.
	ErrDescriptorTooDeep = zerr.New("project descriptor references nest too deeply")

	// ErrMissingVersion is returned when a dependency has no version after management.
	ErrMissingVersion = zerr.New("dependency has no version")

	// ErrGraphCollectionFailed is returned when the dependency graph cannot be built.
	ErrGraphCollectionFailed = zerr.New("failed to collect dependency graph")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidParallelism is returned when the configured parallelism is below one.
	ErrInvalidParallelism = zerr.New("parallelism must be at least 1")

	// ErrMetricsExportFailed is returned when metrics cannot be written.
	ErrMetricsExportFailed = zerr.New("failed to export metrics")

	// ErrUnknownFormat is returned for an output format other than tree or list.
	ErrUnknownFormat = zerr.New("unknown output format, expected tree or list")

	// ErrNoRootsSpecified is returned when neither coordinates nor a project were given.
	ErrNoRootsSpecified = zerr.New("no coordinates or project specified")
)

// InvalidArgumentError reports a required argument that was nil.
type InvalidArgumentError struct {
	Name string
}

// NewInvalidArgument returns an InvalidArgumentError for the named parameter.
func NewInvalidArgument(name string) error {
	return &InvalidArgumentError{Name: name}
}

// Error implements error.
func (e *InvalidArgumentError) Error() string {
	return e.Message()
}

// Message returns the error message without a cause chain.
func (e *InvalidArgumentError) Message() string {
	return "the parameter " + e.Name + " is not allowed to be nil"
}

// Is matches ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// DependencyResolverError is returned by the resolving facade when no backend could serve a call.
// It always carries the underlying failure.
type DependencyResolverError struct {
	cause error
}

// NewDependencyResolverError wraps cause.
func NewDependencyResolverError(cause error) error {
	return &DependencyResolverError{cause: cause}
}

// Error implements error.
func (e *DependencyResolverError) Error() string {
	return e.Message() + ": " + e.cause.Error()
}

// Message returns the error message without a cause chain.
func (e *DependencyResolverError) Message() string {
	return ErrDependencyResolver.Error()
}

// Unwrap returns the cause.
func (e *DependencyResolverError) Unwrap() error {
	return e.cause
}

// Is matches ErrDependencyResolver.
func (e *DependencyResolverError) Is(target error) bool {
	return target == ErrDependencyResolver
}

// DependencyCollectorError is returned by the collecting facade when no backend could serve a call.
type DependencyCollectorError struct {
	cause error
}

// NewDependencyCollectorError wraps cause.
func NewDependencyCollectorError(cause error) error {
	return &DependencyCollectorError{cause: cause}
}

// Error implements error.
func (e *DependencyCollectorError) Error() string {
	return e.Message() + ": " + e.cause.Error()
}

// Message returns the error message without a cause chain.
func (e *DependencyCollectorError) Message() string {
	return ErrDependencyCollector.Error()
}

// Unwrap returns the cause.
func (e *DependencyCollectorError) Unwrap() error {
	return e.cause
}

// Is matches ErrDependencyCollector.
func (e *DependencyCollectorError) Is(target error) bool {
	return target == ErrDependencyCollector
}

// Annotate attaches a key-value pair to err while keeping err itself matchable with errors.Is.
// Use it on sentinels; zerr.With on a sentinel returns a copy that no longer matches.
func Annotate(err error, key string, value any) error {
	return zerr.With(zerr.Wrap(err, ""), key, value)
}

func withCoordinate(err error, coordinate string) error {
	return Annotate(err, "coordinate", coordinate)
}

// Caused returns an error that matches sentinel with errors.Is and unwraps to cause.
func Caused(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return &causedError{sentinel: sentinel, cause: cause}
}

type causedError struct {
	sentinel error
	cause    error
}

func (e *causedError) Error() string {
	return e.sentinel.Error() + ": " + e.cause.Error()
}

func (e *causedError) Message() string {
	return e.sentinel.Error()
}

func (e *causedError) Unwrap() error {
	return e.cause
}

func (e *causedError) Is(target error) bool {
	return target == e.sentinel
}
