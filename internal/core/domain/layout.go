package domain

import (
	"os"
	"path/filepath"
)

const (
	// ConfigFileName is the name of the settings file discovered from the working directory upwards.
	ConfigFileName = "transfer.yaml"

	// ProjectFileName is the default project descriptor name.
	ProjectFileName = "pom.xml"

	// LocalRepositoryID is reported as the repository of artifacts already present locally.
	LocalRepositoryID = "local"

	// CentralID is the id of the default remote repository.
	CentralID = "central"

	// CentralURL is the default remote repository.
	CentralURL = "https://repo.maven.apache.org/maven2"

	// DefaultParallelism is the number of concurrent transfers used when none is configured.
	DefaultParallelism = 4

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultLocalRepositoryPath returns ~/.m2/repository, or .m2/repository when the home
// directory cannot be determined.
func DefaultLocalRepositoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".m2", "repository")
	}
	return filepath.Join(home, ".m2", "repository")
}
