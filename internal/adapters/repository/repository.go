// Package repository materializes artifacts in a Maven-layout local repository.
package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/transfer/internal/core/domain"
	"go.trai.ch/transfer/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	httpClientTimeout = 30 * time.Second

	// maxDescriptorDepth bounds parent chains and nested dependency management imports.
	maxDescriptorDepth = 16
)

var _ ports.ArtifactRepository = (*Repository)(nil)

// Repository implements ports.ArtifactRepository over a local repository directory and an
// ordered list of remote repositories.
type Repository struct {
	reader     ports.ProjectReader
	logger     ports.Logger
	httpClient *http.Client
}

// New creates a Repository.
func New(reader ports.ProjectReader, logger ports.Logger) *Repository {
	return newWithClient(reader, logger, &http.Client{Timeout: httpClientTimeout})
}

func newWithClient(reader ports.ProjectReader, logger ports.Logger, client *http.Client) *Repository {
	return &Repository{
		reader:     reader,
		logger:     logger,
		httpClient: client,
	}
}

// Fetch makes artifact available in the local repository. Artifacts already present are
// reported with the "local" repository id; otherwise remotes are tried in order.
func (r *Repository) Fetch(
	ctx context.Context,
	req *domain.BuildingRequest,
	artifact domain.Artifact,
) (domain.ArtifactResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.ArtifactResult{}, err
	}

	target := filepath.Join(req.LocalRepository, filepath.FromSlash(artifact.Path()))
	if info, err := os.Stat(target); err == nil && !info.IsDir() {
		return result(artifact, target, domain.LocalRepositoryID)
	}

	if req.Offline {
		notFound := domain.Annotate(domain.ErrArtifactNotFound, "artifact", artifact.String())
		return domain.ArtifactResult{}, zerr.With(notFound, "offline", true)
	}

	for _, remote := range req.RemoteRepositories {
		body, err := r.open(ctx, remote, artifact.Path())
		if errors.Is(err, errRemoteNotFound) {
			continue
		}
		if errors.Is(err, domain.ErrUnsupportedRepositoryURL) {
			return domain.ArtifactResult{}, zerr.With(err, "repository", remote.ID)
		}
		if err != nil {
			return domain.ArtifactResult{}, transferFailed(err, artifact, remote)
		}

		src := &sourceReader{r: body}
		err = atomicWriteFile(target, src)
		_ = body.Close()
		if src.err != nil {
			return domain.ArtifactResult{}, transferFailed(src.err, artifact, remote)
		}
		if err != nil {
			writeErr := domain.Caused(domain.ErrLocalRepositoryWriteFailed, err)
			return domain.ArtifactResult{}, zerr.With(writeErr, "path", target)
		}

		r.logger.Debug(fmt.Sprintf("downloaded %s from %s", artifact, remote.ID))
		return result(artifact, target, remote.ID)
	}

	return domain.ArtifactResult{}, domain.Annotate(domain.ErrArtifactNotFound, "artifact", artifact.String())
}

func transferFailed(err error, artifact domain.Artifact, remote domain.RemoteRepository) error {
	transferErr := zerr.With(domain.Caused(domain.ErrArtifactTransferFailed, err), "artifact", artifact.String())
	return zerr.With(transferErr, "repository", remote.ID)
}

func result(artifact domain.Artifact, path, repository string) (domain.ArtifactResult, error) {
	sum, err := checksum(path)
	if err != nil {
		return domain.ArtifactResult{}, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return domain.ArtifactResult{
		Artifact:   artifact,
		Path:       abs,
		Repository: repository,
		Checksum:   sum,
	}, nil
}

// checksum returns the hex xxhash64 of the file content.
func checksum(path string) (string, error) {
	//nolint:gosec // path lies inside the local repository
	f, err := os.Open(path)
	if err != nil {
		return "", zerr.With(domain.Caused(domain.ErrChecksumFailed, err), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(domain.Caused(domain.ErrChecksumFailed, err), "path", path)
	}
	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}
