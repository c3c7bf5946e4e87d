package repository

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/transfer/internal/core/domain"
	"go.trai.ch/zerr"
)

var (
	errRemoteNotFound   = zerr.New("artifact not present in remote repository")
	errUnexpectedStatus = zerr.New("unexpected response status")
)

// open returns a reader for rel in remote. errRemoteNotFound is returned when the
// repository does not hold the file.
func (r *Repository) open(ctx context.Context, remote domain.RemoteRepository, rel string) (io.ReadCloser, error) {
	u, err := url.Parse(remote.URL)
	if err != nil {
		return nil, domain.Annotate(domain.ErrUnsupportedRepositoryURL, "url", remote.URL)
	}

	switch u.Scheme {
	case "file":
		return openFile(filepath.Join(filepath.FromSlash(u.Path), filepath.FromSlash(rel)))
	case "http", "https":
		return r.get(ctx, strings.TrimSuffix(remote.URL, "/")+"/"+rel)
	default:
		return nil, domain.Annotate(domain.ErrUnsupportedRepositoryURL, "url", remote.URL)
	}
}

func openFile(path string) (io.ReadCloser, error) {
	//nolint:gosec // path is built from the configured repository and the artifact layout
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errRemoteNotFound
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	return f, nil
}

func (r *Repository) get(ctx context.Context, target string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to build request"), "url", target)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "request failed"), "url", target)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_ = resp.Body.Close()
		return nil, errRemoteNotFound
	case resp.StatusCode != http.StatusOK:
		_ = resp.Body.Close()
		statusErr := domain.Annotate(errUnexpectedStatus, "status_code", resp.StatusCode)
		return nil, zerr.With(statusErr, "url", target)
	}
	return resp.Body, nil
}

// sourceReader records the first read error so callers can tell a broken
// transfer apart from a failed local write.
type sourceReader struct {
	r   io.Reader
	err error
}

func (s *sourceReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) && s.err == nil {
		s.err = err
	}
	return n, err
}

// atomicWriteFile streams src to path through a temp file in the same directory.
func atomicWriteFile(path string, src io.Reader) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, ".transfer-*.part")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmpFile, src); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
