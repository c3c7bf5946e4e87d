package repository_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/transfer/internal/adapters/pom"
	"go.trai.ch/transfer/internal/adapters/repository"
	"go.trai.ch/transfer/internal/core/domain"
	"go.trai.ch/transfer/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var slf4j = domain.Artifact{GroupID: "org.slf4j", ArtifactID: "slf4j-api", Version: "2.0.9"}

// MockRoundTripper is a helper to mock http.Client behavior.
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) *http.Response
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req), nil
}

func newMockClient(handler func(req *http.Request) *http.Response) *http.Client {
	return &http.Client{
		Transport: &MockRoundTripper{RoundTripFunc: handler},
	}
}

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return log
}

// writeArtifact places content at the layout path of a under root.
func writeArtifact(t *testing.T, root string, a domain.Artifact, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(a.Path()))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func request(local string, remotes ...string) *domain.BuildingRequest {
	req := &domain.BuildingRequest{LocalRepository: local}
	for i, u := range remotes {
		req.RemoteRepositories = append(req.RemoteRepositories, domain.RemoteRepository{
			ID:  []string{"first", "second", "third"}[i],
			URL: u,
		})
	}
	return req
}

func TestRepository_FetchLocal(t *testing.T) {
	local := t.TempDir()
	path := writeArtifact(t, local, slf4j, "jar-bytes")
	repo := repository.New(pom.NewReader(), quietLogger(t))

	res, err := repo.Fetch(context.Background(), request(local, "https://unused.invalid"), slf4j)
	require.NoError(t, err)

	assert.Equal(t, domain.LocalRepositoryID, res.Repository)
	assert.Equal(t, path, res.Path)
	assert.Equal(t, slf4j, res.Artifact)
	assert.Len(t, res.Checksum, 16)
}

func TestRepository_FetchFileRemoteInOrder(t *testing.T) {
	local := t.TempDir()
	empty := t.TempDir()
	remote := t.TempDir()
	writeArtifact(t, remote, slf4j, "jar-bytes")
	repo := repository.New(pom.NewReader(), quietLogger(t))

	res, err := repo.Fetch(context.Background(), request(local, "file://"+empty, "file://"+remote), slf4j)
	require.NoError(t, err)
	assert.Equal(t, "second", res.Repository)

	data, err := os.ReadFile(filepath.Join(local, filepath.FromSlash(slf4j.Path())))
	require.NoError(t, err)
	assert.Equal(t, "jar-bytes", string(data))

	again, err := repo.Fetch(context.Background(), request(local, "file://"+remote), slf4j)
	require.NoError(t, err)
	assert.Equal(t, domain.LocalRepositoryID, again.Repository)
	assert.Equal(t, res.Checksum, again.Checksum)
}

func TestRepository_FetchHTTP(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path != "/maven2/"+slf4j.Path() {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, "from-http")
	}))
	defer srv.Close()

	local := t.TempDir()
	repo := repository.New(pom.NewReader(), quietLogger(t))

	res, err := repo.Fetch(context.Background(), request(local, srv.URL+"/maven2/"), slf4j)
	require.NoError(t, err)
	assert.Equal(t, "first", res.Repository)
	assert.Equal(t, []string{"/maven2/" + slf4j.Path()}, paths)
}

func TestRepository_FetchErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("Offline", func(t *testing.T) {
		repo := repository.New(pom.NewReader(), quietLogger(t))
		req := request(t.TempDir(), "https://unused.invalid")
		req.Offline = true

		_, err := repo.Fetch(ctx, req, slf4j)
		require.ErrorIs(t, err, domain.ErrArtifactNotFound)
	})

	t.Run("NotFoundAnywhere", func(t *testing.T) {
		repo := repository.NewWithClient(pom.NewReader(), quietLogger(t), newMockClient(func(*http.Request) *http.Response {
			return &http.Response{StatusCode: http.StatusNotFound, Body: io.NopCloser(strings.NewReader(""))}
		}))

		_, err := repo.Fetch(ctx, request(t.TempDir(), "https://a.invalid", "https://b.invalid"), slf4j)
		require.ErrorIs(t, err, domain.ErrArtifactNotFound)
	})

	t.Run("ServerError", func(t *testing.T) {
		repo := repository.NewWithClient(pom.NewReader(), quietLogger(t), newMockClient(func(*http.Request) *http.Response {
			return &http.Response{StatusCode: http.StatusBadGateway, Body: io.NopCloser(strings.NewReader(""))}
		}))

		_, err := repo.Fetch(ctx, request(t.TempDir(), "https://a.invalid"), slf4j)
		require.ErrorIs(t, err, domain.ErrArtifactTransferFailed)
		assert.Contains(t, err.Error(), "unexpected response status")
	})

	t.Run("BrokenStream", func(t *testing.T) {
		repo := repository.NewWithClient(pom.NewReader(), quietLogger(t), newMockClient(func(*http.Request) *http.Response {
			body := io.MultiReader(strings.NewReader("partial"), iotest.ErrReader(io.ErrUnexpectedEOF))
			return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(body)}
		}))
		local := t.TempDir()

		_, err := repo.Fetch(ctx, request(local, "https://a.invalid"), slf4j)
		require.ErrorIs(t, err, domain.ErrArtifactTransferFailed)
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
		assert.NotErrorIs(t, err, domain.ErrLocalRepositoryWriteFailed)
		assert.NoFileExists(t, filepath.Join(local, filepath.FromSlash(slf4j.Path())))
	})

	t.Run("UnsupportedScheme", func(t *testing.T) {
		repo := repository.New(pom.NewReader(), quietLogger(t))

		_, err := repo.Fetch(ctx, request(t.TempDir(), "ftp://mirror.example"), slf4j)
		require.ErrorIs(t, err, domain.ErrUnsupportedRepositoryURL)
	})

	t.Run("Canceled", func(t *testing.T) {
		repo := repository.New(pom.NewReader(), quietLogger(t))
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := repo.Fetch(canceled, request(t.TempDir()), slf4j)
		require.True(t, errors.Is(err, context.Canceled))
	})
}

const parentPOM = `<project>
  <groupId>org.example</groupId>
  <artifactId>parent</artifactId>
  <version>1.0</version>
  <packaging>pom</packaging>
  <properties><lib.version>3.1</lib.version></properties>
  <dependencyManagement>
    <dependencies>
      <dependency>
        <groupId>org.example</groupId>
        <artifactId>bom</artifactId>
        <version>1.0</version>
        <type>pom</type>
        <scope>import</scope>
      </dependency>
    </dependencies>
  </dependencyManagement>
</project>`

const bomPOM = `<project>
  <groupId>org.example</groupId>
  <artifactId>bom</artifactId>
  <version>1.0</version>
  <dependencyManagement>
    <dependencies>
      <dependency><groupId>org.slf4j</groupId><artifactId>slf4j-api</artifactId><version>2.0.9</version></dependency>
    </dependencies>
  </dependencyManagement>
</project>`

const childPOM = `<project>
  <parent><groupId>org.example</groupId><artifactId>parent</artifactId><version>1.0</version></parent>
  <artifactId>child</artifactId>
  <dependencies>
    <dependency><groupId>org.example</groupId><artifactId>lib</artifactId><version>${lib.version}</version></dependency>
    <dependency><groupId>org.slf4j</groupId><artifactId>slf4j-api</artifactId></dependency>
  </dependencies>
</project>`

func pomArtifact(a string) domain.Artifact {
	return domain.Artifact{GroupID: "org.example", ArtifactID: a, Version: "1.0", Type: "pom"}
}

func TestRepository_ReadDescriptor(t *testing.T) {
	remote := t.TempDir()
	writeArtifact(t, remote, pomArtifact("parent"), parentPOM)
	writeArtifact(t, remote, pomArtifact("bom"), bomPOM)
	writeArtifact(t, remote, pomArtifact("child"), childPOM)
	repo := repository.New(pom.NewReader(), quietLogger(t))
	req := request(t.TempDir(), "file://"+remote)

	m, err := repo.ReadDescriptor(context.Background(), req, domain.Artifact{
		GroupID: "org.example", ArtifactID: "child", Version: "1.0",
	})
	require.NoError(t, err)

	assert.Equal(t, "org.example", m.EffectiveGroupID())
	assert.Equal(t, "3.1", m.Dependencies[0].Version)
	require.Len(t, m.DependencyManagement, 1)
	assert.Equal(t, "org.slf4j:slf4j-api:jar", m.DependencyManagement[0].Key())
	assert.Equal(t, "2.0.9", m.DependencyManagement[0].Version)
}

func TestRepository_ReadDescriptorMissing(t *testing.T) {
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Warn(gomock.Any()).Times(1)
	repo := repository.New(pom.NewReader(), log)

	m, err := repo.ReadDescriptor(context.Background(), request(t.TempDir(), "file://"+t.TempDir()), slf4j)
	require.NoError(t, err)
	assert.Equal(t, "slf4j-api", m.ArtifactID)
	assert.Empty(t, m.Dependencies)
}

func TestRepository_ReadDescriptorMissingParent(t *testing.T) {
	remote := t.TempDir()
	writeArtifact(t, remote, pomArtifact("child"), childPOM)
	repo := repository.New(pom.NewReader(), quietLogger(t))

	_, err := repo.ReadDescriptor(context.Background(), request(t.TempDir(), "file://"+remote), domain.Artifact{
		GroupID: "org.example", ArtifactID: "child", Version: "1.0",
	})
	require.ErrorIs(t, err, domain.ErrArtifactNotFound)
}

func TestRepository_ReadProject(t *testing.T) {
	remote := t.TempDir()
	writeArtifact(t, remote, pomArtifact("parent"), parentPOM)
	writeArtifact(t, remote, pomArtifact("bom"), bomPOM)
	project := filepath.Join(t.TempDir(), domain.ProjectFileName)
	require.NoError(t, os.WriteFile(project, []byte(childPOM), domain.FilePerm))
	repo := repository.New(pom.NewReader(), quietLogger(t))

	m, err := repo.ReadProject(context.Background(), request(t.TempDir(), "file://"+remote), project)
	require.NoError(t, err)
	assert.Equal(t, "child", m.ArtifactID)
	assert.Equal(t, "1.0", m.EffectiveVersion())
	assert.Len(t, m.DependencyManagement, 1)
}

func TestRepository_ReadDescriptorSelfParent(t *testing.T) {
	remote := t.TempDir()
	writeArtifact(t, remote, pomArtifact("loop"), `<project>
  <parent><groupId>org.example</groupId><artifactId>loop</artifactId><version>1.0</version></parent>
  <artifactId>loop</artifactId>
</project>`)
	repo := repository.New(pom.NewReader(), quietLogger(t))

	_, err := repo.ReadDescriptor(context.Background(), request(t.TempDir(), "file://"+remote), domain.Artifact{
		GroupID: "org.example", ArtifactID: "loop", Version: "1.0",
	})
	require.ErrorIs(t, err, domain.ErrDescriptorTooDeep)
}
