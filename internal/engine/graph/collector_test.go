package graph_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/transfer/internal/core/domain"
	"go.trai.ch/transfer/internal/core/ports/mocks"
	"go.trai.ch/transfer/internal/engine/graph"
	"go.uber.org/mock/gomock"
)

// memoryRepository serves descriptors from a map keyed by groupId:artifactId:version.
type memoryRepository struct {
	models map[string]*domain.Model
	reads  []string
	fail   map[string]error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{models: map[string]*domain.Model{}, fail: map[string]error{}}
}

// add registers a descriptor; deps are written as g:a:v[:scope].
func (r *memoryRepository) add(gav string, deps ...domain.Dependency) {
	r.models[gav] = &domain.Model{Dependencies: deps}
}

func (r *memoryRepository) ReadDescriptor(
	_ context.Context,
	_ *domain.BuildingRequest,
	a domain.Artifact,
) (*domain.Model, error) {
	gav := a.GroupID + ":" + a.ArtifactID + ":" + a.Version
	r.reads = append(r.reads, gav)
	if err := r.fail[gav]; err != nil {
		return nil, err
	}
	if m, ok := r.models[gav]; ok {
		return m, nil
	}
	return &domain.Model{}, nil
}

func (r *memoryRepository) ReadProject(context.Context, *domain.BuildingRequest, string) (*domain.Model, error) {
	return nil, errors.New("not used")
}

func (r *memoryRepository) Fetch(context.Context, *domain.BuildingRequest, domain.Artifact) (domain.ArtifactResult, error) {
	return domain.ArtifactResult{}, errors.New("not used")
}

// dep builds a dependency from g:a:v[:scope].
func dep(coordinate string) domain.Dependency {
	parts := strings.Split(coordinate, ":")
	d := domain.Dependency{GroupID: parts[0], ArtifactID: parts[1], Version: parts[2]}
	if len(parts) > 3 {
		d.Scope = parts[3]
	}
	return d
}

func newCollector(t *testing.T, repo *memoryRepository) *graph.Collector {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return graph.NewCollector(repo, log)
}

// render prints the tree as indented artifact:scope lines.
func render(root *domain.DependencyNode) string {
	var b strings.Builder
	root.Walk(func(node *domain.DependencyNode, parents []*domain.DependencyNode) bool {
		if node == root {
			return true
		}
		b.WriteString(strings.Repeat("  ", len(parents)-1))
		b.WriteString(node.Artifact.ArtifactID + ":" + node.Artifact.Version + ":" + node.Scope)
		if node.PremanagedVersion != "" {
			b.WriteString(" (managed from " + node.PremanagedVersion + ")")
		}
		b.WriteString("\n")
		return true
	})
	return b.String()
}

func TestCollector_NearestWins(t *testing.T) {
	repo := newMemoryRepository()
	repo.add("g:a:1", dep("g:c:1"))
	repo.add("g:b:1", dep("g:d:1"))
	repo.add("g:d:1", dep("g:c:2"))

	result, err := newCollector(t, repo).Collect(t.Context(), &domain.BuildingRequest{},
		graph.SetRoot([]domain.Dependency{dep("g:a:1"), dep("g:b:1")}, nil))
	require.NoError(t, err)

	assert.Equal(t, "a:1:compile\n  c:1:compile\nb:1:compile\n  d:1:compile\n", render(result.Root))
	assert.NotContains(t, repo.reads, "g:c:2", "omitted nodes are not expanded")
}

func TestCollector_DeclarationOrderBreaksTies(t *testing.T) {
	repo := newMemoryRepository()
	repo.add("g:a:1", dep("g:c:1"))
	repo.add("g:b:1", dep("g:c:2"))

	result, err := newCollector(t, repo).Collect(t.Context(), &domain.BuildingRequest{},
		graph.SetRoot([]domain.Dependency{dep("g:a:1"), dep("g:b:1")}, nil))
	require.NoError(t, err)

	assert.Equal(t, "a:1:compile\n  c:1:compile\nb:1:compile\n", render(result.Root))
}

func TestCollector_DependencyManagement(t *testing.T) {
	repo := newMemoryRepository()
	repo.add("g:a:1", dep("g:c:1"), domain.Dependency{GroupID: "g", ArtifactID: "d"})

	managed := []domain.Dependency{
		{GroupID: "g", ArtifactID: "c", Version: "3"},
		{GroupID: "g", ArtifactID: "d", Version: "5", Scope: domain.ScopeRuntime},
		{GroupID: "g", ArtifactID: "a", Version: "9"},
	}

	result, err := newCollector(t, repo).Collect(t.Context(), &domain.BuildingRequest{},
		graph.SetRoot([]domain.Dependency{dep("g:a:1")}, managed))
	require.NoError(t, err)

	assert.Equal(t, "a:1:compile\n  c:3:compile (managed from 1)\n  d:5:runtime\n", render(result.Root),
		"direct versions are kept, transitive ones are managed")
}

func TestCollector_MissingVersion(t *testing.T) {
	repo := newMemoryRepository()
	repo.add("g:a:1", domain.Dependency{GroupID: "g", ArtifactID: "unversioned"})

	_, err := newCollector(t, repo).Collect(t.Context(), &domain.BuildingRequest{},
		graph.SetRoot([]domain.Dependency{dep("g:a:1")}, nil))
	require.ErrorIs(t, err, domain.ErrMissingVersion)
}

func TestCollector_Exclusions(t *testing.T) {
	repo := newMemoryRepository()
	repo.add("g:a:1", dep("g:b:1"), dep("g:x:1"))
	repo.add("g:b:1", dep("g:y:1"), dep("other:z:1"))

	a := dep("g:a:1")
	a.Exclusions = []domain.Exclusion{{GroupID: "g", ArtifactID: "y"}, {GroupID: "other", ArtifactID: "*"}}

	result, err := newCollector(t, repo).Collect(t.Context(), &domain.BuildingRequest{},
		graph.SetRoot([]domain.Dependency{a}, nil))
	require.NoError(t, err)

	assert.Equal(t, "a:1:compile\n  b:1:compile\n  x:1:compile\n", render(result.Root))
}

func TestCollector_Optional(t *testing.T) {
	repo := newMemoryRepository()
	optionalChild := dep("g:opt-child:1")
	optionalChild.Optional = true
	repo.add("g:a:1", optionalChild, dep("g:b:1"))
	repo.add("g:direct-opt:1", dep("g:c:1"))

	direct := dep("g:direct-opt:1")
	direct.Optional = true

	result, err := newCollector(t, repo).Collect(t.Context(), &domain.BuildingRequest{},
		graph.SetRoot([]domain.Dependency{dep("g:a:1"), direct}, nil))
	require.NoError(t, err)

	assert.Equal(t, "a:1:compile\n  b:1:compile\ndirect-opt:1:compile\n  c:1:compile\n", render(result.Root))
	assert.True(t, result.Root.Children[1].Optional)
}

func TestCollector_ScopePropagation(t *testing.T) {
	repo := newMemoryRepository()
	repo.add("g:rt:1", dep("g:c1:1:compile"), dep("g:t1:1:test"), dep("g:p1:1:provided"))
	repo.add("g:prov:1", dep("g:c2:1"), dep("g:r2:1:runtime"))
	repo.add("g:tst:1", dep("g:c3:1"))
	repo.add("g:sys:1", dep("g:never:1"))

	result, err := newCollector(t, repo).Collect(t.Context(), &domain.BuildingRequest{},
		graph.SetRoot([]domain.Dependency{
			dep("g:rt:1:runtime"),
			dep("g:prov:1:provided"),
			dep("g:tst:1:test"),
			dep("g:sys:1:system"),
		}, nil))
	require.NoError(t, err)

	assert.Equal(t,
		"rt:1:runtime\n  c1:1:runtime\n"+
			"prov:1:provided\n  c2:1:provided\n  r2:1:provided\n"+
			"tst:1:test\n  c3:1:test\n"+
			"sys:1:system\n",
		render(result.Root))
	assert.NotContains(t, repo.reads, "g:sys:1")
}

func TestCollector_Cycle(t *testing.T) {
	repo := newMemoryRepository()
	repo.add("g:a:1", dep("g:b:1"))
	repo.add("g:b:1", dep("g:a:1"), dep("g:app:1"))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug("omitted g:a:jar for cycle via g:b:jar")
	log.EXPECT().Debug("omitted g:app:jar for cycle via g:b:jar")

	model := &domain.Model{GroupID: "g", ArtifactID: "app", Version: "1", Dependencies: []domain.Dependency{dep("g:a:1")}}
	result, err := graph.NewCollector(repo, log).Collect(t.Context(), &domain.BuildingRequest{}, graph.ModelRoot(model, nil))
	require.NoError(t, err)

	assert.Equal(t, "a:1:compile\n  b:1:compile\n", render(result.Root))
	assert.Equal(t, "app", result.Root.Artifact.ArtifactID)
}

func TestCollector_ConflictIsLogged(t *testing.T) {
	repo := newMemoryRepository()
	repo.add("g:a:1", dep("g:c:1"))
	repo.add("g:b:1", dep("g:c:2"))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug("omitted g:c:jar for conflict via g:b:jar")

	_, err := graph.NewCollector(repo, log).Collect(t.Context(), &domain.BuildingRequest{},
		graph.SetRoot([]domain.Dependency{dep("g:a:1"), dep("g:b:1")}, nil))
	require.NoError(t, err)
}

func TestCollector_OmissionFollowsCollectedPath(t *testing.T) {
	repo := newMemoryRepository()
	repo.add("g:a:1", dep("g:c:1"))
	repo.add("g:b:1", dep("g:a:1"))
	repo.add("g:c:1", dep("g:b:1"), dep("g:a:1"))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	gomock.InOrder(
		log.EXPECT().Debug("omitted g:a:jar for conflict via g:b:jar"),
		log.EXPECT().Debug("omitted g:b:jar for conflict via g:c:jar"),
		log.EXPECT().Debug("omitted g:a:jar for cycle via g:c:jar"),
	)

	result, err := graph.NewCollector(repo, log).Collect(t.Context(), &domain.BuildingRequest{},
		graph.SetRoot([]domain.Dependency{dep("g:a:1"), dep("g:b:1")}, nil))
	require.NoError(t, err)

	assert.Equal(t, "a:1:compile\n  c:1:compile\nb:1:compile\n", render(result.Root))
}

func TestCollector_DescriptorErrorIsReturned(t *testing.T) {
	repo := newMemoryRepository()
	boom := errors.New("network unreachable")
	repo.fail["g:a:1"] = boom

	_, err := newCollector(t, repo).Collect(t.Context(), &domain.BuildingRequest{},
		graph.SetRoot([]domain.Dependency{dep("g:a:1")}, nil))
	require.ErrorIs(t, err, boom)
}

func TestCollector_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := newCollector(t, newMemoryRepository()).Collect(ctx, &domain.BuildingRequest{},
		graph.SetRoot([]domain.Dependency{dep("g:a:1")}, nil))
	require.ErrorIs(t, err, context.Canceled)
}

func TestCollector_EmptySet(t *testing.T) {
	result, err := newCollector(t, newMemoryRepository()).Collect(t.Context(), &domain.BuildingRequest{},
		graph.SetRoot(nil, nil))
	require.NoError(t, err)
	assert.Empty(t, result.Dependencies())
}

func TestCollector_ArtifactRootDirectDependencies(t *testing.T) {
	repo := newMemoryRepository()
	direct := dep("g:opt:1.0")
	direct.Optional = true
	nested := dep("g:nested-opt:1.0")
	nested.Optional = true
	repo.models["g:x:1.0"] = &domain.Model{
		Dependencies: []domain.Dependency{dep("g:a:1.0"), direct},
		DependencyManagement: []domain.Dependency{
			{GroupID: "g", ArtifactID: "a", Version: "2.0"},
			{GroupID: "g", ArtifactID: "b", Version: "3.0"},
		},
	}
	repo.add("g:a:1.0", dep("g:b:1.0"), nested)

	root, err := graph.ArtifactRoot(t.Context(), repo, &domain.BuildingRequest{},
		domain.Artifact{GroupID: "g", ArtifactID: "x", Version: "1.0", Type: "jar"})
	require.NoError(t, err)

	result, err := newCollector(t, repo).Collect(t.Context(), &domain.BuildingRequest{}, root)
	require.NoError(t, err)

	require.Len(t, result.Root.Children, 2)
	assert.Equal(t, "a:1.0:compile\n  b:3.0:compile (managed from 1.0)\nopt:1.0:compile\n", render(result.Root))
	assert.Empty(t, result.Root.Children[0].PremanagedVersion)
	assert.True(t, result.Root.Children[1].Optional)
}

func TestRoots(t *testing.T) {
	repo := newMemoryRepository()
	repo.models["g:lib:1"] = &domain.Model{
		Dependencies: []domain.Dependency{
			{GroupID: "g", ArtifactID: "managed-by-descriptor"},
			dep("g:junit:4:test"),
		},
		DependencyManagement: []domain.Dependency{{GroupID: "g", ArtifactID: "managed-by-descriptor", Version: "7"}},
	}

	t.Run("artifact root drops its own test dependencies", func(t *testing.T) {
		root, err := graph.ArtifactRoot(t.Context(), repo, &domain.BuildingRequest{},
			domain.Artifact{GroupID: "g", ArtifactID: "lib", Version: "1", Type: "jar"})
		require.NoError(t, err)

		result, err := newCollector(t, repo).Collect(t.Context(), &domain.BuildingRequest{}, root)
		require.NoError(t, err)
		assert.Equal(t, "managed-by-descriptor:7:compile\n", render(result.Root))
	})

	t.Run("dependency root keeps scope and exclusions", func(t *testing.T) {
		d := dep("g:lib:1:runtime")
		d.Exclusions = []domain.Exclusion{{GroupID: "g", ArtifactID: "managed-by-descriptor"}}

		root, err := graph.DependencyRoot(t.Context(), repo, &domain.BuildingRequest{}, &d)
		require.NoError(t, err)
		assert.Equal(t, domain.ScopeRuntime, root.Scope)

		result, err := newCollector(t, repo).Collect(t.Context(), &domain.BuildingRequest{}, root)
		require.NoError(t, err)
		assert.Empty(t, result.Dependencies())
	})

	t.Run("model root keeps test dependencies", func(t *testing.T) {
		model := &domain.Model{
			ArtifactID:   "app",
			Parent:       &domain.Parent{GroupID: "g", Version: "2"},
			Dependencies: []domain.Dependency{dep("g:junit:4:test"), {GroupID: "g", ArtifactID: "lib"}},
			DependencyManagement: []domain.Dependency{
				{GroupID: "g", ArtifactID: "lib", Version: "1"},
			},
		}

		result, err := newCollector(t, repo).Collect(t.Context(), &domain.BuildingRequest{}, graph.ModelRoot(model, nil))
		require.NoError(t, err)
		assert.Equal(t, "junit:4:test\nlib:1:compile\n  managed-by-descriptor:7:compile\n", render(result.Root))
		assert.Equal(t, "g:app:jar:2", result.Root.Artifact.String())
	})

	t.Run("descriptor failure", func(t *testing.T) {
		repo.fail["g:broken:1"] = errors.New("parse error")
		_, err := graph.ArtifactRoot(t.Context(), repo, &domain.BuildingRequest{},
			domain.Artifact{GroupID: "g", ArtifactID: "broken", Version: "1"})
		require.Error(t, err)
	})
}
