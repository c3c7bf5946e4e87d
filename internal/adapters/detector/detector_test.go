package detector_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/transfer/internal/adapters/detector"
	"go.trai.ch/transfer/internal/core/domain"
)

// countingLocator records how often it is consulted.
type countingLocator struct {
	present atomic.Bool
	calls   atomic.Int32
}

func (p *countingLocator) Lookup(string) (string, bool) {
	p.calls.Add(1)
	if p.present.Load() {
		return "counting", true
	}
	return "", false
}

func writeJar(t *testing.T, dir, name string, entries ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))

	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for _, e := range entries {
		w, err := zw.Create(e)
		require.NoError(t, err)
		_, err = w.Write([]byte("class"))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}

func TestDetector_MarkerPresentSelectsMaven31(t *testing.T) {
	d := detector.New(detector.NewSymbolTable(domain.AetherMarker))

	assert.Equal(t, domain.GenerationMaven31, d.Detect())

	detection := d.Explain()
	assert.True(t, detection.Found())
	assert.Equal(t, "symbol table", detection.Source)
	assert.Equal(t, domain.AetherMarker, detection.Marker)
}

func TestDetector_MarkerAbsentSelectsMaven3(t *testing.T) {
	d := detector.New(detector.NewSymbolTable("org.sonatype.aether.artifact.Artifact"))

	assert.Equal(t, domain.GenerationMaven3, d.Detect())
	assert.False(t, d.Explain().Found())
}

func TestDetector_NilLocatorFallsBack(t *testing.T) {
	assert.Equal(t, domain.GenerationMaven3, detector.New(nil).Detect())
}

func TestDetector_MemoizesFirstResult(t *testing.T) {
	locator := &countingLocator{}
	d := detector.New(locator)

	assert.Equal(t, domain.GenerationMaven3, d.Detect())
	locator.present.Store(true)
	assert.Equal(t, domain.GenerationMaven3, d.Detect())
	assert.Equal(t, int32(1), locator.calls.Load())
}

func TestDetector_WithoutCacheLooksUpEveryCall(t *testing.T) {
	locator := &countingLocator{}
	d := detector.New(locator, detector.WithoutCache())

	assert.Equal(t, domain.GenerationMaven3, d.Detect())
	locator.present.Store(true)
	assert.Equal(t, domain.GenerationMaven31, d.Detect())
	assert.Equal(t, int32(2), locator.calls.Load())
}

func TestDetector_ConcurrentCallsAgree(t *testing.T) {
	locator := &countingLocator{}
	locator.present.Store(true)
	d := detector.New(locator)

	var wg sync.WaitGroup
	results := make([]domain.Generation, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = d.Detect()
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, domain.GenerationMaven31, got)
	}
	assert.Equal(t, int32(1), locator.calls.Load())
}

func TestDetector_WithMarker(t *testing.T) {
	d := detector.New(detector.NewSymbolTable("custom.Marker"), detector.WithMarker("custom.Marker"))
	assert.Equal(t, domain.GenerationMaven31, d.Detect())
}

func TestLibraryLocator(t *testing.T) {
	home := t.TempDir()
	lib := filepath.Join(home, "lib")
	writeJar(t, lib, "a-maven-core-3.0.5.jar", "org/apache/maven/Maven.class")
	writeJar(t, lib, "b-maven-resolver-api-1.4.1.jar", detector.ClassEntry(domain.AetherMarker))
	require.NoError(t, os.WriteFile(filepath.Join(lib, "broken.jar"), []byte("not a zip"), domain.FilePerm))

	locator := detector.LibraryLocator{Home: home}

	source, ok := locator.Lookup(domain.AetherMarker)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(lib, "b-maven-resolver-api-1.4.1.jar"), source)

	_, ok = locator.Lookup("org.example.Missing")
	assert.False(t, ok)

	_, ok = detector.LibraryLocator{}.Lookup(domain.AetherMarker)
	assert.False(t, ok)
}

func TestClassEntry(t *testing.T) {
	assert.Equal(t, "org/eclipse/aether/artifact/Artifact.class", detector.ClassEntry(domain.AetherMarker))
}

func TestVersionLocator(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{version: "3.0.5", want: false},
		{version: "3.1.0", want: true},
		{version: "3.1.0-alpha-1", want: true},
		{version: "3.6.3", want: true},
		{version: "4.0.0-beta-3", want: true},
		{version: "", want: false},
		{version: "not-a-version", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			_, ok := detector.NewVersionLocator(tt.version).Lookup(domain.AetherMarker)
			assert.Equal(t, tt.want, ok)
		})
	}

	_, ok := detector.NewVersionLocator("3.6.3").Lookup("org.apache.maven.Maven")
	assert.False(t, ok, "unknown namespaces never match")
}

func TestAnyLocator_FirstMatchWins(t *testing.T) {
	locator := detector.AnyLocator{
		nil,
		detector.NewSymbolTable(),
		detector.NewVersionLocator("3.8.1"),
		detector.NewSymbolTable(domain.AetherMarker),
	}

	source, ok := locator.Lookup(domain.AetherMarker)
	require.True(t, ok)
	assert.Equal(t, "engine version 3.8.1", source)
}

func TestSymbolTable_Register(t *testing.T) {
	table := detector.NewSymbolTable("b", "")
	table.Register("a")

	assert.Equal(t, []string{"a", "b"}, table.Symbols())
}

func TestFromSettings(t *testing.T) {
	d := detector.FromSettings(&domain.EngineSettings{Version: "3.0.4", CacheDetection: true})
	assert.Equal(t, domain.GenerationMaven3, d.Detect())

	d = detector.FromSettings(&domain.EngineSettings{Symbols: []string{domain.AetherMarker}})
	assert.Equal(t, domain.GenerationMaven31, d.Detect())
}
