package domain

// EngineSettings describes the installed resolution engine the detector inspects.
type EngineSettings struct {
	// Home is the engine installation directory; its lib directory is scanned for marker classes.
	Home string
	// Version is the engine version, when known.
	Version string
	// Symbols are additional marker symbols known to be loaded in this process.
	Symbols []string
	// CacheDetection memoizes the detected generation for the lifetime of the process.
	CacheDetection bool
}

// Settings is the loaded tool configuration.
type Settings struct {
	Engine             EngineSettings
	LocalRepository    string
	RemoteRepositories []RemoteRepository
	Offline            bool
	Parallelism        int
	// Source is the path of the settings file, empty when defaults are in use.
	Source string
}

// DefaultSettings returns the settings used when no settings file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Engine: EngineSettings{
			CacheDetection: true,
		},
		LocalRepository: DefaultLocalRepositoryPath(),
		RemoteRepositories: []RemoteRepository{
			{ID: CentralID, URL: CentralURL},
		},
		Parallelism: DefaultParallelism,
	}
}

// NewBuildingRequest derives a building request from the settings.
func (s *Settings) NewBuildingRequest(project *Model) *BuildingRequest {
	remotes := make([]RemoteRepository, len(s.RemoteRepositories))
	copy(remotes, s.RemoteRepositories)

	return &BuildingRequest{
		LocalRepository:    s.LocalRepository,
		RemoteRepositories: remotes,
		Offline:            s.Offline,
		Project:            project,
		Properties:         map[string]string{},
	}
}
