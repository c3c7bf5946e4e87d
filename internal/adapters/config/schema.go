package config

// File represents the structure of the transfer.yaml configuration file.
type File struct {
	Version         string          `yaml:"version"`
	Engine          EngineDTO       `yaml:"engine"`
	LocalRepository string          `yaml:"localRepository"`
	Offline         bool            `yaml:"offline"`
	Parallelism     *int            `yaml:"parallelism"`
	Repositories    []RepositoryDTO `yaml:"repositories"`
}

// EngineDTO describes the installed engine.
type EngineDTO struct {
	Home           string   `yaml:"home"`
	Version        string   `yaml:"version"`
	Symbols        []string `yaml:"symbols"`
	CacheDetection *bool    `yaml:"cacheDetection"`
}

// RepositoryDTO is a remote repository entry.
type RepositoryDTO struct {
	ID  string `yaml:"id"`
	URL string `yaml:"url"`
}
