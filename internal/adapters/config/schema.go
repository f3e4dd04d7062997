package config

// File is the on-disk layout of config.yaml. Every field is optional.
type File struct {
	Capacity     *int                  `yaml:"capacity"`
	LockTimeout  string                `yaml:"lock_timeout"`
	LockRetry    string                `yaml:"lock_retry"`
	OnCorruption string                `yaml:"on_corruption"`
	Log          LogDTO                `yaml:"log"`
	Storage      map[string]StorageDTO `yaml:"storage"`
}

// LogDTO configures the logger.
type LogDTO struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// StorageDTO holds per storage type overrides.
type StorageDTO struct {
	Capacity *int `yaml:"capacity"`
}
