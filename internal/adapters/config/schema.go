package config

// Stonicfile is the YAML layout of stonic.yaml.
// Pointer fields distinguish "unset" from a zero value.
type Stonicfile struct {
	Roots     []string          `yaml:"roots"`
	MaxDepth  *int              `yaml:"max_depth"`
	Threshold *int              `yaml:"threshold"`
	Scorer    string            `yaml:"scorer"`
	Cache     CacheDTO          `yaml:"cache"`
	StateFile string            `yaml:"state_file"`
	BaseDir   string            `yaml:"base_dir"`
	Watch     *bool             `yaml:"watch"`
	TraceFile string            `yaml:"trace_file"`
	Apps      map[string]string `yaml:"apps"`
}

// CacheDTO is the cache section of stonic.yaml.
type CacheDTO struct {
	File string `yaml:"file"`
	TTL  string `yaml:"ttl"`
}
