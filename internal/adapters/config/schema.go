package config

// Cratefile represents the structure of the crate.yaml configuration file.
type Cratefile struct {
	Version  string                `yaml:"version"`
	Projects map[string]ProjectDTO `yaml:"projects"`
}

// ProjectDTO represents a project definition in the configuration.
type ProjectDTO struct {
	Out       string   `yaml:"out"`
	Classpath []string `yaml:"classpath"`
	Resources []string `yaml:"resources"`
	MainClass string   `yaml:"mainClass"`
}
