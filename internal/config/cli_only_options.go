package config

// CliOnlyOptions are options that are in no way stored or influenced by the application config file.
type CliOnlyOptions struct {
	ConfigPath string
	Verbosity  int
}
