package configs

// Configurable is implemented by values read from configuration.
// ConfigExpr names the key they are read from.
type Configurable interface {
	ConfigExpr() string
}
