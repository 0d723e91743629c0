package types

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config holds backend selection and parameters for Backend.Attach.
type Config struct {
	Backend string `json:"backend" yaml:"backend" validate:"required"`
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// DBFile is the database file name inside DataDir. Defaults to DefaultDBFile.
	DBFile string `json:"db_file" yaml:"db_file" validate:"omitempty,excludesall=/"`

	// CreateSchema bootstraps the tables on attach when they do not exist.
	CreateSchema bool `json:"create_schema" yaml:"create_schema"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
)

// DefaultDBFile is the database file used when Config.DBFile is empty.
const DefaultDBFile = "questions.db"

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrInvalidConfig  = errors.New("invalid config")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Field() == "Backend" && fe.Tag() == "required" {
					return ErrBackendEmpty
				}
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, verrs[0].Field())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	return nil
}

// DatabaseFile returns the configured file name, or DefaultDBFile.
func (c Config) DatabaseFile() string {
	if c.DBFile == "" {
		return DefaultDBFile
	}
	return c.DBFile
}
