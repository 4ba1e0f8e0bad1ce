package config

import (
	"crypto/subtle"
	_ "embed"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	ConfigurationName = "config.yaml"
	PrivateKeyName    = "private_key"
	AppLogName        = "app.log"
)

const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

const (
	FilesystemOS     = "os"
	FilesystemMemory = "memory"
)

type Configuration struct {
	configFs afero.Fs

	PageSize   int    `json:"page_size" validate:"gte=1"`
	Color      string `json:"color" validate:"oneof=always auto never"`
	Filesystem string `json:"filesystem" validate:"oneof=os memory"`
	StartDir   string `json:"start_dir"`
	Prompt     string `json:"prompt"`
	AppLog     string `json:"app_log"`

	SSH SSH `json:"ssh"`
}

type SSH struct {
	Port             int      `json:"port" validate:"gte=0,lte=65535"`
	HostKey          string   `json:"host_key" validate:"required"`
	OutputRate       int64    `json:"output_rate" validate:"gte=0"`
	AllowAnyPassword bool     `json:"allow_any_password"`
	Passwords        []string `json:"passwords" validate:"unique"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		return afero.NewReadOnlyFs(afero.NewMemMapFs())
	}
	return c.configFs
}

// OpenAppLog opens the application log in an append only state. It returns
// a nil file if event logging is disabled.
func (c *Configuration) OpenAppLog() (afero.File, error) {
	if c.AppLog == "" {
		return nil, nil
	}
	return c.fs().OpenFile(c.AppLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// ReadAppLog opens the application log for reading.
func (c *Configuration) ReadAppLog() (afero.File, error) {
	return c.fs().OpenFile(c.AppLog, os.O_RDONLY, 0600)
}

// HostKeyPem returns the bytes of the SSH host key.
func (c *Configuration) HostKeyPem() ([]byte, error) {
	return afero.ReadFile(c.fs(), c.SSH.HostKey)
}

// PasswordAllowed reports whether an SSH login with the password may
// proceed.
func (c *Configuration) PasswordAllowed(password string) bool {
	if c.SSH.AllowAnyPassword {
		return true
	}
	allowed := false
	for _, p := range c.SSH.Passwords {
		if subtle.ConstantTimeCompare([]byte(p), []byte(password)) == 1 {
			allowed = true
		}
	}
	return allowed
}

// Default returns the built-in configuration without a backing directory,
// event logging is disabled.
func Default() *Configuration {
	out := defaultConfig()
	out.AppLog = ""
	return out
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
