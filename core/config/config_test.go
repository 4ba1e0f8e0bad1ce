package config

import (
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"
)

func jsonFields(rt reflect.Type) map[string]bool {
	out := make(map[string]bool)
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		out[strings.Split(field.Tag.Get("json"), ",")[0]] = true
	}
	return out
}

func TestBuiltinConfig(t *testing.T) {
	rawConfig := make(map[string]interface{})
	assert.Nil(t, yaml.Unmarshal(defaultConfigData, &rawConfig))

	knownFields := jsonFields(reflect.TypeOf(Configuration{}))
	for field := range knownFields {
		assert.NotEmpty(t, field)
		if _, ok := rawConfig[field]; !ok {
			assert.False(t, true, "default config missing field: %q", field)
		}
	}

	for k := range rawConfig {
		_, ok := knownFields[k]
		assert.True(t, ok, "default config contains invalid field: %q", k)
	}
}

func TestDefaultConfig(t *testing.T) {
	// Will panic() on load failure because it should never happen at runtime.
	cfg := defaultConfig()
	assert.NotNil(t, cfg)
	assert.Nil(t, cfg.Validate())
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Equal(t, FilesystemOS, cfg.Filesystem)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Empty(t, cfg.AppLog)

	fd, err := cfg.OpenAppLog()
	assert.Nil(t, err)
	assert.Nil(t, fd)
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		mutate  func(*Configuration)
		wantErr string
	}{
		"default": {
			mutate: func(*Configuration) {},
		},
		"zero page size": {
			mutate:  func(c *Configuration) { c.PageSize = 0 },
			wantErr: "page_size",
		},
		"bad color": {
			mutate:  func(c *Configuration) { c.Color = "sometimes" },
			wantErr: "color",
		},
		"bad filesystem": {
			mutate:  func(c *Configuration) { c.Filesystem = "tape" },
			wantErr: "filesystem",
		},
		"bad port": {
			mutate:  func(c *Configuration) { c.SSH.Port = 70000 },
			wantErr: "port",
		},
		"duplicate passwords": {
			mutate:  func(c *Configuration) { c.SSH.Passwords = []string{"a", "a"} },
			wantErr: "passwords",
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.Nil(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadFs(t *testing.T) {
	cases := map[string]struct {
		contents string
		wantErr  bool
	}{
		"valid": {
			contents: string(defaultConfigData),
		},
		"unknown field": {
			contents: string(defaultConfigData) + "\nbogus: true\n",
			wantErr:  true,
		},
		"invalid value": {
			contents: "page_size: 0\ncolor: auto\nfilesystem: os\nssh:\n  host_key: k\n",
			wantErr:  true,
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			assert.Nil(t, afero.WriteFile(fs, ConfigurationName, []byte(tc.contents), 0600))

			cfg, err := LoadFs(fs)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, 10, cfg.PageSize)
		})
	}
}

func TestPasswordAllowed(t *testing.T) {
	cfg := defaultConfig()
	cfg.SSH.Passwords = []string{"hunter2"}
	assert.True(t, cfg.PasswordAllowed("hunter2"))
	assert.False(t, cfg.PasswordAllowed("password"))

	cfg.SSH.AllowAnyPassword = true
	assert.True(t, cfg.PasswordAllowed("password"))
}
