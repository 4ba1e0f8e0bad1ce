package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"log"
	"os"

	"github.com/spf13/afero"
)

// Initialize creates a configuration in dir, existing files are left
// untouched.
func Initialize(dir string, logger *log.Logger) error {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return InitializeFs(afero.NewBasePathFs(afero.NewOsFs(), dir), logger)
}

// InitializeFs creates a configuration at the root of configFs.
func InitializeFs(configFs afero.Fs, logger *log.Logger) error {
	if err := writeIfMissing(configFs, logger, ConfigurationName, func() ([]byte, error) {
		return defaultConfigData, nil
	}); err != nil {
		return err
	}

	return writeIfMissing(configFs, logger, PrivateKeyName, generateHostKey)
}

func writeIfMissing(configFs afero.Fs, logger *log.Logger, name string, contents func() ([]byte, error)) error {
	exists, err := afero.Exists(configFs, name)
	switch {
	case err != nil:
		return err
	case exists:
		logger.Printf("%s exists, skipping", name)
		return nil
	}

	data, err := contents()
	if err != nil {
		return err
	}

	logger.Printf("writing %s", name)
	return afero.WriteFile(configFs, name, data, 0600)
}

func generateHostKey() ([]byte, error) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, err
	}

	return pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	}), nil
}
