package secrets

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/zalando/go-keyring"

	"jobsheet-engine/internal/config"
)

// KeyringService groups this app's secrets in the OS keychain.
const KeyringService = "jobsheet"

// ServiceAccountJSON loads the Google service-account key: from the
// configured file if one is set, otherwise from the OS keychain.
func ServiceAccountJSON(cfg config.Config) ([]byte, error) {
	if path := strings.TrimSpace(cfg.Sheets.CredentialsFile); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read credentials file: %w", err)
		}
		return b, nil
	}

	account := strings.TrimSpace(cfg.Sheets.KeyringAccount)
	if account == "" {
		return nil, errors.New("no credentials_file and no keyring_account configured")
	}
	v, err := keyring.Get(KeyringService, account)
	if err != nil {
		return nil, fmt.Errorf("keyring lookup for %q: %w", account, err)
	}
	if strings.TrimSpace(v) == "" {
		return nil, fmt.Errorf("keyring entry %q is empty", account)
	}
	return []byte(v), nil
}

// SetServiceAccountJSON stores the key JSON in the OS keychain.
func SetServiceAccountJSON(account, credentialsJSON string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(credentialsJSON) == "" {
		return errors.New("credentials JSON is empty")
	}
	return keyring.Set(KeyringService, account, credentialsJSON)
}

// DeleteServiceAccountJSON removes the key from the OS keychain.
func DeleteServiceAccountJSON(account string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, account)
}
