package auth

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadSeedUsers reads a yaml file of the form
//
//	users:
//	  - username: alice
//	    email: alice@example.com
//	    password: secret123
//	    is_admin: true
func LoadSeedUsers(path string) ([]SeedUser, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	for i, u := range f.Users {
		if u.Username == "" || u.Email == "" || u.Password == "" {
			return nil, fmt.Errorf("seed user #%d: username, email and password are required", i+1)
		}
	}
	return f.Users, nil
}
