package seeders

import (
	"fmt"
	"io"
	"os"

	"gym-maintenance/internal/entities"
	"gym-maintenance/internal/repositories"
	"gym-maintenance/pkg/utils"

	"gopkg.in/yaml.v3"
)

// fixtureUser lets a fixtures file give a plain password instead of a hash.
type fixtureUser struct {
	entities.User `yaml:",inline"`
	Password      string `yaml:"password,omitempty"`
}

type fixtureFile struct {
	Units      []entities.Unit          `yaml:"units"`
	Equipments []entities.Equipment     `yaml:"equipments"`
	Calls      []entities.TechnicalCall `yaml:"calls"`
	Checklists []entities.Checklist     `yaml:"checklists"`
	Users      []fixtureUser            `yaml:"users"`
}

func LoadFixturesFile(path string) (repositories.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return repositories.Snapshot{}, fmt.Errorf("open fixtures %s: %w", path, err)
	}
	defer f.Close()
	return LoadFixtures(f)
}

// LoadFixtures decodes a YAML fixtures document. Users without a password
// hash get one for their plain password, or for DefaultPassword.
func LoadFixtures(r io.Reader) (repositories.Snapshot, error) {
	var file fixtureFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return repositories.Snapshot{}, fmt.Errorf("decode fixtures: %w", err)
	}

	snap := repositories.Snapshot{
		Units:      file.Units,
		Equipments: file.Equipments,
		Calls:      file.Calls,
		Checklists: file.Checklists,
		Users:      make([]entities.User, 0, len(file.Users)),
	}
	for _, fu := range file.Users {
		u := fu.User
		if u.PasswordHash == "" {
			password := fu.Password
			if password == "" {
				password = DefaultPassword
			}
			hash, err := utils.HashPassword(password)
			if err != nil {
				return repositories.Snapshot{}, fmt.Errorf("hash password of %s: %w", u.Email, err)
			}
			u.PasswordHash = hash
		}
		snap.Users = append(snap.Users, u)
	}
	return snap, validateSnapshot(snap)
}

// WriteFixtures encodes snap as a fixtures document.
func WriteFixtures(w io.Writer, snap repositories.Snapshot) error {
	file := fixtureFile{
		Units:      snap.Units,
		Equipments: snap.Equipments,
		Calls:      snap.Calls,
		Checklists: snap.Checklists,
	}
	for _, u := range snap.Users {
		file.Users = append(file.Users, fixtureUser{User: u})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return err
	}
	return enc.Close()
}

// validateSnapshot rejects duplicate ids and emails; dangling references are
// allowed, readers show them as unknown.
func validateSnapshot(snap repositories.Snapshot) error {
	if err := uniqueIDs("unit", snap.Units, func(u entities.Unit) string { return u.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("equipment", snap.Equipments, func(e entities.Equipment) string { return e.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("call", snap.Calls, func(c entities.TechnicalCall) string { return c.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("checklist", snap.Checklists, func(c entities.Checklist) string { return c.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("user", snap.Users, func(u entities.User) string { return u.ID }); err != nil {
		return err
	}
	return uniqueIDs("user email", snap.Users, func(u entities.User) string { return u.Email })
}

func uniqueIDs[T any](kind string, list []T, key func(T) string) error {
	seen := make(map[string]struct{}, len(list))
	for _, v := range list {
		k := key(v)
		if k == "" {
			return fmt.Errorf("%s without id in fixtures", kind)
		}
		if _, dup := seen[k]; dup {
			return fmt.Errorf("duplicate %s %q in fixtures", kind, k)
		}
		seen[k] = struct{}{}
	}
	return nil
}
