package folio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/mail"

	"gopkg.in/yaml.v3"
)

// Content is the site's static data: the project catalog and the owner's
// profile. It is loaded once before the server starts.
type Content struct {
	Catalog *Catalog
	Profile DeveloperProfile
}

// DefaultContentFS returns the bundled content directory.
func DefaultContentFS() fs.FS {
	sub, err := fs.Sub(DefaultContent, "content")
	if err != nil {
		panic(err) // embed pattern guarantees the directory
	}
	return sub
}

// LoadContent decodes projects.yaml and developer.yaml from fsys. Unknown
// fields are rejected so typos surface at startup.
func LoadContent(fsys fs.FS) (Content, error) {
	var projects []Project
	if err := decodeYAMLFile(fsys, "projects.yaml", &projects); err != nil {
		return Content{}, err
	}
	catalog, err := NewCatalog(projects)
	if err != nil {
		return Content{}, err
	}
	var profile DeveloperProfile
	if err := decodeYAMLFile(fsys, "developer.yaml", &profile); err != nil {
		return Content{}, err
	}
	if err := validateProfile(profile); err != nil {
		return Content{}, err
	}
	return Content{Catalog: catalog, Profile: profile}, nil
}

func decodeYAMLFile(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("folio: read %s: %w", name, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("folio: decode %s: %w", name, err)
	}
	return nil
}

func validateProfile(p DeveloperProfile) error {
	var errs []error
	if p.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if p.Email == "" {
		errs = append(errs, errors.New("email is required"))
	} else if _, err := mail.ParseAddress(p.Email); err != nil {
		errs = append(errs, fmt.Errorf("invalid email %q", p.Email))
	}
	if p.Portrait == "" {
		errs = append(errs, errors.New("portrait is required"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("folio: invalid developer profile: %w", err)
	}
	return nil
}
