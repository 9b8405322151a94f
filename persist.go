package clinicalnets

import (
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"
	deep "github.com/patrikeh/go-deep"
	"github.com/pkg/errors"
)

// artifact is the on-disk envelope around the library's own network dump.
type artifact struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	Inputs    int        `json:"inputs"`
	Layout    []int      `json:"layout"`
	Dump      *deep.Dump `json:"dump"`
}

// Save writes the classifier to path as a single JSON file. If the file
// already exists and overwrite is false, Save returns an error instead of
// replacing it.
func (c *Classifier) Save(path string, overwrite bool) error {
	if c == nil || c.Net == nil {
		return NilArgError{"classifier"}
	}

	if _, err := os.Stat(path); err == nil && !overwrite {
		return errors.Errorf("Can't save model, %q already exists and overwrite is not enabled", path)
	}

	a := artifact{
		ID:        uuid.NewString(),
		Name:      c.Name,
		CreatedAt: time.Now().UTC(),
		Inputs:    c.Inputs(),
		Layout:    append([]int(nil), c.Net.Config.Layout...),
		Dump:      c.Net.Dump(),
	}

	raw, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "Couldn't encode model %q", c.Name)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return errors.Wrapf(err, "Couldn't write model to %q", path)
	}

	return nil
}

// Load reads a classifier previously written by Save. The restored network
// predicts identically to the saved one.
func Load(path string) (*Classifier, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Couldn't read model from %q", path)
	}

	var a artifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, errors.Wrapf(err, "Couldn't decode model from %q", path)
	}
	if a.Dump == nil {
		return nil, errors.Errorf("Model file %q carries no network dump", path)
	}

	return &Classifier{Name: a.Name, Net: deep.FromDump(a.Dump)}, nil
}
