package preprocess

import (
	"encoding/gob"
	"os"

	"github.com/pkg/errors"
)

// Save writes the fitted scaler to path as a gob blob.
func (s *MinMaxScaler) Save(path string) error {
	return saveGob(path, s)
}

// LoadScaler reads a scaler previously written by Save.
func LoadScaler(path string) (*MinMaxScaler, error) {
	s := new(MinMaxScaler)
	if err := loadGob(path, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes the fitted encoder to path as a gob blob.
func (e *OneHotEncoder) Save(path string) error {
	return saveGob(path, e)
}

// LoadEncoder reads an encoder previously written by Save.
func LoadEncoder(path string) (*OneHotEncoder, error) {
	e := new(OneHotEncoder)
	if err := loadGob(path, e); err != nil {
		return nil, err
	}
	return e, nil
}

func saveGob(path string, v interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "Couldn't create %q", path)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(v); err != nil {
		return errors.Wrapf(err, "Couldn't encode to %q", path)
	}
	return nil
}

func loadGob(path string, v interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "Couldn't open %q", path)
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(v); err != nil {
		return errors.Wrapf(err, "Couldn't decode %q", path)
	}
	return nil
}
