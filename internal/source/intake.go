package source

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/soscreative/hotline-intel/internal/model"
)

// LoadIntakeFile reads an intake questionnaire from a YAML file. Keys
// absent from the file stay nil, keeping the never-asked semantics.
func LoadIntakeFile(path string) (*model.IntakeData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "source: read intake file %s", path)
	}

	var in model.IntakeData
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, eris.Wrapf(err, "source: parse intake file %s", path)
	}
	return &in, nil
}
