// Package scenario loads and validates the JSON scenarios that drive the
// simulation harness.
package scenario

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/perimeterx/marshmallow"
)

var (
	//go:embed scenarios/*.json
	embeddedScenariosJSONFS embed.FS
)

// Emitter spawns particles from an origin in a fan of directions.
// AngleDeg and SpreadDeg are in degrees; each particle leaves at
// AngleDeg +/- SpreadDeg/2 with the given speed.
type Emitter struct {
	Name      string     `validate:"required" json:"name"`
	Count     int        `default:"100" validate:"gt=0" json:"count"`
	Origin    [2]float64 `json:"origin"`
	AngleDeg  float64    `validate:"gte=-360,lte=360" json:"angleDeg"`
	SpreadDeg float64    `default:"360" validate:"gte=0,lte=360" json:"spreadDeg"`
	Speed     float64    `default:"1" validate:"gt=0" json:"speed"`
}

func (em *Emitter) UnmarshalJSON(data []byte) error {
	return unmarshalJSONMapUsingUnmarshalJSONFromMap(em, data)
}

func (em *Emitter) UnmarshalJSONFromMap(data interface{}) error {
	err := defaults.Set(em)
	if err != nil {
		return err
	}

	dataMap, ok := data.(map[string]interface{})
	if !ok {
		return fmt.Errorf(`data is not a map but a %T`, data)
	}

	_, err = marshmallow.UnmarshalFromJSONMap(dataMap, em, marshmallow.WithExcludeKnownFieldsFromMap(true))
	if err != nil {
		return err
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	return validate.Struct(em)
}

// Scenario describes one simulation run.
type Scenario struct {
	Name     string     `validate:"required" json:"name"`
	Seed     int64      `default:"1" json:"seed"`
	Steps    int        `default:"1000" validate:"gt=0" json:"steps"`
	Dt       float64    `default:"0.016666666" validate:"gt=0" json:"dt"`
	Gravity  [2]float64 `json:"gravity"`
	Attract  float64    `default:"0" validate:"gte=0" json:"attract"`
	Damping  float64    `default:"1" validate:"gt=0,lte=1" json:"damping"`
	Emitters []Emitter  `validate:"required,min=1" json:"-"`

	// keys in the JSON that are not part of this schema, kept for reporting
	SpecialKeys map[string]interface{} `json:"-"`
}

func (s *Scenario) UnmarshalJSON(data []byte) error {
	err := defaults.Set(s)
	if err != nil {
		return err
	}

	specials, err := marshmallow.Unmarshal(data, s, marshmallow.WithExcludeKnownFieldsFromMap(true))
	if err != nil {
		return err
	}

	// Emitters
	rawEmitters, ok := specials["emitters"]
	if !ok {
		return fmt.Errorf(`missing key "emitters"`)
	}
	s.Emitters, err = unmarshalEmitters(rawEmitters)
	if err != nil {
		return err
	}
	delete(specials, "emitters")
	s.SpecialKeys = specials

	validate := validator.New(validator.WithRequiredStructEnabled())
	return validate.Struct(s)
}

func unmarshalEmitters(rawEmitters interface{}) ([]Emitter, error) {
	rawEmittersList, ok := rawEmitters.([]interface{})
	if !ok {
		return nil, fmt.Errorf(`"emitters" should be an array`)
	}
	emitters := make([]Emitter, 0, len(rawEmittersList))
	for _, rawEmitter := range rawEmittersList {
		var emitter Emitter
		err := emitter.UnmarshalJSONFromMap(rawEmitter)
		if err != nil {
			return nil, err
		}
		emitters = append(emitters, emitter)
	}
	return emitters, nil
}

// ParticleCount is the total particle count over all emitters.
func (s *Scenario) ParticleCount() int {
	count := 0
	for i := range s.Emitters {
		count += s.Emitters[i].Count
	}
	return count
}

// LoadScenarioJSON loads a scenario from a JSON file on disk.
func LoadScenarioJSON(path string) (Scenario, error) {
	var s Scenario
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("error reading scenario file: %w", err)
	}
	err = s.UnmarshalJSON(data)
	if err != nil {
		return s, fmt.Errorf("error parsing scenario %s: %w", path, err)
	}
	return s, nil
}

// LoadEmbeddedScenario loads one of the built-in scenarios by name.
// E.g.: fountain.
func LoadEmbeddedScenario(name string) (Scenario, error) {
	var s Scenario
	data, err := embeddedScenariosJSONFS.ReadFile("scenarios/" + name + ".json")
	if err != nil {
		return s, fmt.Errorf("no embedded scenario named %s: %w", name, err)
	}
	err = s.UnmarshalJSON(data)
	if err != nil {
		return s, fmt.Errorf("error parsing embedded scenario %s: %w", name, err)
	}
	return s, nil
}

func unmarshalJSONMapUsingUnmarshalJSONFromMap(target marshmallow.UnmarshalerFromJSONMap, data []byte) error {
	var dataMap map[string]interface{}
	err := json.Unmarshal(data, &dataMap)
	if err != nil {
		return err
	}
	return target.UnmarshalJSONFromMap(dataMap)
}
