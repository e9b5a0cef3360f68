package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalAppliesDefaults(t *testing.T) {
	data := []byte(`{
		"name": "minimal",
		"emitters": [{"name": "e"}]
	}`)
	var s Scenario
	require.NoError(t, s.UnmarshalJSON(data))

	assert.Equal(t, "minimal", s.Name)
	assert.Equal(t, int64(1), s.Seed)
	assert.Equal(t, 1000, s.Steps)
	assert.Equal(t, 1.0, s.Damping)
	require.Len(t, s.Emitters, 1)
	assert.Equal(t, 100, s.Emitters[0].Count)
	assert.Equal(t, 360.0, s.Emitters[0].SpreadDeg)
	assert.Equal(t, 1.0, s.Emitters[0].Speed)
}

func TestUnmarshalKeepsSpecialKeys(t *testing.T) {
	data := []byte(`{
		"name": "special",
		"emitters": [{"name": "e"}],
		"author": "someone"
	}`)
	var s Scenario
	require.NoError(t, s.UnmarshalJSON(data))
	assert.Equal(t, "someone", s.SpecialKeys["author"])
	assert.NotContains(t, s.SpecialKeys, "name")
}

func TestUnmarshalValidation(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{name: "missing name", json: `{"emitters": [{"name": "e"}]}`},
		{name: "no emitters", json: `{"name": "x", "emitters": []}`},
		{name: "negative steps", json: `{"name": "x", "steps": -1, "emitters": [{"name": "e"}]}`},
		{name: "damping over one", json: `{"name": "x", "damping": 1.5, "emitters": [{"name": "e"}]}`},
		{name: "spread over full circle", json: `{"name": "x", "emitters": [{"name": "e", "spreadDeg": 720}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Scenario
			assert.Error(t, s.UnmarshalJSON([]byte(tt.json)))
		})
	}
}

func TestParticleCount(t *testing.T) {
	s := Scenario{Emitters: []Emitter{{Count: 3}, {Count: 4}}}
	assert.Equal(t, 7, s.ParticleCount())
}

func TestLoadEmbeddedScenario(t *testing.T) {
	tests := []struct {
		name          string
		wantParticles int
	}{
		{name: "fountain", wantParticles: 500},
		{name: "orbit", wantParticles: 720},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := LoadEmbeddedScenario(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.name, s.Name)
			assert.Equal(t, tt.wantParticles, s.ParticleCount())
		})
	}

	_, err := LoadEmbeddedScenario("nope")
	assert.Error(t, err)
}
