package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/cardex/internal/catalog"
)

const sampleJSON = `{
  "Squirtle": {
    "Name": "Squirtle", "HP": "50", "Type": "Water", "Stage": "Basic",
    "EvolvesFrom": null,
    "Attacks": [
      {"Name": "Bubble", "Description": "Flip a coin.", "Damage": "10", "Energy": {"Water": 1}},
      {"Name": "Withdraw", "Description": "", "Damage": "", "Energy": {"Water": 1, "Colorless": 1}}
    ],
    "Ability": null,
    "RetreatCost": 1
  },
  "Wartortle": {
    "Name": "Wartortle", "HP": 80, "Type": "Water", "Stage": "Stage 1",
    "EvolvesFrom": "Squirtle",
    "Attacks": [
      {"Name": "Bite", "Description": "", "Damage": "40+", "Energy": {"Colorless": 2, "Water": 1}}
    ],
    "Ability": {"Name": "Shell Armor", "Description": "Takes 10 less damage."},
    "RetreatCost": 1
  }
}`

const sampleYAML = `
Wartortle:
  Name: Wartortle
  HP: "80"
  Type: Water
  Stage: Stage 1
  EvolvesFrom: Squirtle
  Attacks:
    - Name: Bite
      Damage: 40+
      Energy:
        Colorless: 2
        Water: 1
  Ability:
    Name: Shell Armor
    Description: Takes 10 less damage.
  RetreatCost: 1
Squirtle:
  Name: Squirtle
  HP: 50
  Type: Water
  Stage: Basic
  EvolvesFrom: null
  Attacks:
    - Name: Bubble
      Description: Flip a coin.
      Damage: 10
      Energy: {Water: 1}
  Ability: null
  RetreatCost: 1
`

func TestLoadFromBytes_JSON(t *testing.T) {
	c, err := catalog.LoadFromBytes([]byte(sampleJSON), catalog.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []string{"Squirtle", "Wartortle"}, c.Names())

	sq, ok := c.Get("Squirtle")
	require.True(t, ok)
	assert.Equal(t, 50, sq.HP)
	assert.Equal(t, catalog.StageBasic, sq.Stage)
	assert.Equal(t, "", sq.EvolvesFrom)
	assert.Nil(t, sq.Ability)
	require.Len(t, sq.Attacks, 2)
	assert.Equal(t, "Flip a coin.", sq.Attacks[0].Description)
	assert.True(t, sq.Attacks[0].HasBaseDamage)
	assert.Equal(t, 10, sq.Attacks[0].BaseDamage)
	assert.False(t, sq.Attacks[1].HasBaseDamage)
	assert.Equal(t, []catalog.EnergyCost{{Type: "Water", Cost: 1}, {Type: "Colorless", Cost: 1}}, sq.Attacks[1].Energy)

	wt, ok := c.Get("Wartortle")
	require.True(t, ok)
	assert.Equal(t, 80, wt.HP)
	assert.Equal(t, "Squirtle", wt.EvolvesFrom)
	require.NotNil(t, wt.Ability)
	assert.Equal(t, "Shell Armor", wt.Ability.Name)
	assert.Equal(t, 40, wt.Attacks[0].BaseDamage)
	assert.Equal(t, "40+", wt.Attacks[0].Damage)
	assert.Equal(t, []catalog.EnergyCost{{Type: "Colorless", Cost: 2}, {Type: "Water", Cost: 1}}, wt.Attacks[0].Energy)
}

func TestLoadFromBytes_YAMLKeepsDocumentOrder(t *testing.T) {
	c, err := catalog.LoadFromBytes([]byte(sampleYAML), catalog.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, []string{"Wartortle", "Squirtle"}, c.Names())

	wt, _ := c.Get("Wartortle")
	assert.Equal(t, 80, wt.HP)
	assert.Equal(t, []catalog.EnergyCost{{Type: "Colorless", Cost: 2}, {Type: "Water", Cost: 1}}, wt.Attacks[0].Energy)
	require.NotNil(t, wt.Ability)

	sq, _ := c.Get("Squirtle")
	assert.Equal(t, 50, sq.HP)
	assert.Equal(t, "10", sq.Attacks[0].Damage)
	assert.Nil(t, sq.Ability)
	assert.Equal(t, "", sq.EvolvesFrom)
}

func TestLoadFromBytes_EmptyCatalog(t *testing.T) {
	c, err := catalog.LoadFromBytes([]byte(`{}`), catalog.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())

	c, err = catalog.LoadFromBytes([]byte(``), catalog.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestLoadFromBytes_EmptyDocument(t *testing.T) {
	for _, doc := range []string{"", "  \n\n   "} {
		for _, f := range []catalog.Format{catalog.FormatJSON, catalog.FormatYAML} {
			c, err := catalog.LoadFromBytes([]byte(doc), f)
			require.NoError(t, err, "format %s, document %q", f, doc)
			assert.Equal(t, 0, c.Len())
			assert.Empty(t, c.Names())
		}
	}
}

func TestLoadFromBytes_MalformedJSON(t *testing.T) {
	tests := map[string]string{
		"not json":          `{"Squirtle": `,
		"top level array":   `[]`,
		"record not object": `{"Squirtle": 5}`,
		"missing name":      `{"A": {"HP": "50", "Type": "Water", "Stage": "Basic", "Attacks": [{"Name": "x"}], "RetreatCost": 1}}`,
		"name mismatch":     `{"A": {"Name": "B", "HP": "50", "Type": "Water", "Stage": "Basic", "Attacks": [{"Name": "x"}], "RetreatCost": 1}}`,
		"hp not numeric":    `{"A": {"Name": "A", "HP": "fifty", "Type": "Water", "Stage": "Basic", "Attacks": [{"Name": "x"}], "RetreatCost": 1}}`,
		"hp wrong type":     `{"A": {"Name": "A", "HP": [50], "Type": "Water", "Stage": "Basic", "Attacks": [{"Name": "x"}], "RetreatCost": 1}}`,
		"unknown stage":     `{"A": {"Name": "A", "HP": "50", "Type": "Water", "Stage": "Mega", "Attacks": [{"Name": "x"}], "RetreatCost": 1}}`,
		"no attacks":        `{"A": {"Name": "A", "HP": "50", "Type": "Water", "Stage": "Basic", "Attacks": [], "RetreatCost": 1}}`,
		"attacks not array": `{"A": {"Name": "A", "HP": "50", "Type": "Water", "Stage": "Basic", "Attacks": {"Name": "x"}, "RetreatCost": 1}}`,
		"energy not int":    `{"A": {"Name": "A", "HP": "50", "Type": "Water", "Stage": "Basic", "Attacks": [{"Name": "x", "Energy": {"Water": "one"}}], "RetreatCost": 1}}`,
		"ability not obj":   `{"A": {"Name": "A", "HP": "50", "Type": "Water", "Stage": "Basic", "Attacks": [{"Name": "x"}], "Ability": "Torrent", "RetreatCost": 1}}`,
		"missing retreat":   `{"A": {"Name": "A", "HP": "50", "Type": "Water", "Stage": "Basic", "Attacks": [{"Name": "x"}]}}`,
		"negative retreat":  `{"A": {"Name": "A", "HP": "50", "Type": "Water", "Stage": "Basic", "Attacks": [{"Name": "x"}], "RetreatCost": -1}}`,
		"duplicate key":     `{"A": {"Name": "A", "HP": "50", "Type": "Water", "Stage": "Basic", "Attacks": [{"Name": "x"}], "RetreatCost": 1}, "A": {"Name": "A", "HP": "50", "Type": "Water", "Stage": "Basic", "Attacks": [{"Name": "x"}], "RetreatCost": 1}}`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := catalog.LoadFromBytes([]byte(doc), catalog.FormatJSON)
			require.Error(t, err)
			assert.ErrorIs(t, err, catalog.ErrMalformedInput)
			assert.Nil(t, c)
		})
	}
}

func TestLoadFromBytes_MalformedYAML(t *testing.T) {
	tests := map[string]string{
		"syntax":          "A: [",
		"top level list":  "- A\n- B\n",
		"hp mapping":      "A:\n  Name: A\n  HP: {x: 1}\n  Type: Water\n  Stage: Basic\n  Attacks: [{Name: x}]\n  RetreatCost: 1\n",
		"energy sequence": "A:\n  Name: A\n  HP: 50\n  Type: Water\n  Stage: Basic\n  Attacks: [{Name: x, Energy: [1]}]\n  RetreatCost: 1\n",
		"retreat string":  "A:\n  Name: A\n  HP: 50\n  Type: Water\n  Stage: Basic\n  Attacks: [{Name: x}]\n  RetreatCost: one\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := catalog.LoadFromBytes([]byte(doc), catalog.FormatYAML)
			require.Error(t, err)
			assert.ErrorIs(t, err, catalog.ErrMalformedInput)
		})
	}
}

func TestLoadFromBytes_ReportsEveryBadRecord(t *testing.T) {
	doc := `{
	  "A": {"Name": "A", "HP": "x", "Type": "Water", "Stage": "Basic", "Attacks": [{"Name": "x"}], "RetreatCost": 1},
	  "B": {"Name": "B", "HP": "50", "Type": "Water", "Stage": "Nope", "Attacks": [{"Name": "x"}], "RetreatCost": 1}
	}`
	_, err := catalog.LoadFromBytes([]byte(doc), catalog.FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `creature "A"`)
	assert.Contains(t, err.Error(), `creature "B"`)
}

func TestLoadFromBytes_UnsupportedFormat(t *testing.T) {
	_, err := catalog.LoadFromBytes([]byte(sampleJSON), catalog.Format("toml"))
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "cards.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(sampleJSON), 0644))
	yamlPath := filepath.Join(dir, "cards.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(sampleYAML), 0644))

	c, err := catalog.LoadFromFile(jsonPath, "")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	c, err = catalog.LoadFromFile(yamlPath, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Wartortle", "Squirtle"}, c.Names())

	_, err = catalog.LoadFromFile(filepath.Join(dir, "cards.txt"), "")
	assert.Error(t, err)

	_, err = catalog.LoadFromFile(filepath.Join(dir, "missing.json"), "")
	assert.Error(t, err)
}

func TestDataPath(t *testing.T) {
	tests := map[string]string{
		"pokemon":        "pokemon.json",
		"pokemon.json":   "pokemon.json",
		" pokemon ":      "pokemon.json",
		"cards.yaml":     "cards.yaml",
		"cards.yml":      "cards.yml",
		"data/set1.json": "data/set1.json",
		"":               "",
	}
	for in, want := range tests {
		assert.Equal(t, want, catalog.DataPath(in), "input %q", in)
	}
}

func TestParseFormat(t *testing.T) {
	f, ok := catalog.ParseFormat("auto")
	assert.True(t, ok)
	assert.Equal(t, catalog.Format(""), f)

	f, ok = catalog.ParseFormat("YAML")
	assert.True(t, ok)
	assert.Equal(t, catalog.FormatYAML, f)

	_, ok = catalog.ParseFormat("xml")
	assert.False(t, ok)
}
