package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadCatalogCoversEveryModule(t *testing.T) {
	cat, err := LoadCatalog()
	require.NoError(t, err)

	for _, name := range []string{"electronics", "sorbant", "peltier", "filtration", "assembly"} {
		entry, ok := cat.Modules[name]
		require.True(t, ok, name)
		assert.NotEmpty(t, entry.Title, name)
		assert.NotEmpty(t, entry.Caption, name)
		assert.NotEmpty(t, entry.Legend, name)
		assert.NotEqual(t, [3]float32{}, entry.Camera.Position, "%s camera preset", name)
	}
}

func TestDefaultCatalogParses(t *testing.T) {
	var cat Catalog
	require.NoError(t, yaml.Unmarshal([]byte(defaultCatalog), &cat))
	assert.Len(t, cat.Modules, 5)

	asm := cat.Modules["assembly"]
	assert.Equal(t, [3]float32{55, 60, 62}, asm.Camera.Position)
	assert.Equal(t, [3]float32{0, 32, 0}, asm.Camera.Target)
}

func TestCatalogOverrideReplacesEntry(t *testing.T) {
	var cat Catalog
	require.NoError(t, yaml.Unmarshal([]byte(defaultCatalog), &cat))

	override := `
modules:
  peltier:
    title: Condenser
    camera:
      position: [1, 2, 3]
      target: [0, 0, 0]
`
	var ov Catalog
	require.NoError(t, yaml.Unmarshal([]byte(override), &ov))
	for name, entry := range ov.Modules {
		cat.Modules[name] = entry
	}

	assert.Equal(t, "Condenser", cat.Modules["peltier"].Title)
	assert.Equal(t, [3]float32{1, 2, 3}, cat.Modules["peltier"].Camera.Position)
	// Untouched entries keep their defaults.
	assert.Equal(t, "Electronics", cat.Modules["electronics"].Title)
}
