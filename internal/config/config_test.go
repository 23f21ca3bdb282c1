package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromPath(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   Config
	}{
		{
			name: "valid config with all fields",
			config: Config{
				Space:       "space1",
				Environment: "staging",
				Package:     "com.example.models",
				Folder:      "./src/main/java",
				Language:    "java",
			},
			want: Config{
				Space:       "space1",
				Environment: "staging",
				Package:     "com.example.models",
				Folder:      "./src/main/java",
				Language:    "java",
			},
		},
		{
			name:   "config with defaults",
			config: Config{Space: "space1", Language: "go"},
			want: Config{
				Space:       "space1",
				Environment: DefaultEnvironment,
				Folder:      DefaultFolder,
				Language:    "go",
			},
		},
		{
			name:   "empty config file",
			config: Config{},
			want: Config{
				Environment: DefaultEnvironment,
				Folder:      DefaultFolder,
				Language:    DefaultLanguage,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, "contentful.json")

			data, err := json.MarshalIndent(tt.config, "", "  ")
			require.NoError(t, err)
			require.NoError(t, os.WriteFile(configPath, data, 0644))

			got, err := LoadConfigFromPath(configPath)
			require.NoError(t, err)
			require.NotNil(t, got)

			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestLoadConfigFromPath_YAML(t *testing.T) {
	// Test: YAML files are decoded by extension
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "contentful.yaml")

	content := `space: space1
environment: staging
package: models
language: typescript
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	got, err := LoadConfigFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, "space1", got.Space)
	assert.Equal(t, "staging", got.Environment)
	assert.Equal(t, "models", got.Package)
	assert.Equal(t, "typescript", got.Language)
	assert.Equal(t, DefaultFolder, got.Folder)
}

func TestLoadConfigFromPath_Errors(t *testing.T) {
	tests := []struct {
		name        string
		fileName    string
		content     string
		errContains string
	}{
		{
			name:        "invalid json",
			fileName:    "contentful.json",
			content:     `{"space": `,
			errContains: "failed to parse config file",
		},
		{
			name:        "invalid yaml",
			fileName:    "contentful.yml",
			content:     "space: [unclosed",
			errContains: "failed to parse config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), tt.fileName)
			require.NoError(t, os.WriteFile(configPath, []byte(tt.content), 0644))

			_, err := LoadConfigFromPath(configPath)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfigFromPath(filepath.Join(t.TempDir(), "contentful.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})
}

func TestLoadConfigFromDir(t *testing.T) {
	// Test plan:
	// - Config found in the start directory
	// - Config found in a parent directory
	// - No config anywhere yields ErrNotFound
	root := t.TempDir()
	project := filepath.Join(root, "project")
	nested := filepath.Join(project, "src", "models")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(project, "contentful.json"), []byte(`{"space":"space1"}`), 0644))

	t.Run("current directory", func(t *testing.T) {
		config, dir, err := loadConfigFromDir(project)
		require.NoError(t, err)
		assert.Equal(t, project, dir)
		assert.Equal(t, "space1", config.Space)
	})

	t.Run("parent directory", func(t *testing.T) {
		config, dir, err := loadConfigFromDir(nested)
		require.NoError(t, err)
		assert.Equal(t, project, dir)
		assert.Equal(t, "space1", config.Space)
	})

	t.Run("not found", func(t *testing.T) {
		other := filepath.Join(root, "other")
		require.NoError(t, os.MkdirAll(other, 0755))

		_, _, err := loadConfigFromDir(other)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestLoadConfigFromDir_PrefersJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "contentful.json"), []byte(`{"space":"from-json"}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "contentful.yaml"), []byte("space: from-yaml\n"), 0644))

	config, _, err := loadConfigFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-json", config.Space)
}

func TestDefault(t *testing.T) {
	assert.Equal(t, &Config{
		Environment: DefaultEnvironment,
		Folder:      DefaultFolder,
		Language:    DefaultLanguage,
	}, Default())
}
