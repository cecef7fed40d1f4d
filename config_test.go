package silo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigYAMLOverridesNamedFields(t *testing.T) {
	defer func(saved config) { Config = saved }(Config)

	doc := []byte(`
par_chunk_workers: 7
unordered_cache_prealloc: 32
`)
	require.NoError(t, LoadConfigYAML(doc))

	assert.Equal(t, 7, Config.parChunkWorkers)
	assert.Equal(t, 32, Config.unorderedCachePrealloc)
}

func TestLoadConfigYAMLLeavesOmittedFieldsUnchanged(t *testing.T) {
	defer func(saved config) { Config = saved }(Config)

	Config.parChunkLeafSize = 99
	require.NoError(t, LoadConfigYAML([]byte(`group_matching: false`)))

	assert.False(t, Config.groupMatchingEnabled)
	assert.Equal(t, 99, Config.parChunkLeafSize, "fields absent from the document must keep their prior value")
}

func TestLoadConfigYAMLRejectsMalformedDocument(t *testing.T) {
	err := LoadConfigYAML([]byte("not: [valid: yaml"))
	assert.Error(t, err)
}
