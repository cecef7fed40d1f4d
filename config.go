package silo

import (
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/TheBitDrifter/table"
)

// Config holds global configuration for the table system and the query
// engine's tunables.
var Config config = config{
	groupMatchingEnabled:   true,
	parChunkWorkers:        4,
	parChunkLeafSize:       1,
	unorderedCachePrealloc: 8,
}

type config struct {
	tableEvents table.TableEvents

	// groupMatchingEnabled gates whether evaluateQuery ever attempts to bind
	// a query to an ordered Group. Disabling it forces every query to use
	// the unordered cache - a pure optimization toggle (spec.md §9).
	groupMatchingEnabled bool

	// parChunkWorkers bounds the number of goroutines ParChunkIter.Drive may
	// run concurrently.
	parChunkWorkers int

	// parChunkLeafSize is the largest archetype-range length splitResult
	// leaves undivided, so each ParChunkIter leaf covers at most this many
	// archetypes.
	parChunkLeafSize int

	// unorderedCachePrealloc is the initial capacity reserved for a fresh
	// Unordered query cache's archetype slice.
	unorderedCachePrealloc int
}

// SetTableEvents configures the table event callbacks.
func (c *config) SetTableEvents(te table.TableEvents) {
	c.tableEvents = te
}

// LoadConfig loads engine tunables from a viper-compatible source (yaml,
// json, env). Keys not present in the source keep their current value, so
// LoadConfig(nil) is a safe no-op that just re-applies defaults.
//
// Recognized keys: silo.group_matching, silo.par_chunk_workers,
// silo.par_chunk_leaf_size, silo.unordered_cache_prealloc.
func LoadConfig(v *viper.Viper) {
	if v == nil {
		v = viper.New()
	}
	v.SetEnvPrefix("SILO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("silo.group_matching", Config.groupMatchingEnabled)
	v.SetDefault("silo.par_chunk_workers", Config.parChunkWorkers)
	v.SetDefault("silo.par_chunk_leaf_size", Config.parChunkLeafSize)
	v.SetDefault("silo.unordered_cache_prealloc", Config.unorderedCachePrealloc)

	Config.groupMatchingEnabled = v.GetBool("silo.group_matching")
	Config.parChunkWorkers = v.GetInt("silo.par_chunk_workers")
	Config.parChunkLeafSize = v.GetInt("silo.par_chunk_leaf_size")
	Config.unorderedCachePrealloc = v.GetInt("silo.unordered_cache_prealloc")

	log.WithFields(map[string]interface{}{
		"groupMatching": Config.groupMatchingEnabled,
		"parWorkers":    Config.parChunkWorkers,
		"parLeafSize":   Config.parChunkLeafSize,
	}).Debug("loaded engine configuration")
}

// yamlConfig mirrors config's tunables for plain YAML documents that don't
// go through viper (embedded config files, checked-in defaults).
type yamlConfig struct {
	GroupMatching          *bool `yaml:"group_matching"`
	ParChunkWorkers        *int  `yaml:"par_chunk_workers"`
	ParChunkLeafSize       *int  `yaml:"par_chunk_leaf_size"`
	UnorderedCachePrealloc *int  `yaml:"unordered_cache_prealloc"`
}

// LoadConfigYAML applies engine tunables from a YAML document, leaving any
// field the document omits at its current value.
func LoadConfigYAML(data []byte) error {
	var doc yamlConfig
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc.GroupMatching != nil {
		Config.groupMatchingEnabled = *doc.GroupMatching
	}
	if doc.ParChunkWorkers != nil {
		Config.parChunkWorkers = *doc.ParChunkWorkers
	}
	if doc.ParChunkLeafSize != nil {
		Config.parChunkLeafSize = *doc.ParChunkLeafSize
	}
	if doc.UnorderedCachePrealloc != nil {
		Config.unorderedCachePrealloc = *doc.UnorderedCachePrealloc
	}
	log.WithFields(map[string]interface{}{
		"groupMatching": Config.groupMatchingEnabled,
		"parWorkers":    Config.parChunkWorkers,
		"parLeafSize":   Config.parChunkLeafSize,
	}).Debug("loaded engine configuration from YAML")
	return nil
}
