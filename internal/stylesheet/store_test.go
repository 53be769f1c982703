package stylesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_UpsertInsertionOrder(t *testing.T) {
	s := NewStore()
	s.Upsert(".b", "", []Property{{Name: "color", Value: "red"}})
	s.Upsert(".a", "", []Property{{Name: "color", Value: "blue"}})
	s.Upsert(".c", "", []Property{{Name: "color", Value: "green"}})

	rules := s.BaseRules()
	require.Len(t, rules, 3)
	assert.Equal(t, ".b", rules[0].Selector)
	assert.Equal(t, ".a", rules[1].Selector)
	assert.Equal(t, ".c", rules[2].Selector)
}

func TestStore_UpsertIdempotent(t *testing.T) {
	s := NewStore()
	props := []Property{{Name: "padding", Value: "1rem"}}

	s.Upsert(".p-4", "", props)
	s.Upsert(".p-4", "", props)
	s.Upsert(".p-4", "", props)

	require.Equal(t, 1, s.RuleCount())
	assert.Len(t, s.BaseRules()[0].Properties, 1)
}

func TestStore_UpsertMergesNewProperties(t *testing.T) {
	s := NewStore()
	s.Upsert(".x", "", []Property{{Name: "color", Value: "red"}})
	s.Upsert(".x", "", []Property{{Name: "background", Value: "blue"}})

	require.Equal(t, 1, s.RuleCount())
	props := s.BaseRules()[0].Properties
	require.Len(t, props, 2)
	assert.Equal(t, "color", props[0].Name)
	assert.Equal(t, "background", props[1].Name)
}

func TestStore_MediaBuckets(t *testing.T) {
	s := NewStore()
	md := "(min-width: 768px)"
	lg := "(min-width: 1024px)"

	s.Upsert(".base", "", []Property{{Name: "display", Value: "flex"}})
	s.Upsert(".md-only", md, []Property{{Name: "display", Value: "grid"}})
	s.Upsert(".lg-only", lg, []Property{{Name: "display", Value: "block"}})
	s.Upsert(".md-second", md, []Property{{Name: "display", Value: "none"}})

	assert.Equal(t, []string{md, lg}, s.MediaQueries())
	require.Len(t, s.MediaRules(md), 2)
	assert.Equal(t, ".md-only", s.MediaRules(md)[0].Selector)
	assert.Equal(t, ".md-second", s.MediaRules(md)[1].Selector)
	assert.Equal(t, 4, s.RuleCount())
}

func TestStore_SameSelectorDifferentBuckets(t *testing.T) {
	s := NewStore()
	s.Upsert(".x", "", []Property{{Name: "color", Value: "red"}})
	s.Upsert(".x", "(min-width: 768px)", []Property{{Name: "color", Value: "blue"}})

	assert.Equal(t, 2, s.RuleCount())
}

func TestStore_CustomPropertyFirstWriteWins(t *testing.T) {
	s := NewStore()
	s.CustomProperty("--my-width", "initial")
	s.CustomProperty("--my-width", "42px")
	s.CustomProperty("--other", "initial")

	props := s.CustomProperties()
	require.Len(t, props, 2)
	assert.Equal(t, Property{Name: "--my-width", Value: "initial"}, props[0])
	assert.Equal(t, Property{Name: "--other", Value: "initial"}, props[1])
}

func TestStore_Reset(t *testing.T) {
	s := NewStore()
	s.Upsert(".x", "", []Property{{Name: "color", Value: "red"}})
	s.Upsert(".y", "print", []Property{{Name: "color", Value: "black"}})
	s.CustomProperty("--v", "initial")

	s.Reset()

	assert.Equal(t, 0, s.RuleCount())
	assert.Empty(t, s.MediaQueries())
	assert.Empty(t, s.CustomProperties())

	s.Upsert(".x", "", []Property{{Name: "color", Value: "red"}})
	assert.Equal(t, 1, s.RuleCount())
}
