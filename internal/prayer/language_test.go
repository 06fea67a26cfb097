package prayer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguage(t *testing.T) {
	l, err := ParseLanguage(" Anglia ")
	require.NoError(t, err)
	assert.Equal(t, Anglia, l)

	_, err = ParseLanguage("klingon")
	assert.Error(t, err)
}

func TestLanguage_NextCycles(t *testing.T) {
	l := Latina
	seen := []Language{l}
	for i := 0; i < len(Languages()); i++ {
		l = l.Next()
		seen = append(seen, l)
	}
	assert.Equal(t, []Language{Latina, Anglia, Germana, Slavonica, Latina}, seen)
	assert.Equal(t, Latina, Language("bogus").Next())
}

func TestFallbackOrder(t *testing.T) {
	assert.Equal(t, []Language{Germana, Latina, Anglia, Slavonica}, fallbackOrder(Germana))
	assert.Equal(t, []Language{Latina, Anglia, Germana, Slavonica}, fallbackOrder(Language("bogus")))
}
