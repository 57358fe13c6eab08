package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytesToString(t *testing.T) {
	assert.Equal(t, "test string", BytesToString([]byte("test string")))
	assert.Equal(t, "", BytesToString(nil))
}

func TestSlugifyTag(t *testing.T) {
	assert.Equal(t, "golang", SlugifyTag(" Golang "))
	assert.Equal(t, "web dev", SlugifyTag("Web Dev"))
	assert.Equal(t, "", SlugifyTag("  "))
}
