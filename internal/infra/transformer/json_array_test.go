package transformer

import (
	"strings"
	"testing"

	"github.com/robotcarousel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONArray_Posts(t *testing.T) {
	body := `[{"userId":1,"id":1,"title":"sunt aut","body":"quia et"},{"id":2,"title":"qui est","body":"est rerum"}]`

	posts, err := NewJSONArray[domain.Post]().Transform(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, []domain.Post{
		{ID: 1, Title: "sunt aut", Body: "quia et"},
		{ID: 2, Title: "qui est", Body: "est rerum"},
	}, posts)
}

func TestJSONArray_Empty(t *testing.T) {
	posts, err := NewJSONArray[domain.Post]().Transform(strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestJSONArray_Malformed(t *testing.T) {
	for _, body := range []string{`{"id":1}`, `[{"id":`, `null`, ``} {
		_, err := NewJSONArray[domain.Post]().Transform(strings.NewReader(body))
		assert.Error(t, err, "body %q", body)
	}
}
