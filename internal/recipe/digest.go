package recipe

import (
	"encoding/json"

	"github.com/opencontainers/go-digest"
)

// Returns the content digest of the recipe.
//
// The digest is computed over the JSON encoding of the recipe. Map keys are
// emitted in sorted order and empty collections are omitted, so recipes that
// are [Recipe.Equal] always produce the same digest.
func (r Recipe) Digest() digest.Digest {
	data, err := json.Marshal(r)
	if err != nil {
		panic(err) // Strings, string slices and string maps always encode.
	}
	return digest.FromBytes(data)
}
