package recipe

import "errors"

var (
	ErrRecipe = errors.New("invalid recipe")
)
