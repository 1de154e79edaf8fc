package nutrition

import "errors"

// Error kinds returned by the engine. Details are attached with
// fmt.Errorf("%w: ...") so callers classify them with errors.Is.
var (
	ErrInvalidProfile     = errors.New("invalid profile")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrUnknownUser        = errors.New("unknown user")
	ErrMissingFood        = errors.New("missing food")
	ErrNoFoodForCategory  = errors.New("no food for category")
	ErrInvalidFoodDensity = errors.New("invalid food density")
	ErrInvalidPolicy      = errors.New("invalid plan policy")
	ErrEmptyCatalog       = errors.New("empty food catalog")
	ErrInvalidTarget      = errors.New("invalid recommendation target")
)
