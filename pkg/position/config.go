package position

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// LoadRewardParams reads tunable evaluation weights from a TOML file, starting from
// DefaultRewardParams and overriding whichever fields the file sets. This is the concrete
// config layer the distilled spec leaves implicit: RewardParams is an immutable input to the
// core, and this is how an operator supplies a non-default one.
func LoadRewardParams(path string) (RewardParams, error) {
	params := DefaultRewardParams()
	if _, err := toml.DecodeFile(path, &params); err != nil {
		return RewardParams{}, fmt.Errorf("loading reward params from %q: %w", path, err)
	}
	return params, nil
}
