package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kestrel-labs/kestrel/x/exchange/types"
)

// GetParams returns the current module parameters, falling back to the
// defaults when genesis never stored any.
func (k Keeper) GetParams(ctx context.Context) types.Params {
	bz := k.getStore(ctx).Get(ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}
	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		return types.DefaultParams()
	}
	return params
}

// SetParams validates and stores the module parameters
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	bz, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to marshal params: %w", err)
	}
	k.getStore(ctx).Set(ParamsKey, bz)
	return nil
}
