package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/kestrel-labs/kestrel/x/asset/types"
)

// InitGenesis initializes the asset module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid asset genesis: %w", err)
	}

	for _, asset := range genState.Assets {
		if err := k.setAsset(ctx, asset.Id, asset.Info); err != nil {
			return err
		}
		if err := k.setSupply(ctx, asset.Id, asset.Supply); err != nil {
			return err
		}
		for _, bal := range asset.Balances {
			addr, err := sdk.AccAddressFromBech32(bal.Address)
			if err != nil {
				return fmt.Errorf("asset %d: invalid balance address %s: %w", asset.Id, bal.Address, err)
			}
			if err := k.setBalance(ctx, asset.Id, addr, bal.Amount); err != nil {
				return err
			}
		}
		for _, al := range asset.Allowances {
			owner, err := sdk.AccAddressFromBech32(al.Owner)
			if err != nil {
				return fmt.Errorf("asset %d: invalid allowance owner %s: %w", asset.Id, al.Owner, err)
			}
			spender, err := sdk.AccAddressFromBech32(al.Spender)
			if err != nil {
				return fmt.Errorf("asset %d: invalid allowance spender %s: %w", asset.Id, al.Spender, err)
			}
			if err := k.setAllowance(ctx, asset.Id, owner, spender, al.Amount); err != nil {
				return err
			}
		}
	}

	k.setNextAssetID(ctx, genState.NextAssetId)
	return nil
}

// ExportGenesis exports the asset module's state to a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genState := &types.GenesisState{NextAssetId: k.nextAssetID(ctx)}

	var iterErr error
	err := k.IterateAssets(ctx, func(assetID uint64, info types.AssetInfo) bool {
		asset := types.GenesisAsset{
			Id:     assetID,
			Info:   info,
			Supply: k.TotalSupply(ctx, assetID),
		}
		iterErr = k.IterateBalances(ctx, assetID, func(addr sdk.AccAddress, balance math.Int) bool {
			asset.Balances = append(asset.Balances, types.GenesisBalance{
				Address: addr.String(),
				Amount:  balance,
			})
			return false
		})
		if iterErr != nil {
			return true
		}
		iterErr = k.IterateAllowances(ctx, assetID, func(owner, spender sdk.AccAddress, amount math.Int) bool {
			asset.Allowances = append(asset.Allowances, types.GenesisAllowance{
				Owner:   owner.String(),
				Spender: spender.String(),
				Amount:  amount,
			})
			return false
		})
		if iterErr != nil {
			return true
		}
		genState.Assets = append(genState.Assets, asset)
		return false
	})
	if err != nil {
		return nil, err
	}
	if iterErr != nil {
		return nil, iterErr
	}
	return genState, nil
}
