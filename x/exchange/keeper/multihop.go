package keeper

import (
	"context"
	"fmt"
	"time"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	assettypes "github.com/kestrel-labs/kestrel/x/asset/types"
	"github.com/kestrel-labs/kestrel/x/exchange/types"
)

// Multi-hop routing. A path is an ordered sequence of exchange handles:
// the first pool sells the input token for currency, the last buys the
// output token, and any pool in between converts currency to currency
// through its own token (both token legs cancel, so only currency moves
// between custody accounts at commit time).
//
// The whole path is planned against simulated reserves before a single
// transfer runs. Planning can fail on any hop; committing cannot.

// hopLeg is one planned currency movement between custody accounts.
type hopLeg struct {
	exchange types.Exchange
	amountIn math.Int // currency arriving at this pool's custody account
}

// swapPlan is a fully quoted multi-hop route.
type swapPlan struct {
	first     types.Exchange
	last      types.Exchange
	legs      []hopLeg // intermediate + final currency legs, in order
	amountIn  math.Int
	amountOut math.Int
}

// simReserves tracks per-exchange reserve deltas while planning, so a
// pool visited twice is quoted against its post-hop state.
type simReserves struct {
	keeper Keeper
	ctx    context.Context
	state  map[uint64][2]math.Int // exchange id -> (currency, token)
}

func newSimReserves(ctx context.Context, k Keeper) *simReserves {
	return &simReserves{keeper: k, ctx: ctx, state: make(map[uint64][2]math.Int)}
}

func (s *simReserves) get(exchange types.Exchange) (currency, token math.Int) {
	if r, ok := s.state[exchange.Id]; ok {
		return r[0], r[1]
	}
	currency, token = s.keeper.Reserves(s.ctx, exchange)
	s.state[exchange.Id] = [2]math.Int{currency, token}
	return currency, token
}

func (s *simReserves) apply(exchange types.Exchange, currencyDelta, tokenDelta math.Int) {
	currency, token := s.get(exchange)
	s.state[exchange.Id] = [2]math.Int{currency.Add(currencyDelta), token.Add(tokenDelta)}
}

// ResolveSwapHandle resolves a path handle to its exchange once, at
// plan construction.
func (k Keeper) ResolveSwapHandle(ctx context.Context, handle types.SwapHandle) (types.Exchange, error) {
	switch handle.Kind {
	case types.SwapHandleExchange:
		return k.GetExchange(ctx, handle.Value)
	case types.SwapHandleAsset:
		return k.GetExchangeByToken(ctx, handle.Value)
	default:
		return types.Exchange{}, types.ErrInvalidSwapPath.Wrapf("unknown handle kind %d", handle.Kind)
	}
}

// SwapTokenForToken sells an exact amount of the first pool's token for
// at least minAmountOut of the last pool's token, routed across the
// path atomically.
func (k Keeper) SwapTokenForToken(
	ctx context.Context,
	sender sdk.AccAddress,
	path []types.SwapHandle,
	amountIn, minAmountOut math.Int,
	recipient sdk.AccAddress,
	deadline uint64,
) (math.Int, error) {
	start := time.Now()

	if err := k.checkDeadline(ctx, deadline); err != nil {
		return math.Int{}, err
	}
	params := k.GetParams(ctx)
	if len(path) < 2 {
		return math.Int{}, types.ErrInvalidSwapPath.Wrap("path needs at least two hops")
	}
	if uint32(len(path)) > params.MaxSwapPath {
		return math.Int{}, types.ErrInvalidSwapPath.Wrapf(
			"path length %d above maximum %d", len(path), params.MaxSwapPath)
	}
	if minAmountOut.IsNil() || minAmountOut.IsNegative() {
		return math.Int{}, types.ErrZeroAmount.Wrap("min amount out must be non-negative")
	}

	plan, err := k.planTokenForToken(ctx, sender, path, amountIn, params)
	if err != nil {
		return math.Int{}, err
	}
	if plan.amountOut.LT(minAmountOut) {
		return math.Int{}, types.ErrSlippageExceeded.Wrapf(
			"output %s below minimum %s", plan.amountOut, minAmountOut)
	}

	if err := k.commitTokenForToken(ctx, sender, recipient, plan); err != nil {
		return math.Int{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyExchangeID, fmt.Sprintf("%d", plan.first.Id)),
			sdk.NewAttribute(types.AttributeKeySender, sender.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
			sdk.NewAttribute(types.AttributeKeyAmountIn, plan.amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, plan.amountOut.String()),
			sdk.NewAttribute(types.AttributeKeyHops, fmt.Sprintf("%d", len(path))),
		),
	)
	k.observeSwap("token_for_token", start)
	return plan.amountOut, nil
}

// planTokenForToken quotes every leg of the route against simulated
// reserves and pre-validates the single external debit.
func (k Keeper) planTokenForToken(
	ctx context.Context,
	sender sdk.AccAddress,
	path []types.SwapHandle,
	amountIn math.Int,
	params types.Params,
) (swapPlan, error) {
	exchanges := make([]types.Exchange, len(path))
	for i, handle := range path {
		exchange, err := k.ResolveSwapHandle(ctx, handle)
		if err != nil {
			return swapPlan{}, err
		}
		exchanges[i] = exchange
	}
	first, last := exchanges[0], exchanges[len(exchanges)-1]
	if first.Id == last.Id {
		return swapPlan{}, types.ErrInvalidSwapPath.Wrapf(
			"path starts and ends on exchange %d", first.Id)
	}

	sim := newSimReserves(ctx, k)
	plan := swapPlan{first: first, last: last, amountIn: amountIn}

	// Sell the input token on the first pool.
	currencyReserve, tokenReserve := sim.get(first)
	currency, err := quoteHop(amountIn, tokenReserve, currencyReserve, params)
	if err != nil {
		return swapPlan{}, errorsmod.Wrapf(err, "hop 1 (exchange %d)", first.Id)
	}
	sim.apply(first, currency.Neg(), amountIn)

	// Intermediate pools convert currency to currency through their own
	// token; the token never leaves the pool.
	for i := 1; i < len(exchanges)-1; i++ {
		exchange := exchanges[i]
		currencyReserve, tokenReserve := sim.get(exchange)
		token, err := quoteHop(currency, currencyReserve, tokenReserve, params)
		if err != nil {
			return swapPlan{}, errorsmod.Wrapf(err, "hop %d (exchange %d)", i+1, exchange.Id)
		}
		sim.apply(exchange, currency, token.Neg())

		currencyReserve, tokenReserve = sim.get(exchange)
		next, err := quoteHop(token, tokenReserve, currencyReserve, params)
		if err != nil {
			return swapPlan{}, errorsmod.Wrapf(err, "hop %d (exchange %d)", i+1, exchange.Id)
		}
		sim.apply(exchange, next.Neg(), token)

		plan.legs = append(plan.legs, hopLeg{exchange: exchange, amountIn: currency})
		currency = next
	}

	// Buy the output token on the last pool.
	currencyReserve, tokenReserve = sim.get(last)
	amountOut, err := quoteHop(currency, currencyReserve, tokenReserve, params)
	if err != nil {
		return swapPlan{}, errorsmod.Wrapf(err, "hop %d (exchange %d)", len(exchanges), last.Id)
	}
	plan.legs = append(plan.legs, hopLeg{exchange: last, amountIn: currency})
	plan.amountOut = amountOut

	// The only external debit of the whole route.
	custody := first.CustodyAddress()
	if err := k.assetKeeper.CheckTransferFrom(ctx, first.TokenId, custody, sender, amountIn); err != nil {
		return swapPlan{}, err
	}
	return plan, nil
}

// commitTokenForToken applies a fully planned route. Every amount was
// quoted against reserves the plan already accounted for, so no
// transfer here can fail.
func (k Keeper) commitTokenForToken(ctx context.Context, sender, recipient sdk.AccAddress, plan swapPlan) error {
	custody := plan.first.CustodyAddress()
	if err := k.assetKeeper.TransferFrom(ctx, plan.first.TokenId, custody, sender, custody, plan.amountIn); err != nil {
		return err
	}

	from := custody
	for _, leg := range plan.legs {
		to := leg.exchange.CustodyAddress()
		if err := k.assetKeeper.Transfer(ctx, assettypes.NativeAssetID, from, to, leg.amountIn); err != nil {
			return err
		}
		from = to
	}

	return k.assetKeeper.Transfer(ctx, plan.last.TokenId, plan.last.CustodyAddress(), recipient, plan.amountOut)
}

// quoteHop quotes one leg, folding an empty intermediate pool into the
// liquidity failure the router reports.
func quoteHop(amountIn, reserveIn, reserveOut math.Int, params types.Params) (math.Int, error) {
	out, err := GetInputPrice(amountIn, reserveIn, reserveOut, params)
	if err != nil {
		if errorsmod.IsOf(err, types.ErrEmptyPool) {
			return math.Int{}, types.ErrInsufficientLiquidity.Wrap("pool has no reserves")
		}
		return math.Int{}, err
	}
	return out, nil
}
