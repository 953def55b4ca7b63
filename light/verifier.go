package light

import (
	"github.com/dndll/near-zk-light-client/libs/log"
	"github.com/dndll/near-zk-light-client/types"
)

// Sync verifies that block is a finalized successor of the trusted head
// and returns the completed transition.
//
// It ensures that:
//
//	a) the block advances the head's height;
//	b) the block belongs to the head's epoch or the next one, the only
//	   epochs the trusted producer set speaks for;
//	c) a next-epoch block carries the producer set for the epoch after
//	   it;
//	d) a strict supermajority of bps stake endorsed the block
//	   (ErrNotEnoughApprovedStake otherwise);
//	e) a carried producer set hashes to the header's next_bp_hash
//	   commitment (ErrInvalidNextBPS otherwise).
//
// bps must be the producer set for the block's epoch: the set the head
// handed off when block sits in the head's next epoch, the head's own
// set otherwise. Sync is pure; it retains nothing between calls.
func Sync(head types.Header, bps []types.ValidatorStake, block types.Block) (types.Synced, error) {
	if block.Header.Inner.Height <= head.Inner.Height {
		return types.Synced{}, ErrBlockAlreadyVerified{
			HeadHeight:  head.Inner.Height,
			BlockHeight: block.Header.Inner.Height,
		}
	}

	epoch := block.Header.Inner.EpochID
	if epoch != head.Inner.EpochID && epoch != head.Inner.NextEpochID {
		return types.Synced{}, ErrUnknownEpoch{BlockEpoch: epoch}
	}
	if epoch == head.Inner.NextEpochID && block.NextBPS == nil {
		return types.Synced{}, ErrMissingNextBPS
	}

	info := ValidateSignatures(bps, block.ApprovalsAfterNext, block.ApprovalMessage())
	if !info.HasSupermajority() {
		return types.Synced{}, ErrNotEnoughApprovedStake{Approved: info.Approved, Total: info.Total}
	}

	synced := types.Synced{NewHead: block.Header}
	if block.NextBPS != nil {
		got := block.NextBPSHash
		if got.IsZero() {
			got = types.HashBlockProducers(block.NextBPS)
		}
		if want := block.Header.Inner.NextBPHash; got != want {
			return types.Synced{}, ErrInvalidNextBPS{Got: got, Want: want}
		}
		synced.NextBPS = &types.EpochBlockProducers{
			EpochID: block.Header.Inner.NextEpochID,
			BPS:     block.NextBPS,
		}
	}
	return synced, nil
}

// Verifier wraps the pure verification functions with the protocol
// parameters, a logger and metrics. It accepts untrusted RPC views and
// owns their conversion into the value model.
type Verifier struct {
	params  types.Params
	logger  log.Logger
	metrics *Metrics
}

// Option sets an optional parameter on the Verifier.
type Option func(*Verifier)

// WithLogger sets the logger. Defaults to a nop logger.
func WithLogger(l log.Logger) Option {
	return func(v *Verifier) { v.logger = l }
}

// WithMetrics sets the metrics. Defaults to no-op metrics.
func WithMetrics(m *Metrics) Option {
	return func(v *Verifier) { v.metrics = m }
}

// NewVerifier returns a Verifier for the given protocol parameters.
func NewVerifier(params types.Params, opts ...Option) (*Verifier, error) {
	if err := params.ValidateBasic(); err != nil {
		return nil, err
	}
	v := &Verifier{
		params:  params,
		logger:  log.NewNopLogger(),
		metrics: NopMetrics(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Sync converts an untrusted block view and verifies it against the
// trusted head, see the package-level Sync.
func (v *Verifier) Sync(head types.Header, bps []types.ValidatorStake, view types.LightClientBlockView) (types.Synced, error) {
	synced, err := Sync(head, bps, view.ToBlock(v.params))
	if err != nil {
		v.metrics.BlocksRejected.Add(1)
		v.logger.Error("block rejected",
			"height", view.InnerLite.Height,
			"head_height", head.Inner.Height,
			"err", err)
		return types.Synced{}, err
	}

	v.metrics.BlocksVerified.Add(1)
	v.metrics.HeadHeight.Set(float64(synced.NewHead.Inner.Height))
	v.logger.Info("new trusted head",
		"height", synced.NewHead.Inner.Height,
		"hash", synced.NewHead.Hash(),
		"bps_handoff", synced.NextBPS != nil)
	return synced, nil
}

// VerifyProof checks an outcome inclusion proof against the trusted
// head, see the package-level VerifyProof.
func (v *Verifier) VerifyProof(headBlockRoot types.CryptoHash, proof types.Proof) error {
	if err := VerifyProof(headBlockRoot, proof); err != nil {
		v.metrics.ProofsRejected.Add(1)
		v.logger.Error("proof rejected", "outcome", proof.OutcomeHash, "err", err)
		return err
	}
	v.metrics.ProofsVerified.Add(1)
	v.logger.Debug("proof verified", "outcome", proof.OutcomeHash)
	return nil
}
