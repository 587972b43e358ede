package oracle

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/f3rmion/burnoracle/burn"
	"github.com/f3rmion/burnoracle/wtns"
	"golang.org/x/sync/errgroup"
)

// Circuit names a main component whose outputs the oracle can predict.
type Circuit string

// Supported circuits.
const (
	BurnAddress             Circuit = "BurnAddress()"
	BurnAddressHash         Circuit = "BurnAddressHash()"
	BurnAddressEncrypt      Circuit = "BurnAddressEncrypt()"
	BurnAddressEncryptFixed Circuit = "BurnAddressEncryptFixed()"
)

// Circuits lists every supported circuit.
func Circuits() []Circuit {
	return []Circuit{BurnAddress, BurnAddressHash, BurnAddressEncrypt, BurnAddressEncryptFixed}
}

var (
	// ErrUnknownCircuit is returned for circuit names the oracle cannot predict.
	ErrUnknownCircuit = errors.New("oracle: unknown circuit")
	// ErrMismatch is wrapped by every MismatchError.
	ErrMismatch = errors.New("oracle: output mismatch")
)

// MismatchError reports the first output that differs from the expectation.
type MismatchError struct {
	Circuit Circuit
	Index   int
	Got     *big.Int
	Want    *big.Int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: output %d is %s, want %s", e.Circuit, e.Index, e.Got, e.Want)
}

// Unwrap returns ErrMismatch.
func (e *MismatchError) Unwrap() error {
	return ErrMismatch
}

// Oracle computes expected circuit outputs. It holds no mutable state and
// is safe for concurrent use.
type Oracle struct {
	params *burn.Params
	fixed  *burn.Fixed
}

// New creates an oracle. When fixed is nil the frozen keystream is derived
// from burn.DefaultFixedScalar and params.PublicKey.
func New(params *burn.Params, fixed *burn.Fixed) (*Oracle, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if fixed == nil {
		f, err := burn.DeriveFixed(params, big.NewInt(burn.DefaultFixedScalar))
		if err != nil {
			return nil, fmt.Errorf("failed to derive fixed keystream: %w", err)
		}
		fixed = f
	}
	return &Oracle{params: params, fixed: fixed}, nil
}

// Params returns the scheme parameters.
func (o *Oracle) Params() *burn.Params {
	return o.params
}

// Fixed returns the frozen keystream source.
func (o *Oracle) Fixed() *burn.Fixed {
	return o.fixed
}

// Expected returns the output signals circuit c must produce for in.
func (o *Oracle) Expected(c Circuit, in Input) ([]*big.Int, error) {
	burnKey, revealAmount, extra, err := in.Elements()
	if err != nil {
		return nil, err
	}

	switch c {
	case BurnAddress:
		addr, err := o.params.DeriveAddress(burnKey, revealAmount, extra)
		if err != nil {
			return nil, err
		}
		return byteSignals(addr.Bytes()), nil

	case BurnAddressHash:
		addr, err := o.params.DeriveAddress(burnKey, revealAmount, extra)
		if err != nil {
			return nil, err
		}
		nibbles := burn.HashAddress(addr)
		return byteSignals(nibbles[:]), nil

	case BurnAddressEncrypt, BurnAddressEncryptFixed:
		var src burn.KeystreamSource = burn.KeyAgreement{Params: o.params}
		if c == BurnAddressEncryptFixed {
			src = o.fixed
		}
		ct, err := o.params.Ciphertext(src, burnKey, revealAmount, extra)
		if err != nil {
			return nil, err
		}
		return byteSignals(ct), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCircuit, c)
}

// Check decodes witness and compares its outputs with Expected(c, in).
func (o *Oracle) Check(c Circuit, in Input, witness []byte) error {
	want, err := o.Expected(c, in)
	if err != nil {
		return err
	}
	got, err := wtns.ParseOutputs(witness, len(want))
	if err != nil {
		return err
	}
	for i := range want {
		if got[i].Cmp(want[i]) != 0 {
			return &MismatchError{Circuit: c, Index: i, Got: got[i], Want: want[i]}
		}
	}
	return nil
}

// Job is one witness to check.
type Job struct {
	Name    string
	Circuit Circuit
	Input   Input
	Witness []byte
}

// Result is the outcome of one Job; Err is nil when the witness matched.
type Result struct {
	Job Job
	Err error
}

// CheckBatch checks jobs with at most parallelism concurrent workers
// (unbounded when parallelism <= 0). Per-job failures are reported in the
// results; the returned error is only set when ctx is cancelled.
func (o *Oracle) CheckBatch(ctx context.Context, jobs []Job, parallelism int) ([]Result, error) {
	results := make([]Result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Result{Job: job, Err: o.Check(job.Circuit, job.Input, job.Witness)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func byteSignals(b []byte) []*big.Int {
	out := make([]*big.Int, len(b))
	for i, v := range b {
		out[i] = big.NewInt(int64(v))
	}
	return out
}
