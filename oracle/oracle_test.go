package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"testing"

	"github.com/f3rmion/burnoracle/burn"
	"github.com/f3rmion/burnoracle/field"
	"github.com/f3rmion/burnoracle/wtns"
)

func newOracle(t *testing.T) *Oracle {
	t.Helper()
	o, err := New(burn.DefaultParams(), nil)
	if err != nil {
		t.Fatal(err)
	}
	return o
}

// witnessFor lays out a witness whose outputs are outputs, after the constant 1.
func witnessFor(t *testing.T, outputs []*big.Int) []byte {
	t.Helper()
	values := append([]*big.Int{big.NewInt(1)}, outputs...)
	buf, err := wtns.Encode(32, field.Modulus(), values)
	if err != nil {
		t.Fatal(err)
	}
	return buf
}

func TestParseInput(t *testing.T) {
	t.Run("NumbersAndStrings", func(t *testing.T) {
		in, err := ParseInput([]byte(`{
			"burnKey": 123,
			"revealAmount": "98765",
			"burnExtraCommitment": "6140942214464815497216"
		}`))
		if err != nil {
			t.Fatal(err)
		}
		if in.BurnKey.Int().Int64() != 123 || in.RevealAmount.Int().Int64() != 98765 {
			t.Errorf("parsed %s, %s", in.BurnKey.Int(), in.RevealAmount.Int())
		}
		if in.BurnExtraCommitment.Int().String() != "6140942214464815497216" {
			t.Errorf("parsed %s", in.BurnExtraCommitment.Int())
		}
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := ParseInput([]byte(`{"burnKey": 1, "revealAmount": 2}`))
		if !errors.Is(err, ErrMissingInput) {
			t.Errorf("expected ErrMissingInput, got %v", err)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, doc := range []string{
			`{"burnKey": 1.5, "revealAmount": 2, "burnExtraCommitment": 3}`,
			`{"burnKey": "0x10", "revealAmount": 2, "burnExtraCommitment": 3}`,
			`{"burnKey": -1, "revealAmount": 2, "burnExtraCommitment": 3}`,
		} {
			if _, err := ParseInput([]byte(doc)); !errors.Is(err, field.ErrInvalidFieldValue) {
				t.Errorf("%s: expected ErrInvalidFieldValue, got %v", doc, err)
			}
		}
	})

	t.Run("MarshalRoundTrip", func(t *testing.T) {
		in := NewInput(pow(7, 40), big.NewInt(1), big.NewInt(2))
		b, err := json.Marshal(in)
		if err != nil {
			t.Fatal(err)
		}
		back, err := ParseInput(b)
		if err != nil {
			t.Fatal(err)
		}
		if back.BurnKey.Int().Cmp(pow(7, 40)) != 0 {
			t.Errorf("burnKey = %s, want 7^40", back.BurnKey.Int())
		}
	})
}

func TestExpected(t *testing.T) {
	o := newOracle(t)
	p := o.Params()
	in := NewInput(big.NewInt(123), big.NewInt(98765), big.NewInt(5678))
	k, r, e, err := in.Elements()
	if err != nil {
		t.Fatal(err)
	}
	addr, err := p.DeriveAddress(k, r, e)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("Address", func(t *testing.T) {
		got, err := o.Expected(BurnAddress, in)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != burn.AddressLength {
			t.Fatalf("len = %d, want %d", len(got), burn.AddressLength)
		}
		for i, b := range addr.Bytes() {
			if got[i].Int64() != int64(b) {
				t.Errorf("byte %d = %s, want %d", i, got[i], b)
			}
		}
	})

	t.Run("Hash", func(t *testing.T) {
		got, err := o.Expected(BurnAddressHash, in)
		if err != nil {
			t.Fatal(err)
		}
		nibbles := burn.HashAddress(addr)
		if len(got) != len(nibbles) {
			t.Fatalf("len = %d, want %d", len(got), len(nibbles))
		}
		for i := range nibbles {
			if got[i].Int64() != int64(nibbles[i]) {
				t.Errorf("nibble %d = %s, want %d", i, got[i], nibbles[i])
			}
		}
	})

	t.Run("EncryptFixed", func(t *testing.T) {
		got, err := o.Expected(BurnAddressEncryptFixed, in)
		if err != nil {
			t.Fatal(err)
		}
		want := burn.XOR(addr.Bytes(), o.Fixed().Bytes())
		for i := range want {
			if got[i].Int64() != int64(want[i]) {
				t.Errorf("byte %d = %s, want %d", i, got[i], want[i])
			}
		}
	})

	t.Run("EncryptDecrypts", func(t *testing.T) {
		got, err := o.Expected(BurnAddressEncrypt, in)
		if err != nil {
			t.Fatal(err)
		}
		ks, err := burn.KeyAgreement{Params: p}.Keystream(k)
		if err != nil {
			t.Fatal(err)
		}
		ct := make([]byte, len(got))
		for i, v := range got {
			ct[i] = byte(v.Int64())
		}
		plain, err := ks.XOR(ct)
		if err != nil {
			t.Fatal(err)
		}
		if string(plain) != string(addr.Bytes()) {
			t.Errorf("decrypted %x, want %x", plain, addr.Bytes())
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		if _, err := o.Expected("Spend()", in); !errors.Is(err, ErrUnknownCircuit) {
			t.Errorf("expected ErrUnknownCircuit, got %v", err)
		}
	})
}

func TestVectors(t *testing.T) {
	o := newOracle(t)

	for _, tc := range Vectors() {
		t.Run(tc.Name, func(t *testing.T) {
			got, err := o.Expected(tc.Circuit, tc.Input)
			if err != nil {
				t.Fatal(err)
			}
			want := tc.Recorded()
			if len(got) != len(want) {
				t.Fatalf("%d outputs, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i].Cmp(want[i]) != 0 {
					t.Errorf("output %d = %s, want %s", i, got[i], want[i])
				}
			}
			if err := o.Check(tc.Circuit, tc.Input, witnessFor(t, want)); err != nil {
				t.Errorf("recorded witness rejected: %v", err)
			}
		})
	}

	t.Run("HashLength", func(t *testing.T) {
		for _, tc := range Vectors() {
			if tc.Circuit == BurnAddressHash && len(tc.Recorded()) != 64 {
				t.Errorf("%s: %d nibbles, want 64", tc.Name, len(tc.Recorded()))
			}
		}
	})
}

func TestCheck(t *testing.T) {
	o := newOracle(t)

	for _, tc := range Vectors() {
		t.Run(tc.Name, func(t *testing.T) {
			want, err := o.Expected(tc.Circuit, tc.Input)
			if err != nil {
				t.Fatal(err)
			}
			if err := o.Check(tc.Circuit, tc.Input, witnessFor(t, want)); err != nil {
				t.Errorf("matching witness rejected: %v", err)
			}
		})
	}

	t.Run("Mismatch", func(t *testing.T) {
		tc := Vectors()[0]
		want, err := o.Expected(tc.Circuit, tc.Input)
		if err != nil {
			t.Fatal(err)
		}
		bad := make([]*big.Int, len(want))
		copy(bad, want)
		bad[5] = new(big.Int).Xor(want[5], big.NewInt(1))

		err = o.Check(tc.Circuit, tc.Input, witnessFor(t, bad))
		var mm *MismatchError
		if !errors.As(err, &mm) || !errors.Is(err, ErrMismatch) {
			t.Fatalf("expected MismatchError, got %v", err)
		}
		if mm.Index != 5 {
			t.Errorf("mismatch index = %d, want 5", mm.Index)
		}
	})

	t.Run("ShortWitness", func(t *testing.T) {
		tc := Vectors()[0]
		err := o.Check(tc.Circuit, tc.Input, witnessFor(t, []*big.Int{big.NewInt(1)}))
		if !errors.Is(err, wtns.ErrOutputCountMismatch) {
			t.Errorf("expected ErrOutputCountMismatch, got %v", err)
		}
	})

	t.Run("Truncated", func(t *testing.T) {
		tc := Vectors()[0]
		want, _ := o.Expected(tc.Circuit, tc.Input)
		buf := witnessFor(t, want)
		err := o.Check(tc.Circuit, tc.Input, buf[:len(buf)-3])
		if !errors.Is(err, wtns.ErrMalformedWitness) {
			t.Errorf("expected ErrMalformedWitness, got %v", err)
		}
	})
}

func TestCheckBatch(t *testing.T) {
	o := newOracle(t)

	var jobs []Job
	for i, tc := range Vectors() {
		want, err := o.Expected(tc.Circuit, tc.Input)
		if err != nil {
			t.Fatal(err)
		}
		if i == 1 {
			want[0] = new(big.Int).Add(want[0], big.NewInt(1))
		}
		jobs = append(jobs, Job{Name: tc.Name, Circuit: tc.Circuit, Input: tc.Input, Witness: witnessFor(t, want)})
	}

	results, err := o.CheckBatch(context.Background(), jobs, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(jobs) {
		t.Fatalf("got %d results, want %d", len(results), len(jobs))
	}
	for i, r := range results {
		if r.Job.Name != jobs[i].Name {
			t.Errorf("result %d is for %q, want %q", i, r.Job.Name, jobs[i].Name)
		}
		if i == 1 {
			if !errors.Is(r.Err, ErrMismatch) {
				t.Errorf("job %d: expected mismatch, got %v", i, r.Err)
			}
			continue
		}
		if r.Err != nil {
			t.Errorf("job %d: %v", i, r.Err)
		}
	}

	t.Run("Cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := o.CheckBatch(ctx, jobs, 1); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}

func TestNewRejectsInvalidParams(t *testing.T) {
	p := burn.DefaultParams()
	p.Hasher = nil
	if _, err := New(p, nil); err == nil {
		t.Error("expected error for params without hasher")
	}
}
