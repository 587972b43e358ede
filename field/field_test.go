package field

import (
	"crypto/rand"
	"errors"
	"math/big"
	"testing"
)

func randomElement(t *testing.T) Element {
	t.Helper()
	x, err := rand.Int(rand.Reader, Modulus())
	if err != nil {
		t.Fatal(err)
	}
	e, err := New(x)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestElement(t *testing.T) {
	t.Run("AddSub", func(t *testing.T) {
		a := randomElement(t)
		b := randomElement(t)

		if !a.Add(b).Sub(b).Equal(a) {
			t.Error("(a+b)-b != a")
		}
	})

	t.Run("SubWraps", func(t *testing.T) {
		got := Zero().Sub(One())
		want := new(big.Int).Sub(Modulus(), big.NewInt(1))
		if got.BigInt().Cmp(want) != 0 {
			t.Errorf("0-1 = %s, want %s", got, want)
		}
	})

	t.Run("MulInverse", func(t *testing.T) {
		for i := 0; i < 16; i++ {
			a := randomElement(t)
			if a.IsZero() {
				continue
			}
			inv, err := a.Inverse()
			if err != nil {
				t.Fatal(err)
			}
			if !a.Mul(inv).IsOne() {
				t.Fatalf("a*a^-1 != 1 for a = %s", a)
			}
		}
	})

	t.Run("InverseMatchesModInverse", func(t *testing.T) {
		a := FromUint64(168700)
		inv, err := a.Inverse()
		if err != nil {
			t.Fatal(err)
		}
		want := new(big.Int).ModInverse(big.NewInt(168700), Modulus())
		if inv.BigInt().Cmp(want) != 0 {
			t.Errorf("inverse = %s, want %s", inv, want)
		}
	})

	t.Run("InverseZeroFails", func(t *testing.T) {
		if _, err := Zero().Inverse(); !errors.Is(err, ErrZeroInverse) {
			t.Errorf("expected ErrZeroInverse, got %v", err)
		}
	})

	t.Run("NegAdd", func(t *testing.T) {
		a := randomElement(t)
		if !a.Add(a.Neg()).IsZero() {
			t.Error("a + (-a) != 0")
		}
	})

	t.Run("SquareExp", func(t *testing.T) {
		a := randomElement(t)
		sq, err := a.Exp(big.NewInt(2))
		if err != nil {
			t.Fatal(err)
		}
		if !sq.Equal(a.Square()) || !sq.Equal(a.Mul(a)) {
			t.Error("a^2 disagrees with a*a")
		}
	})
}

func TestNew(t *testing.T) {
	t.Run("ReducesModulus", func(t *testing.T) {
		x := new(big.Int).Add(Modulus(), big.NewInt(5))
		e, err := New(x)
		if err != nil {
			t.Fatal(err)
		}
		if !e.Equal(FromUint64(5)) {
			t.Errorf("P+5 reduced to %s, want 5", e)
		}
	})

	t.Run("ModulusIsZero", func(t *testing.T) {
		e, err := New(Modulus())
		if err != nil {
			t.Fatal(err)
		}
		if !e.IsZero() {
			t.Error("P should reduce to 0")
		}
	})

	t.Run("RejectsNegative", func(t *testing.T) {
		if _, err := New(big.NewInt(-1)); !errors.Is(err, ErrInvalidFieldValue) {
			t.Errorf("expected ErrInvalidFieldValue, got %v", err)
		}
	})

	t.Run("RejectsNil", func(t *testing.T) {
		if _, err := New(nil); !errors.Is(err, ErrInvalidFieldValue) {
			t.Errorf("expected ErrInvalidFieldValue, got %v", err)
		}
	})

	t.Run("FromString", func(t *testing.T) {
		seven40 := new(big.Int).Exp(big.NewInt(7), big.NewInt(40), nil)
		e, err := FromString(seven40.String())
		if err != nil {
			t.Fatal(err)
		}
		if e.BigInt().Cmp(seven40) != 0 {
			t.Errorf("got %s, want %s", e, seven40)
		}
	})

	t.Run("FromStringRejectsGarbage", func(t *testing.T) {
		for _, s := range []string{"", "1.5", "0x10", "abc", "-3"} {
			if _, err := FromString(s); !errors.Is(err, ErrInvalidFieldValue) {
				t.Errorf("FromString(%q): expected ErrInvalidFieldValue, got %v", s, err)
			}
		}
	})
}

func TestBytes(t *testing.T) {
	b := FromUint64(0x0102).Bytes()
	for i := 0; i < 30; i++ {
		if b[i] != 0 {
			t.Fatalf("byte %d = %d, want zero padding", i, b[i])
		}
	}
	if b[30] != 0x01 || b[31] != 0x02 {
		t.Errorf("low bytes = %x %x, want 01 02", b[30], b[31])
	}
}
