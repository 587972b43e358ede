// Package oracle provides a high-level API for checking proof-of-burn
// circuits against independently computed outputs. It wraps the [burn] and
// [wtns] packages with the interface a test driver needs: given a circuit
// name and its JSON input, what output signals must the witness contain?
//
// # Expected outputs
//
//	o, err := oracle.New(burn.DefaultParams(), nil)
//	if err != nil {
//		return err
//	}
//	in, err := oracle.ParseInput([]byte(`{"burnKey": 123, "revealAmount": "98765", "burnExtraCommitment": 5678}`))
//	if err != nil {
//		return err
//	}
//	want, err := o.Expected(oracle.BurnAddress, in)
//
// Byte outputs are returned one integer per byte and the address hash one
// integer per hex nibble, in the order the circuits expose their signals.
//
// # Checking a witness
//
// Compiling the circuit and generating its witness is the driver's job.
// [Oracle.Check] decodes the resulting .wtns buffer and compares it with the
// expected outputs; a difference is reported as a [*MismatchError].
// [Oracle.CheckBatch] checks many independent witnesses concurrently.
package oracle
