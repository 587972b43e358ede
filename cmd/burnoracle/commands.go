package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/f3rmion/burnoracle/config"
	"github.com/f3rmion/burnoracle/hasher"
	"github.com/f3rmion/burnoracle/oracle"
	"github.com/f3rmion/burnoracle/wtns"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

var circuitFlag = &cli.StringFlag{
	Name:  "circuit",
	Usage: "main component, e.g. BurnAddress() or BurnAddressHash()",
	Value: string(oracle.BurnAddress),
}

var inputFlag = &cli.StringFlag{
	Name:     "input",
	Aliases:  []string{"i"},
	Usage:    "circuit input JSON file, - for stdin",
	Required: true,
}

var addressCommand = &cli.Command{
	Name:   "address",
	Usage:  "print the burn address, its hash and ciphertext for an input",
	Flags:  []cli.Flag{inputFlag},
	Action: runAddress,
}

var expectCommand = &cli.Command{
	Name:   "expect",
	Usage:  "print the expected output signals of a circuit as JSON",
	Flags:  []cli.Flag{circuitFlag, inputFlag},
	Action: runExpect,
}

var decodeCommand = &cli.Command{
	Name:      "decode",
	Usage:     "print the first outputs of a witness file",
	ArgsUsage: "<witness.wtns>",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Usage: "number of outputs", Value: 1},
	},
	Action: runDecode,
}

var checkCommand = &cli.Command{
	Name:      "check",
	Usage:     "compare witness files with the expected outputs",
	ArgsUsage: "<input.json:witness.wtns>...",
	Flags: []cli.Flag{
		circuitFlag,
		&cli.IntFlag{Name: "parallel", Aliases: []string{"j"}, Usage: "concurrent checks, 0 for unbounded", Value: 4},
	},
	Action: runCheck,
}

var vectorsCommand = &cli.Command{
	Name:   "vectors",
	Usage:  "print the built-in vectors with their expected outputs",
	Action: runVectors,
}

func loadConfig(c *cli.Context) (*config.Config, *oracle.Oracle, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}
	if mode := c.String("mode"); mode != "" {
		cfg.Mode = mode
		if err := cfg.Validate(); err != nil {
			return nil, nil, err
		}
	}
	o, err := cfg.Oracle()
	if err != nil {
		return nil, nil, err
	}
	p := o.Params()
	if !p.Curve.IsOnCurve(p.PublicKey) {
		log.Warn().Stringer("pk", p.PublicKey).Msg("public key is not on Baby Jubjub")
	}
	log.Debug().
		Str("mode", cfg.Mode).
		Stringer("prefix", p.AddressPrefix).
		Uint("scalar_bits", p.ScalarBits).
		Msg("loaded parameters")
	return cfg, o, nil
}

func parseCircuit(name string) (oracle.Circuit, error) {
	if !strings.HasSuffix(name, "()") {
		name += "()"
	}
	for _, c := range oracle.Circuits() {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", oracle.ErrUnknownCircuit, name)
}

func readInput(path string) (oracle.Input, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return oracle.Input{}, err
	}
	return oracle.ParseInput(data)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runAddress(c *cli.Context) error {
	cfg, o, err := loadConfig(c)
	if err != nil {
		return err
	}
	in, err := readInput(c.String("input"))
	if err != nil {
		return err
	}
	k, r, e, err := in.Elements()
	if err != nil {
		return err
	}
	addr, err := o.Params().DeriveAddress(k, r, e)
	if err != nil {
		return err
	}
	ct, err := o.Expected(cfg.EncryptCircuit(), in)
	if err != nil {
		return err
	}

	return writeJSON(c.App.Writer, map[string]string{
		"address":    addr.Hex(),
		"hash":       hexutil.Encode(hasher.Keccak256(addr.Bytes())),
		"ciphertext": hexutil.Encode(signalBytes(ct)),
		"mode":       cfg.Mode,
	})
}

// signalBytes packs byte-valued output signals.
func signalBytes(signals []*big.Int) []byte {
	out := make([]byte, len(signals))
	for i, v := range signals {
		out[i] = byte(v.Uint64())
	}
	return out
}

func runExpect(c *cli.Context) error {
	_, o, err := loadConfig(c)
	if err != nil {
		return err
	}
	circuit, err := parseCircuit(c.String("circuit"))
	if err != nil {
		return err
	}
	in, err := readInput(c.String("input"))
	if err != nil {
		return err
	}
	want, err := o.Expected(circuit, in)
	if err != nil {
		return err
	}
	return writeJSON(c.App.Writer, want)
}

func runDecode(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("decode takes exactly one witness file", 2)
	}
	buf, err := os.ReadFile(c.Args().First())
	if err != nil {
		return err
	}
	w, err := wtns.Parse(buf)
	if err != nil {
		return err
	}
	log.Debug().Uint32("n8", w.N8).Int("elements", w.Len()).Msg("decoded witness")
	out, err := w.Outputs(c.Int("count"))
	if err != nil {
		return err
	}
	return writeJSON(c.App.Writer, out)
}

func runCheck(c *cli.Context) error {
	_, o, err := loadConfig(c)
	if err != nil {
		return err
	}
	circuit, err := parseCircuit(c.String("circuit"))
	if err != nil {
		return err
	}
	if c.NArg() == 0 {
		return cli.Exit("check needs at least one input.json:witness.wtns pair", 2)
	}

	jobs := make([]oracle.Job, 0, c.NArg())
	for _, arg := range c.Args().Slice() {
		inPath, wPath, ok := strings.Cut(arg, ":")
		if !ok {
			return cli.Exit(fmt.Sprintf("argument %q is not input.json:witness.wtns", arg), 2)
		}
		in, err := readInput(inPath)
		if err != nil {
			return fmt.Errorf("%s: %w", inPath, err)
		}
		buf, err := os.ReadFile(wPath)
		if err != nil {
			return err
		}
		jobs = append(jobs, oracle.Job{Name: arg, Circuit: circuit, Input: in, Witness: buf})
	}

	results, err := o.CheckBatch(c.Context, jobs, c.Int("parallel"))
	if err != nil {
		return err
	}
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			log.Error().Err(r.Err).Str("job", r.Job.Name).Msg("witness check failed")
			continue
		}
		log.Info().Str("job", r.Job.Name).Str("circuit", string(circuit)).Msg("witness matches")
	}
	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d witnesses failed", failed, len(results)), 1)
	}
	return nil
}

type vectorOutput struct {
	Name     string       `json:"name"`
	Circuit  string       `json:"circuit"`
	Input    oracle.Input `json:"input"`
	Expected []*big.Int   `json:"expected"`
	Recorded bool         `json:"recorded"`
}

func runVectors(c *cli.Context) error {
	_, o, err := loadConfig(c)
	if err != nil {
		return err
	}
	var out []vectorOutput
	for _, tc := range oracle.Vectors() {
		want, err := o.Expected(tc.Circuit, tc.Input)
		if err != nil {
			return fmt.Errorf("%s: %w", tc.Name, err)
		}
		recorded := equalSignals(want, tc.Recorded())
		if !recorded {
			log.Warn().Str("vector", tc.Name).Msg("expected outputs differ from the recorded default outputs")
		}
		out = append(out, vectorOutput{
			Name:     tc.Name,
			Circuit:  string(tc.Circuit),
			Input:    tc.Input,
			Expected: want,
			Recorded: recorded,
		})
	}
	return writeJSON(c.App.Writer, out)
}

func equalSignals(a, b []*big.Int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}
	return true
}
