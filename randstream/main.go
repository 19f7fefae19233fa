package main

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/xor-shift/simplerng/rng"
	"github.com/xor-shift/simplerng/util"
	"log"
	"os"
	"strconv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("loading dotenv failed: %s", err)
	}
}

func algorithmFromName(name string) (rng.Algorithm, error) {
	switch name {
	case "lcg":
		return rng.LCG, nil
	case "lcg32":
		return rng.LCG32, nil
	case "pcg":
		return rng.PCG, nil
	default:
		return 0, errors.New(fmt.Sprintf("unknown algorithm %q", name))
	}
}

func newGenerator(seedArg, algorithmName string) (*rng.Generator, error) {
	var gen *rng.Generator
	var err error

	seedStr := seedArg
	if seedStr == "" {
		seedStr = os.Getenv("RNG_SEED")
	}

	if seedStr == "" {
		if gen, err = rng.FromTime(); err != nil {
			return nil, err
		}
	} else {
		var seed uint64
		if seed, err = strconv.ParseUint(seedStr, 10, 64); err != nil {
			return nil, errors.New(fmt.Sprintf("bad seed %q: %s", seedStr, err))
		}

		gen = rng.New(seed)
	}

	algorithm, err := algorithmFromName(algorithmName)
	if err != nil {
		return nil, err
	}

	gen.SetAlgorithm(algorithm)

	return gen, nil
}

func main() {
	args := struct {
		Seed      string `name:"seed" short:"s" default:"" help:"Seed as a decimal uint64; falls back to RNG_SEED, then to the wall clock"`
		Algorithm string `name:"algorithm" short:"a" enum:"lcg,lcg32,pcg" default:"lcg" help:"Transition function"`
		Count     uint   `name:"count" short:"n" default:"16" help:"Number of values to emit (0 for an unbounded stream)"`
		Format    string `name:"format" short:"f" enum:"u64,hex,float,bool,bytes" default:"u64" help:"Output format; bytes writes raw big-endian words for piping into statistical test harnesses"`
	}{}

	_ = kong.Parse(&args)

	gen, err := newGenerator(args.Seed, args.Algorithm)
	if err != nil {
		log.Fatalln(err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for i := uint(0); args.Count == 0 || i < args.Count; i++ {
		switch args.Format {
		case "u64":
			_, err = fmt.Fprintln(out, gen.Next())
		case "hex":
			_, err = fmt.Fprintln(out, util.ArrayToString([]uint64{gen.Next()}))
		case "float":
			_, err = fmt.Fprintln(out, gen.GenFloat())
		case "bool":
			_, err = fmt.Fprintln(out, gen.GenBool())
		case "bytes":
			var buf [8]byte
			binary.BigEndian.PutUint64(buf[:], gen.Next())
			_, err = out.Write(buf[:])
		}

		if err != nil {
			log.Fatalf("writing to stdout failed: %s", err)
		}
	}
}
