package main

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/mitchellh/mapstructure"
	"github.com/xor-shift/simplerng/rng"
	"log"
	"os"
	"sync"
)

var (
	app *iris.Application

	// the process-wide generator lives at the application boundary; the
	// core carries no locking of its own, so every access goes through
	// this mutex
	genMutex sync.Mutex
	gen      *rng.Generator
)

type SeedRequest struct {
	Seed      uint64 `json:"seed" mapstructure:"seed"`
	Algorithm string `json:"algorithm" mapstructure:"algorithm"`
}

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("loading dotenv failed: %s", err)
	}

	app = iris.New()
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

func withGenerator(fn func(gen *rng.Generator)) {
	genMutex.Lock()
	defer genMutex.Unlock()

	fn(gen)
}

func main() {
	var err error

	if gen, err = rng.FromTime(); err != nil {
		log.Fatalf("seeding the generator failed: %s", err)
	}

	app.Get("/raw", func(ctx iris.Context) {
		withGenerator(func(gen *rng.Generator) {
			_ = ctx.JSON(iris.Map{"value": gen.Next()})
		})
	})

	app.Get("/float", func(ctx iris.Context) {
		withGenerator(func(gen *rng.Generator) {
			_ = ctx.JSON(iris.Map{"value": gen.GenFloat()})
		})
	})

	app.Get("/bool", func(ctx iris.Context) {
		withGenerator(func(gen *rng.Generator) {
			_ = ctx.JSON(iris.Map{"value": gen.GenBool()})
		})
	})

	app.Get("/range/{min:uint64}/{max:uint64}", func(ctx iris.Context) {
		min, _ := ctx.Params().GetUint64("min")
		max, _ := ctx.Params().GetUint64("max")

		// reject before reaching the core's panicking contract
		if max <= min {
			ctx.StatusCode(iris.StatusBadRequest)
			_ = ctx.JSON(iris.Map{"error": fmt.Sprintf("invalid range (min: %d, max: %d)", min, max)})
			return
		}

		withGenerator(func(gen *rng.Generator) {
			_ = ctx.JSON(iris.Map{"value": gen.GenRange(min, max)})
		})
	})

	app.Get("/unsigned/{width:int}", func(ctx iris.Context) {
		width := ctx.Params().GetIntDefault("width", 0)

		if width != 8 && width != 16 && width != 32 && width != 64 {
			ctx.StatusCode(iris.StatusBadRequest)
			_ = ctx.JSON(iris.Map{"error": fmt.Sprintf("unsupported bit width %d", width)})
			return
		}

		withGenerator(func(gen *rng.Generator) {
			_ = ctx.JSON(iris.Map{"value": gen.GenUnsigned(width)})
		})
	})

	app.Get("/signed/{width:int}", func(ctx iris.Context) {
		width := ctx.Params().GetIntDefault("width", 0)

		if width != 8 && width != 16 && width != 32 && width != 64 {
			ctx.StatusCode(iris.StatusBadRequest)
			_ = ctx.JSON(iris.Map{"error": fmt.Sprintf("unsupported bit width %d", width)})
			return
		}

		withGenerator(func(gen *rng.Generator) {
			_ = ctx.JSON(iris.Map{"value": gen.GenSigned(width)})
		})
	})

	app.Post("/pick", func(ctx iris.Context) {
		var items []string
		if err := ctx.ReadJSON(&items); err != nil {
			app.Logger().Printf("/pick error: %s", err)
			ctx.StatusCode(iris.StatusBadRequest)
			return
		}

		withGenerator(func(gen *rng.Generator) {
			picked := rng.PickRandom(gen, items)
			if picked == nil {
				ctx.StatusCode(iris.StatusNoContent)
				return
			}

			_ = ctx.JSON(iris.Map{"value": *picked})
		})
	})

	app.Post("/seed", func(ctx iris.Context) {
		var body map[string]interface{}
		if err := ctx.ReadJSON(&body); err != nil {
			app.Logger().Printf("/seed error (body): %s", err)
			ctx.StatusCode(iris.StatusBadRequest)
			return
		}

		var request SeedRequest
		if err := mapstructure.Decode(body, &request); err != nil {
			app.Logger().Printf("/seed error (decode): %s", err)
			ctx.StatusCode(iris.StatusBadRequest)
			return
		}

		algorithm := rng.LCG
		if request.Algorithm != "" {
			var err error
			if algorithm, err = algorithmFromName(request.Algorithm); err != nil {
				ctx.StatusCode(iris.StatusBadRequest)
				_ = ctx.JSON(iris.Map{"error": err.Error()})
				return
			}
		}

		withGenerator(func(*rng.Generator) {
			gen = rng.New(request.Seed)
			gen.SetAlgorithm(algorithm)
		})

		app.Logger().Printf("reseeded with %d (%s)", request.Seed, request.Algorithm)

		_ = ctx.JSON(iris.Map{"seed": request.Seed})
	})

	addr := os.Getenv("RNG_ADDRESS")
	if addr == "" {
		addr = ":8080"
	}

	if err := app.Listen(addr); err != nil {
		log.Fatalln(err)
	}
}
