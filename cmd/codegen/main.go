package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/weftworks/loom/cmd/codegen/templates"
)

const (
	kindsKey  = "kinds"
	outputKey = "output"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate typed signal facades",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  kindsKey,
				Usage: "Comma separated value kinds to generate facades for",
				Value: "bool,int,int64,uint64,float64,string",
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "Output path for the generated file",
				Value: "typed.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for typed facades started!")
	defer func() {
		log.Printf("Codegen for typed facades finished in %v", time.Since(start))
	}()

	kinds := strings.Split(cmd.String(kindsKey), ",")
	for i, k := range kinds {
		kinds[i] = strings.TrimSpace(k)
	}
	log.Printf("Kinds: %v", kinds)

	contents := templates.TypedGen(kinds)
	return os.WriteFile(cmd.String(outputKey), []byte(contents), 0644)
}
