package main

import (
	"context"
	"os"

	"github.com/insomnimus/rainfuck/bflang"
	"github.com/insomnimus/rainfuck/bfvm"
	"github.com/insomnimus/rainfuck/cmds"
	"github.com/insomnimus/rainfuck/debugs"
	"github.com/insomnimus/rainfuck/logs"
	"github.com/insomnimus/rainfuck/modes"
	"github.com/reusee/dscope"
)

var (
	inputFlag  = cmds.Var[string]("-input")
	outputFlag = cmds.Var[string]("-out")
	tapFlag    = cmds.Switch("-tap")
)

func main() {

	if len(os.Args) < 2 {
		os.Stderr.WriteString("usage: rainfuck <script> [commands]\n\n")
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "-h", "-help", "--help", "help":
		cmds.Execute(os.Args[1:])
		return
	}

	scriptPath := os.Args[1]
	cmds.Execute(os.Args[2:])

	src, err := os.ReadFile(scriptPath)
	if err != nil {
		os.Stderr.WriteString(err.Error())
		os.Stderr.WriteString("\n")
		os.Exit(1)
	}

	ops, err := bflang.Compile(src)
	if err != nil {
		os.Stderr.WriteString(err.Error())
		os.Stderr.WriteString("\n")
		os.Exit(1)
	}

	input := os.Stdin
	if path := *inputFlag; path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			os.Stderr.WriteString(err.Error())
			os.Stderr.WriteString("\n")
			os.Exit(1)
		}
		defer f.Close()
		input = f
	}

	output := os.Stdout
	if path := *outputFlag; path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			os.Stderr.WriteString(err.Error())
			os.Stderr.WriteString("\n")
			os.Exit(1)
		}
		defer f.Close()
		output = f
	}

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		opts bfvm.Options,
		tap debugs.Tap,
	) {
		ctx, _ := newSpan(context.Background(), "")

		logger.DebugContext(ctx, "run",
			"script", scriptPath,
			"ops", len(ops),
			"options", opts,
		)

		vm := bfvm.New(ops, input, output, opts)
		evalErr := vm.Eval()

		if *tapFlag {
			cells := make(map[int]int)
			for i, c := range vm.Tape {
				if c != 0 {
					cells[i] = int(c)
				}
			}
			tap(ctx, "machine state", map[string]any{
				"ip":          vm.IP,
				"dp":          vm.DP,
				"tape_len":    len(vm.Tape),
				"cells":       cells,
				"reached_eof": vm.ReachedEOF,
			})
		}

		if evalErr != nil {
			evalErr = logs.WrapSpan(ctx, evalErr)
			logger.ErrorContext(ctx, "eval",
				"err", evalErr,
			)
			os.Stderr.WriteString(evalErr.Error())
			os.Stderr.WriteString("\n")
			os.Exit(1)
		}
	})
}
