package bfconfigs

import (
	"github.com/insomnimus/rainfuck/bfvm"
	"github.com/insomnimus/rainfuck/cmds"
	"github.com/insomnimus/rainfuck/configs"
	"github.com/insomnimus/rainfuck/vars"
)

var (
	cellOverflowFlag = cmds.Var[string]("-overflow")
	ptrOverflowFlag  = cmds.Var[string]("-ptr-overflow")
	eofModeFlag      = cmds.Var[string]("-eof-mode")
	maxMemoryFlag    = cmds.Var[int]("-max-memory")
	maxIoFlag        = cmds.Var[int]("-max-io")
)

// Options assembles the engine configuration. A CLI flag beats the
// config file, which beats the default.
func (Module) Options(
	loader configs.Loader,
) bfvm.Options {
	opts := bfvm.DefaultOptions()

	if s := vars.FirstNonZero(
		*cellOverflowFlag,
		configs.First[string](loader, "cell_overflow"),
	); s != "" {
		mode, err := bfvm.ParseOverflow(s)
		if err != nil {
			panic(err)
		}
		opts.CellOverflow = mode
	}

	if s := vars.FirstNonZero(
		*ptrOverflowFlag,
		configs.First[string](loader, "ptr_overflow"),
	); s != "" {
		mode, err := bfvm.ParseOverflow(s)
		if err != nil {
			panic(err)
		}
		opts.PtrOverflow = mode
	}

	if s := vars.FirstNonZero(
		*eofModeFlag,
		configs.First[string](loader, "eof_mode"),
	); s != "" {
		mode, err := bfvm.ParseEofMode(s)
		if err != nil {
			panic(err)
		}
		opts.Eof = mode
	}

	if n := vars.FirstNonZero(
		*maxMemoryFlag,
		configs.First[int](loader, "max_memory"),
	); n != 0 {
		opts.MaxTape = n
	}

	if n := vars.FirstNonZero(
		*maxIoFlag,
		configs.First[int](loader, "max_io"),
	); n != 0 {
		opts.MaxIoChunk = n
	}

	return opts
}
